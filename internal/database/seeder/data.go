package seeder

import (
	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

var seedUsers = []user.User{
	{
		Name:      "Alice Johnson",
		Email:     "alice@example.com",
		Skills:    []string{"React", "Node.js", "UI/UX Design"},
		Bio:       "Full-stack developer with a passion for creating beautiful and intuitive user interfaces.",
		Avatar:    "https://picsum.photos/seed/alice/200",
		Available: true,
	},
	{
		Name:      "Bob Williams",
		Email:     "bob@example.com",
		Skills:    []string{"Python", "Data Science", "Machine Learning"},
		Bio:       "Data scientist focused on building predictive models and analyzing large datasets.",
		Avatar:    "https://picsum.photos/seed/bob/200",
		Available: false,
	},
	{
		Name:      "Charlie Brown",
		Email:     "charlie@example.com",
		Skills:    []string{"Graphic Design", "Illustration", "Branding"},
		Bio:       "Creative graphic designer specializing in branding and digital illustration.",
		Avatar:    "https://picsum.photos/seed/charlie/200",
		Available: true,
	},
}

var seedProjects = []project.Project{
	{
		Title:          "Eco-Friendly Marketplace App",
		Description:    "A mobile application to connect buyers and sellers of sustainable and eco-friendly products. We aim to build a community around conscious consumerism. We need a frontend developer to build the React Native app and a UI/UX designer to finalize the mockups.",
		RequiredSkills: []string{"React Native", "UI/UX Design", "Firebase"},
	},
	{
		Title:          "AI-Powered Personal Finance Advisor",
		Description:    "Developing an AI tool that provides personalized financial advice based on user spending habits. The core of the project is a machine learning model that predicts future expenses and suggests savings strategies. We need data scientists and backend developers.",
		RequiredSkills: []string{"Python", "Machine Learning", "Flask"},
	},
	{
		Title:          "Branding for a New Tech Startup",
		Description:    "We are a new startup in the ed-tech space looking for a talented designer to create our complete brand identity. This includes a logo, color palette, typography, and marketing materials. Experience with modern and minimalist design is a plus.",
		RequiredSkills: []string{"Branding", "Logo Design", "Illustration"},
	},
}

// seedProjectCreators indexes into the ids returned by seedUsers.
var seedProjectCreators = []int{0, 1, 2}

var seedSwaps = []swap.SkillSwap{
	{
		OfferedSkill:   "Python Basics",
		RequestedSkill: "React Fundamentals",
		Message:        "Hey Alice, I can teach you Python for data analysis if you could help me get started with React for a personal project. Let me know!",
		Status:         swap.StatusPending,
	},
	{
		OfferedSkill:   "Intro to Web Development",
		RequestedSkill: "Logo Design Principles",
		Message:        "Hi Charlie, I love your design work! I can give you a crash course on HTML/CSS/JS if you can teach me some logo design basics.",
		Status:         swap.StatusAccepted,
	},
}

// seedSwapParties holds {from, to} index pairs into the seeded users.
var seedSwapParties = [][2]int{{1, 0}, {0, 2}}
