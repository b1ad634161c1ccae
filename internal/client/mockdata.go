package client

import (
	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

// The demo dataset the caches are seeded with on construction. It
// mirrors the seed data shipped with the service so first-load views
// look the same whether or not the service is reachable.

func MockUsers() []user.User {
	return []user.User{
		{
			ID:        1,
			Name:      "Alice Johnson",
			Email:     "alice@example.com",
			Skills:    []string{"React", "Node.js", "UI/UX Design"},
			Bio:       "Full-stack developer with a passion for creating beautiful and intuitive user interfaces.",
			Avatar:    "https://picsum.photos/seed/alice/200",
			Available: true,
		},
		{
			ID:        2,
			Name:      "Bob Williams",
			Email:     "bob@example.com",
			Skills:    []string{"Python", "Data Science", "Machine Learning"},
			Bio:       "Data scientist focused on building predictive models and analyzing large datasets.",
			Avatar:    "https://picsum.photos/seed/bob/200",
			Available: false,
		},
		{
			ID:        3,
			Name:      "Charlie Brown",
			Email:     "charlie@example.com",
			Skills:    []string{"Graphic Design", "Illustration", "Branding"},
			Bio:       "Creative graphic designer specializing in branding and digital illustration.",
			Avatar:    "https://picsum.photos/seed/charlie/200",
			Available: true,
		},
	}
}

func MockProjects() []project.Project {
	return []project.Project{
		{
			ID:             1,
			Title:          "Eco-Friendly Marketplace App",
			Description:    "A mobile application to connect buyers and sellers of sustainable and eco-friendly products. We aim to build a community around conscious consumerism. We need a frontend developer to build the React Native app and a UI/UX designer to finalize the mockups.",
			RequiredSkills: []string{"React Native", "UI/UX Design", "Firebase"},
			CreatorID:      1,
			Members:        []int64{1},
		},
		{
			ID:             2,
			Title:          "AI-Powered Personal Finance Advisor",
			Description:    "Developing an AI tool that provides personalized financial advice based on user spending habits. The core of the project is a machine learning model that predicts future expenses and suggests savings strategies. We need data scientists and backend developers.",
			RequiredSkills: []string{"Python", "Machine Learning", "Flask"},
			CreatorID:      2,
			Members:        []int64{2},
		},
		{
			ID:             3,
			Title:          "Branding for a New Tech Startup",
			Description:    "We are a new startup in the ed-tech space looking for a talented designer to create our complete brand identity. This includes a logo, color palette, typography, and marketing materials. Experience with modern and minimalist design is a plus.",
			RequiredSkills: []string{"Branding", "Logo Design", "Illustration"},
			CreatorID:      3,
			Members:        []int64{3},
		},
	}
}

func MockSwaps() []swap.SkillSwap {
	return []swap.SkillSwap{
		{
			ID:             1,
			FromUserID:     2,
			ToUserID:       1,
			OfferedSkill:   "Python Basics",
			RequestedSkill: "React Fundamentals",
			Status:         swap.StatusPending,
			Message:        "Hey Alice, I can teach you Python for data analysis if you could help me get started with React for a personal project. Let me know!",
		},
		{
			ID:             2,
			FromUserID:     1,
			ToUserID:       3,
			OfferedSkill:   "Intro to Web Development",
			RequestedSkill: "Logo Design Principles",
			Status:         swap.StatusAccepted,
			Message:        "Hi Charlie, I love your design work! I can give you a crash course on HTML/CSS/JS if you can teach me some logo design basics.",
		},
	}
}
