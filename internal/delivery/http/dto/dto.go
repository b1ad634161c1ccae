// Package dto holds the wire shapes of the public API. Projects and the
// swap sub-resources use snake_case keys, swaps themselves camelCase;
// this mirrors what the SPA frontend consumes and what the SDK gateway
// normalizes on its side.
package dto

import (
	"time"

	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

type User struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Skills    []string `json:"skills"`
	Bio       string   `json:"bio"`
	Avatar    string   `json:"avatar"`
	Available bool     `json:"available"`
}

func FromUser(u user.User) User {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Skills:    skills,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Available: u.Available,
	}
}

func FromUsers(users []user.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type Project struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"requiredSkills"`
	CreatorID      int64     `json:"creator_id"`
	Members        []int64   `json:"members"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromProject(p project.Project) Project {
	skills := p.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	members := p.Members
	if members == nil {
		members = []int64{}
	}
	return Project{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		RequiredSkills: skills,
		CreatorID:      p.CreatorID,
		Members:        members,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProjects(projects []project.Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

type SkillSwap struct {
	ID             int64     `json:"id"`
	FromUserID     int64     `json:"fromUserId"`
	ToUserID       int64     `json:"toUserId"`
	OfferedSkill   string    `json:"offeredSkill"`
	RequestedSkill string    `json:"requestedSkill"`
	Status         string    `json:"status"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromSwap(s swap.SkillSwap) SkillSwap {
	return SkillSwap{
		ID:             s.ID,
		FromUserID:     s.FromUserID,
		ToUserID:       s.ToUserID,
		OfferedSkill:   s.OfferedSkill,
		RequestedSkill: s.RequestedSkill,
		Status:         string(s.Status),
		Message:        s.Message,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromSwaps(swaps []swap.SkillSwap) []SkillSwap {
	out := make([]SkillSwap, 0, len(swaps))
	for _, s := range swaps {
		out = append(out, FromSwap(s))
	}
	return out
}

type SwapMessage struct {
	ID        int64     `json:"id"`
	SwapID    int64     `json:"swap_id"`
	SenderID  int64     `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSwapMessage(m swap.Message) SwapMessage {
	return SwapMessage{ID: m.ID, SwapID: m.SwapID, SenderID: m.SenderID, Message: m.Body, CreatedAt: m.CreatedAt}
}

func FromSwapMessages(msgs []swap.Message) []SwapMessage {
	out := make([]SwapMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromSwapMessage(m))
	}
	return out
}

type SwapStatusEvent struct {
	ID        int64     `json:"id"`
	SwapID    int64     `json:"swap_id"`
	Status    string    `json:"status"`
	ChangedBy int64     `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSwapStatusEvent(e swap.StatusEvent) SwapStatusEvent {
	return SwapStatusEvent{ID: e.ID, SwapID: e.SwapID, Status: string(e.Status), ChangedBy: e.ActorID, CreatedAt: e.CreatedAt}
}

func FromSwapStatusEvents(events []swap.StatusEvent) []SwapStatusEvent {
	out := make([]SwapStatusEvent, 0, len(events))
	for _, e := range events {
		out = append(out, FromSwapStatusEvent(e))
	}
	return out
}

type Application struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	ApplicantID int64     `json:"applicant_id"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromApplication(a project.Application) Application {
	return Application{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		ApplicantID: a.ApplicantID,
		Message:     a.Message,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

func FromApplications(apps []project.Application) []Application {
	out := make([]Application, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromApplication(a))
	}
	return out
}

type Notification struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Kind      string     `json:"kind"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromNotification(n notification.Notification) Notification {
	return Notification{ID: n.ID, UserID: n.UserID, Kind: n.Kind, Body: n.Body, ReadAt: n.ReadAt, CreatedAt: n.CreatedAt}
}

func FromNotifications(items []notification.Notification) []Notification {
	out := make([]Notification, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotification(n))
	}
	return out
}
