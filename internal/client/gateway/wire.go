package gateway

import (
	"time"

	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

// The service is not uniform in its key casing: projects arrive with a
// snake_case creator_id (older deployments used creatorId), swaps are
// camelCase, and the swap sub-resources are snake_case again. Each wire
// struct below normalizes its shape into the domain type exactly once,
// here at the boundary.

type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type userWire struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Skills    []string `json:"skills"`
	Bio       string   `json:"bio"`
	Avatar    string   `json:"avatar"`
	Available bool     `json:"available"`
}

func (w userWire) toDomain() user.User {
	return user.User{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Skills:    w.Skills,
		Bio:       w.Bio,
		Avatar:    w.Avatar,
		Available: w.Available,
	}
}

type authWire struct {
	User  userWire `json:"user"`
	Token string   `json:"token"`
}

type projectWire struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"requiredSkills"`
	CreatorIDSnake int64     `json:"creator_id"`
	CreatorIDCamel int64     `json:"creatorId"`
	Members        []int64   `json:"members"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (w projectWire) toDomain() project.Project {
	creator := w.CreatorIDSnake
	if creator == 0 {
		creator = w.CreatorIDCamel
	}
	skills := w.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return project.Project{
		ID:             w.ID,
		Title:          w.Title,
		Description:    w.Description,
		RequiredSkills: skills,
		CreatorID:      creator,
		Members:        w.Members,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

type swapWire struct {
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

func (w swapWire) toDomain() swap.SkillSwap {
	return swap.SkillSwap{
		ID:             w.ID,
		FromUserID:     w.FromUserID,
		ToUserID:       w.ToUserID,
		OfferedSkill:   w.OfferedSkill,
		RequestedSkill: w.RequestedSkill,
		Message:        w.Message,
		Status:         swap.Status(w.Status),
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

type swapMessageWire struct {
	ID        int64     `json:"id"`
	SwapID    int64     `json:"swap_id"`
	SenderID  int64     `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (w swapMessageWire) toDomain() swap.Message {
	return swap.Message{
		ID:        w.ID,
		SwapID:    w.SwapID,
		SenderID:  w.SenderID,
		Body:      w.Message,
		CreatedAt: w.CreatedAt,
	}
}

type swapEventWire struct {
	ID        int64     `json:"id"`
	SwapID    int64     `json:"swap_id"`
	Status    string    `json:"status"`
	ChangedBy int64     `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (w swapEventWire) toDomain() swap.StatusEvent {
	return swap.StatusEvent{
		ID:        w.ID,
		SwapID:    w.SwapID,
		Status:    swap.Status(w.Status),
		ActorID:   w.ChangedBy,
		CreatedAt: w.CreatedAt,
	}
}

type applicationWire struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	ApplicantID int64     `json:"applicant_id"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (w applicationWire) toDomain() project.Application {
	return project.Application{
		ID:          w.ID,
		ProjectID:   w.ProjectID,
		ApplicantID: w.ApplicantID,
		Message:     w.Message,
		Status:      project.ApplicationStatus(w.Status),
		CreatedAt:   w.CreatedAt,
	}
}

type notificationWire struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Kind      string     `json:"kind"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (w notificationWire) toDomain() notification.Notification {
	return notification.Notification{
		ID:        w.ID,
		UserID:    w.UserID,
		Kind:      w.Kind,
		Body:      w.Body,
		ReadAt:    w.ReadAt,
		CreatedAt: w.CreatedAt,
	}
}
