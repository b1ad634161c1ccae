package project

import "time"

type Project struct {
	ID             int64
	Title          string
	Description    string
	RequiredSkills []string
	CreatorID      int64
	Members        []int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasMember reports whether id already appears in the member list.
func (p Project) HasMember(id int64) bool {
	for _, m := range p.Members {
		if m == id {
			return true
		}
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationDeclined ApplicationStatus = "declined"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationDeclined:
		return true
	}
	return false
}

type Application struct {
	ID          int64
	ProjectID   int64
	ApplicantID int64
	Message     string
	Status      ApplicationStatus
	CreatedAt   time.Time
}
