package user

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Skills       []string
	Bio          string
	Avatar       string
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
