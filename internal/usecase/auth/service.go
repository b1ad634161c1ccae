package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"skillswap/internal/domain/user"
	"skillswap/internal/pkg/jwt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Skills   []string
	Bio      string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users user.Repository
	jwt   jwt.Service
}

func NewService(users user.Repository, jwtSvc jwt.Service) *Service {
	return &Service{users: users, jwt: jwtSvc}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" {
		return user.User{}, "", ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, "", ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	if exists {
		return user.User{}, "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}

	u := user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Skills:       skills,
		Bio:          strings.TrimSpace(in.Bio),
		Avatar:       defaultAvatar(name),
		Available:    true,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, "", ErrEmailAlreadyRegistered
		}
		return user.User{}, "", ErrInternal
	}

	token, err := s.jwt.Generate(created.ID, created.Email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(created), token, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(u.ID, u.Email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(u), token, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func defaultAvatar(name string) string {
	seed := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	return fmt.Sprintf("https://picsum.photos/seed/%s/200", seed)
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
