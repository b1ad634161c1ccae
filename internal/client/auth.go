package client

import (
	"context"
	"errors"
	"log"
	"strings"

	"skillswap/internal/client/gateway"
	"skillswap/internal/client/session"
	"skillswap/internal/client/state"
	"skillswap/internal/domain/user"
)

// AuthManager owns registration, login and the availability toggle.
type AuthManager struct {
	gw      Gateway
	session *session.Session
	users   *state.Collection[user.User]
	logger  *log.Logger
}

func (m *AuthManager) Register(ctx context.Context, name, email, password string, skills []string, bio string) (user.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return user.User{}, ErrInvalidInput
	}

	result, err := m.gw.Register(ctx, gateway.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Skills:   skills,
		Bio:      bio,
	})
	if err != nil {
		return user.User{}, err
	}

	m.session.Establish(result.User, result.Token)
	m.users.Upsert(result.User, state.OriginAuthoritative)
	return result.User, nil
}

// Login authenticates against the service. When the service cannot be
// reached at all, it falls back to matching the cached user list by
// email, ignoring the password. That degraded session carries no token
// and exists so the demo keeps working offline; it is not a security
// boundary. A reachable service rejecting the credentials is surfaced
// as the error it is, with no fallback.
func (m *AuthManager) Login(ctx context.Context, email, password string) (user.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return user.User{}, ErrInvalidInput
	}

	result, err := m.gw.Login(ctx, email, password)
	if err == nil {
		m.session.Establish(result.User, result.Token)
		m.users.Upsert(result.User, state.OriginAuthoritative)
		return result.User, nil
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return user.User{}, err
	}

	if m.logger != nil {
		m.logger.Printf("[AuthManager] login degraded to cached-user match | error=%v", err)
	}
	for _, u := range m.users.All() {
		if strings.EqualFold(u.Email, email) {
			m.session.Establish(u, "")
			return u, nil
		}
	}
	return user.User{}, err
}

func (m *AuthManager) Logout() {
	m.session.Clear()
}

// ProfileEdit carries the editable profile fields. Nil pointers and a
// nil skills slice leave the current value untouched.
type ProfileEdit struct {
	Name   *string
	Skills []string
	Bio    *string
	Avatar *string
}

// UpdateProfile edits the caller's profile. The remote call runs
// first; when it fails the edit is applied to the session and the
// user cache locally, tagged as pending, so the UI reflects it until
// the next refresh.
func (m *AuthManager) UpdateProfile(ctx context.Context, edit ProfileEdit) (user.User, error) {
	current, ok := m.session.Current()
	if !ok {
		return user.User{}, ErrNotAuthenticated
	}
	if edit.Name == nil && edit.Skills == nil && edit.Bio == nil && edit.Avatar == nil {
		return user.User{}, ErrInvalidInput
	}
	if edit.Name != nil && strings.TrimSpace(*edit.Name) == "" {
		return user.User{}, ErrInvalidInput
	}

	updated, err := m.gw.UpdateProfile(ctx, m.session.Token(), gateway.UpdateProfileRequest{
		Name:   edit.Name,
		Skills: edit.Skills,
		Bio:    edit.Bio,
		Avatar: edit.Avatar,
	})
	origin := state.OriginAuthoritative
	if err != nil {
		if m.logger != nil {
			m.logger.Printf("[AuthManager] profile edit applied locally only | error=%v", err)
		}
		updated = current
		if edit.Name != nil {
			updated.Name = strings.TrimSpace(*edit.Name)
		}
		if edit.Skills != nil {
			updated.Skills = append([]string(nil), edit.Skills...)
		}
		if edit.Bio != nil {
			updated.Bio = *edit.Bio
		}
		if edit.Avatar != nil {
			updated.Avatar = *edit.Avatar
		}
		origin = state.OriginPendingLocal
	}

	m.session.Update(updated)
	m.users.Upsert(updated, origin)
	return updated, nil
}

// ToggleAvailability flips the caller's availability. The remote call
// runs first; the flip is applied to the session and the user cache on
// both paths, so a failed call still shows the new value until the
// next refresh.
func (m *AuthManager) ToggleAvailability(ctx context.Context) (bool, error) {
	current, ok := m.session.Current()
	if !ok {
		return false, ErrNotAuthenticated
	}

	available, err := m.gw.ToggleAvailability(ctx, m.session.Token(), current.ID)
	origin := state.OriginAuthoritative
	if err != nil {
		if m.logger != nil {
			m.logger.Printf("[AuthManager] availability toggle applied locally only | error=%v", err)
		}
		available = !current.Available
		origin = state.OriginPendingLocal
	}

	current.Available = available
	m.session.Update(current)
	m.users.Upsert(current, origin)
	return available, nil
}

// RefreshUsers replaces the user cache with the authoritative list,
// keeping the cache on failure.
func (m *AuthManager) RefreshUsers(ctx context.Context) []user.User {
	users, err := m.gw.ListUsers(ctx)
	if err != nil {
		if m.logger != nil {
			m.logger.Printf("[AuthManager] user refresh failed, serving cache | error=%v", err)
		}
		return m.users.All()
	}
	m.users.ReplaceAll(users)
	return m.users.All()
}
