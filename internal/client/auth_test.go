package client

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/client/gateway"
	"skillswap/internal/client/state"
	"skillswap/internal/domain/user"
)

func TestRegisterEstablishesSession(t *testing.T) {
	fake := newFakeGateway()
	fake.registerFn = func(_ context.Context, req gateway.RegisterRequest) (gateway.AuthResult, error) {
		return gateway.AuthResult{
			User:  user.User{ID: 4, Name: req.Name, Email: req.Email, Skills: req.Skills, Bio: req.Bio},
			Token: "fresh-token",
		}, nil
	}

	c := newTestClient(fake)
	u, err := c.Auth.Register(context.Background(), "Dana", "dana@example.com", "password123", []string{"Go"}, "hi")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !c.Session.Authenticated() || c.Session.Token() != "fresh-token" {
		t.Fatal("expected authenticated session with the issued token")
	}
	if _, ok := c.Users.Find(u.ID); !ok {
		t.Fatal("expected registered user in cache")
	}
}

func TestRegisterSurfacesFailure(t *testing.T) {
	c := newTestClient(newFakeGateway())

	if _, err := c.Auth.Register(context.Background(), "Dana", "dana@example.com", "pw", nil, ""); err == nil {
		t.Fatal("expected error when the service is unreachable")
	}
	if c.Session.Authenticated() {
		t.Fatal("failed registration must not establish a session")
	}
}

func TestLoginAuthoritative(t *testing.T) {
	fake := newFakeGateway()
	fake.loginFn = func(_ context.Context, email, _ string) (gateway.AuthResult, error) {
		return gateway.AuthResult{User: user.User{ID: 1, Email: email}, Token: "tok"}, nil
	}

	c := newTestClient(fake)
	if _, err := c.Auth.Login(context.Background(), "alice@example.com", "password123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if c.Session.Token() != "tok" {
		t.Fatal("expected issued token in session")
	}
}

func TestLoginDegradesToCachedUserWhenUnreachable(t *testing.T) {
	c := newTestClient(newFakeGateway())

	u, err := c.Auth.Login(context.Background(), "ALICE@example.com", "whatever")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Name != "Alice Johnson" {
		t.Fatalf("expected cached Alice, got %q", u.Name)
	}
	if !c.Session.Authenticated() {
		t.Fatal("degraded login must still establish a session")
	}
	if c.Session.Token() != "" {
		t.Fatal("degraded session must carry no token")
	}
}

func TestLoginRejectionDoesNotFallBack(t *testing.T) {
	fake := newFakeGateway()
	fake.loginFn = func(context.Context, string, string) (gateway.AuthResult, error) {
		return gateway.AuthResult{}, &gateway.APIError{Status: 401, Message: "Invalid credentials"}
	}

	c := newTestClient(fake)
	_, err := c.Auth.Login(context.Background(), "alice@example.com", "wrong")

	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if c.Session.Authenticated() {
		t.Fatal("a rejected login must not fall back to the cached user")
	}
}

func TestLoginUnknownEmailWhenUnreachable(t *testing.T) {
	c := newTestClient(newFakeGateway())

	if _, err := c.Auth.Login(context.Background(), "nobody@example.com", "pw"); err == nil {
		t.Fatal("expected error when no cached user matches")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	c := newTestClient(newFakeGateway())
	loginAs(c, user.User{ID: 1})

	c.Auth.Logout()
	if c.Session.Authenticated() || c.Session.Token() != "" || c.Session.UserID() != 0 {
		t.Fatal("logout must clear token and identity")
	}
}

func TestToggleAvailabilityOptimisticOnFailure(t *testing.T) {
	c := newTestClient(newFakeGateway())
	loginAs(c, user.User{ID: 1, Available: true})

	available, err := c.Auth.ToggleAvailability(context.Background())
	if err != nil {
		t.Fatalf("ToggleAvailability: %v", err)
	}
	if available {
		t.Fatal("expected availability flipped to false")
	}

	current, _ := c.Session.Current()
	if current.Available {
		t.Fatal("session user must reflect the optimistic flip")
	}
}

func TestToggleAvailabilityAuthoritative(t *testing.T) {
	fake := newFakeGateway()
	fake.toggleAvailabilityFn = func(context.Context, string, int64) (bool, error) {
		return false, nil
	}

	c := newTestClient(fake)
	loginAs(c, user.User{ID: 1, Available: true})

	available, err := c.Auth.ToggleAvailability(context.Background())
	if err != nil {
		t.Fatalf("ToggleAvailability: %v", err)
	}
	if available {
		t.Fatal("expected server value false")
	}

	u, _ := c.Users.Find(1)
	if u.Available {
		t.Fatal("user cache must reflect the server value")
	}
}

func TestUpdateProfileAuthoritative(t *testing.T) {
	fake := newFakeGateway()
	fake.updateProfileFn = func(_ context.Context, token string, req gateway.UpdateProfileRequest) (user.User, error) {
		if token != "test-token" {
			t.Fatalf("expected session token, got %q", token)
		}
		return user.User{ID: 1, Name: *req.Name, Bio: *req.Bio, Avatar: "a.png"}, nil
	}

	c := newTestClient(fake)
	loginAs(c, user.User{ID: 1, Name: "Old Name"})

	name := "New Name"
	bio := "Building things"
	updated, err := c.Auth.UpdateProfile(context.Background(), ProfileEdit{Name: &name, Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "New Name" || updated.Avatar != "a.png" {
		t.Fatalf("expected server copy back, got %+v", updated)
	}

	current, _ := c.Session.Current()
	if current.Name != "New Name" {
		t.Fatal("session user must carry the server copy")
	}
	rec, ok := c.Users.FindRecord(1)
	if !ok || rec.Origin != state.OriginAuthoritative {
		t.Fatal("user cache must hold the server copy as authoritative")
	}
}

func TestUpdateProfileFallsBackLocallyOnFailure(t *testing.T) {
	c := newTestClient(newFakeGateway())
	loginAs(c, user.User{ID: 1, Name: "Old Name", Bio: "old bio", Skills: []string{"Go"}})

	name := "New Name"
	updated, err := c.Auth.UpdateProfile(context.Background(), ProfileEdit{
		Name:   &name,
		Skills: []string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "New Name" || len(updated.Skills) != 2 {
		t.Fatalf("expected local edit applied, got %+v", updated)
	}
	if updated.Bio != "old bio" {
		t.Fatal("untouched fields must survive the local edit")
	}

	current, _ := c.Session.Current()
	if current.Name != "New Name" {
		t.Fatal("session user must reflect the local edit")
	}
	rec, ok := c.Users.FindRecord(1)
	if !ok || rec.Origin != state.OriginPendingLocal {
		t.Fatal("locally applied edit must be tagged as pending")
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	fake := newFakeGateway()
	c := newTestClient(fake)

	if _, err := c.Auth.UpdateProfile(context.Background(), ProfileEdit{}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	loginAs(c, user.User{ID: 1, Name: "Old Name"})

	if _, err := c.Auth.UpdateProfile(context.Background(), ProfileEdit{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for an empty edit, got %v", err)
	}

	blank := "   "
	if _, err := c.Auth.UpdateProfile(context.Background(), ProfileEdit{Name: &blank}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a blank name, got %v", err)
	}

	if got := fake.calls["UpdateProfile"]; got != 0 {
		t.Fatalf("rejected edits must not reach the network, got %d calls", got)
	}
}
