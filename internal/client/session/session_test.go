package session

import (
	"testing"

	"skillswap/internal/domain/user"
)

func TestLifecycle(t *testing.T) {
	s := New()
	if s.Authenticated() || s.UserID() != 0 || s.Token() != "" {
		t.Fatal("fresh session must be anonymous")
	}

	s.Establish(user.User{ID: 7, Name: "Dana"}, "tok")
	if !s.Authenticated() || s.UserID() != 7 || s.Token() != "tok" {
		t.Fatal("establish must set identity and token")
	}

	u, ok := s.Current()
	if !ok || u.Name != "Dana" {
		t.Fatalf("unexpected current user: %+v", u)
	}

	s.Clear()
	if s.Authenticated() || s.UserID() != 0 || s.Token() != "" {
		t.Fatal("clear must return the session to anonymous")
	}
}

func TestUpdateOnlyAppliesToCurrentUser(t *testing.T) {
	s := New()
	s.Establish(user.User{ID: 7, Available: true}, "tok")

	s.Update(user.User{ID: 8, Available: false})
	u, _ := s.Current()
	if u.ID != 7 || !u.Available {
		t.Fatal("update with a different id must be ignored")
	}

	s.Update(user.User{ID: 7, Available: false})
	u, _ = s.Current()
	if u.Available {
		t.Fatal("update with the current id must apply")
	}
}
