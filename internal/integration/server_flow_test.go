package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"skillswap/internal/app"
	"skillswap/internal/config"
	"skillswap/internal/delivery/http/dto"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{
			AppName:     "skillswap-test",
			Environment: "test",
			HTTPPort:    "0",
			SeedDemo:    false,
		},
		Database: config.DatabaseConfig{Store: config.StoreMemory},
		JWT:      config.JWTConfig{Secret: "integration-test-secret", ExpiresIn: time.Hour},
	}

	application, cleanup, err := app.Bootstrap(cfg, log.New(os.Stdout, "", 0))
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	return application.Fiber
}

type authResponse struct {
	User  dto.User `json:"user"`
	Token string   `json:"token"`
}

func request(t *testing.T, fa *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := fa.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, raw
}

func registerUser(t *testing.T, fa *fiber.App, name, email string) authResponse {
	t.Helper()

	resp, raw := request(t, fa, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "password123",
		"skills":   []string{"Go"},
		"bio":      "test user",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, resp.StatusCode, raw)
	}

	var out authResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if out.Token == "" {
		t.Fatal("register must issue a token")
	}
	return out
}

func TestSwapLifecycleEndToEnd(t *testing.T) {
	fa := newTestApp(t)

	alice := registerUser(t, fa, "Alice", "alice@test.local")
	bob := registerUser(t, fa, "Bob", "bob@test.local")

	// Bob proposes a swap to Alice.
	resp, raw := request(t, fa, http.MethodPost, "/api/skill-swaps", bob.Token, map[string]any{
		"toUserId":       alice.User.ID,
		"offeredSkill":   "Python",
		"requestedSkill": "React",
		"message":        "let's trade",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("propose: status %d body %s", resp.StatusCode, raw)
	}
	var created dto.SkillSwap
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode swap: %v", err)
	}
	if created.Status != "pending" || created.FromUserID != bob.User.ID || created.ToUserID != alice.User.ID {
		t.Fatalf("unexpected swap: %+v", created)
	}

	// A self-referential proposal is rejected.
	resp, _ = request(t, fa, http.MethodPost, "/api/skill-swaps", bob.Token, map[string]any{
		"toUserId":       bob.User.ID,
		"offeredSkill":   "Python",
		"requestedSkill": "Python",
		"message":        "me",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("self swap: expected 400, got %d", resp.StatusCode)
	}

	// Only the recipient may transition it.
	resp, _ = request(t, fa, http.MethodPatch, fmt.Sprintf("/api/skill-swaps/%d", created.ID), bob.Token, map[string]string{"status": "accepted"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("proposer transition: expected 403, got %d", resp.StatusCode)
	}

	resp, raw = request(t, fa, http.MethodPatch, fmt.Sprintf("/api/skill-swaps/%d", created.ID), alice.Token, map[string]string{"status": "accepted"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("accept: status %d body %s", resp.StatusCode, raw)
	}
	var accepted dto.SkillSwap
	if err := json.Unmarshal(raw, &accepted); err != nil {
		t.Fatalf("decode accepted swap: %v", err)
	}
	if accepted.Status != "accepted" {
		t.Fatalf("expected accepted, got %q", accepted.Status)
	}

	// The terminal state blocks a second transition.
	resp, _ = request(t, fa, http.MethodPatch, fmt.Sprintf("/api/skill-swaps/%d", created.ID), alice.Token, map[string]string{"status": "declined"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("terminal transition: expected 409, got %d", resp.StatusCode)
	}

	// History carries the full trail in order: pending then accepted.
	resp, raw = request(t, fa, http.MethodGet, fmt.Sprintf("/api/skill-swaps/%d/history", created.ID), alice.Token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history: status %d body %s", resp.StatusCode, raw)
	}
	var history []dto.SwapStatusEvent
	if err := json.Unmarshal(raw, &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 events, got %d (%s)", len(history), raw)
	}
	if history[0].Status != "pending" || history[1].Status != "accepted" {
		t.Fatalf("unexpected trail: %+v", history)
	}
	if history[1].ChangedBy != alice.User.ID {
		t.Fatalf("accept actor: expected %d, got %d", alice.User.ID, history[1].ChangedBy)
	}

	// Chat on the swap.
	resp, raw = request(t, fa, http.MethodPost, fmt.Sprintf("/api/skill-swaps/%d/messages", created.ID), alice.Token, map[string]string{"message": "when do we start?"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("post message: status %d body %s", resp.StatusCode, raw)
	}
	resp, raw = request(t, fa, http.MethodGet, fmt.Sprintf("/api/skill-swaps/%d/messages", created.ID), bob.Token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list messages: status %d body %s", resp.StatusCode, raw)
	}
	var msgs []dto.SwapMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].SenderID != alice.User.ID {
		t.Fatalf("unexpected messages: %+v", msgs)
	}

	// Alice was notified when the proposal arrived.
	resp, raw = request(t, fa, http.MethodGet, "/api/notifications", alice.Token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("notifications: status %d body %s", resp.StatusCode, raw)
	}
	var items []dto.Notification
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode notifications: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("alice should have been notified about the proposal")
	}
}

func TestProjectFlowEndToEnd(t *testing.T) {
	fa := newTestApp(t)

	alice := registerUser(t, fa, "Alice", "alice@test.local")
	bob := registerUser(t, fa, "Bob", "bob@test.local")

	resp, raw := request(t, fa, http.MethodPost, "/api/projects", alice.Token, map[string]any{
		"title":          "Demo Project",
		"description":    "Something to build",
		"requiredSkills": []string{"Go", "React"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create project: status %d body %s", resp.StatusCode, raw)
	}
	var proj dto.Project
	if err := json.Unmarshal(raw, &proj); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if proj.CreatorID != alice.User.ID {
		t.Fatalf("creator: expected %d, got %d", alice.User.ID, proj.CreatorID)
	}

	// Empty requiredSkills are rejected.
	resp, _ = request(t, fa, http.MethodPost, "/api/projects", alice.Token, map[string]any{
		"title":          "Bad",
		"description":    "Bad",
		"requiredSkills": []string{},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty skills: expected 400, got %d", resp.StatusCode)
	}

	// Double join leaves exactly one membership.
	for i := 0; i < 2; i++ {
		resp, raw = request(t, fa, http.MethodPost, fmt.Sprintf("/api/projects/%d/join", proj.ID), bob.Token, nil)
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("join: status %d body %s", resp.StatusCode, raw)
		}
	}
	resp, raw = request(t, fa, http.MethodGet, fmt.Sprintf("/api/projects/%d", proj.ID), "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get project: status %d body %s", resp.StatusCode, raw)
	}
	var fetched dto.Project
	if err := json.Unmarshal(raw, &fetched); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	occurrences := 0
	for _, m := range fetched.Members {
		if m == bob.User.ID {
			occurrences++
		}
	}
	if occurrences != 1 {
		t.Fatalf("expected one membership for bob, got %d (members=%v)", occurrences, fetched.Members)
	}

	// Application flow: bob applies, alice reviews once.
	resp, raw = request(t, fa, http.MethodPost, fmt.Sprintf("/api/projects/%d/applications", proj.ID), bob.Token, map[string]string{"message": "count me in"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("apply: status %d body %s", resp.StatusCode, raw)
	}
	var application dto.Application
	if err := json.Unmarshal(raw, &application); err != nil {
		t.Fatalf("decode application: %v", err)
	}

	// Only the creator sees the application list.
	resp, _ = request(t, fa, http.MethodGet, fmt.Sprintf("/api/projects/%d/applications", proj.ID), bob.Token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("applications as non-creator: expected 403, got %d", resp.StatusCode)
	}

	resp, raw = request(t, fa, http.MethodPatch, fmt.Sprintf("/api/applications/%d", application.ID), alice.Token, map[string]string{"status": "accepted"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("review: status %d body %s", resp.StatusCode, raw)
	}

	// A second review is rejected.
	resp, _ = request(t, fa, http.MethodPatch, fmt.Sprintf("/api/applications/%d", application.ID), alice.Token, map[string]string{"status": "declined"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second review: expected 409, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredOnProtectedRoutes(t *testing.T) {
	fa := newTestApp(t)

	resp, _ := request(t, fa, http.MethodGet, "/api/skill-swaps", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	resp, _ = request(t, fa, http.MethodGet, "/api/projects", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public project list: expected 200, got %d", resp.StatusCode)
	}
}

func TestProfileEditEndToEnd(t *testing.T) {
	fa := newTestApp(t)
	alice := registerUser(t, fa, "alice", "alice@example.com")

	resp, raw := request(t, fa, http.MethodPut, "/api/users/me", alice.Token, map[string]any{
		"name":   "Alice Johnson",
		"bio":    "now mentoring",
		"skills": []string{"Go", "Postgres"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile edit: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var updated dto.User
	if err := json.Unmarshal(raw, &updated); err != nil {
		t.Fatalf("unmarshal profile: %v", err)
	}
	if updated.Name != "Alice Johnson" || updated.Bio != "now mentoring" {
		t.Fatalf("expected edited profile back, got %+v", updated)
	}
	if len(updated.Skills) != 2 {
		t.Fatalf("expected two skills, got %v", updated.Skills)
	}

	resp, raw = request(t, fa, http.MethodGet, fmt.Sprintf("/api/users/%d", alice.User.ID), "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get user: expected 200, got %d", resp.StatusCode)
	}
	var fetched dto.User
	if err := json.Unmarshal(raw, &fetched); err != nil {
		t.Fatalf("unmarshal user: %v", err)
	}
	if fetched.Name != "Alice Johnson" {
		t.Fatalf("edit must persist, got %q", fetched.Name)
	}
	if fetched.Email != "alice@example.com" {
		t.Fatalf("email must be untouched, got %q", fetched.Email)
	}

	resp, _ = request(t, fa, http.MethodPut, "/api/users/me", alice.Token, map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty edit: expected 400, got %d", resp.StatusCode)
	}

	resp, _ = request(t, fa, http.MethodPut, "/api/users/me", "", map[string]any{"name": "Mallory"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated edit: expected 401, got %d", resp.StatusCode)
	}
}

func TestJoinMissingProjectReturnsNotFound(t *testing.T) {
	fa := newTestApp(t)
	alice := registerUser(t, fa, "alice", "alice@example.com")

	resp, raw := request(t, fa, http.MethodPost, "/api/projects/999/join", alice.Token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("join missing project: expected 404, got %d: %s", resp.StatusCode, raw)
	}
}
