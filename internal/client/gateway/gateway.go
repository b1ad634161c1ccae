// Package gateway is the thin HTTP layer between the client-side
// managers and the authoritative service. It translates calls into
// JSON requests, attaches the bearer token, and normalizes wire shapes
// into domain types. It never falls back on its own; degraded-mode
// decisions belong to the callers.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"skillswap/internal/config"
	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

const maxResponseBytes = 1 << 20

// APIError is a non-2xx response that carried a readable error payload.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
}

// ErrEmptyResponse marks a response whose body was absent where one was
// required. It is distinct from a malformed body, which surfaces as a
// decode error.
var ErrEmptyResponse = errors.New("empty response body")

type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func New(cfg config.ClientConfig, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type AuthResult struct {
	User  user.User
	Token string
}

type RegisterRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Skills   []string `json:"skills"`
	Bio      string   `json:"bio"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	var out authWire
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &out); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: out.User.toDomain(), Token: out.Token}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out authWire
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: out.User.toDomain(), Token: out.Token}, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	var out []userWire
	if err := c.do(ctx, http.MethodGet, "/users", "", nil, &out); err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(out))
	for _, w := range out {
		users = append(users, w.toDomain())
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (user.User, error) {
	var out userWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), "", nil, &out); err != nil {
		return user.User{}, err
	}
	return out.toDomain(), nil
}

type UpdateProfileRequest struct {
	Name   *string  `json:"name,omitempty"`
	Skills []string `json:"skills,omitempty"`
	Bio    *string  `json:"bio,omitempty"`
	Avatar *string  `json:"avatar,omitempty"`
}

// UpdateProfile edits the authenticated user's own profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (user.User, error) {
	var out userWire
	if err := c.do(ctx, http.MethodPut, "/users/me", token, req, &out); err != nil {
		return user.User{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) ToggleAvailability(ctx context.Context, token string, id int64) (bool, error) {
	var out struct {
		Available bool `json:"available"`
	}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d/availability", id), token, nil, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	var out []projectWire
	if err := c.do(ctx, http.MethodGet, "/projects", "", nil, &out); err != nil {
		return nil, err
	}
	projects := make([]project.Project, 0, len(out))
	for _, w := range out {
		projects = append(projects, w.toDomain())
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, id int64) (project.Project, error) {
	var out projectWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), "", nil, &out); err != nil {
		return project.Project{}, err
	}
	return out.toDomain(), nil
}

type CreateProjectRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
}

func (c *Client) CreateProject(ctx context.Context, token string, req CreateProjectRequest) (project.Project, error) {
	var out projectWire
	if err := c.do(ctx, http.MethodPost, "/projects", token, req, &out); err != nil {
		return project.Project{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) JoinProject(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/join", id), token, nil, nil)
}

func (c *Client) ListSwaps(ctx context.Context, token string) ([]swap.SkillSwap, error) {
	var out []swapWire
	if err := c.do(ctx, http.MethodGet, "/skill-swaps", token, nil, &out); err != nil {
		return nil, err
	}
	swaps := make([]swap.SkillSwap, 0, len(out))
	for _, w := range out {
		swaps = append(swaps, w.toDomain())
	}
	return swaps, nil
}

type ProposeSwapRequest struct {
	ToUserID       int64  `json:"toUserId"`
	OfferedSkill   string `json:"offeredSkill"`
	RequestedSkill string `json:"requestedSkill"`
	Message        string `json:"message"`
}

func (c *Client) ProposeSwap(ctx context.Context, token string, req ProposeSwapRequest) (swap.SkillSwap, error) {
	var out swapWire
	if err := c.do(ctx, http.MethodPost, "/skill-swaps", token, req, &out); err != nil {
		return swap.SkillSwap{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) UpdateSwapStatus(ctx context.Context, token string, id int64, status swap.Status) (swap.SkillSwap, error) {
	body := map[string]string{"status": string(status)}
	var out swapWire
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/skill-swaps/%d", id), token, body, &out); err != nil {
		return swap.SkillSwap{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) ListSwapMessages(ctx context.Context, token string, swapID int64) ([]swap.Message, error) {
	var out []swapMessageWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/skill-swaps/%d/messages", swapID), token, nil, &out); err != nil {
		return nil, err
	}
	msgs := make([]swap.Message, 0, len(out))
	for _, w := range out {
		msgs = append(msgs, w.toDomain())
	}
	return msgs, nil
}

func (c *Client) PostSwapMessage(ctx context.Context, token string, swapID int64, text string) (swap.Message, error) {
	body := map[string]string{"message": text}
	var out swapMessageWire
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/skill-swaps/%d/messages", swapID), token, body, &out); err != nil {
		return swap.Message{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) ListSwapHistory(ctx context.Context, token string, swapID int64) ([]swap.StatusEvent, error) {
	var out []swapEventWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/skill-swaps/%d/history", swapID), token, nil, &out); err != nil {
		return nil, err
	}
	events := make([]swap.StatusEvent, 0, len(out))
	for _, w := range out {
		events = append(events, w.toDomain())
	}
	return events, nil
}

func (c *Client) ListApplications(ctx context.Context, token string, projectID int64) ([]project.Application, error) {
	var out []applicationWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/applications", projectID), token, nil, &out); err != nil {
		return nil, err
	}
	apps := make([]project.Application, 0, len(out))
	for _, w := range out {
		apps = append(apps, w.toDomain())
	}
	return apps, nil
}

func (c *Client) Apply(ctx context.Context, token string, projectID int64, message string) (project.Application, error) {
	body := map[string]string{"message": message}
	var out applicationWire
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/applications", projectID), token, body, &out); err != nil {
		return project.Application{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) ReviewApplication(ctx context.Context, token string, applicationID int64, status project.ApplicationStatus) (project.Application, error) {
	body := map[string]string{"status": string(status)}
	var out applicationWire
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/applications/%d", applicationID), token, body, &out); err != nil {
		return project.Application{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) ListNotifications(ctx context.Context, token string) ([]notification.Notification, error) {
	var out []notificationWire
	if err := c.do(ctx, http.MethodGet, "/notifications", token, nil, &out); err != nil {
		return nil, err
	}
	items := make([]notification.Notification, 0, len(out))
	for _, w := range out {
		items = append(items, w.toDomain())
	}
	return items, nil
}

func (c *Client) UnreadCount(ctx context.Context, token string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", token, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) MarkAllRead(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/notifications/read-all", token, nil, nil)
}

// do performs one request/response cycle. Error discipline: transport
// failures return as-is, a non-2xx with a readable payload becomes an
// *APIError, an absent body where one is required is ErrEmptyResponse,
// and an unparseable body is a decode error. Callers pick fail-soft or
// optimistic fallback per operation; do never swallows anything.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if c == nil || c.http == nil {
		return errors.New("nil gateway client")
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	raw = bytes.TrimSpace(raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Printf("[Gateway] %s %s failed | status=%d", method, path, resp.StatusCode)
		}
		if len(raw) == 0 {
			return fmt.Errorf("status %d: %w", resp.StatusCode, ErrEmptyResponse)
		}
		var payload errorPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return fmt.Errorf("status %d: decode error body: %w", resp.StatusCode, err)
		}
		msg := payload.Error
		if msg == "" {
			msg = payload.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if len(raw) == 0 {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
