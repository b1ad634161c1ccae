// Package client is the application-side SDK for the skill-swap
// service: a session, optimistic entity caches, and managers that
// decide per operation between fail-soft reads and tagged local
// fallback writes when the authoritative service cannot be reached.
package client

import (
	"context"
	"errors"
	"log"

	"skillswap/internal/client/gateway"
	"skillswap/internal/client/session"
	"skillswap/internal/client/state"
	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidInput     = errors.New("invalid input")
	ErrSelfSwap         = errors.New("cannot propose a swap to yourself")
	ErrSwapClosed       = errors.New("swap already accepted or declined")
	ErrUnknownSwap      = errors.New("unknown swap")
)

// Gateway is the remote surface the managers consume. *gateway.Client
// is the production implementation; tests substitute their own.
type Gateway interface {
	Register(ctx context.Context, req gateway.RegisterRequest) (gateway.AuthResult, error)
	Login(ctx context.Context, email, password string) (gateway.AuthResult, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id int64) (user.User, error)
	UpdateProfile(ctx context.Context, token string, req gateway.UpdateProfileRequest) (user.User, error)
	ToggleAvailability(ctx context.Context, token string, id int64) (bool, error)

	ListProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, id int64) (project.Project, error)
	CreateProject(ctx context.Context, token string, req gateway.CreateProjectRequest) (project.Project, error)
	JoinProject(ctx context.Context, token string, id int64) error
	ListApplications(ctx context.Context, token string, projectID int64) ([]project.Application, error)
	Apply(ctx context.Context, token string, projectID int64, message string) (project.Application, error)
	ReviewApplication(ctx context.Context, token string, applicationID int64, status project.ApplicationStatus) (project.Application, error)

	ListSwaps(ctx context.Context, token string) ([]swap.SkillSwap, error)
	ProposeSwap(ctx context.Context, token string, req gateway.ProposeSwapRequest) (swap.SkillSwap, error)
	UpdateSwapStatus(ctx context.Context, token string, id int64, status swap.Status) (swap.SkillSwap, error)
	ListSwapMessages(ctx context.Context, token string, swapID int64) ([]swap.Message, error)
	PostSwapMessage(ctx context.Context, token string, swapID int64, text string) (swap.Message, error)
	ListSwapHistory(ctx context.Context, token string, swapID int64) ([]swap.StatusEvent, error)

	ListNotifications(ctx context.Context, token string) ([]notification.Notification, error)
	UnreadCount(ctx context.Context, token string) (int, error)
	MarkAllRead(ctx context.Context, token string) error
}

var _ Gateway = (*gateway.Client)(nil)

// Client bundles the session, the entity caches, and the managers. The
// caches start seeded with the demo dataset so list views work before
// the first successful refresh.
type Client struct {
	Session  *session.Session
	Users    *state.Collection[user.User]
	Projects *state.Collection[project.Project]
	Swaps    *state.Collection[swap.SkillSwap]

	Auth         *AuthManager
	ProjectFlows *ProjectManager
	SwapFlows    *SwapManager

	gw     Gateway
	logger *log.Logger
}

func New(gw Gateway, logger *log.Logger) *Client {
	c := &Client{
		Session:  session.New(),
		Users:    state.NewCollection(func(u user.User) int64 { return u.ID }),
		Projects: state.NewCollection(func(p project.Project) int64 { return p.ID }),
		Swaps:    state.NewCollection(func(s swap.SkillSwap) int64 { return s.ID }),
		gw:       gw,
		logger:   logger,
	}

	c.Users.ReplaceAll(MockUsers())
	c.Projects.ReplaceAll(MockProjects())
	c.Swaps.ReplaceAll(MockSwaps())

	c.Auth = &AuthManager{gw: gw, session: c.Session, users: c.Users, logger: logger}
	c.ProjectFlows = &ProjectManager{gw: gw, session: c.Session, projects: c.Projects, logger: logger}
	c.SwapFlows = &SwapManager{gw: gw, session: c.Session, swaps: c.Swaps, logger: logger}

	return c
}

// NewPoller builds a notification poller bound to this client's
// session.
func (c *Client) NewPoller(onUpdate func(items []notification.Notification, unread int)) *Poller {
	return &Poller{gw: c.gw, session: c.Session, onUpdate: onUpdate, logger: c.logger}
}
