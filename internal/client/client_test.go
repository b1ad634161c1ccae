package client

import (
	"context"
	"errors"
	"log"
	"os"

	"skillswap/internal/client/gateway"
	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

// errUnreachable simulates the service being down. Any fake method
// without an override returns it, so tests only wire up the calls they
// expect to succeed.
var errUnreachable = errors.New("connection refused")

type fakeGateway struct {
	registerFn           func(ctx context.Context, req gateway.RegisterRequest) (gateway.AuthResult, error)
	loginFn              func(ctx context.Context, email, password string) (gateway.AuthResult, error)
	listUsersFn          func(ctx context.Context) ([]user.User, error)
	getUserFn            func(ctx context.Context, id int64) (user.User, error)
	updateProfileFn      func(ctx context.Context, token string, req gateway.UpdateProfileRequest) (user.User, error)
	toggleAvailabilityFn func(ctx context.Context, token string, id int64) (bool, error)

	listProjectsFn      func(ctx context.Context) ([]project.Project, error)
	getProjectFn        func(ctx context.Context, id int64) (project.Project, error)
	createProjectFn     func(ctx context.Context, token string, req gateway.CreateProjectRequest) (project.Project, error)
	joinProjectFn       func(ctx context.Context, token string, id int64) error
	listApplicationsFn  func(ctx context.Context, token string, projectID int64) ([]project.Application, error)
	applyFn             func(ctx context.Context, token string, projectID int64, message string) (project.Application, error)
	reviewApplicationFn func(ctx context.Context, token string, applicationID int64, status project.ApplicationStatus) (project.Application, error)

	listSwapsFn        func(ctx context.Context, token string) ([]swap.SkillSwap, error)
	proposeSwapFn      func(ctx context.Context, token string, req gateway.ProposeSwapRequest) (swap.SkillSwap, error)
	updateSwapStatusFn func(ctx context.Context, token string, id int64, status swap.Status) (swap.SkillSwap, error)
	listSwapMessagesFn func(ctx context.Context, token string, swapID int64) ([]swap.Message, error)
	postSwapMessageFn  func(ctx context.Context, token string, swapID int64, text string) (swap.Message, error)
	listSwapHistoryFn  func(ctx context.Context, token string, swapID int64) ([]swap.StatusEvent, error)

	listNotificationsFn func(ctx context.Context, token string) ([]notification.Notification, error)
	unreadCountFn       func(ctx context.Context, token string) (int, error)
	markAllReadFn       func(ctx context.Context, token string) error

	calls map[string]int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{calls: map[string]int{}}
}

func (f *fakeGateway) count(name string) {
	f.calls[name]++
}

func (f *fakeGateway) Register(ctx context.Context, req gateway.RegisterRequest) (gateway.AuthResult, error) {
	f.count("Register")
	if f.registerFn == nil {
		return gateway.AuthResult{}, errUnreachable
	}
	return f.registerFn(ctx, req)
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (gateway.AuthResult, error) {
	f.count("Login")
	if f.loginFn == nil {
		return gateway.AuthResult{}, errUnreachable
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeGateway) ListUsers(ctx context.Context) ([]user.User, error) {
	f.count("ListUsers")
	if f.listUsersFn == nil {
		return nil, errUnreachable
	}
	return f.listUsersFn(ctx)
}

func (f *fakeGateway) GetUser(ctx context.Context, id int64) (user.User, error) {
	f.count("GetUser")
	if f.getUserFn == nil {
		return user.User{}, errUnreachable
	}
	return f.getUserFn(ctx, id)
}

func (f *fakeGateway) UpdateProfile(ctx context.Context, token string, req gateway.UpdateProfileRequest) (user.User, error) {
	f.count("UpdateProfile")
	if f.updateProfileFn == nil {
		return user.User{}, errUnreachable
	}
	return f.updateProfileFn(ctx, token, req)
}

func (f *fakeGateway) ToggleAvailability(ctx context.Context, token string, id int64) (bool, error) {
	f.count("ToggleAvailability")
	if f.toggleAvailabilityFn == nil {
		return false, errUnreachable
	}
	return f.toggleAvailabilityFn(ctx, token, id)
}

func (f *fakeGateway) ListProjects(ctx context.Context) ([]project.Project, error) {
	f.count("ListProjects")
	if f.listProjectsFn == nil {
		return nil, errUnreachable
	}
	return f.listProjectsFn(ctx)
}

func (f *fakeGateway) GetProject(ctx context.Context, id int64) (project.Project, error) {
	f.count("GetProject")
	if f.getProjectFn == nil {
		return project.Project{}, errUnreachable
	}
	return f.getProjectFn(ctx, id)
}

func (f *fakeGateway) CreateProject(ctx context.Context, token string, req gateway.CreateProjectRequest) (project.Project, error) {
	f.count("CreateProject")
	if f.createProjectFn == nil {
		return project.Project{}, errUnreachable
	}
	return f.createProjectFn(ctx, token, req)
}

func (f *fakeGateway) JoinProject(ctx context.Context, token string, id int64) error {
	f.count("JoinProject")
	if f.joinProjectFn == nil {
		return errUnreachable
	}
	return f.joinProjectFn(ctx, token, id)
}

func (f *fakeGateway) ListApplications(ctx context.Context, token string, projectID int64) ([]project.Application, error) {
	f.count("ListApplications")
	if f.listApplicationsFn == nil {
		return nil, errUnreachable
	}
	return f.listApplicationsFn(ctx, token, projectID)
}

func (f *fakeGateway) Apply(ctx context.Context, token string, projectID int64, message string) (project.Application, error) {
	f.count("Apply")
	if f.applyFn == nil {
		return project.Application{}, errUnreachable
	}
	return f.applyFn(ctx, token, projectID, message)
}

func (f *fakeGateway) ReviewApplication(ctx context.Context, token string, applicationID int64, status project.ApplicationStatus) (project.Application, error) {
	f.count("ReviewApplication")
	if f.reviewApplicationFn == nil {
		return project.Application{}, errUnreachable
	}
	return f.reviewApplicationFn(ctx, token, applicationID, status)
}

func (f *fakeGateway) ListSwaps(ctx context.Context, token string) ([]swap.SkillSwap, error) {
	f.count("ListSwaps")
	if f.listSwapsFn == nil {
		return nil, errUnreachable
	}
	return f.listSwapsFn(ctx, token)
}

func (f *fakeGateway) ProposeSwap(ctx context.Context, token string, req gateway.ProposeSwapRequest) (swap.SkillSwap, error) {
	f.count("ProposeSwap")
	if f.proposeSwapFn == nil {
		return swap.SkillSwap{}, errUnreachable
	}
	return f.proposeSwapFn(ctx, token, req)
}

func (f *fakeGateway) UpdateSwapStatus(ctx context.Context, token string, id int64, status swap.Status) (swap.SkillSwap, error) {
	f.count("UpdateSwapStatus")
	if f.updateSwapStatusFn == nil {
		return swap.SkillSwap{}, errUnreachable
	}
	return f.updateSwapStatusFn(ctx, token, id, status)
}

func (f *fakeGateway) ListSwapMessages(ctx context.Context, token string, swapID int64) ([]swap.Message, error) {
	f.count("ListSwapMessages")
	if f.listSwapMessagesFn == nil {
		return nil, errUnreachable
	}
	return f.listSwapMessagesFn(ctx, token, swapID)
}

func (f *fakeGateway) PostSwapMessage(ctx context.Context, token string, swapID int64, text string) (swap.Message, error) {
	f.count("PostSwapMessage")
	if f.postSwapMessageFn == nil {
		return swap.Message{}, errUnreachable
	}
	return f.postSwapMessageFn(ctx, token, swapID, text)
}

func (f *fakeGateway) ListSwapHistory(ctx context.Context, token string, swapID int64) ([]swap.StatusEvent, error) {
	f.count("ListSwapHistory")
	if f.listSwapHistoryFn == nil {
		return nil, errUnreachable
	}
	return f.listSwapHistoryFn(ctx, token, swapID)
}

func (f *fakeGateway) ListNotifications(ctx context.Context, token string) ([]notification.Notification, error) {
	f.count("ListNotifications")
	if f.listNotificationsFn == nil {
		return nil, errUnreachable
	}
	return f.listNotificationsFn(ctx, token)
}

func (f *fakeGateway) UnreadCount(ctx context.Context, token string) (int, error) {
	f.count("UnreadCount")
	if f.unreadCountFn == nil {
		return 0, errUnreachable
	}
	return f.unreadCountFn(ctx, token)
}

func (f *fakeGateway) MarkAllRead(ctx context.Context, token string) error {
	f.count("MarkAllRead")
	if f.markAllReadFn == nil {
		return errUnreachable
	}
	return f.markAllReadFn(ctx, token)
}

var _ Gateway = (*fakeGateway)(nil)

func newTestClient(fake *fakeGateway) *Client {
	return New(fake, log.New(os.Stdout, "", 0))
}

// loginAs puts the client into an authenticated state without going
// through the network path.
func loginAs(c *Client, u user.User) {
	c.Session.Establish(u, "test-token")
}
