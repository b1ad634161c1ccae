package routes

import (
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler onto the fiber app. Public reads stay
// outside the auth middleware; everything that mutates state sits
// behind it.
type Registry struct {
	health        *handler.HealthHandler
	auth          *handler.AuthHandler
	users         *handler.UserHandler
	projects      *handler.ProjectHandler
	swaps         *handler.SwapHandler
	notifications *handler.NotificationHandler
	ws            *ws.Handler
	authMW        *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	projects *handler.ProjectHandler,
	swaps *handler.SwapHandler,
	notifications *handler.NotificationHandler,
	wsHandler *ws.Handler,
	authMW *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:        health,
		auth:          auth,
		users:         users,
		projects:      projects,
		swaps:         swaps,
		notifications: notifications,
		ws:            wsHandler,
		authMW:        authMW,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")

	r.auth.RegisterRoutes(api.Group("/auth"))

	users := api.Group("/users")
	r.users.RegisterPublicRoutes(users)

	projects := api.Group("/projects")
	r.projects.RegisterPublicRoutes(projects)

	if r.authMW != nil {
		protect := r.authMW.Middleware()

		r.users.RegisterProtectedRoutes(users.Group("", protect))
		r.projects.RegisterProtectedRoutes(projects.Group("", protect))
		r.projects.RegisterApplicationRoutes(api.Group("/applications", protect))
		r.swaps.RegisterRoutes(api.Group("/skill-swaps", protect))
		r.notifications.RegisterRoutes(api.Group("/notifications", protect))
	}

	if r.ws != nil {
		app.Get("/ws", r.ws.HandleNotificationsWS)
	}
}
