package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"skillswap/internal/config"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/delivery/http/routes"
	"skillswap/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the full application: store, cache, services,
// handlers and the fiber app wired together. The returned cleanup
// releases every held resource.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.App.SeedDemo {
		if err := c.Seed(context.Background()); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	authMW := middleware.NewAuthMiddleware(c.JWT)
	wsHandler := ws.NewHandler(c.Hub, c.JWT, logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(),
		handler.NewAuthHandler(c.Auth, func(fc fiber.Ctx) {
			c.Users.InvalidateList(fc.Context())
		}),
		handler.NewUserHandler(c.Users),
		handler.NewProjectHandler(c.Projects),
		handler.NewSwapHandler(c.Swaps),
		handler.NewNotificationHandler(c.Notifications),
		wsHandler,
		authMW,
	)
	registry.Register(f)

	app := &App{Fiber: f, Container: c}
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
