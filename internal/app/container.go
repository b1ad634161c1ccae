package app

import (
	"context"
	"log"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/database/seeder"
	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/repository/memory"
	repopostgres "skillswap/internal/repository/postgres"
	ucauth "skillswap/internal/usecase/auth"
	ucnotification "skillswap/internal/usecase/notification"
	ucproject "skillswap/internal/usecase/project"
	ucswap "skillswap/internal/usecase/swap"
	ucuser "skillswap/internal/usecase/user"
	"skillswap/internal/ws"
)

// Repositories groups one implementation of every store port. Which
// implementation backs it depends on the configured store.
type Repositories struct {
	Users         user.Repository
	Projects      project.Repository
	Applications  project.ApplicationRepository
	Swaps         swap.Repository
	SwapMessages  swap.MessageRepository
	SwapEvents    swap.StatusEventRepository
	Notifications notification.Repository
}

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Repos Repositories
	Hub   *ws.Hub

	JWT           jwt.Service
	Auth          *ucauth.Service
	Users         *ucuser.Service
	Projects      *ucproject.Service
	Swaps         *ucswap.Service
	Notifications *ucnotification.Service
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if cfg.Database.Store == config.StorePostgres {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}

		c.DB = db
		c.Repos = Repositories{
			Users:         repopostgres.NewUserRepository(db),
			Projects:      repopostgres.NewProjectRepository(db),
			Applications:  repopostgres.NewApplicationRepository(db),
			Swaps:         repopostgres.NewSwapRepository(db),
			SwapMessages:  repopostgres.NewSwapMessageRepository(db),
			SwapEvents:    repopostgres.NewSwapStatusEventRepository(db),
			Notifications: repopostgres.NewNotificationRepository(db),
		}
	} else {
		c.Repos = Repositories{
			Users:         memory.NewUserRepository(),
			Projects:      memory.NewProjectRepository(),
			Applications:  memory.NewApplicationRepository(),
			Swaps:         memory.NewSwapRepository(),
			SwapMessages:  memory.NewSwapMessageRepository(),
			SwapEvents:    memory.NewSwapStatusEventRepository(),
			Notifications: memory.NewNotificationRepository(),
		}
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)
	c.Hub = ws.NewHub(logger)
	c.JWT = jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	pusher := ws.NewPusher(c.Hub, logger)
	c.Notifications = ucnotification.NewService(c.Repos.Notifications, pusher, logger)
	c.Auth = ucauth.NewService(c.Repos.Users, c.JWT)
	c.Users = ucuser.NewService(c.Repos.Users, c.Cache, logger)
	c.Projects = ucproject.NewService(c.Repos.Projects, c.Repos.Applications, c.Cache, c.Notifications, logger)
	c.Swaps = ucswap.NewService(c.Repos.Swaps, c.Repos.SwapMessages, c.Repos.SwapEvents, c.Repos.Users, c.Notifications)

	return c, nil
}

// Seed loads the demo dataset into an empty store.
func (c *Container) Seed(ctx context.Context) error {
	s := seeder.New(seeder.Repos{
		Users:  c.Repos.Users,
		Projs:  c.Repos.Projects,
		Swaps:  c.Repos.Swaps,
		Events: c.Repos.SwapEvents,
	}, c.Logger)
	return s.Run(ctx)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
