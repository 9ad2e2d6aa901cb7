package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"med-ready/internal/config"
	"med-ready/internal/database/migration"
	"med-ready/internal/database/seeder"
	"med-ready/internal/delivery/http/middleware"
	"med-ready/internal/delivery/http/routes"
	"med-ready/internal/pkg/jwt"
	"med-ready/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := prepareDatabase(container); err != nil {
		_ = container.Close()
		return nil, nil, err
	}

	go container.Hub.Run()

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})
	registerGlobalMiddleware(f, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	wsHandler := ws.NewHandler(container.Hub, jwtSvc, logger)

	registry := routes.NewRegistry(
		cfg,
		container.DB,
		container.Cache,
		container.Search,
		container.Notifier,
		wsHandler,
		logger,
	)
	if err := registry.Register(f); err != nil {
		_ = container.Close()
		return nil, nil, err
	}

	logger.Printf("[App] bootstrap complete | env=%s", cfg.App.Environment)

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

// prepareDatabase applies pending migrations and the idempotent seed
// catalog. MIGRATIONS_DIR overrides the default directory next to the
// executable.
func prepareDatabase(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: os.Getenv("MIGRATIONS_DIR")}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	seedRunner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seedRunner.Run(ctx, c.DB); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	c.Logger.Printf("[App] database ready")
	return nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
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
