package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/swagger"

	_ "github.com/dymun-conference/portal-backend/docs"
	"github.com/dymun-conference/portal-backend/internal/config"
	"github.com/dymun-conference/portal-backend/internal/handlers"
	"github.com/dymun-conference/portal-backend/internal/middleware"
	"github.com/dymun-conference/portal-backend/internal/models"
	"github.com/dymun-conference/portal-backend/internal/repository"
	"github.com/dymun-conference/portal-backend/internal/routes"
	"github.com/dymun-conference/portal-backend/internal/seed"
	"github.com/dymun-conference/portal-backend/internal/store"
)

// @title DYMUN Conference Portal API
// @version 1.0
// @description Promotional site backend and delegate portal for the DYMUN conference.
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	usersDoc, err := store.Open[models.User](filepath.Join(cfg.DataDir, "users.json"))
	if err != nil {
		slog.Error("open users document", "error", err)
		os.Exit(1)
	}
	doubtsDoc, err := store.Open[models.ForumDoubt](filepath.Join(cfg.DataDir, "forum_doubts.json"))
	if err != nil {
		slog.Error("open forum doubts document", "error", err)
		os.Exit(1)
	}

	users := repository.NewUserRepository(usersDoc)
	doubts := repository.NewDoubtRepository(doubtsDoc)

	if err := seed.Run(users, cfg.SeedFile); err != nil {
		slog.Error("seed roster", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName:      "dymun-portal",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	var sessions *session.Store
	if cfg.AuthMode == config.AuthModeToken {
		app.Use(middleware.JWTUid([]byte(cfg.JWTSecret)))
	} else {
		sessions = session.New(session.Config{
			Expiration:     cfg.SessionTTL,
			CookieHTTPOnly: true,
		})
		app.Use(middleware.SessionUID(sessions))
	}

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Register(app, routes.Deps{
		Cfg:      cfg,
		Users:    users,
		Doubts:   doubts,
		Sessions: sessions,
	})

	slog.Info("listening", "port", cfg.Port, "authMode", cfg.AuthMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
