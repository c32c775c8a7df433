// Package web exposes the HTTP surface of the kudos app over Fiber: the
// login/register form endpoints, the guarded home feed, kudo creation, and
// the profile and avatar updates.
package web

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/kudosapp/kudos/internal/logging"
	"github.com/kudosapp/kudos/internal/server/auth"
	"github.com/kudosapp/kudos/internal/server/services"
)

// Server holds the Fiber app and the collaborators the handlers need.
type Server struct {
	app      *fiber.App
	logger   logging.Logger
	sessions *auth.SessionManager
	users    *services.UserService
	kudos    *services.KudoService
	avatars  *services.AvatarService
}

// New builds the server and registers all routes.
func New(
	logger logging.Logger,
	sessions *auth.SessionManager,
	users *services.UserService,
	kudos *services.KudoService,
	avatars *services.AvatarService,
) *Server {
	s := &Server{
		app:      fiber.New(fiber.Config{AppName: "kudos"}),
		logger:   logger,
		sessions: sessions,
		users:    users,
		kudos:    kudos,
		avatars:  avatars,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/", s.handleIndex)
	s.app.Get("/login", s.handleLoginPage)
	s.app.Post("/login", s.handleAuthForm)
	s.app.Post("/logout", s.handleLogout)

	home := s.app.Group("/home", s.requireUser)
	home.Get("/", s.handleHome)
	home.Get("/kudo/:userId", s.handleKudoPage)
	home.Post("/kudo", s.handleCreateKudo)
	home.Get("/profile", s.handleProfilePage)
	home.Post("/profile", s.handleUpdateProfile)

	avatar := s.app.Group("/avatar", s.requireUser)
	avatar.Post("/", s.handleUpdateAvatar)
	avatar.Get("/upload", s.handleAvatarUpload)
}

// App exposes the underlying Fiber app for listening and tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// internalError logs the failure server-side and returns the generic message
// callers are allowed to see.
func (s *Server) internalError(c fiber.Ctx, err error) error {
	s.logger.Error(c.Context(), "request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Something went wrong.",
	})
}
