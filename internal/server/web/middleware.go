package web

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"github.com/kudosapp/kudos/internal/common"
	"github.com/kudosapp/kudos/internal/server/auth"
	"github.com/kudosapp/kudos/internal/server/models"
)

// localUserID is the ctx locals key under which requireUser stores the
// authenticated user id.
const localUserID = "userID"

// requireUser resolves the session cookie and stores the user id for
// downstream handlers. Callers with no usable session never reach the
// handler: they are redirected to the login page, carrying the originally
// requested path so the client can return after authenticating.
func (s *Server) requireUser(c fiber.Ctx) error {
	userID, ok := s.sessions.Read(c.Cookies(auth.CookieName))
	if !ok {
		return s.redirectToLogin(c)
	}

	c.Locals(localUserID, userID)
	return c.Next()
}

func (s *Server) redirectToLogin(c fiber.Ctx) error {
	params := url.Values{}
	params.Set("redirectTo", c.Path())
	return c.Redirect().Status(fiber.StatusFound).To("/login?" + params.Encode())
}

// userID returns the id stored by requireUser.
func (s *Server) userID(c fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

// loadSessionUser resolves the full user record behind a guarded request.
// A session pointing at a deleted account is expired and redirected to login
// rather than surfacing an error to an authenticated-looking page; in that
// case handled is true and the handler must return err as-is.
func (s *Server) loadSessionUser(c fiber.Ctx) (user *models.User, handled bool, err error) {
	user, err = s.users.GetByID(c.Context(), s.userID(c))
	if err != nil {
		return nil, true, s.forceLogout(c)
	}
	return user, false, nil
}

// currentUser is the non-redirecting variant used where anonymous access is
// valid. It returns nil without touching the response when there is no
// session; a session for a deleted account triggers the logout path.
func (s *Server) currentUser(c fiber.Ctx) (user *models.User, handled bool, err error) {
	userID, ok := s.sessions.Read(c.Cookies(auth.CookieName))
	if !ok {
		return nil, false, nil
	}

	user, err = s.users.GetByID(c.Context(), userID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(c.Context(), "session user lookup failed, forcing logout", "error", err)
		}
		return nil, true, s.forceLogout(c)
	}
	return user, false, nil
}

// forceLogout overwrites the session cookie and sends the caller to login.
func (s *Server) forceLogout(c fiber.Ctx) error {
	cookie := s.sessions.Expire()
	c.Cookie(&cookie)
	return c.Redirect().Status(fiber.StatusFound).To("/login")
}
