package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/kudosapp/kudos/internal/common"
	"github.com/kudosapp/kudos/internal/server/models"
	"github.com/kudosapp/kudos/internal/server/validate"
)

func (s *Server) handleIndex(c fiber.Ctx) error {
	return c.Redirect().Status(fiber.StatusFound).To("/home")
}

// handleLoginPage bounces already-authenticated callers back to the app so
// they cannot end up in a redirect loop on the login page.
func (s *Server) handleLoginPage(c fiber.Ctx) error {
	user, handled, err := s.currentUser(c)
	if handled {
		return err
	}
	if user != nil {
		return c.Redirect().Status(fiber.StatusFound).To("/")
	}
	return c.SendStatus(fiber.StatusOK)
}

// handleAuthForm serves both login and registration, switched on the _action
// form field.
func (s *Server) handleAuthForm(c fiber.Ctx) error {
	action := c.FormValue("_action")
	email := c.FormValue("email")
	password := c.FormValue("password")
	firstName := c.FormValue("firstName")
	lastName := c.FormValue("lastName")

	if action != "login" && action != "register" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid Form Data",
			"form":  action,
		})
	}

	fieldErrors := map[string]string{
		"email":    validate.Email(email),
		"password": validate.Password(password),
	}
	if action == "register" {
		fieldErrors["firstName"] = validate.Name(firstName)
		fieldErrors["lastName"] = validate.Name(lastName)
	}
	for field, msg := range fieldErrors {
		if msg == "" {
			delete(fieldErrors, field)
		}
	}

	if len(fieldErrors) > 0 {
		// submitted values are echoed back so the form can re-display them
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrors,
			"fields": fiber.Map{
				"email":     email,
				"password":  password,
				"firstName": firstName,
				"lastName":  lastName,
			},
			"form": action,
		})
	}

	var (
		user *models.User
		err  error
	)
	switch action {
	case "login":
		user, err = s.users.Login(c.Context(), email, password)
		if errors.Is(err, common.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Incorrect login",
				"form":  action,
			})
		}
	case "register":
		user, err = s.users.Register(c.Context(), email, password, firstName, lastName)
		if errors.Is(err, common.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User already exists with that email",
				"form":  action,
			})
		}
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return s.createUserSession(c, user.ID, "/")
}

// createUserSession seals a token for the user and redirects.
func (s *Server) createUserSession(c fiber.Ctx, userID, redirectTo string) error {
	token, err := s.sessions.Create(userID)
	if err != nil {
		return s.internalError(c, err)
	}

	cookie := s.sessions.Cookie(token)
	c.Cookie(&cookie)
	return c.Redirect().Status(fiber.StatusFound).To(redirectTo)
}

func (s *Server) handleLogout(c fiber.Ctx) error {
	return s.forceLogout(c)
}
