package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/kudosapp/kudos/internal/common"
	"github.com/kudosapp/kudos/internal/server/models"
	"github.com/kudosapp/kudos/internal/server/repositories/kudos"
)

// handleHome renders the feed: colleagues, the kudos addressed to the viewer
// shaped by the sort/filter query parameters, the recent-activity bar, and
// the viewer itself.
func (s *Server) handleHome(c fiber.Ctx) error {
	user, handled, err := s.loadSessionUser(c)
	if handled {
		return err
	}

	others, err := s.users.ListOthers(c.Context(), user.ID)
	if err != nil {
		return s.internalError(c, err)
	}

	query := kudos.BuildQuery(c.Query("sort"), c.Query("filter"))
	feed, err := s.kudos.List(c.Context(), user.ID, query)
	if err != nil {
		return s.internalError(c, err)
	}

	recent, err := s.kudos.Recent(c.Context())
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":       others,
		"kudos":       feed,
		"recentKudos": recent,
		"user":        user,
	})
}

// handleKudoPage loads the recipient a kudo is being written to.
func (s *Server) handleKudoPage(c fiber.Ctx) error {
	recipient, err := s.users.GetByID(c.Context(), c.Params("userId"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.Redirect().Status(fiber.StatusFound).To("/home")
		}
		return s.internalError(c, err)
	}

	user, handled, err := s.loadSessionUser(c)
	if handled {
		return err
	}

	return c.JSON(fiber.Map{
		"recipient": recipient,
		"user":      user,
	})
}

func (s *Server) handleCreateKudo(c fiber.Ctx) error {
	style := models.KudoStyle{
		BackgroundColor: models.Color(c.FormValue("backgroundColor")),
		TextColor:       models.Color(c.FormValue("textColor")),
		Emoji:           models.Emoji(c.FormValue("emoji")),
	}

	_, err := s.kudos.Create(c.Context(),
		c.FormValue("message"), s.userID(c), c.FormValue("recipientId"), style)
	if err != nil {
		if errors.Is(err, common.ErrMessageRequired) || errors.Is(err, common.ErrRecipientRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return s.internalError(c, err)
	}

	return c.Redirect().Status(fiber.StatusFound).To("/home")
}
