package web

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kudosapp/kudos/internal/server/models"
	"github.com/kudosapp/kudos/internal/server/validate"
)

func (s *Server) handleProfilePage(c fiber.Ctx) error {
	user, handled, err := s.loadSessionUser(c)
	if handled {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

func (s *Server) handleUpdateProfile(c fiber.Ctx) error {
	firstName := c.FormValue("firstName")
	lastName := c.FormValue("lastName")
	department := c.FormValue("department")

	fieldErrors := map[string]string{
		"firstName":  validate.Name(firstName),
		"lastName":   validate.Name(lastName),
		"department": validate.Name(department),
	}
	for field, msg := range fieldErrors {
		if msg == "" {
			delete(fieldErrors, field)
		}
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrors,
			"fields": fiber.Map{
				"firstName":  firstName,
				"lastName":   lastName,
				"department": department,
			},
		})
	}

	err := s.users.UpdateProfile(c.Context(), s.userID(c), models.Profile{
		FirstName:  firstName,
		LastName:   lastName,
		Department: models.Department(department),
	})
	if err != nil {
		return s.internalError(c, err)
	}

	return c.Redirect().Status(fiber.StatusFound).To("/home")
}

// handleUpdateAvatar stores the externally hosted image URL on the profile.
// This is a pointer update only: no image bytes reach this server.
func (s *Server) handleUpdateAvatar(c fiber.Ctx) error {
	imageURL := c.FormValue("imageUrl")
	if imageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image URL is required.",
		})
	}

	if err := s.users.UpdateAvatar(c.Context(), s.userID(c), imageURL); err != nil {
		s.logger.Error(c.Context(), "avatar update failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update avatar.",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"imageUrl": imageURL,
	})
}

// handleAvatarUpload hands the client a presigned URL so uploads go straight
// to the image store.
func (s *Server) handleAvatarUpload(c fiber.Ctx) error {
	key, uploadURL, err := s.avatars.PresignUpload(c.Context())
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(fiber.Map{
		"key":       key,
		"uploadUrl": uploadURL,
	})
}
