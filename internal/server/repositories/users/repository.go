package users

import (
	"context"

	"github.com/kudosapp/kudos/internal/server/models"
)

// Repository is the persistence interface for users and their profiles.
type Repository interface {
	// Create inserts a user with its profile in a single row and fills in the
	// generated id and creation timestamp.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// ListOthers returns every user except excludeID, ordered by first name.
	ListOthers(ctx context.Context, excludeID string) ([]*models.User, error)

	// UpdateProfile merges the non-empty profile fields into the stored
	// profile. Empty fields are left untouched.
	UpdateProfile(ctx context.Context, id string, profile models.Profile) error

	// UpdateAvatar stores the externally hosted image URL.
	UpdateAvatar(ctx context.Context, id string, imageURL string) error
}
