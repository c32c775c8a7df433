package kudos

import (
	"context"

	"github.com/kudosapp/kudos/internal/server/models"
)

// Repository is the persistence interface for kudos.
type Repository interface {
	// Create inserts a kudo and fills in the generated id and timestamp.
	Create(ctx context.Context, kudo *models.Kudo) (*models.Kudo, error)

	// List returns the kudos addressed to recipientID, shaped by the query:
	// one of three orderings and an optional case-insensitive text filter
	// over message and author name.
	List(ctx context.Context, recipientID string, query Query) ([]*models.Kudo, error)

	// Recent returns the newest kudos across all users for the activity bar.
	Recent(ctx context.Context, limit int) ([]*models.RecentKudo, error)
}
