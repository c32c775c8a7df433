package services

import (
	"context"
	"database/sql"

	"github.com/kudosapp/kudos/internal/common"
	"github.com/kudosapp/kudos/internal/server/models"
	"github.com/kudosapp/kudos/internal/server/repositories/kudos"
	"github.com/kudosapp/kudos/internal/server/repositories/repomanager"
)

// recentKudoCount is how many kudos the recent-activity bar shows.
const recentKudoCount = 3

// KudoService implements kudo creation and the feed queries.
type KudoService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

// NewKudoService builds a KudoService over the pool and repository factory.
func NewKudoService(db *sql.DB, rm repomanager.RepositoryManager) *KudoService {
	return &KudoService{db: db, rm: rm}
}

// Create persists a new kudo. An empty message or recipient is rejected
// before anything is written.
func (s *KudoService) Create(ctx context.Context, message, authorID, recipientID string, style models.KudoStyle) (*models.Kudo, error) {
	if message == "" {
		return nil, common.ErrMessageRequired
	}
	if recipientID == "" {
		return nil, common.ErrRecipientRequired
	}

	kudo := &models.Kudo{
		Message:     message,
		AuthorID:    authorID,
		RecipientID: recipientID,
		Style:       style,
	}

	return s.rm.Kudos(s.db).Create(ctx, kudo)
}

// List returns the kudos addressed to recipientID, shaped by the query.
func (s *KudoService) List(ctx context.Context, recipientID string, query kudos.Query) ([]*models.Kudo, error) {
	return s.rm.Kudos(s.db).List(ctx, recipientID, query)
}

// Recent returns the newest kudos across all users.
func (s *KudoService) Recent(ctx context.Context) ([]*models.RecentKudo, error) {
	return s.rm.Kudos(s.db).Recent(ctx, recentKudoCount)
}
