// Package kudos provides the PostgreSQL-backed kudo repository and the pure
// query builder that shapes its listing queries.
package kudos

import (
	"context"
	"fmt"

	"github.com/kudosapp/kudos/internal/dbx"
	"github.com/kudosapp/kudos/internal/server/models"
)

// PostgresRepository implements kudo storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, kudo *models.Kudo) (*models.Kudo, error) {
	query :=
		`INSERT INTO kudos (message, author_id, recipient_id, background_color, text_color, emoji)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		kudo.Message, kudo.AuthorID, kudo.RecipientID,
		kudo.Style.BackgroundColor, kudo.Style.TextColor, kudo.Style.Emoji).
		Scan(&kudo.ID, &kudo.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return kudo, nil
}

func (r *PostgresRepository) List(ctx context.Context, recipientID string, q Query) ([]*models.Kudo, error) {
	query :=
		`SELECT k.id, k.message, k.author_id, k.recipient_id,
		        k.background_color, k.text_color, k.emoji, k.created_at,
		        a.first_name, a.last_name, a.department, a.profile_picture
		 FROM kudos k
		 JOIN users a ON a.id = k.author_id
		 WHERE k.recipient_id = $1`

	args := []any{recipientID}
	if q.Filter != "" {
		query += ` AND (k.message ILIKE $2 OR a.first_name ILIKE $2 OR a.last_name ILIKE $2)`
		args = append(args, "%"+q.Filter+"%")
	}
	query += q.orderClause()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Kudo
	for rows.Next() {
		kudo := &models.Kudo{}
		if err := rows.Scan(
			&kudo.ID, &kudo.Message, &kudo.AuthorID, &kudo.RecipientID,
			&kudo.Style.BackgroundColor, &kudo.Style.TextColor, &kudo.Style.Emoji,
			&kudo.CreatedAt,
			&kudo.Author.FirstName, &kudo.Author.LastName,
			&kudo.Author.Department, &kudo.Author.ProfilePicture,
		); err != nil {
			return nil, err
		}
		result = append(result, kudo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]*models.RecentKudo, error) {
	query :=
		`SELECT k.id, k.emoji, u.first_name, u.last_name, u.profile_picture
		 FROM kudos k
		 JOIN users u ON u.id = k.recipient_id
		 ORDER BY k.created_at DESC
		 LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.RecentKudo
	for rows.Next() {
		item := &models.RecentKudo{}
		if err := rows.Scan(
			&item.ID, &item.Emoji,
			&item.Recipient.FirstName, &item.Recipient.LastName,
			&item.Recipient.ProfilePicture,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
