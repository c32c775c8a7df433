// Package users provides the PostgreSQL-backed repository for user accounts
// and profiles.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kudosapp/kudos/internal/common"
	"github.com/kudosapp/kudos/internal/dbx"
	"github.com/kudosapp/kudos/internal/server/models"
)

const uniqueViolation = "23505"

// PostgresRepository implements user storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (email, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Profile.FirstName, user.Profile.LastName).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		// The unique constraint on email is the only duplicate-registration
		// defense; a concurrent register surfaces here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, first_name, last_name, department, profile_picture, created_at
		 FROM users
		 WHERE email = $1
		 `
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, first_name, last_name, department, profile_picture, created_at
		 FROM users
		 WHERE id = $1
		 `
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.Profile.FirstName, &user.Profile.LastName,
		&user.Profile.Department, &user.Profile.ProfilePicture,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) ListOthers(ctx context.Context, excludeID string) ([]*models.User, error) {
	query :=
		`SELECT id, email, first_name, last_name, department, profile_picture, created_at
		 FROM users
		 WHERE id <> $1
		 ORDER BY first_name ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, excludeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Email,
			&user.Profile.FirstName, &user.Profile.LastName,
			&user.Profile.Department, &user.Profile.ProfilePicture,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, profile models.Profile) error {
	// NULLIF/COALESCE keeps the stored value wherever the submitted field is
	// empty, giving the merge semantics the profile form expects.
	query :=
		`UPDATE users SET
			first_name = COALESCE(NULLIF($2, ''), first_name),
			last_name = COALESCE(NULLIF($3, ''), last_name),
			department = COALESCE(NULLIF($4, ''), department)
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id,
		profile.FirstName, profile.LastName, string(profile.Department))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) UpdateAvatar(ctx context.Context, id string, imageURL string) error {
	query := `UPDATE users SET profile_picture = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, imageURL)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
