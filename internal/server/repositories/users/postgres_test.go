package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudosapp/kudos/internal/common"
	"github.com/kudosapp/kudos/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func userColumns() []string {
	return []string{
		"id", "email", "password_hash",
		"first_name", "last_name", "department", "profile_picture", "created_at",
	}
}

func TestCreate_FillsGeneratedFields(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("ann@example.com", "hash", "Ann", "Smith").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u1", now))

	repo := NewPostgresRepository(db)
	user, err := repo.Create(context.Background(), &models.User{
		Email:        "ann@example.com",
		PasswordHash: "hash",
		Profile:      models.Profile{FirstName: "Ann", LastName: "Smith"},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	repo := NewPostgresRepository(db)
	_, err := repo.Create(context.Background(), &models.User{
		Email:        "ann@example.com",
		PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	repo := NewPostgresRepository(db)
	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns()).
		AddRow("u1", "ann@example.com", "hash", "Ann", "Smith", "ENGINEERING", "", time.Now())

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	user, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, models.DepartmentEngineering, user.Profile.Department)
}

func TestListOthers_OrderedByFirstName(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "department", "profile_picture", "created_at",
	}).
		AddRow("u2", "ann@example.com", "Ann", "Smith", "SALES", "", time.Now()).
		AddRow("u3", "bea@example.com", "Bea", "Jones", "HR", "", time.Now())

	mock.ExpectQuery(`WHERE id <> \$1\s+ORDER BY first_name ASC`).
		WithArgs("u1").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	got, err := repo.ListOthers(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ann", got[0].Profile.FirstName)
	assert.Equal(t, "Bea", got[1].Profile.FirstName)
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET`).
		WithArgs("u1", "Ann", "", "SALES").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresRepository(db)
	err := repo.UpdateProfile(context.Background(), "u1", models.Profile{
		FirstName:  "Ann",
		Department: models.DepartmentSales,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAvatar_UnknownUser(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET profile_picture`).
		WithArgs("missing", "https://img.example.com/a.png").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	err := repo.UpdateAvatar(context.Background(), "missing", "https://img.example.com/a.png")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByEmail_WrapsDriverError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT .+ FROM users`).WillReturnError(boom)

	repo := NewPostgresRepository(db)
	_, err := repo.GetByEmail(context.Background(), "ann@example.com")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}
