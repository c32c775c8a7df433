// Package services contains the business operations layered over the
// repositories: account registration and login, profile mutation, kudo
// creation and listing, and avatar upload URLs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kudosapp/kudos/internal/common"
	"github.com/kudosapp/kudos/internal/dbx"
	"github.com/kudosapp/kudos/internal/server/models"
	"github.com/kudosapp/kudos/internal/server/repositories/repomanager"
)

const bcryptCost = 10

// UserService implements registration, login and profile mutations.
type UserService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

// NewUserService builds a UserService over the pool and repository factory.
func NewUserService(db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, rm: rm}
}

// Register creates a user with its profile. A duplicate email yields
// common.ErrEmailTaken; the unique constraint on email backs up the check
// against concurrent registrations.
func (s *UserService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Profile: models.Profile{
			FirstName: firstName,
			LastName:  lastName,
		},
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.rm.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrEmailTaken
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		user, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials. An unknown email and a wrong password are
// indistinguishable to the caller: both return common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.rm.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID loads a single user.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.rm.Users(s.db).GetByID(ctx, id)
}

// ListOthers returns everyone except the given user, ordered by first name,
// for the colleague panel.
func (s *UserService) ListOthers(ctx context.Context, excludeID string) ([]*models.User, error) {
	return s.rm.Users(s.db).ListOthers(ctx, excludeID)
}

// UpdateProfile merges the submitted profile fields; empty fields are left
// untouched.
func (s *UserService) UpdateProfile(ctx context.Context, id string, profile models.Profile) error {
	return s.rm.Users(s.db).UpdateProfile(ctx, id, profile)
}

// UpdateAvatar stores an externally hosted image URL. No image bytes pass
// through here.
func (s *UserService) UpdateAvatar(ctx context.Context, id string, imageURL string) error {
	return s.rm.Users(s.db).UpdateAvatar(ctx, id, imageURL)
}
