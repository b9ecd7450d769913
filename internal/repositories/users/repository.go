// Package users persists user credential records.
package users

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"favlib-backend/internal/models"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already registered")
)

// Repository is the credential store. Users are created on signup and read
// on login and session resolution; they are never deleted.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
