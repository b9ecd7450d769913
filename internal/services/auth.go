// Package services holds the business logic between the HTTP handlers and
// the repositories.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"favlib-backend/internal/apperr"
	"favlib-backend/internal/config"
	"favlib-backend/internal/middleware"
	"favlib-backend/internal/models"
	"favlib-backend/internal/repositories/users"
)

// AuthService validates registration and login input, hashes and verifies
// passwords, and issues session tokens.
type AuthService struct {
	users users.Repository
	jwt   *config.JWTConfig
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repo users.Repository, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{users: repo, jwt: jwtCfg}
}

// Register creates a user and issues a session token. The email check runs
// before the username check and before any write, with distinct conflict
// messages for each.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, "", apperr.New(apperr.Validation, "All fields are required.")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", apperr.New(apperr.Conflict, "User already exists.")
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, "", apperr.Wrap(apperr.Internal, "Failed to create user.", err)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, "", apperr.New(apperr.Conflict, "Username is taken, try another name.")
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, "", apperr.Wrap(apperr.Internal, "Failed to create user.", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "Failed to create user.", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, users.ErrDuplicateEmail):
			return nil, "", apperr.New(apperr.Conflict, "User already exists.")
		case errors.Is(err, users.ErrDuplicateUsername):
			return nil, "", apperr.New(apperr.Conflict, "Username is taken, try another name.")
		default:
			return nil, "", apperr.Wrap(apperr.Internal, "Failed to create user.", err)
		}
	}

	token, err := middleware.GenerateToken(user.ID, s.jwt)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "Failed to create user.", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a session token. An unknown
// username and a wrong password produce the same error, so nothing leaks
// about which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, "", apperr.New(apperr.Auth, "Invalid credentials.")
		}
		return nil, "", apperr.Wrap(apperr.Internal, "Failed to log in.", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", apperr.New(apperr.Auth, "Invalid credentials.")
	}

	token, err := middleware.GenerateToken(user.ID, s.jwt)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "Failed to log in.", err)
	}

	return user, token, nil
}

// ResolveUser loads the user behind a verified session, sans password hash
func (s *AuthService) ResolveUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "User not found.")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch user.", err)
	}

	user.PasswordHash = ""
	return user, nil
}
