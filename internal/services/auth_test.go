package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"favlib-backend/internal/apperr"
	"favlib-backend/internal/config"
	"favlib-backend/internal/middleware"
	"favlib-backend/internal/repositories/users"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", TokenTTL: 7 * 24 * time.Hour}
}

func newAuthService(t *testing.T) (*AuthService, *users.InMemoryRepository) {
	t.Helper()
	repo := users.NewInMemoryRepository()
	return NewAuthService(repo, testJWTConfig()), repo
}

func TestRegister_Success(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "pw123", user.PasswordHash, "password must not be stored in plaintext")

	// issued token resolves back to the created user
	claims, err := middleware.ValidateToken(token, testJWTConfig())
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	cases := []struct{ username, email, password string }{
		{"", "a@x.com", "pw"},
		{"alice", "", "pw"},
		{"alice", "a@x.com", ""},
	}
	for _, tc := range cases {
		_, _, err := svc.Register(ctx, tc.username, tc.email, tc.password)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		assert.Equal(t, "All fields are required.", apperr.Message(err))
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	// same email, different username: rejected before any write
	_, _, err = svc.Register(ctx, "bob", "a@x.com", "pw456")
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "User already exists.", apperr.Message(err))

	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, users.ErrNotFound, "no record may be written for a rejected signup")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	// same username, different email: distinct message from the email case
	_, _, err = svc.Register(ctx, "alice", "b@x.com", "pw456")
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "Username is taken, try another name.", apperr.Message(err))
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	created, _, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	claims, err := middleware.ValidateToken(token, testJWTConfig())
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
}

func TestLogin_NoCredentialLeak(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	// wrong password and unknown user must be indistinguishable
	_, _, wrongPassErr := svc.Login(ctx, "alice", "wrong")
	_, _, unknownErr := svc.Login(ctx, "nobody", "pw123")

	require.Error(t, wrongPassErr)
	require.Error(t, unknownErr)
	assert.Equal(t, apperr.Auth, apperr.KindOf(wrongPassErr))
	assert.Equal(t, apperr.Message(unknownErr), apperr.Message(wrongPassErr))
	assert.Equal(t, "Invalid credentials.", apperr.Message(wrongPassErr))
}

func TestResolveUser(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	created, _, err := svc.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	user, err := svc.ResolveUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash, "resolved user must not carry the hash")

	_, err = svc.ResolveUser(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "User not found.", apperr.Message(err))
}
