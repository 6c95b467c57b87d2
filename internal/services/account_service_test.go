package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"oneconversion/internal/models/db_models"
	"oneconversion/internal/models/request_models"
	"oneconversion/pkg/utils"
)

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(context.Background(), &db_models.Account{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
	}))
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "admin@example.com", "s3cret")
	svc := NewAccountService(repo, zaptest.NewLogger(t))

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "admin@example.com", "s3cret")
	svc := NewAccountService(repo, zaptest.NewLogger(t))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo(), zaptest.NewLogger(t))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestEnsureAdminAccountSeeds(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, zaptest.NewLogger(t))

	require.NoError(t, svc.EnsureAdminAccount(context.Background()))

	account, err := repo.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "admin", account.Role)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "s3cret"))
}

func TestEnsureAdminAccountIdempotent(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "new-password")

	repo := newFakeAccountRepo()
	seedAccount(t, repo, "admin@example.com", "original")
	svc := NewAccountService(repo, zaptest.NewLogger(t))

	require.NoError(t, svc.EnsureAdminAccount(context.Background()))

	account, err := repo.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "original"),
		"existing account must not be overwritten")
}

func TestEnsureAdminAccountSkipsWithoutEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, zaptest.NewLogger(t))

	require.NoError(t, svc.EnsureAdminAccount(context.Background()))

	account, err := repo.FindByEmail(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, account)
}
