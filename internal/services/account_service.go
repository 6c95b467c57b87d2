package services

import (
	"context"
	"os"

	"go.uber.org/zap"

	"oneconversion/internal/models/db_models"
	"oneconversion/internal/models/request_models"
	"oneconversion/internal/repositories"
	"oneconversion/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	// EnsureAdminAccount seeds the admin user from ADMIN_EMAIL/ADMIN_PASSWORD
	// on startup. Existing accounts are left untouched.
	EnsureAdminAccount(ctx context.Context) error
}

type AccountService struct {
	accounts repositories.AccountRepositoryInterface
	logger   *zap.Logger
}

func NewAccountService(accounts repositories.AccountRepositoryInterface, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accounts: accounts,
		logger:   logger,
	}
}

func (s *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, request.Email)
	if err != nil {
		s.logger.Error("account lookup failed", zap.String("email", request.Email), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		s.logger.Error("failed to sign token", zap.String("email", request.Email), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return token, nil
}

func (s *AccountService) EnsureAdminAccount(ctx context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		s.logger.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	account := &db_models.Account{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := s.accounts.Insert(ctx, account); err != nil {
		return err
	}

	s.logger.Info("admin account seeded", zap.String("email", email))
	return nil
}
