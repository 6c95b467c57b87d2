package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"oneconversion/internal/models/db_models"
)

type AccountRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Insert(ctx context.Context, account *db_models.Account) error
}

func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &AccountRepository{db: db}
}

type AccountRepository struct {
	db *gorm.DB
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(account).Error
	})
}
