package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"oneconversion/internal/models/db_models"
	"oneconversion/pkg/utils"
)

type SaleRepositoryInterface interface {
	Create(ctx context.Context, sale *db_models.Sale) error
	// UpdateStatus moves a sale out of Pendente. Unknown transaction ids and
	// sales already in a terminal state are silent no-ops.
	UpdateStatus(ctx context.Context, transactionID string, status db_models.SaleStatus) error
	FindByTransactionID(ctx context.Context, transactionID string) (*db_models.Sale, error)
	ListAll(ctx context.Context) ([]db_models.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.Sale, error)
	CountByStatus(ctx context.Context, status db_models.SaleStatus) (int64, error)
	SumAmountByStatus(ctx context.Context, status db_models.SaleStatus) (int64, error)
}

func NewSaleRepository(db *gorm.DB) SaleRepositoryInterface {
	return &SaleRepository{db: db}
}

type SaleRepository struct {
	db *gorm.DB
}

func (r *SaleRepository) Create(ctx context.Context, sale *db_models.Sale) error {
	if sale.TransactionID == "" || sale.CustomerName == "" || sale.CustomerEmail == "" {
		return utils.ErrInvalidSale
	}
	if sale.Status == "" {
		sale.Status = db_models.SaleStatusPendente
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(sale).Error
	})
}

func (r *SaleRepository) UpdateStatus(ctx context.Context, transactionID string, status db_models.SaleStatus) error {
	// Terminal states are sticky: only rows still Pendente may move. A poll
	// or webhook arriving after the sale settled must not ping-pong it back.
	return r.db.WithContext(ctx).
		Model(&db_models.Sale{}).
		Where("transaction_id = ? AND status = ?", transactionID, db_models.SaleStatusPendente).
		Update("status", status).Error
}

func (r *SaleRepository) FindByTransactionID(ctx context.Context, transactionID string) (*db_models.Sale, error) {
	var sale db_models.Sale
	err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *SaleRepository) ListAll(ctx context.Context) ([]db_models.Sale, error) {
	var sales []db_models.Sale
	err := r.db.WithContext(ctx).Order("sale_date DESC").Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SaleRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Sale, error) {
	var sales []db_models.Sale
	err := r.db.WithContext(ctx).Order("sale_date DESC").Limit(limit).Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SaleRepository) CountByStatus(ctx context.Context, status db_models.SaleStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Sale{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *SaleRepository) SumAmountByStatus(ctx context.Context, status db_models.SaleStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Sale{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount_in_cents), 0)").
		Scan(&total).Error
	return total, err
}
