package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"oneconversion/internal/models/db_models"
)

type ProductRepositoryInterface interface {
	Create(ctx context.Context, product *db_models.Product) error
	Update(ctx context.Context, product *db_models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Product, error)
	ListAll(ctx context.Context) ([]db_models.Product, error)
}

func NewProductRepository(db *gorm.DB) ProductRepositoryInterface {
	return &ProductRepository{db: db}
}

type ProductRepository struct {
	db *gorm.DB
}

func (r *ProductRepository) Create(ctx context.Context, product *db_models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(product).Error
	})
}

func (r *ProductRepository) Update(ctx context.Context, product *db_models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Product{}, "id = ?", id).Error
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
