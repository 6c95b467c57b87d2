package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"oneconversion/internal/models/db_models"
)

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, review *db_models.Review) error
	Update(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error)
	ListAll(ctx context.Context) ([]db_models.Review, error)
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryInterface {
	return &ReviewRepository{db: db}
}

type ReviewRepository struct {
	db *gorm.DB
}

func (r *ReviewRepository) Create(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", id).Error
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) ListAll(ctx context.Context) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
