package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oneconversion/internal/models/db_models"
	"oneconversion/internal/models/request_models"
	"oneconversion/internal/models/response_models"
	"oneconversion/internal/repositories"
	"oneconversion/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, request request_models.ReviewRequest) (*response_models.ReviewResponse, error)
	UpdateReview(ctx context.Context, id uuid.UUID, request request_models.ReviewRequest) (*response_models.ReviewResponse, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
	ListReviews(ctx context.Context) ([]response_models.ReviewResponse, error)
}

type ReviewService struct {
	reviews repositories.ReviewRepositoryInterface
	logger  *zap.Logger
}

func NewReviewService(reviews repositories.ReviewRepositoryInterface, logger *zap.Logger) ReviewServiceInterface {
	return &ReviewService{
		reviews: reviews,
		logger:  logger,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, request request_models.ReviewRequest) (*response_models.ReviewResponse, error) {
	if request.Rating < 1 || request.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}

	review := &db_models.Review{
		Name:      request.Name,
		Text:      request.Text,
		Rating:    request.Rating,
		AvatarURL: request.AvatarURL,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		s.logger.Error("failed to create review", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toReviewResponse(*review)
	return &response, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id uuid.UUID, request request_models.ReviewRequest) (*response_models.ReviewResponse, error) {
	if request.Rating < 1 || request.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}

	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}

	review.Name = request.Name
	review.Text = request.Text
	review.Rating = request.Rating
	review.AvatarURL = request.AvatarURL

	if err := s.reviews.Update(ctx, review); err != nil {
		s.logger.Error("failed to update review", zap.String("id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toReviewResponse(*review)
	return &response, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete review", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]response_models.ReviewResponse, error) {
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list reviews", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(review))
	}
	return responses, nil
}

func toReviewResponse(review db_models.Review) response_models.ReviewResponse {
	return response_models.ReviewResponse{
		ID:        review.ID.String(),
		Name:      review.Name,
		Text:      review.Text,
		Rating:    review.Rating,
		AvatarURL: review.AvatarURL,
	}
}
