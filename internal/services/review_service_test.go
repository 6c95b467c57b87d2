package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"oneconversion/internal/models/request_models"
	"oneconversion/pkg/utils"
)

func TestCreateReviewValidatesRating(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), zaptest.NewLogger(t))

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.CreateReview(context.Background(), request_models.ReviewRequest{
			Name:   "João",
			Text:   "Muito bom",
			Rating: rating,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidRating, "rating %d must be rejected", rating)
	}
}

func TestReviewLifecycle(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, request_models.ReviewRequest{
		Name:   "João",
		Text:   "Muito bom",
		Rating: 5,
	})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateReview(ctx, id, request_models.ReviewRequest{
		Name:   "João",
		Text:   "Excelente, recomendo",
		Rating: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)

	reviews, err := svc.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	require.NoError(t, svc.DeleteReview(ctx, id))

	reviews, err = svc.ListReviews(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	assert.ErrorIs(t, svc.DeleteReview(ctx, id), utils.ErrReviewNotFound)
}
