package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oneconversion/internal/models/request_models"
	"oneconversion/internal/services"
	"oneconversion/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{
		reviewService: reviewService,
	}
}

// ListReviews godoc
// @Summary List checkout page reviews
// @Tags Reviews
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /reviews [get]
func (r *ReviewsController) ListReviews(c *gin.Context) {
	reviews, err := r.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "")
}

// CreateReview godoc
// @Summary Create a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.ReviewRequest true "Review"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/reviews [post]
func (r *ReviewsController) CreateReview(c *gin.Context) {
	var request request_models.ReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review created successfully")
}

// UpdateReview godoc
// @Summary Update a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body request_models.ReviewRequest true "Review"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/reviews/{id} [put]
func (r *ReviewsController) UpdateReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	var request request_models.ReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := r.reviewService.UpdateReview(c.Request.Context(), id, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review updated successfully")
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/reviews/{id} [delete]
func (r *ReviewsController) DeleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	if err := r.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review deleted successfully")
}
