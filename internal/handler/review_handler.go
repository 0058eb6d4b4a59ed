package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
	"media-catalog-api/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListReviews godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.ReviewResponse}
// @Router       /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, reviews)
}

// GetReview godoc
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Review ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ReviewResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, review)
}

// UpdateReview godoc
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id      path int                      true "Review ID"
// @Param        request body dto.UpdateReviewRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.ReviewResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	var req dto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, review)
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Review ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ReviewResponse} "Deleted review"
// @Failure      404 {object} response.ErrorResponse
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	review, err := h.reviewService.DeleteReview(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, review)
}
