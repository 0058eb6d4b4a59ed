package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
	"media-catalog-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments godoc
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse}
// @Router       /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// GetComment godoc
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := parseID(c, "id", "comment")
	if !ok {
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id      path int                      true "Comment ID"
// @Param        request body dto.UpdateCommentRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := parseID(c, "id", "comment")
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "Deleted comment"
// @Failure      404 {object} response.ErrorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, "id", "comment")
	if !ok {
		return
	}

	comment, err := h.commentService.DeleteComment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comment)
}
