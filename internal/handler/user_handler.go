package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
	"media-catalog-api/internal/service"
)

type UserHandler struct {
	userService    service.UserService
	commentService service.CommentService
	reviewService  service.ReviewService
}

func NewUserHandler(userService service.UserService, commentService service.CommentService, reviewService service.ReviewService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		commentService: commentService,
		reviewService:  reviewService,
	}
}

// CreateUser godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "User"
// @Success      201 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "Login or email already registered"
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, user)
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.UserResponse}
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, users)
}

// GetUser godoc
// @Summary      Get a user with comments and reviews
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Change a user's password or email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path int                   true "User ID"
// @Param        request body dto.UpdateUserRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "Email used by another user"
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user with their comments and reviews
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "Deleted user"
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, user)
}

// ListUserComments godoc
// @Summary      List the comments written by a user
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/{id}/comments [get]
func (h *UserHandler) ListUserComments(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListUserComments(c.Request.Context(), id, page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on an artwork as a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id         path  int                      true "User ID"
// @Param        artwork_id query int                      true "Artwork ID"
// @Param        request    body  dto.CreateCommentRequest true "Comment"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse "User or artwork not found"
// @Router       /users/{id}/comments [post]
func (h *UserHandler) CreateComment(c *gin.Context) {
	userID, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	artworkID, ok := parseQueryID(c, "artwork_id", "artwork")
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, artworkID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, comment)
}

// ListUserReviews godoc
// @Summary      List the reviews written by a user
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.ReviewResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/{id}/reviews [get]
func (h *UserHandler) ListUserReviews(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListUserReviews(c.Request.Context(), id, page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary      Review an artwork as a user
// @Description  A user can review an artwork once
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id         path  int                     true "User ID"
// @Param        artwork_id query int                     true "Artwork ID"
// @Param        request    body  dto.CreateReviewRequest true "Review"
// @Success      201 {object} response.SuccessResponse{data=dto.ReviewResponse}
// @Failure      404 {object} response.ErrorResponse "User or artwork not found"
// @Failure      409 {object} response.ErrorResponse "Already reviewed"
// @Router       /users/{id}/reviews [post]
func (h *UserHandler) CreateReview(c *gin.Context) {
	userID, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	artworkID, ok := parseQueryID(c, "artwork_id", "artwork")
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID, artworkID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, review)
}
