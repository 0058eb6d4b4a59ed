package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
	"media-catalog-api/internal/service"
)

type ArtworkHandler struct {
	artworkService service.ArtworkService
	commentService service.CommentService
	reviewService  service.ReviewService
}

func NewArtworkHandler(artworkService service.ArtworkService, commentService service.CommentService, reviewService service.ReviewService) *ArtworkHandler {
	return &ArtworkHandler{
		artworkService: artworkService,
		commentService: commentService,
		reviewService:  reviewService,
	}
}

// CreateArtwork godoc
// @Summary      Create an artwork in a category
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Param        id      path int                      true "Category ID"
// @Param        request body dto.CreateArtworkRequest true "Artwork"
// @Success      201 {object} response.SuccessResponse{data=dto.ArtworkResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse "Category not found"
// @Router       /categories/{id}/artworks [post]
func (h *ArtworkHandler) CreateArtwork(c *gin.Context) {
	categoryID, ok := parseID(c, "id", "category")
	if !ok {
		return
	}
	var req dto.CreateArtworkRequest
	if !bindJSON(c, &req) {
		return
	}

	artwork, err := h.artworkService.CreateArtwork(c.Request.Context(), categoryID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, artwork)
}

// ListCategoryArtworks godoc
// @Summary      List the artworks of a category
// @Tags         artworks
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ArtworkSummaryResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /categories/{id}/artworks [get]
func (h *ArtworkHandler) ListCategoryArtworks(c *gin.Context) {
	categoryID, ok := parseID(c, "id", "category")
	if !ok {
		return
	}

	artworks, err := h.artworkService.ListCategoryArtworks(c.Request.Context(), categoryID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, artworks)
}

// ListArtworks godoc
// @Summary      List artworks
// @Tags         artworks
// @Produce      json
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.ArtworkResponse}
// @Router       /artworks [get]
func (h *ArtworkHandler) ListArtworks(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	artworks, err := h.artworkService.ListArtworks(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, artworks)
}

// GetArtwork godoc
// @Summary      Get an artwork with comments, reviews and tags
// @Tags         artworks
// @Produce      json
// @Param        id path int true "Artwork ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ArtworkResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /artworks/{id} [get]
func (h *ArtworkHandler) GetArtwork(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}

	artwork, err := h.artworkService.GetArtwork(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, artwork)
}

// UpdateArtwork godoc
// @Summary      Update an artwork
// @Description  Omitted fields are left unchanged
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Param        id      path int                      true "Artwork ID"
// @Param        request body dto.UpdateArtworkRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.ArtworkResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /artworks/{id} [put]
func (h *ArtworkHandler) UpdateArtwork(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}
	var req dto.UpdateArtworkRequest
	if !bindJSON(c, &req) {
		return
	}

	artwork, err := h.artworkService.UpdateArtwork(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, artwork)
}

// DeleteArtwork godoc
// @Summary      Delete an artwork
// @Tags         artworks
// @Produce      json
// @Param        id path int true "Artwork ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ArtworkResponse} "Deleted artwork"
// @Failure      404 {object} response.ErrorResponse
// @Router       /artworks/{id} [delete]
func (h *ArtworkHandler) DeleteArtwork(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}

	artwork, err := h.artworkService.DeleteArtwork(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, artwork)
}

// ListArtworkComments godoc
// @Summary      List the comments of an artwork
// @Tags         artworks
// @Produce      json
// @Param        id path int true "Artwork ID"
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /artworks/{id}/comments [get]
func (h *ArtworkHandler) ListArtworkComments(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListArtworkComments(c.Request.Context(), id, page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// ListArtworkReviews godoc
// @Summary      List the reviews of an artwork
// @Tags         artworks
// @Produce      json
// @Param        id path int true "Artwork ID"
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.ReviewResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /artworks/{id}/reviews [get]
func (h *ArtworkHandler) ListArtworkReviews(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListArtworkReviews(c.Request.Context(), id, page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, reviews)
}

// ListArtworkTags godoc
// @Summary      List the tags of an artwork
// @Tags         artworks
// @Produce      json
// @Param        id path int true "Artwork ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.TagSummaryResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /artworks/{id}/tags [get]
func (h *ArtworkHandler) ListArtworkTags(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}

	tags, err := h.artworkService.ListArtworkTags(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, tags)
}

// AddTag godoc
// @Summary      Attach a tag to an artwork
// @Description  Attaching a tag twice has no further effect
// @Tags         artworks
// @Produce      json
// @Param        id     path int true "Artwork ID"
// @Param        tag_id path int true "Tag ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ArtworkResponse}
// @Failure      404 {object} response.ErrorResponse "Artwork or tag not found"
// @Router       /artworks/{id}/tags/{tag_id} [post]
func (h *ArtworkHandler) AddTag(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tag_id", "tag")
	if !ok {
		return
	}

	artwork, err := h.artworkService.AddTag(c.Request.Context(), id, tagID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, artwork)
}

// RemoveTag godoc
// @Summary      Detach a tag from an artwork
// @Tags         artworks
// @Produce      json
// @Param        id     path int true "Artwork ID"
// @Param        tag_id path int true "Tag ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ArtworkResponse}
// @Failure      404 {object} response.ErrorResponse "Artwork not found or tag not attached"
// @Router       /artworks/{id}/tags/{tag_id} [delete]
func (h *ArtworkHandler) RemoveTag(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tag_id", "tag")
	if !ok {
		return
	}

	artwork, err := h.artworkService.RemoveTag(c.Request.Context(), id, tagID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, artwork)
}

// CreatePosterUpload godoc
// @Summary      Get a presigned poster upload URL
// @Description  PUT the image to upload_url, then set poster_url on the artwork
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Param        id      path int                     true "Artwork ID"
// @Param        request body dto.PosterUploadRequest true "File metadata"
// @Success      200 {object} response.SuccessResponse{data=dto.PosterUploadResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse "Object storage not configured"
// @Router       /artworks/{id}/poster-upload [post]
func (h *ArtworkHandler) CreatePosterUpload(c *gin.Context) {
	id, ok := parseID(c, "id", "artwork")
	if !ok {
		return
	}
	var req dto.PosterUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	upload, err := h.artworkService.CreatePosterUpload(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, upload)
}
