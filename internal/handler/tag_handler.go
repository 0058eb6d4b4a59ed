package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
	"media-catalog-api/internal/service"
)

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// CreateTag godoc
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTagRequest true "Tag"
// @Success      201 {object} response.SuccessResponse{data=dto.TagResponse}
// @Failure      409 {object} response.ErrorResponse "Name already used"
// @Router       /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, tag)
}

// ListTags godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.TagResponse}
// @Router       /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	tags, err := h.tagService.ListTags(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, tags)
}

// GetTag godoc
// @Summary      Get a tag with its artworks
// @Tags         tags
// @Produce      json
// @Param        id path int true "Tag ID"
// @Success      200 {object} response.SuccessResponse{data=dto.TagResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := parseID(c, "id", "tag")
	if !ok {
		return
	}

	tag, err := h.tagService.GetTag(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, tag)
}

// UpdateTag godoc
// @Summary      Update a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        id      path int                  true "Tag ID"
// @Param        request body dto.UpdateTagRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.TagResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := parseID(c, "id", "tag")
	if !ok {
		return
	}
	var req dto.UpdateTagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, tag)
}

// DeleteTag godoc
// @Summary      Delete a tag
// @Description  Detaches the tag from every artwork
// @Tags         tags
// @Produce      json
// @Param        id path int true "Tag ID"
// @Success      200 {object} response.SuccessResponse{data=dto.TagResponse} "Deleted tag"
// @Failure      404 {object} response.ErrorResponse
// @Router       /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := parseID(c, "id", "tag")
	if !ok {
		return
	}

	tag, err := h.tagService.DeleteTag(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, tag)
}
