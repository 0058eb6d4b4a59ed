package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
	"media-catalog-api/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "Category"
// @Success      201 {object} response.SuccessResponse{data=dto.CategoryResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "Name already used"
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, category)
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        skip  query int false "Rows to skip" default(0)
// @Param        limit query int false "Max rows" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.CategoryResponse}
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, categories)
}

// GetCategory godoc
// @Summary      Get a category with its artworks
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id", "category")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Description  Omitted fields are left unchanged
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id      path int                       true "Category ID"
// @Param        request body dto.UpdateCategoryRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id", "category")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Also deletes its artworks with their comments, reviews and tag links
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse} "Deleted category"
// @Failure      404 {object} response.ErrorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id", "category")
	if !ok {
		return
	}

	category, err := h.categoryService.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, category)
}
