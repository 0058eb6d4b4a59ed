package dto

// CreateCategoryRequest represents the request to create a category
// @Description Category creation request
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255" example:"Fantasy"`
	Description string `json:"description" example:"Swords and sorcery"`
}

// UpdateCategoryRequest represents a partial category update
// @Description Category update request, omitted fields are left unchanged
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

// CategoryResponse represents a category with its artworks
// @Description Category with its artworks
type CategoryResponse struct {
	ID          uint                     `json:"id" example:"1"`
	Name        string                   `json:"name" example:"Fantasy"`
	Description string                   `json:"description"`
	Artworks    []ArtworkSummaryResponse `json:"artworks"`
}
