package dto

// CreateTagRequest represents the request to create a tag
// @Description Tag creation request
type CreateTagRequest struct {
	Name        string `json:"name" binding:"required,max=255" example:"fantasy"`
	Description string `json:"description" example:"deep dark fantasy"`
}

// UpdateTagRequest represents a partial tag update
type UpdateTagRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

// TagSummaryResponse is the tag representation nested in artworks
type TagSummaryResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TagResponse represents a tag with the artworks carrying it
type TagResponse struct {
	TagSummaryResponse
	Artworks []ArtworkSummaryResponse `json:"artworks"`
}
