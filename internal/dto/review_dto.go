package dto

// CreateReviewRequest represents a new review of an artwork
// @Description Review creation request
type CreateReviewRequest struct {
	Text  string  `json:"text" binding:"required" example:"Beautiful animation"`
	Score float64 `json:"score" example:"9.5"`
}

// UpdateReviewRequest represents a partial review update
type UpdateReviewRequest struct {
	Text  *string  `json:"text,omitempty" binding:"omitempty,min=1"`
	Score *float64 `json:"score,omitempty"`
}

// ReviewResponse represents a review
type ReviewResponse struct {
	ID        uint    `json:"id" example:"1"`
	Text      string  `json:"text"`
	Score     float64 `json:"score"`
	AuthorID  uint    `json:"author_id"`
	ArtworkID uint    `json:"artwork_id"`
}
