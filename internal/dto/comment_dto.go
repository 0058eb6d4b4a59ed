package dto

// CreateCommentRequest represents a new comment on an artwork
// @Description Comment creation request
type CreateCommentRequest struct {
	Text     string `json:"text" binding:"required" example:"Loved it"`
	Likes    int    `json:"likes" binding:"min=0" example:"0"`
	Dislikes int    `json:"dislikes" binding:"min=0" example:"0"`
}

// UpdateCommentRequest represents a partial comment update
type UpdateCommentRequest struct {
	Text     *string `json:"text,omitempty" binding:"omitempty,min=1"`
	Likes    *int    `json:"likes,omitempty" binding:"omitempty,min=0"`
	Dislikes *int    `json:"dislikes,omitempty" binding:"omitempty,min=0"`
}

// CommentResponse represents a comment
type CommentResponse struct {
	ID        uint   `json:"id" example:"1"`
	Text      string `json:"text"`
	Likes     int    `json:"likes"`
	Dislikes  int    `json:"dislikes"`
	AuthorID  uint   `json:"author_id"`
	ArtworkID uint   `json:"artwork_id"`
}
