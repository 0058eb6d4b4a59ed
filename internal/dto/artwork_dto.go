package dto

// DateLayout is the wire format of release dates
const DateLayout = "2006-01-02"

// CreateArtworkRequest represents the request to create an artwork in a category
// @Description Artwork creation request
type CreateArtworkRequest struct {
	Title       string  `json:"title" binding:"required,max=255" example:"Spirited Away"`
	Description string  `json:"description" example:"A girl wanders into a world of spirits"`
	PosterURL   string  `json:"poster_url" binding:"required,url" example:"https://example.com/poster.jpg"`
	ReleaseDate string  `json:"release_date" binding:"required,datetime=2006-01-02" example:"2001-07-20"`
	AgeRating   string  `json:"age_rating" binding:"max=3" example:"PG"`
	StarRating  float64 `json:"star_rating" example:"4.8"`
}

// UpdateArtworkRequest represents a partial artwork update
// @Description Artwork update request, omitted fields are left unchanged
type UpdateArtworkRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	PosterURL   *string  `json:"poster_url,omitempty" binding:"omitempty,url"`
	ReleaseDate *string  `json:"release_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	AgeRating   *string  `json:"age_rating,omitempty" binding:"omitempty,max=3"`
	StarRating  *float64 `json:"star_rating,omitempty"`
}

// ArtworkSummaryResponse is the artwork representation nested in categories and tags
// @Description Artwork without relations
type ArtworkSummaryResponse struct {
	ID          uint    `json:"id" example:"1"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster_url"`
	ReleaseDate string  `json:"release_date" example:"2001-07-20"`
	AgeRating   string  `json:"age_rating"`
	StarRating  float64 `json:"star_rating"`
	CategoryID  uint    `json:"category_id"`
}

// ArtworkResponse represents an artwork with comments, reviews and tags
// @Description Artwork with its relations
type ArtworkResponse struct {
	ArtworkSummaryResponse
	Comments []CommentResponse    `json:"comments"`
	Reviews  []ReviewResponse     `json:"reviews"`
	Tags     []TagSummaryResponse `json:"tags"`
}

// PosterUploadRequest asks for a presigned URL to upload a poster image
type PosterUploadRequest struct {
	FileName    string `json:"file_name" binding:"required" example:"poster.jpg"`
	ContentType string `json:"content_type" binding:"required" example:"image/jpeg"`
}

// PosterUploadResponse carries the presigned PUT URL and the resulting public URL
type PosterUploadResponse struct {
	UploadURL string `json:"upload_url"`
	PosterURL string `json:"poster_url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in" example:"300"`
}
