package service

import (
	"time"

	"media-catalog-api/internal/domain"
	"media-catalog-api/internal/dto"
)

func formatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dto.DateLayout)
}

func toArtworkSummary(a *domain.Artwork) dto.ArtworkSummaryResponse {
	return dto.ArtworkSummaryResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		PosterURL:   a.PosterURL,
		ReleaseDate: formatDate(time.Time(a.ReleaseDate)),
		AgeRating:   a.AgeRating,
		StarRating:  a.StarRating,
		CategoryID:  a.CategoryID,
	}
}

func toArtworkSummaries(artworks []domain.Artwork) []dto.ArtworkSummaryResponse {
	out := make([]dto.ArtworkSummaryResponse, 0, len(artworks))
	for i := range artworks {
		out = append(out, toArtworkSummary(&artworks[i]))
	}
	return out
}

func toArtworkResponse(a *domain.Artwork) *dto.ArtworkResponse {
	resp := &dto.ArtworkResponse{
		ArtworkSummaryResponse: toArtworkSummary(a),
		Comments:               make([]dto.CommentResponse, 0, len(a.Comments)),
		Reviews:                make([]dto.ReviewResponse, 0, len(a.Reviews)),
		Tags:                   make([]dto.TagSummaryResponse, 0, len(a.Tags)),
	}
	for i := range a.Comments {
		resp.Comments = append(resp.Comments, *toCommentResponse(&a.Comments[i]))
	}
	for i := range a.Reviews {
		resp.Reviews = append(resp.Reviews, *toReviewResponse(&a.Reviews[i]))
	}
	for i := range a.Tags {
		resp.Tags = append(resp.Tags, toTagSummary(&a.Tags[i]))
	}
	return resp
}

func toCategoryResponse(c *domain.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Artworks:    toArtworkSummaries(c.Artworks),
	}
}

func toCommentResponse(c *domain.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		Likes:     c.Likes,
		Dislikes:  c.Dislikes,
		AuthorID:  c.AuthorID,
		ArtworkID: c.ArtworkID,
	}
}

func toReviewResponse(r *domain.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Score:     r.Score,
		AuthorID:  r.AuthorID,
		ArtworkID: r.ArtworkID,
	}
}

func toTagSummary(t *domain.Tag) dto.TagSummaryResponse {
	return dto.TagSummaryResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	}
}

func toTagResponse(t *domain.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		TagSummaryResponse: toTagSummary(t),
		Artworks:           toArtworkSummaries(t.Artworks),
	}
}

// toUserResponse never copies the password hash
func toUserResponse(u *domain.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Comments:  make([]dto.CommentResponse, 0, len(u.Comments)),
		Reviews:   make([]dto.ReviewResponse, 0, len(u.Reviews)),
	}
	for i := range u.Comments {
		resp.Comments = append(resp.Comments, *toCommentResponse(&u.Comments[i]))
	}
	for i := range u.Reviews {
		resp.Reviews = append(resp.Reviews, *toReviewResponse(&u.Reviews[i]))
	}
	return resp
}
