package web

import (
	"fmt"
	"strconv"
	"strings"

	"media-catalog-api/internal/dto"
)

// Form fields are strings so that an empty required input can mean "leave unchanged" on
// update forms. Optional inputs such as descriptions are sent as posted so they can be cleared.

// fieldSent reports whether the submitted form carried the named input
type fieldSent func(key string) bool

type categoryForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

func (f categoryForm) createRequest() dto.CreateCategoryRequest {
	return dto.CreateCategoryRequest{Name: strings.TrimSpace(f.Name), Description: f.Description}
}

func (f categoryForm) updateRequest(sent fieldSent) dto.UpdateCategoryRequest {
	return dto.UpdateCategoryRequest{Name: optString(f.Name), Description: sentString(sent, "description", f.Description)}
}

type tagForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

func (f tagForm) createRequest() dto.CreateTagRequest {
	return dto.CreateTagRequest{Name: strings.TrimSpace(f.Name), Description: f.Description}
}

func (f tagForm) updateRequest(sent fieldSent) dto.UpdateTagRequest {
	return dto.UpdateTagRequest{Name: optString(f.Name), Description: sentString(sent, "description", f.Description)}
}

type artworkForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	PosterURL   string `form:"poster_url"`
	ReleaseDate string `form:"release_date"`
	AgeRating   string `form:"age_rating"`
	StarRating  string `form:"star_rating"`
}

func (f artworkForm) createRequest() (dto.CreateArtworkRequest, error) {
	rating, err := optFloat("star_rating", f.StarRating)
	if err != nil {
		return dto.CreateArtworkRequest{}, err
	}
	req := dto.CreateArtworkRequest{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		PosterURL:   strings.TrimSpace(f.PosterURL),
		ReleaseDate: strings.TrimSpace(f.ReleaseDate),
		AgeRating:   strings.TrimSpace(f.AgeRating),
	}
	if rating != nil {
		req.StarRating = *rating
	}
	return req, nil
}

func (f artworkForm) updateRequest(sent fieldSent) (dto.UpdateArtworkRequest, error) {
	rating, err := optFloat("star_rating", f.StarRating)
	if err != nil {
		return dto.UpdateArtworkRequest{}, err
	}
	return dto.UpdateArtworkRequest{
		Title:       optString(f.Title),
		Description: sentString(sent, "description", f.Description),
		PosterURL:   optString(f.PosterURL),
		ReleaseDate: optString(f.ReleaseDate),
		AgeRating:   sentString(sent, "age_rating", strings.TrimSpace(f.AgeRating)),
		StarRating:  rating,
	}, nil
}

type userForm struct {
	Login    string `form:"login"`
	Password string `form:"password"`
	Email    string `form:"email"`
}

func (f userForm) createRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Login:    strings.TrimSpace(f.Login),
		Password: f.Password,
		Email:    strings.TrimSpace(f.Email),
	}
}

func (f userForm) updateRequest() dto.UpdateUserRequest {
	req := dto.UpdateUserRequest{Email: optString(f.Email)}
	if f.Password != "" {
		req.Password = &f.Password
	}
	return req
}

type commentForm struct {
	ArtworkID string `form:"artwork_id"`
	Text      string `form:"text"`
	Likes     string `form:"likes"`
	Dislikes  string `form:"dislikes"`
}

func (f commentForm) createRequest() (dto.CreateCommentRequest, error) {
	likes, err := optInt("likes", f.Likes)
	if err != nil {
		return dto.CreateCommentRequest{}, err
	}
	dislikes, err := optInt("dislikes", f.Dislikes)
	if err != nil {
		return dto.CreateCommentRequest{}, err
	}
	req := dto.CreateCommentRequest{Text: strings.TrimSpace(f.Text)}
	if likes != nil {
		req.Likes = *likes
	}
	if dislikes != nil {
		req.Dislikes = *dislikes
	}
	return req, nil
}

func (f commentForm) updateRequest() (dto.UpdateCommentRequest, error) {
	likes, err := optInt("likes", f.Likes)
	if err != nil {
		return dto.UpdateCommentRequest{}, err
	}
	dislikes, err := optInt("dislikes", f.Dislikes)
	if err != nil {
		return dto.UpdateCommentRequest{}, err
	}
	return dto.UpdateCommentRequest{Text: optString(f.Text), Likes: likes, Dislikes: dislikes}, nil
}

type reviewForm struct {
	ArtworkID string `form:"artwork_id"`
	Text      string `form:"text"`
	Score     string `form:"score"`
}

func (f reviewForm) createRequest() (dto.CreateReviewRequest, error) {
	score, err := optFloat("score", f.Score)
	if err != nil {
		return dto.CreateReviewRequest{}, err
	}
	req := dto.CreateReviewRequest{Text: strings.TrimSpace(f.Text)}
	if score != nil {
		req.Score = *score
	}
	return req, nil
}

func (f reviewForm) updateRequest() (dto.UpdateReviewRequest, error) {
	score, err := optFloat("score", f.Score)
	if err != nil {
		return dto.UpdateReviewRequest{}, err
	}
	return dto.UpdateReviewRequest{Text: optString(f.Text), Score: score}, nil
}

// formError is an input problem caught before calling the API
type formError struct {
	field string
}

func (e *formError) Error() string {
	return fmt.Sprintf("%s must be a number", e.field)
}

func optString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// sentString keeps an empty value when the input was posted
func sentString(sent fieldSent, key, value string) *string {
	if sent == nil || !sent(key) {
		return nil
	}
	return &value
}

func optFloat(field, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, &formError{field: field}
	}
	return &f, nil
}

func optInt(field, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return nil, &formError{field: field}
	}
	return &i, nil
}
