package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/client"
	"media-catalog-api/internal/dto"
)

func (s *Server) listArtworks(c *gin.Context) {
	p := currentPage(c)
	var artworks []dto.ArtworkResponse
	if err := s.api.Get(c.Request.Context(), client.Path(p.query(), "artworks"), &artworks); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "artwork_list.html", "Artworks", listData(p, artworks, len(artworks)))
}

// artworkDetail loads an artwork together with the tags that can still be attached
func (s *Server) artworkDetail(c *gin.Context, id uint) (gin.H, error) {
	ctx := c.Request.Context()

	var artwork dto.ArtworkResponse
	if err := s.api.Get(ctx, client.Path(nil, "artworks", id), &artwork); err != nil {
		return nil, err
	}
	var tags []dto.TagResponse
	if err := s.api.Get(ctx, client.Path(url.Values{"limit": {strconv.Itoa(selectLimit)}}, "tags"), &tags); err != nil {
		return nil, err
	}

	attached := make(map[uint]bool, len(artwork.Tags))
	for _, t := range artwork.Tags {
		attached[t.ID] = true
	}
	available := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		if !attached[t.ID] {
			available = append(available, t)
		}
	}

	return gin.H{"Artwork": artwork, "AvailableTags": available}, nil
}

func (s *Server) showArtwork(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	data, err := s.artworkDetail(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "artwork_detail.html", data["Artwork"].(dto.ArtworkResponse).Title, data)
}

func (s *Server) editArtworkForm(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var artwork dto.ArtworkResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "artworks", id), &artwork); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "artwork_form.html", "Edit artwork", gin.H{
		"Action": client.Path(nil, "artworks", id),
		"Form": artworkForm{
			Title:       artwork.Title,
			Description: artwork.Description,
			PosterURL:   artwork.PosterURL,
			ReleaseDate: artwork.ReleaseDate,
			AgeRating:   artwork.AgeRating,
			StarRating:  strconv.FormatFloat(artwork.StarRating, 'f', -1, 64),
		},
		"Edit": true,
	})
}

func (s *Server) updateArtwork(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form artworkForm
	if !s.bindForm(c, &form) {
		return
	}

	req, err := form.updateRequest(postedFields(c))
	if err == nil {
		if err = s.api.Put(c.Request.Context(), client.Path(nil, "artworks", id), req, nil); err == nil {
			redirect(c, "artworks", id)
			return
		}
	}
	s.renderForm(c, err, "artwork_form.html", "Edit artwork", gin.H{
		"Action": client.Path(nil, "artworks", id),
		"Form":   form,
		"Edit":   true,
	})
}

func (s *Server) deleteArtwork(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var artwork dto.ArtworkResponse
	if err := s.api.Delete(c.Request.Context(), client.Path(nil, "artworks", id), &artwork); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "categories", artwork.CategoryID)
}

// tagAction attaches or detaches a tag and shows the artwork again, with the API error if any
func (s *Server) tagAction(c *gin.Context, id uint, call func() error) {
	if err := call(); err != nil {
		status, message := s.apiFailure(c, err)
		data, loadErr := s.artworkDetail(c, id)
		if loadErr != nil {
			s.renderError(c, status, message)
			return
		}
		data["Error"] = message
		render(c, status, "artwork_detail.html", data["Artwork"].(dto.ArtworkResponse).Title, data)
		return
	}
	redirect(c, "artworks", id)
}

func (s *Server) attachTag(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	tagID, err := strconv.ParseUint(c.PostForm("tag_id"), 10, 64)
	if err != nil || tagID == 0 {
		s.renderError(c, http.StatusBadRequest, "Select a tag to attach")
		return
	}
	s.tagAction(c, id, func() error {
		return s.api.Post(c.Request.Context(), client.Path(nil, "artworks", id, "tags", tagID), nil, nil)
	})
}

func (s *Server) detachTag(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := s.pathID(c, "tag_id")
	if !ok {
		return
	}
	s.tagAction(c, id, func() error {
		return s.api.Delete(c.Request.Context(), client.Path(nil, "artworks", id, "tags", tagID), nil)
	})
}
