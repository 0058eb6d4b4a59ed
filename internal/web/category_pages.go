package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/client"
	"media-catalog-api/internal/dto"
)

func (s *Server) listCategories(c *gin.Context) {
	p := currentPage(c)
	var categories []dto.CategoryResponse
	if err := s.api.Get(c.Request.Context(), client.Path(p.query(), "categories"), &categories); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "category_list.html", "Categories", listData(p, categories, len(categories)))
}

func (s *Server) showCategory(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var category dto.CategoryResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "categories", id), &category); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "category_detail.html", category.Name, gin.H{"Category": category})
}

func (s *Server) newCategoryForm(c *gin.Context) {
	render(c, http.StatusOK, "category_form.html", "New category", gin.H{
		"Action": "/categories",
		"Form":   categoryForm{},
	})
}

func (s *Server) createCategory(c *gin.Context) {
	var form categoryForm
	if !s.bindForm(c, &form) {
		return
	}

	var category dto.CategoryResponse
	if err := s.api.Post(c.Request.Context(), "/categories", form.createRequest(), &category); err != nil {
		s.renderForm(c, err, "category_form.html", "New category", gin.H{
			"Action": "/categories",
			"Form":   form,
		})
		return
	}
	redirect(c, "categories", category.ID)
}

func (s *Server) editCategoryForm(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var category dto.CategoryResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "categories", id), &category); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "category_form.html", "Edit category", gin.H{
		"Action": client.Path(nil, "categories", id),
		"Form":   categoryForm{Name: category.Name, Description: category.Description},
		"Edit":   true,
	})
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form categoryForm
	if !s.bindForm(c, &form) {
		return
	}

	if err := s.api.Put(c.Request.Context(), client.Path(nil, "categories", id), form.updateRequest(postedFields(c)), nil); err != nil {
		s.renderForm(c, err, "category_form.html", "Edit category", gin.H{
			"Action": client.Path(nil, "categories", id),
			"Form":   form,
			"Edit":   true,
		})
		return
	}
	redirect(c, "categories", id)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	if err := s.api.Delete(c.Request.Context(), client.Path(nil, "categories", id), nil); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "categories")
}

func (s *Server) newArtworkForm(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var category dto.CategoryResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "categories", id), &category); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "artwork_form.html", "New artwork in "+category.Name, gin.H{
		"Action": client.Path(nil, "categories", id, "artworks"),
		"Form":   artworkForm{},
	})
}

func (s *Server) createArtwork(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form artworkForm
	if !s.bindForm(c, &form) {
		return
	}
	data := gin.H{
		"Action": client.Path(nil, "categories", id, "artworks"),
		"Form":   form,
	}

	req, err := form.createRequest()
	if err == nil {
		var artwork dto.ArtworkResponse
		if err = s.api.Post(c.Request.Context(), client.Path(nil, "categories", id, "artworks"), req, &artwork); err == nil {
			redirect(c, "artworks", artwork.ID)
			return
		}
	}
	s.renderForm(c, err, "artwork_form.html", "New artwork", data)
}
