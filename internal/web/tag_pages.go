package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/client"
	"media-catalog-api/internal/dto"
)

func (s *Server) listTags(c *gin.Context) {
	p := currentPage(c)
	var tags []dto.TagResponse
	if err := s.api.Get(c.Request.Context(), client.Path(p.query(), "tags"), &tags); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "tag_list.html", "Tags", listData(p, tags, len(tags)))
}

func (s *Server) showTag(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var tag dto.TagResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "tags", id), &tag); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "tag_detail.html", tag.Name, gin.H{"Tag": tag})
}

func (s *Server) newTagForm(c *gin.Context) {
	render(c, http.StatusOK, "tag_form.html", "New tag", gin.H{
		"Action": "/tags",
		"Form":   tagForm{},
	})
}

func (s *Server) createTag(c *gin.Context) {
	var form tagForm
	if !s.bindForm(c, &form) {
		return
	}

	var tag dto.TagResponse
	if err := s.api.Post(c.Request.Context(), "/tags", form.createRequest(), &tag); err != nil {
		s.renderForm(c, err, "tag_form.html", "New tag", gin.H{
			"Action": "/tags",
			"Form":   form,
		})
		return
	}
	redirect(c, "tags", tag.ID)
}

func (s *Server) editTagForm(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var tag dto.TagResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "tags", id), &tag); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "tag_form.html", "Edit tag", gin.H{
		"Action": client.Path(nil, "tags", id),
		"Form":   tagForm{Name: tag.Name, Description: tag.Description},
		"Edit":   true,
	})
}

func (s *Server) updateTag(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form tagForm
	if !s.bindForm(c, &form) {
		return
	}

	if err := s.api.Put(c.Request.Context(), client.Path(nil, "tags", id), form.updateRequest(postedFields(c)), nil); err != nil {
		s.renderForm(c, err, "tag_form.html", "Edit tag", gin.H{
			"Action": client.Path(nil, "tags", id),
			"Form":   form,
			"Edit":   true,
		})
		return
	}
	redirect(c, "tags", id)
}

func (s *Server) deleteTag(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	if err := s.api.Delete(c.Request.Context(), client.Path(nil, "tags", id), nil); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "tags")
}
