package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/client"
	"media-catalog-api/internal/dto"
)

func (s *Server) listComments(c *gin.Context) {
	p := currentPage(c)
	var comments []dto.CommentResponse
	if err := s.api.Get(c.Request.Context(), client.Path(p.query(), "comments"), &comments); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "comment_list.html", "Comments", listData(p, comments, len(comments)))
}

func (s *Server) showComment(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var comment dto.CommentResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "comments", id), &comment); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "comment_detail.html", "Comment", gin.H{"Comment": comment})
}

func (s *Server) editCommentForm(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var comment dto.CommentResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "comments", id), &comment); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "comment_form.html", "Edit comment", gin.H{
		"Action": client.Path(nil, "comments", id),
		"Form": commentForm{
			Text:     comment.Text,
			Likes:    strconv.Itoa(comment.Likes),
			Dislikes: strconv.Itoa(comment.Dislikes),
		},
	})
}

func (s *Server) updateComment(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form commentForm
	if !s.bindForm(c, &form) {
		return
	}

	req, err := form.updateRequest()
	if err == nil {
		if err = s.api.Put(c.Request.Context(), client.Path(nil, "comments", id), req, nil); err == nil {
			redirect(c, "comments", id)
			return
		}
	}
	s.renderForm(c, err, "comment_form.html", "Edit comment", gin.H{
		"Action": client.Path(nil, "comments", id),
		"Form":   form,
	})
}

func (s *Server) deleteComment(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	if err := s.api.Delete(c.Request.Context(), client.Path(nil, "comments", id), nil); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "comments")
}

func (s *Server) listReviews(c *gin.Context) {
	p := currentPage(c)
	var reviews []dto.ReviewResponse
	if err := s.api.Get(c.Request.Context(), client.Path(p.query(), "reviews"), &reviews); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "review_list.html", "Reviews", listData(p, reviews, len(reviews)))
}

func (s *Server) showReview(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var review dto.ReviewResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "reviews", id), &review); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "review_detail.html", "Review", gin.H{"Review": review})
}

func (s *Server) editReviewForm(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var review dto.ReviewResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "reviews", id), &review); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "review_form.html", "Edit review", gin.H{
		"Action": client.Path(nil, "reviews", id),
		"Form": reviewForm{
			Text:  review.Text,
			Score: strconv.FormatFloat(review.Score, 'f', -1, 64),
		},
	})
}

func (s *Server) updateReview(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form reviewForm
	if !s.bindForm(c, &form) {
		return
	}

	req, err := form.updateRequest()
	if err == nil {
		if err = s.api.Put(c.Request.Context(), client.Path(nil, "reviews", id), req, nil); err == nil {
			redirect(c, "reviews", id)
			return
		}
	}
	s.renderForm(c, err, "review_form.html", "Edit review", gin.H{
		"Action": client.Path(nil, "reviews", id),
		"Form":   form,
	})
}

func (s *Server) deleteReview(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	if err := s.api.Delete(c.Request.Context(), client.Path(nil, "reviews", id), nil); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "reviews")
}
