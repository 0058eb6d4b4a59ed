package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/client"
	"media-catalog-api/internal/dto"
)

func (s *Server) listUsers(c *gin.Context) {
	p := currentPage(c)
	var users []dto.UserResponse
	if err := s.api.Get(c.Request.Context(), client.Path(p.query(), "users"), &users); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "user_list.html", "Users", listData(p, users, len(users)))
}

func (s *Server) showUser(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var user dto.UserResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "users", id), &user); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "user_detail.html", user.Login, gin.H{"User": user})
}

func (s *Server) newUserForm(c *gin.Context) {
	render(c, http.StatusOK, "user_form.html", "New user", gin.H{
		"Action": "/users",
		"Form":   userForm{},
	})
}

func (s *Server) createUser(c *gin.Context) {
	var form userForm
	if !s.bindForm(c, &form) {
		return
	}

	var user dto.UserResponse
	if err := s.api.Post(c.Request.Context(), "/users", form.createRequest(), &user); err != nil {
		form.Password = ""
		s.renderForm(c, err, "user_form.html", "New user", gin.H{
			"Action": "/users",
			"Form":   form,
		})
		return
	}
	redirect(c, "users", user.ID)
}

func (s *Server) editUserForm(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var user dto.UserResponse
	if err := s.api.Get(c.Request.Context(), client.Path(nil, "users", id), &user); err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, "user_form.html", "Edit user", gin.H{
		"Action": client.Path(nil, "users", id),
		"Form":   userForm{Login: user.Login, Email: user.Email},
		"Edit":   true,
	})
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form userForm
	if !s.bindForm(c, &form) {
		return
	}

	if err := s.api.Put(c.Request.Context(), client.Path(nil, "users", id), form.updateRequest(), nil); err != nil {
		form.Password = ""
		s.renderForm(c, err, "user_form.html", "Edit user", gin.H{
			"Action": client.Path(nil, "users", id),
			"Form":   form,
			"Edit":   true,
		})
		return
	}
	redirect(c, "users", id)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	if err := s.api.Delete(c.Request.Context(), client.Path(nil, "users", id), nil); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "users")
}

// userActivity loads a user, one of their collections and the artworks offered in the create form
func (s *Server) userActivity(c *gin.Context, id uint, collection string, items interface{}) (gin.H, error) {
	ctx := c.Request.Context()

	var user dto.UserResponse
	if err := s.api.Get(ctx, client.Path(nil, "users", id), &user); err != nil {
		return nil, err
	}
	if err := s.api.Get(ctx, client.Path(nil, "users", id, collection), items); err != nil {
		return nil, err
	}
	var artworks []dto.ArtworkResponse
	if err := s.api.Get(ctx, client.Path(url.Values{"limit": {strconv.Itoa(selectLimit)}}, "artworks"), &artworks); err != nil {
		return nil, err
	}

	return gin.H{"User": user, "Items": items, "Artworks": artworks}, nil
}

func (s *Server) userComments(c *gin.Context) {
	s.userActivityPage(c, "comments", "user_comments.html", &[]dto.CommentResponse{}, commentForm{}, nil)
}

func (s *Server) userReviews(c *gin.Context) {
	s.userActivityPage(c, "reviews", "user_reviews.html", &[]dto.ReviewResponse{}, reviewForm{}, nil)
}

// userActivityPage renders a user's comments or reviews; postErr is shown above the create form
func (s *Server) userActivityPage(c *gin.Context, collection, name string, items, form interface{}, postErr error) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	data, err := s.userActivity(c, id, collection, items)
	if err != nil {
		s.fail(c, err)
		return
	}

	status := http.StatusOK
	if postErr != nil {
		status, data["Error"] = s.apiFailure(c, postErr)
	}
	data["Form"] = form
	render(c, status, name, data["User"].(dto.UserResponse).Login+" "+collection, data)
}

func (s *Server) createComment(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form commentForm
	if !s.bindForm(c, &form) {
		return
	}

	req, err := form.createRequest()
	if err == nil {
		path := client.Path(url.Values{"artwork_id": {form.ArtworkID}}, "users", id, "comments")
		if err = s.api.Post(c.Request.Context(), path, req, nil); err == nil {
			redirect(c, "users", id, "comments")
			return
		}
	}
	s.userActivityPage(c, "comments", "user_comments.html", &[]dto.CommentResponse{}, form, err)
}

func (s *Server) createReview(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}
	var form reviewForm
	if !s.bindForm(c, &form) {
		return
	}

	req, err := form.createRequest()
	if err == nil {
		path := client.Path(url.Values{"artwork_id": {form.ArtworkID}}, "users", id, "reviews")
		if err = s.api.Post(c.Request.Context(), path, req, nil); err == nil {
			redirect(c, "users", id, "reviews")
			return
		}
	}
	s.userActivityPage(c, "reviews", "user_reviews.html", &[]dto.ReviewResponse{}, form, err)
}
