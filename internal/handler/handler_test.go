package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func categoryRouter(svc *mockCategoryService) *gin.Engine {
	h := NewCategoryHandler(svc)
	r := gin.New()
	r.POST("/categories", h.CreateCategory)
	r.GET("/categories", h.ListCategories)
	r.GET("/categories/:id", h.GetCategory)
	r.PUT("/categories/:id", h.UpdateCategory)
	r.DELETE("/categories/:id", h.DeleteCategory)
	return r
}

func TestCategoryHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setup      func(*mockCategoryService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: dto.CreateCategoryRequest{Name: "aaa", Description: "bbb"},
			setup: func(m *mockCategoryService) {
				m.On("CreateCategory", mock.Anything, &dto.CreateCategoryRequest{Name: "aaa", Description: "bbb"}).
					Return(&dto.CategoryResponse{ID: 1, Name: "aaa", Description: "bbb", Artworks: []dto.ArtworkSummaryResponse{}}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       map[string]string{"description": "x"},
			setup:      func(m *mockCategoryService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   response.ErrCodeValidation,
		},
		{
			name: "conflict",
			body: dto.CreateCategoryRequest{Name: "aaa"},
			setup: func(m *mockCategoryService) {
				m.On("CreateCategory", mock.Anything, mock.Anything).
					Return(nil, response.NewConflictError("Category with name 'aaa' already exists", ""))
			},
			wantStatus: http.StatusConflict,
			wantCode:   response.ErrCodeAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCategoryService{}
			tt.setup(svc)

			w := doJSON(categoryRouter(svc), http.MethodPost, "/categories", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, w))
			} else {
				assert.JSONEq(t, `{"success":true,"data":{"id":1,"name":"aaa","description":"bbb","artworks":[]}}`, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCategoryHandler_List_BindsPage(t *testing.T) {
	svc := &mockCategoryService{}
	svc.On("ListCategories", mock.Anything, dto.PaginationQuery{Skip: 5, Limit: 2}).
		Return([]*dto.CategoryResponse{}, nil)

	w := doJSON(categoryRouter(svc), http.MethodGet, "/categories?skip=5&limit=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	svc.AssertExpectations(t)

	w = doJSON(categoryRouter(svc), http.MethodGet, "/categories?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryHandler_InvalidID(t *testing.T) {
	svc := &mockCategoryService{}
	r := categoryRouter(svc)

	for _, path := range []string{"/categories/abc", "/categories/0", "/categories/-1"} {
		w := doJSON(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, response.ErrCodeValidation, errorCode(t, w))
	}
	svc.AssertNotCalled(t, "GetCategory", mock.Anything, mock.Anything)
}

func TestCategoryHandler_UpdateAndDelete(t *testing.T) {
	svc := &mockCategoryService{}
	name := "new"
	svc.On("UpdateCategory", mock.Anything, uint(3), &dto.UpdateCategoryRequest{Name: &name}).
		Return(&dto.CategoryResponse{ID: 3, Name: "new"}, nil)
	svc.On("DeleteCategory", mock.Anything, uint(3)).
		Return(&dto.CategoryResponse{ID: 3, Name: "new"}, nil)
	svc.On("DeleteCategory", mock.Anything, uint(4)).
		Return(nil, response.NewNotFoundError("Category not found", ""))
	r := categoryRouter(svc)

	w := doJSON(r, http.MethodPut, "/categories/3", map[string]string{"name": "new"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/categories/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/categories/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrCodeNotFound, errorCode(t, w))

	svc.AssertExpectations(t)
}

func TestUserHandler_CreateComment_RequiresArtworkID(t *testing.T) {
	comments := &mockCommentService{}
	h := NewUserHandler(nil, comments, nil)
	r := gin.New()
	r.POST("/users/:id/comments", h.CreateComment)

	body := dto.CreateCommentRequest{Text: "nice"}

	w := doJSON(r, http.MethodPost, "/users/1/comments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/users/1/comments?artwork_id=x", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	comments.On("CreateComment", mock.Anything, uint(1), uint(2), &body).
		Return(&dto.CommentResponse{ID: 9, Text: "nice", AuthorID: 1, ArtworkID: 2}, nil)
	w = doJSON(r, http.MethodPost, "/users/1/comments?artwork_id=2", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	comments.AssertExpectations(t)
}

func TestCommentHandler_RejectsNegativeLikes(t *testing.T) {
	comments := &mockCommentService{}
	h := NewUserHandler(nil, comments, nil)
	r := gin.New()
	r.POST("/users/:id/comments", h.CreateComment)

	w := doJSON(r, http.MethodPost, "/users/1/comments?artwork_id=2", map[string]interface{}{"text": "x", "likes": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	comments.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler(t *testing.T) {
	svc := &mockAuthService{}
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", uint(7))
		h.Me(c)
	})
	r.GET("/auth/anonymous", h.Me)

	svc.On("Login", mock.Anything, &dto.LoginRequest{Login: "dada", Password: "bad"}).
		Return(nil, response.NewUnauthorizedError("Invalid login or password", ""))
	svc.On("Me", mock.Anything, uint(7)).Return(&dto.UserResponse{ID: 7, Login: "dada"}, nil)

	w := doJSON(r, http.MethodPost, "/auth/login", dto.LoginRequest{Login: "dada", Password: "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/auth/anonymous", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	svc.AssertExpectations(t)
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, response.ErrCodeNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, http.StatusConflict, response.ErrCodeAlreadyExists},
		{"validation", response.NewValidationError("bad", ""), http.StatusBadRequest, response.ErrCodeValidation},
		{"unavailable", response.NewAppError(response.ErrCodeUnavailable, "off", ""), http.StatusServiceUnavailable, response.ErrCodeUnavailable},
		{"unknown app code", response.NewAppError("WEIRD", "?", ""), http.StatusInternalServerError, "WEIRD"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, response.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handleServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w))
			assert.Len(t, c.Errors, 1)
		})
	}
}
