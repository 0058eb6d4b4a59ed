package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/metrics"
)

func newTestCatalogClient(t *testing.T, handler http.HandlerFunc) (*CatalogClient, *metrics.Metrics) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
	return NewCatalogClient(server.URL+"/", 2*time.Second, zap.NewNop(), m), m
}

func TestCatalogClient_GetDecodesData(t *testing.T) {
	c, m := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/categories/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":3,"name":"aaa","description":"bbb","artworks":[]}}`)
	})

	var category dto.CategoryResponse
	require.NoError(t, c.Get(context.Background(), "/categories/3", &category))
	assert.Equal(t, uint(3), category.ID)
	assert.Equal(t, "aaa", category.Name)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalAPIRequestsTotal.WithLabelValues("/categories/{id}", "GET", "200")))
}

func TestCatalogClient_PostSendsBody(t *testing.T) {
	c, _ := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "artwork_id=2", r.URL.RawQuery)

		var req dto.CreateCommentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":9,"text":"`+req.Text+`","author_id":1,"artwork_id":2}}`)
	})

	var comment dto.CommentResponse
	path := Path(url.Values{"artwork_id": {"2"}}, "users", 1, "comments")
	require.NoError(t, c.Post(context.Background(), path, dto.CreateCommentRequest{Text: "Loved it"}, &comment))
	assert.Equal(t, "Loved it", comment.Text)
	assert.Equal(t, uint(2), comment.ArtworkID)
}

func TestCatalogClient_ErrorEnvelope(t *testing.T) {
	c, m := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"error":{"code":"ALREADY_EXISTS","message":"Category with this name already exists"}}`)
	})

	err := c.Post(context.Background(), "/categories", dto.CreateCategoryRequest{Name: "aaa"}, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "ALREADY_EXISTS", apiErr.Code)
	assert.Equal(t, "Category with this name already exists", apiErr.Message)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalAPIErrors.WithLabelValues("/categories", "conflict")))
}

func TestCatalogClient_NonJSONError(t *testing.T) {
	c, _ := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	err := c.Delete(context.Background(), "/tags/1", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "UNKNOWN", apiErr.Code)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestCatalogClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	c := NewCatalogClient(baseURL, time.Second, nil, nil)
	err := c.Get(context.Background(), "/artworks", &[]dto.ArtworkResponse{})

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCatalogClient_MissingData(t *testing.T) {
	c, _ := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	var tags []dto.TagResponse
	err := c.Put(context.Background(), "/tags/1", dto.UpdateTagRequest{}, &tags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/artworks/4/tags/5", Path(nil, "artworks", 4, "tags", 5))
	assert.Equal(t, "/users/1/reviews?artwork_id=7", Path(url.Values{"artwork_id": {"7"}}, "users", uint(1), "reviews"))
	assert.Equal(t, "/categories", Path(url.Values{"skip": {""}}, "categories"))
	assert.Equal(t, "/categories?limit=10&skip=20", Path(url.Values{"skip": {"20"}, "limit": {"10"}}, "categories"))
}
