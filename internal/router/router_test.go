package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"media-catalog-api/internal/auth"
	"media-catalog-api/internal/database"
	"media-catalog-api/internal/metrics"
	"media-catalog-api/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	t        *testing.T
	engine   *gin.Engine
	basePath string
}

func setupTestRouter(t *testing.T, basePath string, opts ...func(*Config)) *testAPI {
	t.Helper()

	db, err := database.New(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          database.MemoryDSN(uuid.NewString()),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	registry := prometheus.NewRegistry()
	cfg := Config{
		DB:             db,
		Logger:         zap.NewNop(),
		Metrics:        metrics.NewWithRegistry(registry, nil),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Tokens:         auth.NewTokenService("test-secret", "catalog-test", time.Hour),
		CORSOrigins:    []string{"http://localhost:8080"},
		BasePath:       basePath,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &testAPI{t: t, engine: Setup(cfg), basePath: basePath}
}

func (a *testAPI) do(method, path string, body interface{}, headers ...string) (int, gjson.Result) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, a.basePath+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w.Code, gjson.ParseBytes(w.Body.Bytes())
}

// mustCreate posts body and returns the created id
func (a *testAPI) mustCreate(path string, body interface{}) uint {
	a.t.Helper()
	code, res := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, code, res.Raw)
	return uint(res.Get("data.id").Uint())
}

func artworkBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":        title,
		"description":  "abc",
		"poster_url":   "https://example.com/" + title + ".png",
		"release_date": "2024-01-11",
		"age_rating":   "G",
		"star_rating":  4.3,
	}
}

func TestCategoryCRUD(t *testing.T) {
	api := setupTestRouter(t, "")

	id := api.mustCreate("/categories", map[string]string{"name": "aaa", "description": "aaa"})

	code, res := api.do(http.MethodGet, fmt.Sprintf("/categories/%d", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, res.Get("success").Bool())
	assert.Equal(t, "aaa", res.Get("data.name").String())
	assert.True(t, res.Get("data.artworks").IsArray())

	code, res = api.do(http.MethodPut, fmt.Sprintf("/categories/%d", id), map[string]string{"description": "bbb"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "aaa", res.Get("data.name").String())
	assert.Equal(t, "bbb", res.Get("data.description").String())

	code, res = api.do(http.MethodPost, "/categories", map[string]string{"name": "aaa"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ALREADY_EXISTS", res.Get("error.code").String())

	code, res = api.do(http.MethodGet, "/categories?skip=0&limit=10", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res.Get("data").Array(), 1)

	code, res = api.do(http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "aaa", res.Get("data.name").String())

	code, res = api.do(http.MethodGet, fmt.Sprintf("/categories/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", res.Get("error.code").String())
}

func TestArtworkLifecycle(t *testing.T) {
	api := setupTestRouter(t, "")

	categoryID := api.mustCreate("/categories", map[string]string{"name": "aaa"})

	code, _ := api.do(http.MethodPost, "/categories/999/artworks", artworkBody("abc"))
	assert.Equal(t, http.StatusNotFound, code)

	bad := artworkBody("abc")
	bad["age_rating"] = "NC-17"
	code, _ = api.do(http.MethodPost, fmt.Sprintf("/categories/%d/artworks", categoryID), bad)
	assert.Equal(t, http.StatusBadRequest, code)

	bad = artworkBody("abc")
	bad["poster_url"] = "not a url"
	code, _ = api.do(http.MethodPost, fmt.Sprintf("/categories/%d/artworks", categoryID), bad)
	assert.Equal(t, http.StatusBadRequest, code)

	artworkID := api.mustCreate(fmt.Sprintf("/categories/%d/artworks", categoryID), artworkBody("abc"))

	code, res := api.do(http.MethodGet, fmt.Sprintf("/artworks/%d", artworkID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2024-01-11", res.Get("data.release_date").String())
	assert.Equal(t, 4.3, res.Get("data.star_rating").Float())
	assert.Equal(t, uint64(categoryID), res.Get("data.category_id").Uint())

	code, res = api.do(http.MethodPut, fmt.Sprintf("/artworks/%d", artworkID), map[string]interface{}{"star_rating": 5})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5.0, res.Get("data.star_rating").Float())
	assert.Equal(t, "abc", res.Get("data.title").String())

	code, res = api.do(http.MethodGet, fmt.Sprintf("/categories/%d/artworks", categoryID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res.Get("data").Array(), 1)

	code, res = api.do(http.MethodGet, fmt.Sprintf("/categories/%d", categoryID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "abc", res.Get("data.artworks.0.title").String())
}

func TestTagsOnArtwork(t *testing.T) {
	api := setupTestRouter(t, "")

	categoryID := api.mustCreate("/categories", map[string]string{"name": "aaa"})
	artworkID := api.mustCreate(fmt.Sprintf("/categories/%d/artworks", categoryID), artworkBody("abc"))
	tagID := api.mustCreate("/tags", map[string]string{"name": "fantasy", "description": "deep dark fantasy"})

	code, _ := api.do(http.MethodPost, "/tags", map[string]string{"name": "fantasy"})
	assert.Equal(t, http.StatusConflict, code)

	otherID := api.mustCreate("/tags", map[string]string{"name": "horror"})
	code, res := api.do(http.MethodPut, fmt.Sprintf("/tags/%d", otherID), map[string]string{"name": "fantasy"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ALREADY_EXISTS", res.Get("error.code").String())
	code, res = api.do(http.MethodPut, fmt.Sprintf("/tags/%d", tagID), map[string]string{"name": "fantasy", "description": ""})
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, res.Get("data.description").String())

	path := fmt.Sprintf("/artworks/%d/tags/%d", artworkID, tagID)
	for i := 0; i < 2; i++ {
		code, res := api.do(http.MethodPost, path, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, res.Get("data.tags").Array(), 1)
	}

	code, res = api.do(http.MethodGet, fmt.Sprintf("/artworks/%d/tags", artworkID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "fantasy", res.Get("data.0.name").String())

	code, res = api.do(http.MethodGet, fmt.Sprintf("/tags/%d", tagID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "abc", res.Get("data.artworks.0.title").String())

	code, _ = api.do(http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = api.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = api.do(http.MethodPost, fmt.Sprintf("/artworks/%d/tags/999", artworkID), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUsersCommentsReviews(t *testing.T) {
	api := setupTestRouter(t, "")

	categoryID := api.mustCreate("/categories", map[string]string{"name": "aaa"})
	artworkID := api.mustCreate(fmt.Sprintf("/categories/%d/artworks", categoryID), artworkBody("abc"))
	userID := api.mustCreate("/users", map[string]string{"login": "dada", "password": "secret", "email": "qwerty@gmail.com"})

	code, res := api.do(http.MethodGet, fmt.Sprintf("/users/%d", userID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, res.Get("data.password").Exists())

	code, _ = api.do(http.MethodPost, "/users", map[string]string{"login": "dada", "password": "x", "email": "other@gmail.com"})
	assert.Equal(t, http.StatusConflict, code)
	code, _ = api.do(http.MethodPost, "/users", map[string]string{"login": "lala", "password": "x", "email": "qwerty@gmail.com"})
	assert.Equal(t, http.StatusConflict, code)
	code, _ = api.do(http.MethodPost, "/users", map[string]string{"login": "lala", "password": "x", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, code)

	commentID := api.mustCreate(fmt.Sprintf("/users/%d/comments?artwork_id=%d", userID, artworkID), map[string]interface{}{"text": "Loved it", "likes": 2})
	code, _ = api.do(http.MethodPost, fmt.Sprintf("/users/%d/comments?artwork_id=999", userID), map[string]string{"text": "x"})
	assert.Equal(t, http.StatusNotFound, code)

	reviewID := api.mustCreate(fmt.Sprintf("/users/%d/reviews?artwork_id=%d", userID, artworkID), map[string]interface{}{"text": "good", "score": 9.5})
	code, res = api.do(http.MethodPost, fmt.Sprintf("/users/%d/reviews?artwork_id=%d", userID, artworkID), map[string]interface{}{"text": "again", "score": 1})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ALREADY_EXISTS", res.Get("error.code").String())

	code, res = api.do(http.MethodGet, fmt.Sprintf("/artworks/%d/comments", artworkID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Loved it", res.Get("data.0.text").String())

	code, res = api.do(http.MethodGet, fmt.Sprintf("/users/%d/reviews", userID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 9.5, res.Get("data.0.score").Float())

	code, res = api.do(http.MethodPut, fmt.Sprintf("/comments/%d", commentID), map[string]int{"dislikes": 1})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), res.Get("data.likes").Int())
	assert.Equal(t, int64(1), res.Get("data.dislikes").Int())

	code, res = api.do(http.MethodPut, fmt.Sprintf("/users/%d", userID), map[string]string{"email": "new@gmail.com"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dada", res.Get("data.login").String())
	assert.Equal(t, "new@gmail.com", res.Get("data.email").String())

	// deleting the user removes their comments and reviews
	code, _ = api.do(http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = api.do(http.MethodGet, fmt.Sprintf("/comments/%d", commentID), nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = api.do(http.MethodGet, fmt.Sprintf("/reviews/%d", reviewID), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestNestedListsPaginate(t *testing.T) {
	api := setupTestRouter(t, "")

	categoryID := api.mustCreate("/categories", map[string]string{"name": "aaa"})
	artworkIDs := []uint{
		api.mustCreate(fmt.Sprintf("/categories/%d/artworks", categoryID), artworkBody("abc")),
		api.mustCreate(fmt.Sprintf("/categories/%d/artworks", categoryID), artworkBody("def")),
		api.mustCreate(fmt.Sprintf("/categories/%d/artworks", categoryID), artworkBody("ghi")),
	}
	userID := api.mustCreate("/users", map[string]string{"login": "dada", "password": "secret", "email": "qwerty@gmail.com"})

	for i, text := range []string{"one", "two", "three"} {
		api.mustCreate(fmt.Sprintf("/users/%d/comments?artwork_id=%d", userID, artworkIDs[0]), map[string]string{"text": text})
		api.mustCreate(fmt.Sprintf("/users/%d/reviews?artwork_id=%d", userID, artworkIDs[i]), map[string]string{"text": text})
	}

	tests := []struct {
		path string
		want []string
	}{
		{fmt.Sprintf("/artworks/%d/comments?skip=1&limit=1", artworkIDs[0]), []string{"two"}},
		{fmt.Sprintf("/artworks/%d/comments", artworkIDs[0]), []string{"one", "two", "three"}},
		{fmt.Sprintf("/users/%d/comments?skip=1&limit=1", userID), []string{"two"}},
		{fmt.Sprintf("/users/%d/comments?skip=2", userID), []string{"three"}},
		{fmt.Sprintf("/users/%d/reviews?skip=1&limit=1", userID), []string{"two"}},
		{fmt.Sprintf("/users/%d/reviews?limit=2", userID), []string{"one", "two"}},
		{fmt.Sprintf("/artworks/%d/reviews?skip=1", artworkIDs[2]), nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, res := api.do(http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, code)

			var got []string
			for _, item := range res.Get("data").Array() {
				got = append(got, item.Get("text").String())
			}
			assert.Equal(t, tt.want, got)
		})
	}

	code, res := api.do(http.MethodGet, fmt.Sprintf("/users/%d/comments?limit=x", userID), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", res.Get("error.code").String())
}

func TestCategoryDeleteCascades(t *testing.T) {
	api := setupTestRouter(t, "")

	categoryID := api.mustCreate("/categories", map[string]string{"name": "aaa"})
	artworkID := api.mustCreate(fmt.Sprintf("/categories/%d/artworks", categoryID), artworkBody("abc"))
	userID := api.mustCreate("/users", map[string]string{"login": "dada", "password": "secret", "email": "qwerty@gmail.com"})
	tagID := api.mustCreate("/tags", map[string]string{"name": "fantasy"})
	commentID := api.mustCreate(fmt.Sprintf("/users/%d/comments?artwork_id=%d", userID, artworkID), map[string]string{"text": "x"})
	reviewID := api.mustCreate(fmt.Sprintf("/users/%d/reviews?artwork_id=%d", userID, artworkID), map[string]string{"text": "x"})
	code, _ := api.do(http.MethodPost, fmt.Sprintf("/artworks/%d/tags/%d", artworkID, tagID), nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = api.do(http.MethodDelete, fmt.Sprintf("/categories/%d", categoryID), nil)
	require.Equal(t, http.StatusOK, code)

	for _, path := range []string{
		fmt.Sprintf("/artworks/%d", artworkID),
		fmt.Sprintf("/comments/%d", commentID),
		fmt.Sprintf("/reviews/%d", reviewID),
	} {
		code, _ := api.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, code, path)
	}

	code, res := api.do(http.MethodGet, fmt.Sprintf("/tags/%d", tagID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, res.Get("data.artworks").Array())

	code, res = api.do(http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(0), res.Get("data.artworks").Int())
	assert.Equal(t, int64(1), res.Get("data.users").Int())
	assert.Equal(t, int64(1), res.Get("data.tags").Int())
}

func TestAuthFlow(t *testing.T) {
	api := setupTestRouter(t, "")
	api.mustCreate("/users", map[string]string{"login": "dada", "password": "secret", "email": "qwerty@gmail.com"})

	code, _ := api.do(http.MethodPost, "/auth/login", map[string]string{"login": "dada", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, res := api.do(http.MethodPost, "/auth/login", map[string]string{"login": "dada", "password": "secret"})
	require.Equal(t, http.StatusOK, code)
	token := res.Get("data.access_token").String()
	require.NotEmpty(t, token)
	assert.Equal(t, "Bearer", res.Get("data.token_type").String())

	code, _ = api.do(http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, res = api.do(http.MethodGet, "/auth/me", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dada", res.Get("data.login").String())
}

func TestMalformedInput(t *testing.T) {
	api := setupTestRouter(t, "")

	code, res := api.do(http.MethodGet, "/artworks/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", res.Get("error.code").String())

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	code, _ = api.do(http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPosterUploadWithoutStorage(t *testing.T) {
	api := setupTestRouter(t, "")
	categoryID := api.mustCreate("/categories", map[string]string{"name": "aaa"})
	artworkID := api.mustCreate(fmt.Sprintf("/categories/%d/artworks", categoryID), artworkBody("abc"))

	code, res := api.do(http.MethodPost, fmt.Sprintf("/artworks/%d/poster-upload", artworkID),
		map[string]string{"file_name": "p.png", "content_type": "image/png"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", res.Get("error.code").String())
}

func TestOperationalEndpoints(t *testing.T) {
	api := setupTestRouter(t, "/api/catalog")
	api.mustCreate("/categories", map[string]string{"name": "aaa"})

	for _, path := range []string{"/health", "/ready", "/api/catalog/health", "/api/catalog/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `catalog_service_http_requests_total{endpoint="/api/catalog/categories",method="POST",status="2xx"} 1`)
	assert.Contains(t, body, `catalog_service_entity_created_total{entity="category"} 1`)

	req = httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	w = httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	api := setupTestRouter(t, "", func(cfg *Config) {
		cfg.RateLimiter = middleware.NewRateLimiter(0.001, 2, zap.NewNop())
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		code, _ := api.do(http.MethodGet, "/categories", nil)
		codes = append(codes, code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// operational endpoints are not limited
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
