package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"media-catalog-api/internal/metrics"
)

// APIError is an error envelope returned by the catalog API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog api %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// CatalogClient calls the catalog API and unwraps its response envelope
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewCatalogClient creates a client for the catalog API at baseURL. m may be nil.
func NewCatalogClient(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *CatalogClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// Get decodes the data of GET path into out
func (c *CatalogClient) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *CatalogClient) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *CatalogClient) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *CatalogClient) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// Path joins segments and appends query, skipping empty query values
func Path(query url.Values, segments ...interface{}) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, url.PathEscape(fmt.Sprint(s)))
	}
	p := "/" + strings.Join(parts, "/")
	for k, vs := range query {
		if len(vs) == 0 || vs[0] == "" {
			query.Del(k)
		}
	}
	if encoded := query.Encode(); encoded != "" {
		p += "?" + encoded
	}
	return p
}

func (c *CatalogClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(path, method, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Catalog API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return fmt.Errorf("catalog api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return decodeData(raw, out)
	}

	apiErr := decodeError(resp.StatusCode, raw)
	c.logger.Warn("Catalog API returned error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode),
		zap.String("code", apiErr.Code),
	)
	return apiErr
}

func decodeData(raw []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("catalog api returned invalid JSON")
	}
	data := gjson.GetBytes(raw, "data")
	if !data.Exists() {
		return fmt.Errorf("catalog api response has no data")
	}
	if err := json.Unmarshal([]byte(data.Raw), out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func decodeError(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Code:       "UNKNOWN",
		Message:    http.StatusText(statusCode),
	}
	if !gjson.ValidBytes(raw) {
		return apiErr
	}
	result := gjson.ParseBytes(raw)
	if code := result.Get("error.code"); code.Exists() {
		apiErr.Code = code.String()
	}
	if msg := result.Get("error.message"); msg.Exists() && msg.String() != "" {
		apiErr.Message = msg.String()
	}
	return apiErr
}
