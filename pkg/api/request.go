package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/playmoney/internal/auth"
	"github.com/rickgao/playmoney/pkg/model"
	"github.com/rickgao/playmoney/pkg/normalize"
)

// ErrMissingAPIKey is returned by operations that require authentication
// when the client has no API key.
var ErrMissingAPIKey = errors.New("playmoney: api key required")

// APIError represents an error status from the PlayMoney API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("playmoney api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401 or 403.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

func newAPIError(status int, body []byte, requestID string) *APIError {
	msg := http.StatusText(status)
	var payload struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if s, ok := payload.Error.(string); ok && s != "" {
			msg = s
		} else if payload.Message != "" {
			msg = payload.Message
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("status %d", status)
	}
	return &APIError{
		StatusCode: status,
		Message:    msg,
		Body:       body,
		RequestID:  requestID,
	}
}

// envelope is a normalized response body.
type envelope struct {
	data     any
	pageInfo any
}

// get performs a GET request and returns the normalized envelope.
func (c *Client) get(ctx context.Context, ep normalize.Endpoint, path string, query url.Values) (*envelope, error) {
	requestID := uuid.NewString()
	start := time.Now()

	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.userAgent).
		SetHeader("X-Request-Id", requestID)
	if c.apiKey != "" {
		req.SetHeader(auth.HeaderAPIKey, c.apiKey)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	c.logger.Debug("api request",
		"method", http.MethodGet,
		"path", path,
		"request_id", requestID,
	)

	resp, err := req.Get(path)
	if err != nil {
		c.logger.Error("api request failed",
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return nil, fmt.Errorf("do request: %w", err)
	}

	body := resp.Body()
	c.logger.Debug("api response",
		"path", path,
		"status", resp.StatusCode(),
		"bytes", len(body),
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode() >= 400 {
		apiErr := newAPIError(resp.StatusCode(), body, requestID)
		c.logger.Error("api error",
			"path", path,
			"status", apiErr.StatusCode,
			"message", apiErr.Message,
			"request_id", requestID,
		)
		return nil, apiErr
	}

	raw, err := decodeBody(body)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	doc := normalize.Apply(ep, raw)
	return &envelope{data: doc["data"], pageInfo: doc["pageInfo"]}, nil
}

// decodeBody parses a response body. An empty body is an empty object.
func decodeBody(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case map[string]any:
		return t, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
}

// getOne fetches a single resource and decodes its data.
func getOne[T any, PT interface {
	*T
	model.Validator
}](ctx context.Context, c *Client, ep normalize.Endpoint, path string, query url.Values) (*T, error) {
	env, err := c.get(ctx, ep, path, query)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := model.Decode(env.data, PT(out)); err != nil {
		return nil, err
	}
	return out, nil
}

// getList fetches an unpaginated array resource.
func getList[T model.Validator](ctx context.Context, c *Client, ep normalize.Endpoint, path string, query url.Values) ([]T, error) {
	env, err := c.get(ctx, ep, path, query)
	if err != nil {
		return nil, err
	}
	return model.DecodeList[T](env.data)
}

// getPage fetches one page of a cursor-paginated resource.
func getPage[T model.Validator](ctx context.Context, c *Client, ep normalize.Endpoint, path string, query url.Values) (*Page[T], error) {
	env, err := c.get(ctx, ep, path, query)
	if err != nil {
		return nil, err
	}
	items, err := model.DecodeList[T](env.data)
	if err != nil {
		return nil, err
	}
	page := &Page[T]{Items: items}
	if env.pageInfo != nil {
		if err := model.Decode(env.pageInfo, &page.PageInfo); err != nil {
			return nil, err
		}
	}
	return page, nil
}

func requireID(kind, id string) error {
	if !model.IsCUID(id) {
		reason := "is required"
		if id != "" {
			reason = fmt.Sprintf("%q is not a valid id", id)
		}
		return &model.ValidationError{Model: kind, Field: "id", Reason: reason}
	}
	return nil
}
