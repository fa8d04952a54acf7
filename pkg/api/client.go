package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rickgao/playmoney/internal/version"
)

// DefaultBaseURL is the versioned production API root.
const DefaultBaseURL = "https://api.playmoney.dev/v1"

// DefaultTimeout bounds every request unless overridden.
const DefaultTimeout = 10 * time.Second

// Client provides access to the PlayMoney REST API.
// A Client holds no mutable state after construction and is safe to share.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger

	rest *resty.Client

	Markets *MarketsResource
	Users   *UsersResource
	Lists   *ListsResource
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. An empty apiKey makes every
// request unauthenticated.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		timeout:   DefaultTimeout,
		userAgent: version.UserAgent(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient != nil {
		c.rest = resty.NewWithClient(c.httpClient)
	} else {
		c.rest = resty.New().SetTimeout(c.timeout)
	}
	c.rest.SetBaseURL(c.baseURL)

	c.Markets = &MarketsResource{client: c}
	c.Users = &UsersResource{client: c}
	c.Lists = &ListsResource{client: c}

	return c
}

// Authenticated reports whether requests carry an API key.
func (c *Client) Authenticated() bool {
	return c.apiKey != ""
}

// WithTimeout sets the per-request timeout. It has no effect together with
// WithHTTPClient, whose own Timeout applies.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}
