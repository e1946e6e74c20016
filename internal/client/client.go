// Package client provides HTTP client functionality for Centrapay API calls.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/google/uuid"

	"github.com/port402/centrapay-cli/internal/logging"
)

// HeaderRequestID carries the per-invocation correlation id.
const HeaderRequestID = "X-Request-Id"

const contentTypeForm = "application/x-www-form-urlencoded"

// Client wraps http.Client with default headers and form encoding.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	requestID  string
}

// Option configures the Client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds a custom header to all requests.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithRequestID overrides the generated correlation id.
func WithRequestID(id string) Option {
	return func(c *Client) {
		c.requestID = id
	}
}

// New creates a new Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // Default timeout
		},
		headers:   make(map[string]string),
		requestID: uuid.NewString(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RequestID returns the correlation id sent with every request.
func (c *Client) RequestID() string {
	return c.requestID
}

// Request performs an HTTP request with the given method, URL, headers, and body.
func (c *Client) Request(ctx context.Context, method, url string, headers map[string]string, body []byte) (*http.Response, error) {
	req, err := newRequest(ctx, method, url, headers, body)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Do performs the HTTP request with default headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, _, err := c.do(req)
	return resp, err
}

// do applies default headers, renders the request as a curl command and sends it.
func (c *Client) do(req *http.Request) (*http.Response, string, error) {
	// Apply default headers
	for k, v := range c.headers {
		if _, ok := req.Header[http.CanonicalHeaderKey(k)]; !ok { // Don't override if already set
			req.Header.Set(k, v)
		}
	}
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, c.requestID)
	}

	logger := logging.FromContext(req.Context())
	logger.Debug(":: calling %s %s", req.Method, req.URL.String())
	logger.Debug(":: headers: %s", FormatHeaders(req.Header, true))

	curl, err := Curl(req)
	if err != nil {
		return nil, "", fmt.Errorf("rendering curl command: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	return resp, curl, err
}

func newRequest(ctx context.Context, method, url string, headers map[string]string, body []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Add request-specific headers
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// RequestResult contains timing and response information.
type RequestResult struct {
	Response  *http.Response
	Latency   time.Duration
	LatencyMs int64

	// Curl is the equivalent curl command for the request that was sent.
	Curl string
}

// TimedRequest performs a timed HTTP request.
func (c *Client) TimedRequest(ctx context.Context, method, url string, headers map[string]string, body []byte) (*RequestResult, error) {
	req, err := newRequest(ctx, method, url, headers, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, curl, err := c.do(req)
	latency := time.Since(start)

	if err != nil {
		return nil, err
	}

	return &RequestResult{
		Response:  resp,
		Latency:   latency,
		LatencyMs: latency.Milliseconds(),
		Curl:      curl,
	}, nil
}

// PostForm sends data as an application/x-www-form-urlencoded POST body.
func (c *Client) PostForm(ctx context.Context, endpoint string, data url.Values) (*RequestResult, error) {
	encoded := data.Encode()
	logging.FromContext(ctx).Debug(":: data: %s", encoded)

	return c.TimedRequest(ctx, http.MethodPost, endpoint,
		map[string]string{headers.ContentType: contentTypeForm},
		[]byte(encoded),
	)
}

// GetQuery sends a GET with data appended as query parameters.
func (c *Client) GetQuery(ctx context.Context, endpoint string, data url.Values) (*RequestResult, error) {
	logging.FromContext(ctx).Debug(":: data: %s", data.Encode())

	target, err := WithQuery(endpoint, data)
	if err != nil {
		return nil, err
	}
	return c.TimedRequest(ctx, http.MethodGet, target, nil, nil)
}

// WithQuery appends data to the query of rawURL, keeping any existing parameters.
func WithQuery(rawURL string, data url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if len(data) == 0 {
		return u.String(), nil
	}

	query := u.Query()
	for k, values := range data {
		for _, v := range values {
			query.Add(k, v)
		}
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// ParseRetryAfter extracts the Retry-After header value as a duration.
// Returns 0 if the header is not present or invalid.
func ParseRetryAfter(resp *http.Response) time.Duration {
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}

	// Try parsing as seconds
	var seconds int
	if _, err := fmt.Sscanf(retryAfter, "%d", &seconds); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 7231)
	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return 0
}

// sensitiveHeaders are masked by FormatHeaders when masking is requested.
var sensitiveHeaders = map[string]bool{
	"X-Api-Key":           true,
	headers.Authorization: true,
}

// FormatHeaders renders headers as "Key: value" pairs in a stable order.
func FormatHeaders(h http.Header, mask bool) string {
	keys := sortedKeys(h)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		value := strings.Join(h[k], ", ")
		if mask && sensitiveHeaders[k] {
			value = MaskSecret(value)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", k, value))
	}
	return strings.Join(parts, "; ")
}

func sortedKeys(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MaskSecret keeps the last four characters of a secret.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
