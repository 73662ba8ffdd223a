package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"binance-futures-client/internal/logger"
	"binance-futures-client/internal/metrics"
)

const (
	// DefaultHost is the production USDⓈ-M futures API.
	DefaultHost = "https://fapi.binance.com"
	// TestnetHost is the futures testnet.
	TestnetHost = "https://testnet.binancefuture.com"

	UserAgent    = "binance-futures-client/1.0"
	APIKeyHeader = "X-MBX-APIKEY"

	formContentType = "application/x-www-form-urlencoded"
	weightHeader    = "X-MBX-USED-WEIGHT-1M"
	weightWarnLevel = 2000
)

// Client signs and dispatches requests against one exchange host. It holds
// no mutable state after construction and is safe for concurrent use.
type Client struct {
	apiKey     string
	secretKey  string
	host       string
	httpClient *http.Client
	tracker    *metrics.Tracker
}

type clientOptions struct {
	httpClient *http.Client
	tracker    *metrics.Tracker
}

type Option func(*clientOptions)

// WithHTTPClient replaces the transport. It cannot be combined with a proxy.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTracker records the latency of every request.
func WithTracker(t *metrics.Tracker) Option {
	return func(o *clientOptions) { o.tracker = t }
}

// NewClient creates a client for host. Empty credentials are allowed for
// public endpoints. A non-empty proxy routes all traffic through it.
func NewClient(apiKey, secretKey, host, proxy string, opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, &ConfigurationError{Field: "host", Reason: "malformed url", Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &ConfigurationError{Field: "host", Reason: "scheme and host are required"}
	}

	httpClient := o.httpClient
	switch {
	case proxy != "" && httpClient != nil:
		return nil, &ConfigurationError{Field: "proxy", Reason: "cannot be combined with a custom http client"}
	case proxy != "":
		httpClient, err = proxyClient(proxy)
		if err != nil {
			return nil, err
		}
	case httpClient == nil:
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:     apiKey,
		secretKey:  secretKey,
		host:       host,
		httpClient: httpClient,
		tracker:    o.tracker,
	}, nil
}

func proxyClient(proxy string) (*http.Client, error) {
	u, err := url.Parse(proxy)
	if err != nil {
		return nil, &ConfigurationError{Field: "proxy", Reason: "malformed url", Err: err}
	}
	switch u.Scheme {
	case "http", "https", "socks5", "socks5h":
	default:
		return nil, &ConfigurationError{Field: "proxy", Reason: "unsupported scheme " + strconv.Quote(u.Scheme)}
	}
	if u.Host == "" {
		return nil, &ConfigurationError{Field: "proxy", Reason: "host is required"}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyURL(u)
	return &http.Client{Transport: transport}, nil
}

// Host returns the base URL the client was built with.
func (c *Client) Host() string {
	return c.host
}

// GetSigned sends a signed GET with request embedded in the signed URL.
func (c *Client) GetSigned(ctx context.Context, endpoint API, request string, v any) error {
	return c.signed(ctx, http.MethodGet, endpoint, request, v)
}

// PostSigned sends a signed POST; parameters travel in the URL, not the body.
func (c *Client) PostSigned(ctx context.Context, endpoint API, request string, v any) error {
	return c.signed(ctx, http.MethodPost, endpoint, request, v)
}

// DeleteSigned sends a signed DELETE with request embedded in the signed URL.
func (c *Client) DeleteSigned(ctx context.Context, endpoint API, request string, v any) error {
	return c.signed(ctx, http.MethodDelete, endpoint, request, v)
}

// Get sends a public GET without any header. A non-empty request is
// appended verbatim as the query string.
func (c *Client) Get(ctx context.Context, endpoint API, request string, v any) error {
	reqURL := c.host + endpoint.Path()
	if request != "" {
		reqURL += "?" + request
	}
	return c.do(ctx, http.MethodGet, endpoint, reqURL, nil, "", v)
}

// Post sends an unsigned POST carrying only the API key, used to create a
// listen key.
func (c *Client) Post(ctx context.Context, endpoint API, v any) error {
	headers, err := c.buildHeaders(false)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, endpoint, c.host+endpoint.Path(), headers, "", v)
}

// Put sends listenKey=<key> as the body of an unsigned PUT.
func (c *Client) Put(ctx context.Context, endpoint API, listenKey string, v any) error {
	headers, err := c.buildHeaders(false)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, endpoint, c.host+endpoint.Path(), headers, "listenKey="+listenKey, v)
}

// Delete sends listenKey=<key> as the body of an unsigned DELETE.
func (c *Client) Delete(ctx context.Context, endpoint API, listenKey string, v any) error {
	headers, err := c.buildHeaders(false)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, endpoint, c.host+endpoint.Path(), headers, "listenKey="+listenKey, v)
}

func (c *Client) signed(ctx context.Context, method string, endpoint API, request string, v any) error {
	headers, err := c.buildHeaders(true)
	if err != nil {
		return err
	}
	return c.do(ctx, method, endpoint, c.signRequest(endpoint, request), headers, "", v)
}

// buildHeaders always sets the user agent and the API key header, even when
// the key is empty.
func (c *Client) buildHeaders(contentType bool) (http.Header, error) {
	if !httpguts.ValidHeaderFieldValue(c.apiKey) {
		return nil, &ConfigurationError{Field: "api key", Reason: "contains bytes not allowed in a header value"}
	}

	headers := make(http.Header)
	headers.Set("User-Agent", UserAgent)
	if contentType {
		headers.Set("Content-Type", formContentType)
	}
	headers.Set(APIKeyHeader, c.apiKey)
	return headers, nil
}

func (c *Client) do(ctx context.Context, method string, endpoint API, reqURL string, headers http.Header, body string, v any) (err error) {
	start := time.Now()
	if c.tracker != nil {
		defer func() { c.tracker.Track(endpoint.String(), time.Since(start), err) }()
	}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return &ConfigurationError{Field: "request", Reason: "cannot build " + endpoint.String(), Err: err}
	}
	for key, values := range headers {
		req.Header[key] = values
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The url.Error carries the signed query string.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.host + endpoint.Path()
		}
		logger.Error("Binance request failed", "method", method, "endpoint", endpoint.String(), "error", err)
		return &TransportError{Op: method, Endpoint: endpoint.String(), Err: err}
	}

	logArgs := []any{
		"method", method,
		"endpoint", endpoint.String(),
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	}
	if weight := resp.Header.Get(weightHeader); weight != "" {
		logArgs = append(logArgs, "used_weight_1m", weight)
		if used, convErr := strconv.Atoi(weight); convErr == nil && used > weightWarnLevel {
			logger.Warn("High API Weight Usage", logArgs...)
		}
	}
	logger.Debug("Binance request", logArgs...)

	return handler(resp, endpoint, v)
}
