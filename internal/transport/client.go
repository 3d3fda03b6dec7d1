package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// Request is one call to the server.
type Request struct {
	Method string
	URL    string

	// Payload is encoded as the JSON request body when non-nil.
	Payload any

	Header http.Header
}

// Response is a successful (2xx) answer.
type Response struct {
	Status    int
	Body      []byte
	RequestID string
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response (request=%s): %w", r.RequestID, err)
	}
	return nil
}

// Client sends requests. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	metrics    *Metrics
	header     http.Header
	newID      func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout. It applies to a copy of the
// *http.Client, so a client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger. Requests are logged at debug level, failures
// at warn.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Add(key, value) }
}

// WithRequestIDFunc replaces the request ID generator.
func WithRequestIDFunc(f func() string) Option {
	return func(c *Client) { c.newID = f }
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
		header:     make(http.Header),
		newID:      func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// serverError is the error body shape returned by the server.
type serverError struct {
	Exception      string `json:"exception"`
	ExceptionClass string `json:"exceptionClass"`
}

// Do performs req. Non-2xx answers and transport failures are returned as
// *RequestError.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	requestID := c.newID()
	fail := func(status int, err error) *RequestError {
		return &RequestError{Status: status, Method: method, URL: req.URL, RequestID: requestID, Err: err}
	}

	var body io.Reader
	if req.Payload != nil {
		data, err := json.Marshal(req.Payload)
		if err != nil {
			return nil, fail(0, fmt.Errorf("encode payload: %w", err))
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fail(0, err)
	}
	for k, vs := range c.header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(method, 0, time.Since(start))
		c.logger.WarnContext(ctx, "request failed",
			"request_id", requestID, "method", method, "url", req.URL, "error", err)
		return nil, fail(0, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	elapsed := time.Since(start)
	c.metrics.observe(method, httpResp.StatusCode, elapsed)
	if err != nil {
		return nil, fail(httpResp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	c.logger.DebugContext(ctx, "request",
		"request_id", requestID,
		"method", method,
		"url", req.URL,
		"status", httpResp.StatusCode,
		"duration", elapsed)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		reqErr := fail(httpResp.StatusCode, nil)
		var se serverError
		if json.Unmarshal(data, &se) == nil {
			reqErr.Exception = se.Exception
			reqErr.ExceptionClass = se.ExceptionClass
		}
		c.logger.WarnContext(ctx, "request rejected",
			"request_id", requestID, "status", httpResp.StatusCode, "exception", reqErr.Exception)
		return nil, reqErr
	}

	return &Response{Status: httpResp.StatusCode, Body: data, RequestID: requestID}, nil
}

// Callbacks receive the outcome of Client.Go. Either may be nil.
type Callbacks struct {
	Success func(*Response)
	Failure func(error)
}

// Go performs req on a new goroutine and invokes exactly one callback. The
// returned channel is closed after the callback returns.
func (c *Client) Go(ctx context.Context, req Request, cb Callbacks) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		resp, err := c.Do(ctx, req)
		if err != nil {
			if cb.Failure != nil {
				cb.Failure(err)
			}
			return
		}
		if cb.Success != nil {
			cb.Success(resp)
		}
	}()
	return done
}
