package query

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/roach88/tabquery/internal/transport"
	"github.com/roach88/tabquery/internal/urlbuild"
)

const (
	controller       = "query"
	selectRowsAction = "selectRows.api"
	executeSQLAction = "executeSql.api"
)

// Client sends query requests to one server.
type Client struct {
	urls      *urlbuild.Builder
	transport *transport.Client
	logger    *slog.Logger
}

// NewClient creates a Client. A nil logger discards output.
func NewClient(urls *urlbuild.Builder, tc *transport.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{urls: urls, transport: tc, logger: logger}
}

// SelectRowsURL returns the GET URL for cfg.
func (c *Client) SelectRowsURL(cfg SelectRowsConfig) (string, error) {
	params, err := cfg.Params()
	if err != nil {
		return "", err
	}
	return c.urls.Build(controller, selectRowsAction, cfg.ContainerPath, params.Values()), nil
}

// SelectRows reads rows from one query.
func (c *Client) SelectRows(ctx context.Context, cfg SelectRowsConfig) (*Response, error) {
	req, err := c.selectRowsRequest(cfg)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "select rows",
		"schema", cfg.SchemaName.String(),
		"query", cfg.QueryName,
		"filters", len(cfg.Filters))

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("select rows: %w", err)
	}
	return decode(resp)
}

// SelectRowsAsync runs SelectRows on its own goroutine and invokes exactly
// one callback. Configuration errors are reported through Failure.
func (c *Client) SelectRowsAsync(ctx context.Context, cfg SelectRowsConfig, cb Callbacks) <-chan struct{} {
	req, err := c.selectRowsRequest(cfg)
	if err != nil {
		done := make(chan struct{})
		go func() {
			defer close(done)
			cb.fail(err)
		}()
		return done
	}
	return c.transport.Go(ctx, req, transport.Callbacks{
		Success: func(resp *transport.Response) {
			out, err := decode(resp)
			if err != nil {
				cb.fail(err)
				return
			}
			cb.succeed(out)
		},
		Failure: func(err error) { cb.fail(fmt.Errorf("select rows: %w", err)) },
	})
}

// ExecuteSQL runs a SQL statement against a schema.
func (c *Client) ExecuteSQL(ctx context.Context, cfg ExecuteSQLConfig) (*Response, error) {
	body, err := cfg.payload()
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "execute sql", "schema", body.SchemaName, "sql", body.SQL)

	resp, err := c.transport.Do(ctx, transport.Request{
		Method:  http.MethodPost,
		URL:     c.urls.Build(controller, executeSQLAction, cfg.ContainerPath, nil),
		Payload: body,
	})
	if err != nil {
		return nil, fmt.Errorf("execute sql: %w", err)
	}
	return decode(resp)
}

func (c *Client) selectRowsRequest(cfg SelectRowsConfig) (transport.Request, error) {
	url, err := c.SelectRowsURL(cfg)
	if err != nil {
		return transport.Request{}, err
	}
	return transport.Request{Method: http.MethodGet, URL: url}, nil
}

func decode(resp *transport.Response) (*Response, error) {
	var out Response
	if err := resp.DecodeJSON(&out); err != nil {
		return nil, err
	}
	out.RequestID = resp.RequestID
	return &out, nil
}

// Callbacks receive the outcome of an async request. Either may be nil.
type Callbacks struct {
	Success func(*Response)
	Failure func(error)
}

func (cb Callbacks) succeed(r *Response) {
	if cb.Success != nil {
		cb.Success(r)
	}
}

func (cb Callbacks) fail(err error) {
	if cb.Failure != nil {
		cb.Failure(err)
	}
}
