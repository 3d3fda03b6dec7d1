package config

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/tabquery/internal/query"
	"github.com/roach88/tabquery/internal/transport"
	"github.com/roach88/tabquery/internal/urlbuild"
)

// QueryClient builds a query client for the configured server. Metrics are
// registered with reg when enabled in the file and reg is non-nil.
func (c *Config) QueryClient(logger *slog.Logger, reg prometheus.Registerer) (*query.Client, error) {
	urls, err := urlbuild.New(c.Server.BaseURL, c.Server.ContextPath)
	if err != nil {
		return nil, &Error{Code: ErrCodeValue, Message: err.Error(), Err: err}
	}

	opts := []transport.Option{
		transport.WithTimeout(c.Server.Timeout),
	}
	if logger != nil {
		opts = append(opts, transport.WithLogger(logger))
	}
	for k, v := range c.Server.Headers {
		opts = append(opts, transport.WithHeader(k, v))
	}
	if c.Metrics.Enabled && reg != nil {
		opts = append(opts, transport.WithMetrics(transport.NewMetrics(reg)))
	}

	return query.NewClient(urls, transport.New(opts...), logger), nil
}

// SelectRows returns a selectRows configuration seeded from the query
// defaults in the file.
func (c *Config) SelectRows() query.SelectRowsConfig {
	return query.SelectRowsConfig{
		SchemaName:    c.Query.Schema,
		QueryName:     c.Query.QueryName,
		ContainerPath: c.Server.ContainerPath,
		Columns:       c.Query.Columns,
		MaxRows:       c.Query.MaxRows,
		RegionName:    c.Query.RegionName,
	}
}
