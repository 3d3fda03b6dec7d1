package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/tabquery/internal/filter"
)

// URLResult is the output of the url command.
type URLResult struct {
	URL     string   `json:"url"`
	Filters []string `json:"filters,omitempty"`
}

// NewURLCommand creates the url command.
func NewURLCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &selectFlags{}

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the selectRows URL for a query",
		Long: `Print the selectRows URL for a query without sending it.

Filters are given as column~suffix=value, for example:

  tabquery url --base-url https://example.org -s lists -q People \
    -f 'Age~gte=21' -f 'Name~startswith=A' -f 'Email~isnonblank'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runURL(rootOpts, flags, cmd)
		},
	}
	flags.register(cmd)

	return cmd
}

func runURL(opts *RootOptions, flags *selectFlags, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	cfg, err := loadConfig(opts)
	if err != nil {
		return f.Fail(err)
	}
	rc, err := flags.config(cfg)
	if err != nil {
		return f.Fail(err)
	}
	client, err := cfg.QueryClient(nil, nil)
	if err != nil {
		return f.Fail(err)
	}
	u, err := client.SelectRowsURL(rc)
	if err != nil {
		return f.Fail(err)
	}

	result := URLResult{URL: u, Filters: describeFilters(rc.Filters)}

	return f.Success(result, func(w io.Writer) error {
		fmt.Fprintln(w, result.URL)
		return nil
	})
}

// describeFilters returns the readable form of each filter.
func describeFilters(filters []filter.ColumnFilter) []string {
	var out []string
	for _, fl := range filters {
		if d, ok := fl.(*filter.Filter); ok {
			out = append(out, d.Describe())
		}
	}
	return out
}
