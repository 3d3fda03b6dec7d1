package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/roach88/tabquery/internal/filter"
	"github.com/roach88/tabquery/internal/query"
)

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &selectFlags{}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Read rows from a query",
		Long: `Send a selectRows request and print the rows.

Filters use the same column~suffix=value form as the url command. After
the response arrives, each filter is checked against the column types the
server reported; mismatches fail with exit code 1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd.Context(), rootOpts, flags, cmd)
		},
	}
	flags.register(cmd)

	return cmd
}

func runSelect(ctx context.Context, opts *RootOptions, flags *selectFlags, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := newFormatter(opts, cmd)

	cfg, err := loadConfig(opts)
	if err != nil {
		return f.Fail(err)
	}
	logger, err := newLogger(cfg, f)
	if err != nil {
		return f.Fail(err)
	}
	rc, err := flags.config(cfg)
	if err != nil {
		return f.Fail(err)
	}
	reg := prometheus.NewRegistry()
	client, err := cfg.QueryClient(logger, reg)
	if err != nil {
		return f.Fail(err)
	}
	defer writeMetrics(cfg, reg, f)

	f.VerboseLog("Selecting from %s.%s with %d filter(s)", rc.SchemaName, rc.QueryName, len(rc.Filters))
	resp, err := client.SelectRows(ctx, rc)
	if err != nil {
		return f.Fail(err)
	}
	if err := resp.ValidateFilters(rc.Filters); err != nil {
		return f.Fail(err)
	}

	return f.SuccessWithRequestID(resp.RequestID, resp, func(w io.Writer) error {
		return writeRows(w, resp)
	})
}

// writeRows prints the rows as an aligned table, columns in metadata order.
func writeRows(w io.Writer, resp *query.Response) error {
	columns := make([]string, 0, len(resp.MetaData.Fields))
	for _, field := range resp.MetaData.Fields {
		columns = append(columns, field.Name)
	}
	if len(columns) == 0 && len(resp.Rows) > 0 {
		for name := range resp.Rows[0] {
			columns = append(columns, name)
		}
		slices.Sort(columns)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
	for _, row := range resp.Rows {
		for i, c := range columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell(row[c]))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "(%s of %s rows)\n",
		humanize.Comma(int64(len(resp.Rows))), humanize.Comma(int64(resp.RowCount)))
	return err
}

func cell(v any) string {
	if v == nil {
		return ""
	}
	fv, err := filter.ValueOf(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return filter.FormatValue(fv)
}
