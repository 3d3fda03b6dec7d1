package cli

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/roach88/tabquery/internal/query"
	"github.com/roach88/tabquery/internal/querykey"
)

// NewSQLCommand creates the sql command.
func NewSQLCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		schema    string
		from      string
		columns   []string
		sort      string
		maxRows   int
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "sql [statement]",
		Short: "Run a SQL statement against a schema",
		Long: `Send an executeSql request and print the rows.

Without a statement, a SELECT is built from --from and --column, quoting
names that need it. --print shows the statement without sending it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			if schema == "" {
				return f.Fail(NewExitError(ExitCommandError, "--schema is required"))
			}
			schemaKey := querykey.SchemaKeyFromString(schema)

			var statement string
			switch {
			case len(args) == 1:
				statement = args[0]
			case from != "":
				keys := make([]*querykey.FieldKey, len(columns))
				for i, c := range columns {
					keys[i] = querykey.FieldKeyFromString(c)
				}
				statement = query.SelectStatement(schemaKey, from, keys)
			default:
				return f.Fail(NewExitError(ExitCommandError, "a statement or --from is required"))
			}

			if printOnly {
				return f.Success(map[string]string{"sql": statement}, func(w io.Writer) error {
					_, err := io.WriteString(w, statement+"\n")
					return err
				})
			}

			return runSQL(cmd.Context(), rootOpts, f, query.ExecuteSQLConfig{
				SchemaName: schemaKey,
				SQL:        statement,
				MaxRows:    maxRows,
				Sort:       query.ParseSort(sort),
			})
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name")
	cmd.Flags().StringVar(&from, "from", "", "query to select from when no statement is given")
	cmd.Flags().StringSliceVar(&columns, "column", nil, "encoded column key; repeatable")
	cmd.Flags().StringVar(&sort, "sort", "", "sort list, e.g. -Created,Name")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "maximum rows")
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the statement instead of running it")

	return cmd
}

func runSQL(ctx context.Context, opts *RootOptions, f *OutputFormatter, sc query.ExecuteSQLConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return f.Fail(err)
	}
	logger, err := newLogger(cfg, f)
	if err != nil {
		return f.Fail(err)
	}
	reg := prometheus.NewRegistry()
	client, err := cfg.QueryClient(logger, reg)
	if err != nil {
		return f.Fail(err)
	}
	defer writeMetrics(cfg, reg, f)
	sc.ContainerPath = cfg.Server.ContainerPath

	f.VerboseLog("Executing on %s: %s", sc.SchemaName, sc.SQL)
	resp, err := client.ExecuteSQL(ctx, sc)
	if err != nil {
		return f.Fail(err)
	}

	return f.SuccessWithRequestID(resp.RequestID, resp, func(w io.Writer) error {
		return writeRows(w, resp)
	})
}
