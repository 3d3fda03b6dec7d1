package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/roach88/tabquery/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	BaseURL    string // overrides server.base_url
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tabquery CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tabquery",
		Short: "tabquery - query a tabular-data server",
		Long: `Build and send selectRows and executeSql requests to a tabular-data server.

Keys, filters and URLs can be inspected offline; select and sql need a
server base URL from --config or --base-url.`,
		SilenceErrors: true, // main prints errors not already reported
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "server base URL (overrides config)")

	cmd.AddCommand(NewKeyCommand(opts))
	cmd.AddCommand(NewFiltersCommand(opts))
	cmd.AddCommand(NewURLCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewSQLCommand(opts))

	return cmd
}

// loadConfig reads the config file named by --config, or the defaults, and
// applies flag overrides.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.BaseURL != "" {
		cfg.Server.BaseURL = opts.BaseURL
	}
	if opts.Verbose {
		cfg.Logger.Level = "debug"
	}
	return cfg, nil
}

// newLogger returns the configured logger writing to the formatter's
// diagnostic stream.
func newLogger(cfg *config.Config, f *OutputFormatter) (*slog.Logger, error) {
	return config.NewLogger(cfg.Logger, f.GetErrWriter())
}

// writeMetrics prints the client metrics in text exposition format to the
// diagnostic stream when metrics are enabled in the config.
func writeMetrics(cfg *config.Config, reg *prometheus.Registry, f *OutputFormatter) {
	if !cfg.Metrics.Enabled {
		return
	}
	families, err := reg.Gather()
	if err != nil {
		f.VerboseLog("gather metrics: %v", err)
		return
	}
	w := f.GetErrWriter()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			f.VerboseLog("write metrics: %v", err)
			return
		}
	}
}
