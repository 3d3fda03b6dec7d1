package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tabquery/internal/config"
	"github.com/roach88/tabquery/internal/filter"
	"github.com/roach88/tabquery/internal/query"
	"github.com/roach88/tabquery/internal/querykey"
)

// selectFlags are the request flags shared by url and select.
type selectFlags struct {
	schema    string
	query     string
	container string
	columns   []string
	sort      string
	filters   []string
	params    []string
	maxRows   int
	offset    int
	region    string
}

func (s *selectFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&s.schema, "schema", "s", "", "schema name, e.g. lists or assay.General")
	fl.StringVarP(&s.query, "query", "q", "", "query name")
	fl.StringVar(&s.container, "container", "", "container path (overrides config)")
	fl.StringSliceVar(&s.columns, "column", nil, "encoded column key; repeatable")
	fl.StringVar(&s.sort, "sort", "", "sort list, e.g. -Created,Name")
	fl.StringArrayVarP(&s.filters, "filter", "f", nil, "filter as column~suffix=value; repeatable")
	fl.StringArrayVarP(&s.params, "param", "p", nil, "query parameter as name=value; repeatable")
	fl.IntVar(&s.maxRows, "max-rows", 0, "maximum rows; -1 for all")
	fl.IntVar(&s.offset, "offset", 0, "rows to skip")
	fl.StringVar(&s.region, "region", "", "data region name (default \"query\")")
}

// config merges the flags over the defaults from the config file.
func (s *selectFlags) config(cfg *config.Config) (query.SelectRowsConfig, error) {
	rc := cfg.SelectRows()

	if s.schema != "" {
		rc.SchemaName = querykey.SchemaKeyFromString(s.schema)
	}
	if s.query != "" {
		rc.QueryName = s.query
	}
	if s.container != "" {
		rc.ContainerPath = s.container
	}
	if s.region != "" {
		rc.RegionName = s.region
	}
	if len(s.columns) > 0 {
		rc.Columns = make([]*querykey.FieldKey, len(s.columns))
		for i, c := range s.columns {
			rc.Columns[i] = querykey.FieldKeyFromString(c)
		}
	}
	if s.sort != "" {
		rc.Sort = query.ParseSort(s.sort)
	}
	if s.maxRows != 0 {
		rc.MaxRows = s.maxRows
	}
	if s.offset != 0 {
		rc.Offset = s.offset
	}

	params, err := parseAssignments(s.params)
	if err != nil {
		return rc, err
	}
	rc.Parameters = params

	filters, err := parseFilterFlags(s.filters)
	if err != nil {
		return rc, err
	}
	rc.Filters = filters

	if rc.SchemaName == nil || rc.QueryName == "" {
		return rc, NewExitError(ExitCommandError, "--schema and --query are required (or set query.schema and query.query_name in the config)")
	}
	return rc, nil
}

// parseFilterFlags turns "column~suffix=value" flags into filters, in the
// order given. A flag without "~" uses the eq operator; a flag without "="
// carries no value.
func parseFilterFlags(flags []string) ([]filter.ColumnFilter, error) {
	var out []filter.ColumnFilter
	for _, fl := range flags {
		name, value, _ := strings.Cut(fl, "=")
		if name == "" {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid filter %q: missing column", fl))
		}
		if !strings.Contains(name, "~") {
			name += "~eq"
		}
		param := url.Values{filter.DefaultRegionName + "." + name: {value}}

		parsed, err := filter.FromURL(param.Encode(), filter.DefaultRegionName)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid filter", err)
		}
		for _, f := range parsed {
			out = append(out, f)
		}
	}
	return out, nil
}

func parseAssignments(items []string) (map[string]string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(items))
	for _, item := range items {
		name, value, ok := strings.Cut(item, "=")
		if !ok || name == "" {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid parameter %q: want name=value", item))
		}
		out[name] = value
	}
	return out, nil
}
