package query

import (
	"fmt"
	"strings"

	"github.com/roach88/tabquery/internal/filter"
	"github.com/roach88/tabquery/internal/querykey"
)

// Sort orders results by one column.
type Sort struct {
	Column     *querykey.FieldKey
	Descending bool
}

// String returns the sort in URL form: the encoded column, prefixed with
// "-" when descending.
func (s Sort) String() string {
	if s.Descending {
		return "-" + s.Column.String()
	}
	return s.Column.String()
}

// ParseSort parses a comma-separated sort list such as "-Created,Name".
func ParseSort(raw string) []Sort {
	var sorts []Sort
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" || item == "-" {
			continue
		}
		desc := strings.HasPrefix(item, "-")
		sorts = append(sorts, Sort{
			Column:     querykey.FieldKeyFromString(strings.TrimPrefix(item, "-")),
			Descending: desc,
		})
	}
	return sorts
}

// SelectRowsConfig describes a selectRows request.
type SelectRowsConfig struct {
	SchemaName    *querykey.SchemaKey
	QueryName     string
	ContainerPath string

	// Columns limits the result to these columns; empty means the query's
	// default view.
	Columns []*querykey.FieldKey

	Sort    []Sort
	Filters []filter.ColumnFilter

	// Parameters are values for a parameterized query.
	Parameters map[string]string

	// MaxRows caps the row count. Zero leaves the server default; a negative
	// value requests all rows.
	MaxRows int
	Offset  int

	// RegionName prefixes every query parameter; empty means "query".
	RegionName string
}

func (c SelectRowsConfig) region() string {
	if c.RegionName == "" {
		return filter.DefaultRegionName
	}
	return c.RegionName
}

// Params returns the request parameters.
func (c SelectRowsConfig) Params() (filter.Params, error) {
	if c.SchemaName == nil {
		return nil, ErrMissingSchema
	}
	if c.QueryName == "" {
		return nil, ErrMissingQuery
	}

	region := c.region()
	p := make(filter.Params)
	p["schemaName"] = filter.String(c.SchemaName.String())
	p[region+".queryName"] = filter.String(c.QueryName)

	if len(c.Columns) > 0 {
		cols := make([]string, len(c.Columns))
		for i, col := range c.Columns {
			cols[i] = col.String()
		}
		p[region+".columns"] = filter.String(strings.Join(cols, ","))
	}
	if len(c.Sort) > 0 {
		sorts := make([]string, len(c.Sort))
		for i, s := range c.Sort {
			sorts[i] = s.String()
		}
		p[region+".sort"] = filter.String(strings.Join(sorts, ","))
	}

	switch {
	case c.MaxRows > 0:
		p[region+".maxRows"] = filter.Int(c.MaxRows)
	case c.MaxRows < 0:
		p[region+".showRows"] = filter.String("all")
	}
	if c.Offset > 0 {
		p[region+".offset"] = filter.Int(c.Offset)
	}

	for name, v := range c.Parameters {
		p[region+".param."+name] = filter.String(v)
	}

	if _, err := filter.AppendFilterParams(p, c.Filters, region); err != nil {
		return nil, fmt.Errorf("select rows %s.%s: %w", c.SchemaName, c.QueryName, err)
	}
	return p, nil
}
