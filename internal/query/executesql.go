package query

import (
	"strings"

	"github.com/roach88/tabquery/internal/querykey"
)

// ExecuteSQLConfig describes an executeSql request.
type ExecuteSQLConfig struct {
	SchemaName    *querykey.SchemaKey
	SQL           string
	ContainerPath string
	MaxRows       int
	Offset        int
	Sort          []Sort
	Parameters    map[string]string
}

// executeSQLPayload is the JSON body of an executeSql request.
type executeSQLPayload struct {
	SchemaName string            `json:"schemaName"`
	SQL        string            `json:"sql"`
	MaxRows    int               `json:"maxRows,omitempty"`
	Offset     int               `json:"offset,omitempty"`
	Sort       string            `json:"query.sort,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// payload validates c and returns the request body.
func (c ExecuteSQLConfig) payload() (*executeSQLPayload, error) {
	if c.SchemaName == nil {
		return nil, ErrMissingSchema
	}
	if strings.TrimSpace(c.SQL) == "" {
		return nil, ErrMissingSQL
	}
	body := &executeSQLPayload{
		SchemaName: c.SchemaName.String(),
		SQL:        c.SQL,
		MaxRows:    c.MaxRows,
		Offset:     c.Offset,
		Parameters: c.Parameters,
	}
	if len(c.Sort) > 0 {
		sorts := make([]string, len(c.Sort))
		for i, s := range c.Sort {
			sorts[i] = s.String()
		}
		body.Sort = strings.Join(sorts, ",")
	}
	return body, nil
}

// SelectStatement renders "SELECT <columns> FROM <schema>.<query>" using
// the SQL form of each key. No columns selects "*".
func SelectStatement(schema *querykey.SchemaKey, queryName string, columns []*querykey.FieldKey) string {
	selectList := "*"
	if len(columns) > 0 {
		cols := make([]string, len(columns))
		for i, col := range columns {
			cols[i] = col.SQLString()
		}
		selectList = strings.Join(cols, ", ")
	}

	from := queryName
	if querykey.NeedsQuotes(from) {
		from = querykey.Quote(from)
	}
	if schema != nil {
		from = schema.SQLString() + "." + from
	}

	return "SELECT " + selectList + " FROM " + from
}
