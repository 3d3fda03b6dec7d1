package query

import (
	"errors"
	"fmt"

	"github.com/roach88/tabquery/internal/filter"
	"github.com/roach88/tabquery/internal/filtertype"
	"github.com/roach88/tabquery/internal/querykey"
)

// Field describes one result column.
type Field struct {
	Name       string             `json:"name"`
	FieldKey   *querykey.FieldKey `json:"fieldKeyPath,omitempty"`
	Caption    string             `json:"caption,omitempty"`
	JSONType   string             `json:"jsonType"`
	MultiValue bool               `json:"multiValue,omitempty"`
}

// Key returns the field's key, falling back to its name.
func (f Field) Key() *querykey.FieldKey {
	if f.FieldKey != nil {
		return f.FieldKey
	}
	return querykey.FieldKeyFromString(f.Name)
}

// FilterTypes returns the operators that apply to the field.
func (f Field) FilterTypes() []filtertype.FilterType {
	return filtertype.ForJSONType(f.JSONType, f.MultiValue)
}

// Metadata describes the result set.
type Metadata struct {
	ID     string  `json:"id,omitempty"`
	Fields []Field `json:"fields"`
}

// Row is one result row keyed by column name.
type Row map[string]any

// Response is the decoded body of a selectRows or executeSql answer.
type Response struct {
	SchemaName string   `json:"schemaName"`
	QueryName  string   `json:"queryName"`
	RowCount   int      `json:"rowCount"`
	Rows       []Row    `json:"rows"`
	MetaData   Metadata `json:"metaData"`

	// RequestID is the X-Request-Id of the request that produced this
	// response.
	RequestID string `json:"-"`
}

// Field returns the metadata for the named column, matching names
// case-insensitively by key.
func (r *Response) Field(name string) (Field, bool) {
	key := querykey.FieldKeyFromString(name)
	for _, f := range r.MetaData.Fields {
		if f.Key().Equals(key) {
			return f, true
		}
	}
	return Field{}, false
}

// ValidateFilters checks each filter's value against the JSON type of its
// column. Filters on columns absent from the metadata are not checked. All
// failures are joined.
func (r *Response) ValidateFilters(filters []filter.ColumnFilter) error {
	var errs []error
	for _, f := range filters {
		field, ok := r.Field(f.ColumnName())
		if !ok {
			continue
		}
		value := filter.FormatValue(f.Value())
		if err := f.FilterType().Validate(value, field.JSONType, f.ColumnName()); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validate filters: %w", errors.Join(errs...))
	}
	return nil
}
