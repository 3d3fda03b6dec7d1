package filter

import (
	"strings"

	"github.com/roach88/tabquery/internal/filtertype"
)

// DefaultRegionName prefixes filter parameters when no region is given.
const DefaultRegionName = "query"

// ColumnFilter is what request builders need from a filter. Filter
// implements it; callers may supply their own implementations.
type ColumnFilter interface {
	ColumnName() string
	Value() Value
	FilterType() filtertype.FilterType
	URLParameterName(regionName string) string
	URLParameterValue() Value
}

// Filter is an immutable column/value/operator binding.
type Filter struct {
	column     string
	value      Value
	filterType filtertype.FilterType
}

// Create binds a column, a value and an operator. A nil operator means
// filtertype.Equal. Nothing is validated here; use FilterType.Validate.
func Create(column string, value Value, ft filtertype.FilterType) *Filter {
	if ft == nil {
		ft = filtertype.Equal
	}
	return &Filter{column: column, value: value, filterType: ft}
}

// ColumnName returns the raw column name as supplied.
func (f *Filter) ColumnName() string {
	return f.column
}

// Value returns the raw value, which may be nil.
func (f *Filter) Value() Value {
	return f.value
}

// FilterType returns the operator.
func (f *Filter) FilterType() filtertype.FilterType {
	return f.filterType
}

// URLParameterName returns "<region>.<column>~<suffix>". An empty region
// means DefaultRegionName.
func (f *Filter) URLParameterName(regionName string) string {
	if regionName == "" {
		regionName = DefaultRegionName
	}
	return regionName + "." + f.column + "~" + f.filterType.URLSuffix()
}

// URLParameterValue returns the raw value, or an empty String when the
// operator takes no value.
func (f *Filter) URLParameterValue() Value {
	if !f.filterType.IsDataValueRequired() {
		return String("")
	}
	return f.value
}

// Describe returns a short human readable form such as "Age >= 21" or
// "Name Is Blank".
func (f *Filter) Describe() string {
	op := f.filterType.DisplaySymbol()
	if op == "" {
		op = strings.TrimSpace(f.filterType.LongDisplayText())
	}
	if !f.filterType.IsDataValueRequired() {
		return f.column + " " + op
	}
	return f.column + " " + op + " " + FormatValue(f.value)
}
