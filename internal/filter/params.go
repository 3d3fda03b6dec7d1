package filter

import (
	"fmt"
	"net/url"
	"reflect"
	"slices"
)

// Params maps request parameter names to values. A name that received more
// than one filter holds a List.
type Params map[string]Value

// AppendFilterParams adds each filter's parameter to params, in order, and
// returns the map.
//
// Filters whose operator needs a value but that carry none are skipped.
// A repeated parameter name turns the existing value into a List and
// appends to it. The supplied map is modified in place; a nil map is
// replaced by a fresh one. A nil filter fails with ErrNilFilter.
func AppendFilterParams[F ColumnFilter](params Params, filters []F, regionName string) (Params, error) {
	if params == nil {
		params = make(Params, len(filters))
	}

	for i, f := range filters {
		if isNilFilter(f) {
			return params, fmt.Errorf("filter %d: %w", i, ErrNilFilter)
		}
		if f.FilterType().IsDataValueRequired() && isAbsent(f.Value()) {
			continue
		}

		name := f.URLParameterName(regionName)
		val := f.URLParameterValue()

		existing, ok := params[name]
		if !ok {
			params[name] = val
			continue
		}
		list, isList := existing.(List)
		if !isList {
			list = List{existing}
		}
		// Clip so a List shared with another map is copied, never written through.
		params[name] = append(slices.Clip(list), val)
	}

	return params, nil
}

// Values flattens params into url.Values. A List becomes a repeated key.
func (p Params) Values() url.Values {
	out := make(url.Values, len(p))
	for name, v := range p {
		if list, ok := v.(List); ok {
			for _, e := range list {
				out.Add(name, FormatValue(e))
			}
			continue
		}
		out.Add(name, FormatValue(v))
	}
	return out
}

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Merge returns base without the filters on column, followed by added.
// Column names are compared case-sensitively. base is not modified.
func Merge[F ColumnFilter](base []F, column string, added []F) []F {
	out := make([]F, 0, len(base)+len(added))
	for _, f := range base {
		if f.ColumnName() != column {
			out = append(out, f)
		}
	}
	return append(out, added...)
}

func isNilFilter(f ColumnFilter) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
