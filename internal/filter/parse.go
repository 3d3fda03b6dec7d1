package filter

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/roach88/tabquery/internal/filtertype"
)

// FromURL reads the filters of one region back out of a query string.
//
// Parameters named "<region>.<column>~<suffix>" become filters; other
// parameters of the region (sort, columns, ...) and other regions are
// ignored. An empty region means DefaultRegionName. Filters are returned
// sorted by parameter name, repeated parameters in the order given.
func FromURL(rawQuery, regionName string) ([]*Filter, error) {
	if regionName == "" {
		regionName = DefaultRegionName
	}

	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return nil, fmt.Errorf("parse query string: %w", err)
	}

	prefix := regionName + "."
	var filters []*Filter
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		rest := strings.TrimPrefix(name, prefix)
		tilde := strings.LastIndex(rest, "~")
		if tilde < 0 {
			continue
		}

		column, suffix := rest[:tilde], rest[tilde+1:]
		ft, ok := filtertype.FromURLSuffix(suffix)
		if !ok {
			return nil, fmt.Errorf("parameter %q: %w: %q", name, ErrUnknownFilterType, suffix)
		}

		for _, raw := range values[name] {
			var v Value
			if ft.IsDataValueRequired() {
				v = String(raw)
			}
			filters = append(filters, Create(column, v, ft))
		}
	}

	return filters, nil
}
