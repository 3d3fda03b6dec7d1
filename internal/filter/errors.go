package filter

import "errors"

var (
	// ErrNilFilter is returned when a filter list contains a nil entry.
	ErrNilFilter = errors.New("nil filter")

	// ErrUnknownFilterType is returned when a URL parameter names a suffix
	// that is not in the catalog.
	ErrUnknownFilterType = errors.New("unknown filter type")
)
