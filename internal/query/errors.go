package query

import "errors"

var (
	// ErrMissingSchema is returned when a request has no schema name.
	ErrMissingSchema = errors.New("schema name is required")

	// ErrMissingQuery is returned when a selectRows request has no query name.
	ErrMissingQuery = errors.New("query name is required")

	// ErrMissingSQL is returned when an executeSql request has no statement.
	ErrMissingSQL = errors.New("sql is required")
)
