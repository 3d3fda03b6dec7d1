// Package query builds and sends selectRows and executeSql requests.
//
// SELECT ROWS
//
// SelectRowsConfig describes a read of one query: schema, query name,
// columns, sorts, paging, named parameters and filters. Params renders it
// into the flat parameter map the server expects, with every name prefixed
// by the data region (default "query"):
//
//	schemaName=lists
//	query.queryName=People
//	query.columns=Name,Address/City
//	query.Age~gt=21
//
// EXECUTE SQL
//
// ExecuteSQLConfig posts a SQL statement. SelectStatement renders a plain
// SELECT over FieldKeys using their SQL form.
//
// Responses decode into Response, whose field metadata carries the JSON
// type each column's filters are validated against.
package query
