// Package querykey provides hierarchical identifiers for columns and schemas
// on the tabular-data server.
//
// A key is a chain of named segments. Each segment holds one unencoded name
// and a reference to its parent segment. The chain is built root first and is
// immutable once constructed, so it can never contain a cycle.
//
// KINDS:
//
// There is a single generic key type, Key[K], parameterized by its Kind. The
// kind supplies the divider used when a key is rendered to its encoded form:
//
//	FieldKey  = Key[Field]   divider "/"   columns, possibly through lookups
//	SchemaKey = Key[Schema]  divider "."   schemas, possibly nested
//
// ENCODING:
//
// Encoded keys are a cross-language contract with the server. Each segment is
// escaped with EncodePart before it is joined with the divider, and each piece
// of a split string is passed through DecodePart:
//
//	$ -> $D   / -> $S   & -> $A   } -> $B   ~ -> $T   , -> $C   . -> $P
//
// The substitution order is fixed. "$" is escaped first and restored last so
// no escape sequence can be produced or consumed by accident.
//
// Example:
//
//	fk := querykey.FieldKeyFromString("Lookup/Title")
//	fk.Parts()         // ["Lookup", "Title"]
//	fk.String()        // "Lookup/Title"
//	fk.DisplayString() // "Lookup.Title"
//	fk.SQLString()     // "Lookup.Title"
package querykey
