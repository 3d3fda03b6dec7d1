// Package filtertype is the catalog of filter operators understood by the
// tabular-data server.
//
// Each operator is a FilterType: an immutable descriptor with display text,
// an optional display symbol, the URL suffix that identifies it on the wire,
// and whether it needs a data value. Multi-valued operators (IN, BETWEEN, ...)
// also carry the separator their values are joined with and optional
// occurrence bounds.
//
// The catalog is built once when the package is initialized and never
// changes afterwards, so it is safe for concurrent reads without locking.
//
// RELATIONSHIPS:
//
// Operators are related through tables keyed by URL suffix:
//
//	opposite        eq -> neqornull, in -> notin, gt -> lte, ...
//	single -> multi eq -> in, contains -> containsoneof, ...
//	multi -> single in -> eq, notin -> neq, ...
//
// The registry is built in two phases. All descriptors are created and
// indexed by suffix first, then every descriptor is bound to the shared
// registry. Opposite, MultiValueFilter and SingleValueFilter therefore
// resolve against the fully populated tables regardless of declaration order.
// A missing table entry resolves to nil.
//
// ALIASES:
//
// Several catalog names share one descriptor (EQUALS_ONE_OF is IN, NEQ is
// NOT_EQUAL, MISSING is ISBLANK, ...). Aliases are the same value, so
// identity comparisons hold:
//
//	filtertype.Types["EQUALS_ONE_OF"] == filtertype.In // true
package filtertype
