// Package filter binds a column, a value and a filter operator into a Filter
// and serializes filters into request parameters.
//
// A Filter renders itself as one URL parameter:
//
//	<region>.<column>~<suffix>=<value>
//
// The region defaults to "query". Column names and values are passed through
// raw; escaping belongs to the transport. Operators that need no value
// (ISBLANK, NONBLANK, ...) always render an empty value.
//
// AppendFilterParams accumulates filters into Params. Two filters with the
// same parameter name collapse into one List value instead of overwriting
// each other:
//
//	params, _ := filter.AppendFilterParams(nil, []*filter.Filter{
//	    filter.Create("Age", filter.Int(1), filtertype.Equal),
//	    filter.Create("Age", filter.Int(2), filtertype.Equal),
//	}, "")
//	// params["query.Age~eq"] == filter.List{filter.Int(1), filter.Int(2)}
package filter
