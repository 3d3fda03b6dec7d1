package querykey

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// encodeSubstitutions is applied top to bottom by EncodePart and bottom to top
// by DecodePart. "$" must stay first.
var encodeSubstitutions = [][2]string{
	{"$", "$D"},
	{"/", "$S"},
	{"&", "$A"},
	{"}", "$B"},
	{"~", "$T"},
	{",", "$C"},
	{".", "$P"},
}

// EncodePart escapes a single unencoded segment so it can be joined with any
// key divider.
func EncodePart(s string) string {
	for _, sub := range encodeSubstitutions {
		s = strings.ReplaceAll(s, sub[0], sub[1])
	}
	return s
}

// DecodePart reverses EncodePart.
func DecodePart(s string) string {
	for i := len(encodeSubstitutions) - 1; i >= 0; i-- {
		sub := encodeSubstitutions[i]
		s = strings.ReplaceAll(s, sub[1], sub[0])
	}
	return s
}

var identifierPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_$]*$`)

// reservedWords are SQL keywords that must be quoted even when they look
// like plain identifiers. Stored case-folded.
var reservedWords = map[string]struct{}{}

func init() {
	words := []string{
		"all", "any", "and", "as", "asc", "avg", "between", "class", "count",
		"delete", "desc", "distinct", "elements", "escape", "except", "exists",
		"false", "fetch", "from", "full", "group", "having", "in", "indices",
		"inner", "insert", "intersect", "into", "is", "join", "left", "like",
		"limit", "max", "min", "new", "not", "null", "or", "order", "outer",
		"right", "select", "set", "some", "sum", "true", "union", "update",
		"user", "versioned", "where", "case", "end", "else", "then", "when",
		"on", "both", "empty", "leading", "member", "of", "trailing",
	}
	for _, w := range words {
		reservedWords[fold(w)] = struct{}{}
	}
}

// NeedsQuotes reports whether a segment must be quoted in SQL: it is not a
// plain identifier, or it is a reserved word.
func NeedsQuotes(s string) bool {
	if !identifierPattern.MatchString(s) {
		return true
	}
	_, reserved := reservedWords[fold(s)]
	return reserved
}

// Quote wraps s in double quotes, doubling any embedded double quote.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// fold returns the case-folded form of s. A Caser is stateful, so one is
// created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
