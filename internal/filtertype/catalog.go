package filtertype

// catalog is the full operator list, in display order.
var catalog = []definition{
	{name: "HAS_ANY_VALUE", displayText: "Has Any Value"},
	{name: "EQUAL", displayText: "Equals", displaySymbol: "=", urlSuffix: "eq", dataValueRequired: true},
	{name: "DATE_EQUAL", displayText: "Equals", displaySymbol: "=", urlSuffix: "dateeq", dataValueRequired: true},
	{name: "DATE_NOT_EQUAL", displayText: "Does Not Equal", displaySymbol: "<>", urlSuffix: "dateneq", dataValueRequired: true},
	{name: "NEQ_OR_NULL", aliases: []string{"NOT_EQUAL_OR_MISSING"}, displayText: "Does Not Equal", displaySymbol: "<>", urlSuffix: "neqornull", dataValueRequired: true},
	{name: "NOT_EQUAL", aliases: []string{"NEQ"}, displayText: "Does Not Equal", displaySymbol: "<>", urlSuffix: "neq", dataValueRequired: true},
	{name: "ISBLANK", aliases: []string{"MISSING"}, displayText: "Is Blank", urlSuffix: "isblank"},
	{name: "NONBLANK", aliases: []string{"NOT_MISSING"}, displayText: "Is Not Blank", urlSuffix: "isnonblank"},
	{name: "GREATER_THAN", aliases: []string{"GT"}, displayText: "Is Greater Than", displaySymbol: ">", urlSuffix: "gt", dataValueRequired: true},
	{name: "DATE_GREATER_THAN", displayText: "Is Greater Than", displaySymbol: ">", urlSuffix: "dategt", dataValueRequired: true},
	{name: "LESS_THAN", aliases: []string{"LT"}, displayText: "Is Less Than", displaySymbol: "<", urlSuffix: "lt", dataValueRequired: true},
	{name: "DATE_LESS_THAN", displayText: "Is Less Than", displaySymbol: "<", urlSuffix: "datelt", dataValueRequired: true},
	{name: "GREATER_THAN_OR_EQUAL", aliases: []string{"GTE"}, displayText: "Is Greater Than or Equal To", displaySymbol: ">=", urlSuffix: "gte", dataValueRequired: true},
	{name: "DATE_GREATER_THAN_OR_EQUAL", displayText: "Is Greater Than or Equal To", displaySymbol: ">=", urlSuffix: "dategte", dataValueRequired: true},
	{name: "LESS_THAN_OR_EQUAL", aliases: []string{"LTE"}, displayText: "Is Less Than or Equal To", displaySymbol: "=<", urlSuffix: "lte", dataValueRequired: true},
	{name: "DATE_LESS_THAN_OR_EQUAL", displayText: "Is Less Than or Equal To", displaySymbol: "=<", urlSuffix: "datelte", dataValueRequired: true},
	{name: "STARTS_WITH", displayText: "Starts With", urlSuffix: "startswith", dataValueRequired: true},
	{name: "DOES_NOT_START_WITH", displayText: "Does Not Start With", urlSuffix: "doesnotstartwith", dataValueRequired: true},
	{name: "CONTAINS", displayText: "Contains", urlSuffix: "contains", dataValueRequired: true},
	{name: "DOES_NOT_CONTAIN", displayText: "Does Not Contain", urlSuffix: "doesnotcontain", dataValueRequired: true},
	{name: "CONTAINS_ONE_OF", displayText: "Contains One Of (example usage: a;b;c)", urlSuffix: "containsoneof", dataValueRequired: true, separator: ";", longDisplayText: "Contains One Of"},
	{name: "CONTAINS_NONE_OF", displayText: "Does Not Contain Any Of (example usage: a;b;c)", urlSuffix: "containsnoneof", dataValueRequired: true, separator: ";", longDisplayText: "Does Not Contain Any Of"},
	{name: "IN", aliases: []string{"EQUALS_ONE_OF"}, displayText: "Equals One Of (example usage: a;b;c)", urlSuffix: "in", dataValueRequired: true, separator: ";", longDisplayText: "Equals One Of"},
	{name: "NOT_IN", aliases: []string{"EQUALS_NONE_OF"}, displayText: "Does Not Equal Any Of (example usage: a;b;c)", urlSuffix: "notin", dataValueRequired: true, separator: ";", longDisplayText: "Does Not Equal Any Of"},
	{name: "BETWEEN", displayText: "Between", urlSuffix: "between", dataValueRequired: true, separator: ",", longDisplayText: "Is Between", minOccurs: 2, maxOccurs: 2},
	{name: "NOT_BETWEEN", displayText: "Not Between", urlSuffix: "notbetween", dataValueRequired: true, separator: ",", longDisplayText: "Is Not Between", minOccurs: 2, maxOccurs: 2},
	{name: "MEMBER_OF", displayText: "Member Of", urlSuffix: "memberof", dataValueRequired: true, longDisplayText: "Member Of"},
	{name: "HAS_MISSING_VALUE", displayText: "Has a missing value indicator", urlSuffix: "hasmvvalue"},
	{name: "DOES_NOT_HAVE_MISSING_VALUE", displayText: "Does not have a missing value indicator", urlSuffix: "nomvvalue"},
	{name: "EXP_CHILD_OF", displayText: "Is Child Of", urlSuffix: "exp:childof", dataValueRequired: true, longDisplayText: " is child of"},
}

var catalogRelations = relations{
	opposite: map[string]string{
		"eq":               "neqornull",
		"neqornull":        "eq",
		"neq":              "eq",
		"dateeq":           "dateneq",
		"dateneq":          "dateeq",
		"isblank":          "isnonblank",
		"isnonblank":       "isblank",
		"gt":               "lte",
		"dategt":           "datelte",
		"lt":               "gte",
		"datelt":           "dategte",
		"gte":              "lt",
		"dategte":          "datelt",
		"lte":              "gt",
		"datelte":          "dategt",
		"contains":         "doesnotcontain",
		"doesnotcontain":   "contains",
		"startswith":       "doesnotstartwith",
		"doesnotstartwith": "startswith",
		"in":               "notin",
		"notin":            "in",
		"containsoneof":    "containsnoneof",
		"containsnoneof":   "containsoneof",
		"between":          "notbetween",
		"notbetween":       "between",
		"hasmvvalue":       "nomvvalue",
		"nomvvalue":        "hasmvvalue",
	},
	singleToMulti: map[string]string{
		"eq":             "in",
		"neq":            "notin",
		"neqornull":      "notin",
		"contains":       "containsoneof",
		"doesnotcontain": "containsnoneof",
	},
	multiToSingle: map[string]string{
		"in":             "eq",
		"notin":          "neq",
		"containsoneof":  "contains",
		"containsnoneof": "doesnotcontain",
	},
	jsonTypes: map[string][]string{
		"int": {
			"HAS_ANY_VALUE", "EQUAL", "NEQ_OR_NULL", "ISBLANK", "NONBLANK",
			"GREATER_THAN", "LESS_THAN", "GREATER_THAN_OR_EQUAL", "LESS_THAN_OR_EQUAL",
			"IN", "NOT_IN", "BETWEEN", "NOT_BETWEEN",
		},
		"float": {
			"HAS_ANY_VALUE", "EQUAL", "NEQ_OR_NULL", "ISBLANK", "NONBLANK",
			"GREATER_THAN", "LESS_THAN", "GREATER_THAN_OR_EQUAL", "LESS_THAN_OR_EQUAL",
			"IN", "NOT_IN", "BETWEEN", "NOT_BETWEEN",
		},
		"string": {
			"HAS_ANY_VALUE", "EQUAL", "NEQ_OR_NULL", "ISBLANK", "NONBLANK",
			"GREATER_THAN", "LESS_THAN", "GREATER_THAN_OR_EQUAL", "LESS_THAN_OR_EQUAL",
			"CONTAINS", "DOES_NOT_CONTAIN", "DOES_NOT_START_WITH", "STARTS_WITH",
			"IN", "NOT_IN", "CONTAINS_ONE_OF", "CONTAINS_NONE_OF", "BETWEEN", "NOT_BETWEEN",
		},
		"boolean": {
			"HAS_ANY_VALUE", "EQUAL", "NEQ_OR_NULL", "ISBLANK", "NONBLANK",
		},
		"date": {
			"HAS_ANY_VALUE", "DATE_EQUAL", "DATE_NOT_EQUAL", "ISBLANK", "NONBLANK",
			"DATE_GREATER_THAN", "DATE_LESS_THAN", "DATE_GREATER_THAN_OR_EQUAL", "DATE_LESS_THAN_OR_EQUAL",
		},
	},
}

// Default is the process-wide registry.
var Default = mustRegistry(newRegistry(catalog, catalogRelations))

func mustRegistry(r *Registry, err error) *Registry {
	if err != nil {
		panic("filtertype: " + err.Error())
	}
	return r
}

// Catalog entries.
var (
	HasAnyValue             = Default.mustName("HAS_ANY_VALUE")
	Equal                   = Default.mustName("EQUAL")
	DateEqual               = Default.mustName("DATE_EQUAL")
	DateNotEqual            = Default.mustName("DATE_NOT_EQUAL")
	NotEqualOrNull          = Default.mustName("NEQ_OR_NULL")
	NotEqual                = Default.mustName("NOT_EQUAL")
	IsBlank                 = Default.mustName("ISBLANK")
	NonBlank                = Default.mustName("NONBLANK")
	GreaterThan             = Default.mustName("GREATER_THAN")
	DateGreaterThan         = Default.mustName("DATE_GREATER_THAN")
	LessThan                = Default.mustName("LESS_THAN")
	DateLessThan            = Default.mustName("DATE_LESS_THAN")
	GreaterThanOrEqual      = Default.mustName("GREATER_THAN_OR_EQUAL")
	DateGreaterThanOrEqual  = Default.mustName("DATE_GREATER_THAN_OR_EQUAL")
	LessThanOrEqual         = Default.mustName("LESS_THAN_OR_EQUAL")
	DateLessThanOrEqual     = Default.mustName("DATE_LESS_THAN_OR_EQUAL")
	StartsWith              = Default.mustName("STARTS_WITH")
	DoesNotStartWith        = Default.mustName("DOES_NOT_START_WITH")
	Contains                = Default.mustName("CONTAINS")
	DoesNotContain          = Default.mustName("DOES_NOT_CONTAIN")
	ContainsOneOf           = Default.mustName("CONTAINS_ONE_OF")
	ContainsNoneOf          = Default.mustName("CONTAINS_NONE_OF")
	In                      = Default.mustName("IN")
	NotIn                   = Default.mustName("NOT_IN")
	Between                 = Default.mustName("BETWEEN")
	NotBetween              = Default.mustName("NOT_BETWEEN")
	MemberOf                = Default.mustName("MEMBER_OF")
	HasMissingValue         = Default.mustName("HAS_MISSING_VALUE")
	DoesNotHaveMissingValue = Default.mustName("DOES_NOT_HAVE_MISSING_VALUE")
	ExpChildOf              = Default.mustName("EXP_CHILD_OF")
)

// Types maps every catalog name and legacy alias to its operator. Aliases
// share the descriptor of the entry they name.
var Types = Default.Names()

// FromURLSuffix looks an operator up by wire token in the default registry.
func FromURLSuffix(suffix string) (FilterType, bool) {
	return Default.FromURLSuffix(suffix)
}

// ByName looks an operator up by catalog name or alias in the default
// registry.
func ByName(name string) (FilterType, bool) {
	return Default.ByName(name)
}

// All returns the default catalog in display order.
func All() []FilterType {
	return Default.All()
}

// ForJSONType returns the operators applicable to a JSON type.
func ForJSONType(jsonType string, mvEnabled bool) []FilterType {
	return Default.ForJSONType(jsonType, mvEnabled)
}

// DefaultForJSONType returns the initial operator for a JSON type.
func DefaultForJSONType(jsonType string) FilterType {
	return Default.DefaultForJSONType(jsonType)
}
