package filtertype

import "strings"

// FilterType describes a filter operator.
type FilterType interface {
	// Name returns the canonical catalog name, e.g. "EQUAL".
	Name() string

	DisplayText() string
	DisplaySymbol() string
	LongDisplayText() string

	// URLSuffix returns the wire token, e.g. "eq". Empty for HAS_ANY_VALUE.
	URLSuffix() string

	IsDataValueRequired() bool
	IsMultiValued() bool
	MultiValueSeparator() string

	// MinOccurs and MaxOccurs bound the number of values of a multi-valued
	// operator. Zero means unbounded.
	MinOccurs() int
	MaxOccurs() int

	// Opposite returns the logical negation, or nil.
	Opposite() FilterType

	// MultiValueFilter returns the multi-valued counterpart, or nil.
	MultiValueFilter() FilterType

	// SingleValueFilter returns the single-valued counterpart, or nil.
	SingleValueFilter() FilterType

	// Validate reports whether the operator can be applied to a column of
	// the given JSON type. It returns nil or a *ValidationError.
	Validate(value, jsonType, columnName string) error

	// ParseValues splits a raw value on the multi-value separator.
	ParseValues(raw string) ([]string, error)

	// FormatValues joins values with the multi-value separator.
	FormatValues(values []string) string
}

// descriptor is the single concrete FilterType. Its static fields never
// change after construction; reg is bound in the second build phase.
type descriptor struct {
	name              string
	displayText       string
	displaySymbol     string
	longDisplayText   string
	urlSuffix         string
	dataValueRequired bool
	separator         string
	minOccurs         int
	maxOccurs         int

	reg *Registry
}

func (d *descriptor) Name() string          { return d.name }
func (d *descriptor) DisplayText() string   { return d.displayText }
func (d *descriptor) DisplaySymbol() string { return d.displaySymbol }
func (d *descriptor) URLSuffix() string     { return d.urlSuffix }

func (d *descriptor) LongDisplayText() string {
	if d.longDisplayText == "" {
		return d.displayText
	}
	return d.longDisplayText
}

func (d *descriptor) IsDataValueRequired() bool   { return d.dataValueRequired }
func (d *descriptor) IsMultiValued() bool         { return d.separator != "" }
func (d *descriptor) MultiValueSeparator() string { return d.separator }
func (d *descriptor) MinOccurs() int              { return d.minOccurs }
func (d *descriptor) MaxOccurs() int              { return d.maxOccurs }

func (d *descriptor) Opposite() FilterType {
	return d.reg.follow(d.reg.opposite, d.urlSuffix)
}

func (d *descriptor) MultiValueFilter() FilterType {
	if d.IsMultiValued() {
		return nil
	}
	return d.reg.follow(d.reg.singleToMulti, d.urlSuffix)
}

// SingleValueFilter always consults the multi -> single table, including for
// operators that are themselves single-valued. Those have no entry and
// resolve to nil.
func (d *descriptor) SingleValueFilter() FilterType {
	return d.reg.follow(d.reg.multiToSingle, d.urlSuffix)
}

func (d *descriptor) Validate(value, jsonType, columnName string) error {
	if !d.dataValueRequired {
		return nil
	}

	allowed, ok := d.reg.jsonTypes[strings.ToLower(jsonType)]
	if !ok {
		return &ValidationError{
			Code:      ErrCodeUnknownJSONType,
			Column:    columnName,
			JSONType:  jsonType,
			URLSuffix: d.urlSuffix,
			Value:     value,
			Message:   "unexpected column type",
		}
	}
	for _, ft := range allowed {
		if ft.URLSuffix() == d.urlSuffix {
			return nil
		}
	}
	return &ValidationError{
		Code:      ErrCodeNotApplicable,
		Column:    columnName,
		JSONType:  jsonType,
		URLSuffix: d.urlSuffix,
		Value:     value,
		Message:   "filter type " + d.displayText + " cannot be applied to this column",
	}
}

func (d *descriptor) ParseValues(raw string) ([]string, error) {
	if !d.IsMultiValued() {
		return []string{raw}, nil
	}

	values := strings.Split(raw, d.separator)
	if (d.minOccurs > 0 && len(values) < d.minOccurs) || (d.maxOccurs > 0 && len(values) > d.maxOccurs) {
		return nil, &ValidationError{
			Code:      ErrCodeOccurrences,
			URLSuffix: d.urlSuffix,
			Value:     raw,
			Message:   occurrenceMessage(d.minOccurs, d.maxOccurs, len(values)),
		}
	}
	return values, nil
}

// FormatValues joins values with the separator. A single-valued operator
// takes only the first value.
func (d *descriptor) FormatValues(values []string) string {
	if !d.IsMultiValued() {
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}
	return strings.Join(values, d.separator)
}

func (d *descriptor) String() string {
	return d.name
}
