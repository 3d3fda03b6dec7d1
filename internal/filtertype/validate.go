package filtertype

import (
	"errors"
	"fmt"
)

// Validation error codes (E200-E209)
const (
	ErrCodeUnknownJSONType = "E201" // column JSON type not in the applicability table
	ErrCodeNotApplicable   = "E202" // operator not allowed for the column's JSON type
	ErrCodeOccurrences     = "E203" // wrong number of values for a bounded operator
)

// ValidationError is the result of a failed FilterType check. It is returned,
// never raised, so callers decide how to surface it.
type ValidationError struct {
	Code      string `json:"code"`
	Column    string `json:"column,omitempty"`
	JSONType  string `json:"json_type,omitempty"`
	URLSuffix string `json:"url_suffix"`
	Value     string `json:"value,omitempty"`
	Message   string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("[%s] %s (column=%s, type=%s, op=%s)", e.Code, e.Message, e.Column, e.JSONType, e.URLSuffix)
	}
	return fmt.Sprintf("[%s] %s (op=%s)", e.Code, e.Message, e.URLSuffix)
}

// IsValidationError reports whether err is a ValidationError.
// Uses errors.As to handle wrapped errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func occurrenceMessage(minOccurs, maxOccurs, got int) string {
	switch {
	case minOccurs > 0 && minOccurs == maxOccurs:
		return fmt.Sprintf("expected exactly %d values, got %d", minOccurs, got)
	case maxOccurs > 0 && got > maxOccurs:
		return fmt.Sprintf("expected at most %d values, got %d", maxOccurs, got)
	default:
		return fmt.Sprintf("expected at least %d values, got %d", minOccurs, got)
	}
}
