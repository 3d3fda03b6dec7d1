package querykey

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind configures a Key: the divider its encoded form is joined with.
//
// Only Field and Schema implement Kind.
type Kind interface {
	Divider() string
	KindName() string
}

// Field is the Kind of column keys. Segments beyond the first traverse
// lookups.
type Field struct{}

// Divider returns "/".
func (Field) Divider() string { return "/" }

// KindName returns "FieldKey".
func (Field) KindName() string { return "FieldKey" }

// Schema is the Kind of schema keys. Nested schemas are module-qualified.
type Schema struct{}

// Divider returns ".".
func (Schema) Divider() string { return "." }

// KindName returns "SchemaKey".
func (Schema) KindName() string { return "SchemaKey" }

// QueryKey is the behavior shared by every Key instantiation.
type QueryKey interface {
	Name() string
	Parts() []string
	String() string
	DisplayString() string
	SQLString() string
	Equals(other QueryKey) bool
}

// Key is one segment of a hierarchical identifier. The parent link is set at
// construction and never changes.
type Key[K Kind] struct {
	parent *Key[K]
	name   string
}

// FieldKey identifies a column.
type FieldKey = Key[Field]

// SchemaKey identifies a schema.
type SchemaKey = Key[Schema]

// New creates a key segment named name under parent. A nil parent makes a
// root segment.
func New[K Kind](parent *Key[K], name string) *Key[K] {
	return &Key[K]{parent: parent, name: name}
}

// NewFieldKey creates a FieldKey segment.
func NewFieldKey(parent *FieldKey, name string) *FieldKey {
	return New(parent, name)
}

// NewSchemaKey creates a SchemaKey segment.
func NewSchemaKey(parent *SchemaKey, name string) *SchemaKey {
	return New(parent, name)
}

// FromParts builds a key from unencoded segments.
//
// Each argument is either a string (one segment) or a []string / []any of
// strings (one segment per element). Arguments are applied left to right so
// the first segment becomes the root. A nil argument, an empty string or an
// empty slice adds no segment; an empty element inside a slice is kept, so
// FromParts(k.Parts()) rebuilds k. Any other argument fails with
// *InvalidArgumentError.
//
// Returns (nil, nil) when no segment was produced.
func FromParts[K Kind](args ...any) (*Key[K], error) {
	var ret *Key[K]
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
		case string:
			if v != "" {
				ret = New(ret, v)
			}
		case []string:
			for _, part := range v {
				ret = New(ret, part)
			}
		case []any:
			for j, elem := range v {
				part, ok := elem.(string)
				if !ok {
					return nil, newInvalidArgument[K](i, elem,
						fmt.Sprintf("element %d is %T, want string", j, elem))
				}
				ret = New(ret, part)
			}
		default:
			return nil, newInvalidArgument[K](i, arg, fmt.Sprintf("got %T, want string or []string", arg))
		}
	}
	return ret, nil
}

// FromString parses an encoded key: the string is split on the kind's
// divider and each piece is decoded.
//
// An empty string yields a single segment with an empty name, not nil.
func FromString[K Kind](encoded string) *Key[K] {
	var kind K
	var ret *Key[K]
	for _, part := range strings.Split(encoded, kind.Divider()) {
		ret = New(ret, DecodePart(part))
	}
	return ret
}

// FieldKeyFromParts is FromParts for FieldKey.
func FieldKeyFromParts(args ...any) (*FieldKey, error) {
	return FromParts[Field](args...)
}

// FieldKeyFromString is FromString for FieldKey.
func FieldKeyFromString(encoded string) *FieldKey {
	return FromString[Field](encoded)
}

// SchemaKeyFromParts is FromParts for SchemaKey.
func SchemaKeyFromParts(args ...any) (*SchemaKey, error) {
	return FromParts[Schema](args...)
}

// SchemaKeyFromString is FromString for SchemaKey.
func SchemaKeyFromString(encoded string) *SchemaKey {
	return FromString[Schema](encoded)
}

// Name returns this segment's unencoded name.
func (k *Key[K]) Name() string {
	return k.name
}

// Parent returns the parent segment, or nil for a root.
func (k *Key[K]) Parent() *Key[K] {
	return k.parent
}

// Child returns a new key with name appended below k.
func (k *Key[K]) Child(name string) *Key[K] {
	return New(k, name)
}

// Parts returns the unencoded segment names, root first.
func (k *Key[K]) Parts() []string {
	var parts []string
	for n := k; n != nil; n = n.parent {
		parts = append(parts, n.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

// String returns the encoded form: each segment encoded, joined by the
// kind's divider.
func (k *Key[K]) String() string {
	var kind K
	parts := k.Parts()
	for i, p := range parts {
		parts[i] = EncodePart(p)
	}
	return strings.Join(parts, kind.Divider())
}

// DisplayString returns the unencoded segments joined by ".", whatever the
// kind's divider.
func (k *Key[K]) DisplayString() string {
	return strings.Join(k.Parts(), ".")
}

// SQLString returns the segments joined by ".", quoting those that are not
// plain identifiers or are reserved words.
func (k *Key[K]) SQLString() string {
	parts := k.Parts()
	for i, p := range parts {
		if NeedsQuotes(p) {
			parts[i] = Quote(p)
		}
	}
	return strings.Join(parts, ".")
}

// Equals reports whether other is a key of the same kind whose encoded form
// matches case-insensitively.
func (k *Key[K]) Equals(other QueryKey) bool {
	o, ok := other.(*Key[K])
	if !ok || o == nil || k == nil {
		return false
	}
	return fold(k.String()) == fold(o.String())
}

// MarshalJSON encodes the key as its encoded string.
func (k *Key[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses an encoded key string.
func (k *Key[K]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var kind K
		return fmt.Errorf("%s: %w", kind.KindName(), err)
	}
	*k = *FromString[K](s)
	return nil
}

// MarshalYAML encodes the key as its encoded string.
func (k *Key[K]) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML parses an encoded key string.
func (k *Key[K]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		var kind K
		return fmt.Errorf("%s at line %d: %w", kind.KindName(), node.Line, err)
	}
	*k = *FromString[K](s)
	return nil
}
