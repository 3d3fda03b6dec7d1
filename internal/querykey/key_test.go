package querykey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFieldKey_FromString(t *testing.T) {
	fk := FieldKeyFromString("A/B/C")

	assert.Equal(t, "A/B/C", fk.String())
	assert.Equal(t, "A.B.C", fk.DisplayString())
	assert.Equal(t, []string{"A", "B", "C"}, fk.Parts())
	assert.Equal(t, "C", fk.Name())
	require.NotNil(t, fk.Parent())
	assert.Equal(t, "B", fk.Parent().Name())
	assert.Nil(t, fk.Parent().Parent().Parent())
}

func TestFieldKey_FromStringDecodesParts(t *testing.T) {
	fk := FieldKeyFromString("Lookup$SPath/Col$Pname")

	assert.Equal(t, []string{"Lookup/Path", "Col.name"}, fk.Parts())
	assert.Equal(t, "Lookup$SPath/Col$Pname", fk.String())
	assert.Equal(t, "Lookup/Path.Col.name", fk.DisplayString())
}

func TestSchemaKey_FromString(t *testing.T) {
	sk := SchemaKeyFromString("lists")
	assert.Equal(t, "lists", sk.String())

	nested := SchemaKeyFromString("assay.General.Run$PData")
	assert.Equal(t, []string{"assay", "General", "Run.Data"}, nested.Parts())
	assert.Equal(t, "assay.General.Run$PData", nested.String())
}

func TestFromString_EmptyStringYieldsEmptySegment(t *testing.T) {
	// Splitting "" produces one empty segment rather than a nil key.
	fk := FieldKeyFromString("")
	require.NotNil(t, fk)
	assert.Equal(t, []string{""}, fk.Parts())
	assert.Equal(t, "", fk.String())

	sk := SchemaKeyFromString("")
	require.NotNil(t, sk)
	assert.Equal(t, []string{""}, sk.Parts())
}

func TestSchemaKey_FromParts(t *testing.T) {
	sk, err := SchemaKeyFromParts("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a.b", sk.String())
}

func TestFromParts_NoArgumentsReturnsNil(t *testing.T) {
	sk, err := SchemaKeyFromParts()
	require.NoError(t, err)
	assert.Nil(t, sk)

	fk, err := FieldKeyFromParts("", []string{}, nil)
	require.NoError(t, err)
	assert.Nil(t, fk)
}

func TestFromParts_RebuildsKeyFromItsParts(t *testing.T) {
	for _, encoded := range []string{"a//b", "a/b", "", "/x", "Lookup$SPath//Col$Pname"} {
		t.Run(encoded, func(t *testing.T) {
			fk := FieldKeyFromString(encoded)

			rebuilt, err := FieldKeyFromParts(fk.Parts())
			require.NoError(t, err)
			require.NotNil(t, rebuilt)
			assert.Equal(t, fk.Parts(), rebuilt.Parts())
			assert.Equal(t, encoded, rebuilt.String())
			assert.True(t, fk.Equals(rebuilt))
		})
	}

	sk := SchemaKeyFromString("a..b")
	rebuilt, err := SchemaKeyFromParts([]any{"a", "", "b"})
	require.NoError(t, err)
	assert.True(t, sk.Equals(rebuilt))
}

func TestFromParts_NilArgumentAddsNoSegment(t *testing.T) {
	fk, err := FieldKeyFromParts(nil, "a", nil, "b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", fk.String())
}

func TestFromParts_MixedArguments(t *testing.T) {
	fk, err := FieldKeyFromParts("a", []string{"b/c", "d"}, []any{"e"}, "f")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b/c", "d", "e", "f"}, fk.Parts())
	assert.Equal(t, "a/b$Sc/d/e/f", fk.String())
}

func TestFromParts_InvalidArgument(t *testing.T) {
	_, err := FieldKeyFromParts("a", 42)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	var ie *InvalidArgumentError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "FieldKey", ie.Kind)
	assert.Equal(t, 1, ie.Index)
	assert.Equal(t, 42, ie.Value)
	assert.Contains(t, err.Error(), "int")
}

func TestFromParts_InvalidSliceElement(t *testing.T) {
	_, err := SchemaKeyFromParts([]any{"a", true})
	require.Error(t, err)

	var ie *InvalidArgumentError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "SchemaKey", ie.Kind)
	assert.Equal(t, 0, ie.Index)
	assert.Contains(t, ie.Reason, "element 1")
}

func TestKey_Child(t *testing.T) {
	root := NewFieldKey(nil, "Lookup")
	child := root.Child("Title")

	assert.Equal(t, "Lookup/Title", child.String())
	assert.Equal(t, "Lookup", root.String(), "parent must be unchanged")
}

func TestKey_SQLString(t *testing.T) {
	sk, err := SchemaKeyFromParts("select", "myColumn1")
	require.NoError(t, err)
	assert.Equal(t, `"select".myColumn1`, sk.SQLString())

	fk, err := FieldKeyFromParts("Created By", "Display\"Name")
	require.NoError(t, err)
	assert.Equal(t, `"Created By"."Display""Name"`, fk.SQLString())

	plain := FieldKeyFromString("myColumn1")
	assert.Equal(t, "myColumn1", plain.SQLString())
}

func TestKey_Equals(t *testing.T) {
	a := FieldKeyFromString("Lookup/Title")
	b := FieldKeyFromString("LOOKUP/title")
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))

	c := FieldKeyFromString("Lookup/Name")
	assert.False(t, a.Equals(c))

	var nilKey *FieldKey
	assert.False(t, a.Equals(nilKey))
	assert.False(t, a.Equals(nil))
}

func TestKey_EqualsDifferentKinds(t *testing.T) {
	fk := FieldKeyFromString("lists")
	sk := SchemaKeyFromString("lists")

	assert.Equal(t, fk.String(), sk.String())
	assert.False(t, fk.Equals(sk))
	assert.False(t, sk.Equals(fk))
}

func TestKey_JSON(t *testing.T) {
	fk := FieldKeyFromString("A/B$Pc")

	data, err := json.Marshal(fk)
	require.NoError(t, err)
	assert.JSONEq(t, `"A/B$Pc"`, string(data))

	var decoded FieldKey
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"A", "B.c"}, decoded.Parts())

	err = json.Unmarshal([]byte(`42`), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FieldKey")
}

func TestKey_YAML(t *testing.T) {
	type doc struct {
		Schema  *SchemaKey  `yaml:"schema"`
		Columns []*FieldKey `yaml:"columns"`
	}

	var d doc
	src := "schema: assay.General\ncolumns:\n    - Name\n    - Lookup/Title\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &d))

	assert.Equal(t, []string{"assay", "General"}, d.Schema.Parts())
	require.Len(t, d.Columns, 2)
	assert.Equal(t, []string{"Lookup", "Title"}, d.Columns[1].Parts())

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestKey_ImplementsQueryKey(t *testing.T) {
	var _ QueryKey = FieldKeyFromString("a")
	var _ QueryKey = SchemaKeyFromString("a")
}
