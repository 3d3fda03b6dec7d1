package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tabquery/internal/querykey"
)

func TestSelectStatement(t *testing.T) {
	address := querykey.FieldKeyFromString("Address")

	tests := []struct {
		name    string
		schema  *querykey.SchemaKey
		query   string
		columns []*querykey.FieldKey
		want    string
	}{
		{
			name:   "all columns",
			schema: querykey.SchemaKeyFromString("lists"),
			query:  "People",
			want:   "SELECT * FROM lists.People",
		},
		{
			name:   "lookup columns",
			schema: querykey.SchemaKeyFromString("lists"),
			query:  "People",
			columns: []*querykey.FieldKey{
				querykey.FieldKeyFromString("Name"),
				address.Child("City"),
			},
			want: "SELECT Name, Address.City FROM lists.People",
		},
		{
			name:   "reserved and spaced names are quoted",
			schema: querykey.NewSchemaKey(querykey.SchemaKeyFromString("assay"), "General Results"),
			query:  "Order",
			columns: []*querykey.FieldKey{
				querykey.FieldKeyFromString("select"),
				querykey.FieldKeyFromString("Sample Id"),
			},
			want: `SELECT "select", "Sample Id" FROM assay."General Results"."Order"`,
		},
		{
			name:  "no schema",
			query: "People",
			want:  "SELECT * FROM People",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectStatement(tt.schema, tt.query, tt.columns))
		})
	}
}

func TestExecuteSQLConfig_Payload(t *testing.T) {
	cfg := ExecuteSQLConfig{
		SchemaName: querykey.SchemaKeyFromString("lists"),
		SQL:        "SELECT * FROM People",
		MaxRows:    10,
		Sort:       ParseSort("-Age"),
		Parameters: map[string]string{"Year": "2024"},
	}

	body, err := cfg.payload()
	require.NoError(t, err)
	assert.Equal(t, "lists", body.SchemaName)
	assert.Equal(t, "SELECT * FROM People", body.SQL)
	assert.Equal(t, 10, body.MaxRows)
	assert.Equal(t, "-Age", body.Sort)
	assert.Equal(t, "2024", body.Parameters["Year"])
}

func TestExecuteSQLConfig_PayloadErrors(t *testing.T) {
	_, err := ExecuteSQLConfig{SQL: "SELECT 1"}.payload()
	assert.ErrorIs(t, err, ErrMissingSchema)

	_, err = ExecuteSQLConfig{SchemaName: querykey.SchemaKeyFromString("lists"), SQL: "  "}.payload()
	assert.ErrorIs(t, err, ErrMissingSQL)
}
