package query

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tabquery/internal/filter"
	"github.com/roach88/tabquery/internal/filtertype"
	"github.com/roach88/tabquery/internal/querykey"
	"github.com/roach88/tabquery/internal/urlbuild"
)

func peopleConfig() SelectRowsConfig {
	return SelectRowsConfig{
		SchemaName:    querykey.SchemaKeyFromString("lists"),
		QueryName:     "People",
		ContainerPath: "home/My Project",
		Columns: []*querykey.FieldKey{
			querykey.FieldKeyFromString("Name"),
			querykey.NewFieldKey(querykey.FieldKeyFromString("Address"), "City"),
		},
		Sort:       ParseSort("-Age,Name"),
		MaxRows:    100,
		Offset:     20,
		Parameters: map[string]string{"Year": "2024"},
		Filters: []filter.ColumnFilter{
			filter.Create("Age", filter.Int(21), filtertype.GreaterThan),
			filter.Create("Name", nil, filtertype.IsBlank),
			filter.Create("Name", filter.String("a;b c"), filtertype.In),
		},
	}
}

func TestSelectRowsConfig_Params(t *testing.T) {
	params, err := peopleConfig().Params()
	require.NoError(t, err)

	assert.Equal(t, filter.String("lists"), params["schemaName"])
	assert.Equal(t, filter.String("People"), params["query.queryName"])
	assert.Equal(t, filter.String("Name,Address/City"), params["query.columns"])
	assert.Equal(t, filter.String("-Age,Name"), params["query.sort"])
	assert.Equal(t, filter.Int(100), params["query.maxRows"])
	assert.Equal(t, filter.Int(20), params["query.offset"])
	assert.Equal(t, filter.String("2024"), params["query.param.Year"])
	assert.Equal(t, filter.Int(21), params["query.Age~gt"])
	assert.Equal(t, filter.String(""), params["query.Name~isblank"])
	assert.Equal(t, filter.String("a;b c"), params["query.Name~in"])
}

func TestSelectRowsConfig_ColumnsAreEncoded(t *testing.T) {
	cfg := SelectRowsConfig{
		SchemaName: querykey.SchemaKeyFromString("lists"),
		QueryName:  "People",
		Columns:    []*querykey.FieldKey{querykey.NewFieldKey(nil, "a,b/c")},
	}

	params, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, filter.String("a$Cb$Sc"), params["query.columns"])
}

func TestSelectRowsConfig_CustomRegion(t *testing.T) {
	cfg := SelectRowsConfig{
		SchemaName: querykey.SchemaKeyFromString("core"),
		QueryName:  "Users",
		RegionName: "users",
		MaxRows:    -1,
		Filters: []filter.ColumnFilter{
			filter.Create("Email", filter.String("@example.org"), filtertype.Contains),
		},
	}

	params, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"schemaName",
		"users.Email~contains",
		"users.queryName",
		"users.showRows",
	}, params.Names())
	assert.Equal(t, filter.String("all"), params["users.showRows"])
}

func TestSelectRowsConfig_SchemaKeyIsEncoded(t *testing.T) {
	schema := querykey.NewSchemaKey(querykey.SchemaKeyFromString("assay"), "General.Results")
	cfg := SelectRowsConfig{SchemaName: schema, QueryName: "Data"}

	params, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, filter.String("assay.General$PResults"), params["schemaName"])
}

func TestSelectRowsConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SelectRowsConfig
		wantErr error
	}{
		{
			name:    "missing schema",
			cfg:     SelectRowsConfig{QueryName: "People"},
			wantErr: ErrMissingSchema,
		},
		{
			name:    "missing query",
			cfg:     SelectRowsConfig{SchemaName: querykey.SchemaKeyFromString("lists")},
			wantErr: ErrMissingQuery,
		},
		{
			name: "nil filter",
			cfg: SelectRowsConfig{
				SchemaName: querykey.SchemaKeyFromString("lists"),
				QueryName:  "People",
				Filters:    []filter.ColumnFilter{nil},
			},
			wantErr: filter.ErrNilFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Params()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseSort(t *testing.T) {
	sorts := ParseSort(" -Created, Name ,,-")
	require.Len(t, sorts, 2)
	assert.True(t, sorts[0].Descending)
	assert.Equal(t, "Created", sorts[0].Column.Name())
	assert.False(t, sorts[1].Descending)
	assert.Equal(t, "-Created", sorts[0].String())
	assert.Equal(t, "Name", sorts[1].String())

	assert.Empty(t, ParseSort(""))
}

func TestClient_SelectRowsURL_Golden(t *testing.T) {
	urls, err := urlbuild.New("https://example.org/", "/labkey/")
	require.NoError(t, err)

	c := NewClient(urls, nil, nil)
	got, err := c.SelectRowsURL(peopleConfig())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "select_rows_url", []byte(got))
}
