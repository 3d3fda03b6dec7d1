package urlbuild

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b, err := New("https://example.org/", "/labkey/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org", b.BaseURL)
	assert.Equal(t, "/labkey", b.ContextPath)

	b, err = New("http://localhost:8080", "")
	require.NoError(t, err)
	assert.Equal(t, "", b.ContextPath)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("example.org", "")
	assert.ErrorContains(t, err, "scheme and host")

	_, err = New("http://[::1", "")
	assert.ErrorContains(t, err, "parse base url")
}

func TestBuild(t *testing.T) {
	b, err := New("https://example.org", "labkey")
	require.NoError(t, err)

	params := url.Values{}
	params.Set("schemaName", "lists")
	params.Set("query.queryName", "People")

	got := b.Build("query", "selectRows.api", "/home/My Project/", params)
	assert.Equal(t,
		"https://example.org/labkey/query/home/My%20Project/selectRows.api?query.queryName=People&schemaName=lists",
		got)
}

func TestBuild_NoParamsRootContainer(t *testing.T) {
	b := &Builder{BaseURL: "http://localhost"}
	assert.Equal(t, "http://localhost/core/getContainers.api", b.Build("core", "getContainers.api", "", nil))
	assert.Equal(t, "http://localhost/core/getContainers.api", b.Build("core", "getContainers.api", "/", url.Values{}))
}

func TestEncodeContainerPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"home", "/home"},
		{"/home/sub/", "/home/sub"},
		{"//a//b", "/a/b"},
		{"/a b/c?d", "/a%20b/c%3Fd"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeContainerPath(tt.in))
		})
	}
}
