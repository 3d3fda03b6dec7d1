package querykey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePart(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		encoded string
	}{
		{"plain", "Name", "Name"},
		{"dollar", "a$b", "a$Db"},
		{"slash", "a/b", "a$Sb"},
		{"ampersand", "a&b", "a$Ab"},
		{"brace", "a}b", "a$Bb"},
		{"tilde", "a~b", "a$Tb"},
		{"comma", "a,b", "a$Cb"},
		{"period", "a.b", "a$Pb"},
		{"all special", "$/&}~,.", "$D$S$A$B$T$C$P"},
		{"escape lookalike", "$S", "$DS"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.encoded, EncodePart(tt.in))
			assert.Equal(t, tt.in, DecodePart(tt.encoded))
		})
	}
}

func TestDecodePart_DollarRestoredLast(t *testing.T) {
	// "$DP" must decode to "$P", not "$.".
	assert.Equal(t, "$P", DecodePart("$DP"))
	assert.Equal(t, "$.", DecodePart("$D$P"))
}

func TestEncodeDecode_RoundTripExhaustive(t *testing.T) {
	alphabet := []string{"$", "/", "&", "}", "~", ",", ".", "a", "D", "P", "S", "7"}

	var words []string
	words = append(words, "")
	for _, a := range alphabet {
		words = append(words, a)
		for _, b := range alphabet {
			words = append(words, a+b)
			for _, c := range alphabet {
				words = append(words, a+b+c)
			}
		}
	}

	for _, w := range words {
		got := DecodePart(EncodePart(w))
		if got != w {
			t.Fatalf("round trip of %q produced %q", w, got)
		}
	}
}

func TestEncodePart_NoDividersRemain(t *testing.T) {
	encoded := EncodePart("a/b.c")
	assert.NotContains(t, encoded, "/")
	assert.NotContains(t, encoded, ".")
}

func TestNeedsQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"myColumn1", false},
		{"a_b$c", false},
		{"select", true},
		{"SELECT", true},
		{"Trailing", true},
		{"1abc", true},
		{"_abc", true},
		{"has space", true},
		{"dash-ed", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsQuotes(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"select"`, Quote("select"))
	assert.Equal(t, `"say ""hi"""`, Quote(`say "hi"`))
	assert.Equal(t, `""`, Quote(""))
}
