package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Salsa Night!", "salsa-night"},
		{"  Bachata & Beyond  ", "bachata-beyond"},
		{"2025 Summer Showcase", "2025-summer-showcase"},
		{"---", ""},
		{"Côte d'Azur", "c-te-d-azur"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestGenerateSlugCapsLength(t *testing.T) {
	long := strings.Repeat("salsa ", 40)
	slug := GenerateSlug(long)

	assert.LessOrEqual(t, len(slug), 100)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.False(t, strings.HasPrefix(slug, "-"))
}
