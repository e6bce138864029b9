package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupProduct(t *testing.T) {
	cases := []struct {
		key    string
		amount int64
		ok     bool
	}{
		{"private-lesson", 8500, true},
		{"five-lesson-package", 40000, true},
		{"ten-lesson-package", 76500, true},
		{"drop-in-class", 2000, true},
		{"PRIVATE-LESSON", 0, false},
		{"gift-card", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		p, ok := LookupProduct(tc.key)
		assert.Equal(t, tc.ok, ok, "key %q", tc.key)
		if tc.ok {
			assert.Equal(t, tc.amount, p.Amount, "key %q", tc.key)
			assert.Equal(t, tc.key, p.Key)
			assert.NotEmpty(t, p.Name)
		}
	}
}

func TestProductCatalogOrderStable(t *testing.T) {
	first := ProductCatalog()
	second := ProductCatalog()

	assert.Len(t, first, 4)
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
	}
}
