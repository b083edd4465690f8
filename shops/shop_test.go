package shops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllRetailers(t *testing.T) {
	all := All()
	assert.Len(t, all, 3)

	names := map[string]bool{}
	for _, shop := range all {
		names[shop.Name()] = true
	}
	assert.True(t, names["Amazon"])
	assert.True(t, names["Flipkart"])
	assert.True(t, names["Myntra"])
}

func TestSearchURLsEscapeQueries(t *testing.T) {
	for _, shop := range All() {
		u := shop.SearchURL("red silk saree")
		assert.NotContains(t, u, " ", "%s search URL must escape spaces", shop.Name())
		assert.Contains(t, u, "https://", "%s search URL must be absolute", shop.Name())
	}
}
