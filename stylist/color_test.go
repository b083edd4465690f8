package stylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractColor(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Black Leather Boots", "black"},
		{"Ivory Silk Blouse", "white"},
		{"Maroon Velvet Lehenga", "red"},
		{"Navy Blue Blazer", "blue"},
		{"Denim Jeans", "blue"},
		{"Olive Cargo Pants", "green"},
		{"Mustard Kurti", "yellow"},
		{"Fuchsia Party Dress", "pink"},
		{"Lavender Summer Top", "purple"},
		{"Coral Maxi Dress", "orange"},
		{"Khaki Chinos", "brown"},
		{"Charcoal Sweater", "gray"},
		{"Floral Print Dress", "multicolor"},
		{"Polka Dot Skirt", "multicolor"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ExtractColor(tc.description), "description: %s", tc.description)
	}
}

func TestExtractColorUnknown(t *testing.T) {
	assert.Equal(t, ColorUnknown, ExtractColor("plain garment"))
	assert.Equal(t, ColorUnknown, ExtractColor(""))
}

func TestExtractColorFirstTableHitWins(t *testing.T) {
	// black is earlier in the table than white
	assert.Equal(t, "black", ExtractColor("white sneakers with black laces"))
}
