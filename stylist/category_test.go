package stylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stylematch/stylematch-backend/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Red Silk Saree with Golden Border", models.CategorySaree},
		{"Banarasi wedding wear", models.CategorySaree},
		{"Blue Cotton Kurti", models.CategoryKurti},
		{"Anarkali suit set", models.CategoryKurti},
		{"White Athletic Sneakers", models.CategoryShoes},
		{"Traditional juttis", models.CategoryShoes},
		{"Black Palazzo Pants", models.CategoryIndianBottom},
		{"Churidar bottoms", models.CategoryIndianBottom},
		{"Floral Summer Dress", models.CategoryDress},
		{"Printed Dupatta", models.CategoryDupatta},
		{"Blue Denim Jeans", models.CategoryBottom},
		{"Black Pencil Skirt", models.CategoryBottom},
		{"Blue Denim Jacket", models.CategoryTop},
		{"White Crop Top", models.CategoryTop},
		{"Silver Necklace", models.CategoryAccessories},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.description), "description: %s", tc.description)
	}
}

func TestClassifyDefaultsToAccessories(t *testing.T) {
	assert.Equal(t, models.CategoryAccessories, Classify("mystery garment"))
}

func TestClassifyPrecedence(t *testing.T) {
	// Saree keywords win over the western top keywords that would
	// otherwise claim "blouse".
	assert.Equal(t, models.CategorySaree, Classify("Georgette saree with blouse piece"))

	// Ethnic footwear beats ethnic bottoms.
	assert.Equal(t, models.CategoryShoes, Classify("Kolhapuris to pair with salwar"))

	// Kurti beats the generic top keywords.
	assert.Equal(t, models.CategoryKurti, Classify("Kurta styled like a shirt"))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.CategorySaree, Classify("RED SILK SAREE"))
}
