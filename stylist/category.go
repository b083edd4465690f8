// Package stylist holds the styling brain of StyleMatch: garment
// categorization, color extraction, color compatibility and outfit
// combination generation. Everything here is pure and deterministic apart
// from the optional external color-scheme strategy.
package stylist

import (
	"strings"

	"github.com/stylematch/stylematch-backend/models"
)

// categoryRule ties a category to the keywords that claim it.
type categoryRule struct {
	category string
	keywords []string
}

// categoryRules are evaluated in order; the first group with a substring hit
// wins. Order matters: sarees and kurtis must be claimed before the generic
// western top keywords that would otherwise swallow them, and ethnic
// footwear before ethnic bottoms would be nonsense the other way around.
var categoryRules = []categoryRule{
	{models.CategorySaree, []string{"saree", "sari", "banarasi", "kanjeevaram", "georgette", "chiffon"}},
	{models.CategoryKurti, []string{"kurti", "kurta", "anarkali", "kurtis", "kurtas"}},
	{models.CategoryShoes, []string{"shoe", "sandal", "heel", "sneaker", "boot", "pump", "loafer", "flat", "juttis", "mojaris", "kolhapuris"}},
	{models.CategoryIndianBottom, []string{"palazzo", "churidar", "dhoti", "salwar", "patiala", "leggings"}},
	{models.CategoryDress, []string{"dress", "gown", "jumpsuit", "maxi", "midi"}},
	{models.CategoryDupatta, []string{"dupatta", "stole", "scarf"}},
	{models.CategoryBottom, []string{"pant", "jean", "trouser", "short", "jogger", "skirt"}},
	{models.CategoryTop, []string{"shirt", "top", "blouse", "t-shirt", "tank", "crop top", "sweater", "hoodie", "blazer", "jacket", "cardigan"}},
	{models.CategoryAccessories, []string{"jewelry", "jewellery", "necklace", "earring", "bangle", "bracelet"}},
}

// Classify maps a garment description to its category. Descriptions that
// match no keyword group land in accessories.
func Classify(description string) string {
	lower := strings.ToLower(description)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}

	return models.CategoryAccessories
}
