package stylist

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylematch/stylematch-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func wardrobeItem(description, category string) models.WardrobeItem {
	return models.WardrobeItem{
		ID:          primitive.NewObjectID(),
		Description: description,
		Category:    category,
	}
}

func newStaticGenerator() *Generator {
	return NewGenerator(NewOracle(nil))
}

func TestGenerateTopBottomShoes(t *testing.T) {
	top := wardrobeItem("red cotton top", models.CategoryTop)
	bottom := wardrobeItem("black jeans", models.CategoryBottom)
	shoe := wardrobeItem("black sneakers", models.CategoryShoes)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{top, bottom, shoe}, "")
	require.NoError(t, err)
	require.Len(t, combos, 1)

	combo := combos[0]
	assert.Equal(t, models.OutfitWesternTopBottom, combo.Type)
	require.Len(t, combo.Items, 3)
	assert.Equal(t, "red cotton top with black jeans and black sneakers", combo.Description)
}

func TestGenerateTopBottomWithoutShoes(t *testing.T) {
	top := wardrobeItem("red cotton top", models.CategoryTop)
	bottom := wardrobeItem("black jeans", models.CategoryBottom)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{top, bottom}, "")
	require.NoError(t, err)
	require.Len(t, combos, 1)

	assert.Len(t, combos[0].Items, 2)
	assert.Equal(t, "red cotton top with black jeans", combos[0].Description)
}

func TestGenerateDressAndShoes(t *testing.T) {
	dress := wardrobeItem("blue summer dress", models.CategoryDress)
	shoe := wardrobeItem("white sandals", models.CategoryShoes)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{dress, shoe}, "")
	require.NoError(t, err)
	require.Len(t, combos, 1)

	assert.Equal(t, models.OutfitWesternDress, combos[0].Type)
	assert.Equal(t, "blue summer dress with white sandals", combos[0].Description)
}

func TestGenerateKurtiWithIndianBottomAndDupatta(t *testing.T) {
	kurti := wardrobeItem("blue cotton kurti", models.CategoryKurti)
	palazzo := wardrobeItem("white palazzo", models.CategoryIndianBottom)
	dupatta := wardrobeItem("pink dupatta", models.CategoryDupatta)
	juttis := wardrobeItem("golden juttis", models.CategoryShoes)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{kurti, palazzo, dupatta, juttis}, "")
	require.NoError(t, err)

	var kurtiCombo *models.OutfitCombination
	for i := range combos {
		if combos[i].Type == models.OutfitIndianKurti {
			kurtiCombo = &combos[i]
			break
		}
	}
	require.NotNil(t, kurtiCombo, "expected an indian kurti outfit")

	// kurti + palazzo + dupatta (blue/pink harmonize) + ethnic footwear
	assert.Len(t, kurtiCombo.Items, 4)
	assert.Equal(t, "blue cotton kurti with white palazzo and pink dupatta", kurtiCombo.Description)
}

func TestGenerateKurtiNeverPairsWithSkirt(t *testing.T) {
	kurti := wardrobeItem("black kurti", models.CategoryKurti)
	// skirt-like indian bottom must be skipped regardless of color
	skirt := wardrobeItem("black ethnic skirt", models.CategoryIndianBottom)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{kurti, skirt}, "")

	// The only possible combination requires the skirt, so generation fails.
	require.Error(t, err)
	var noOutfits *NoOutfitsError
	assert.True(t, errors.As(err, &noOutfits))

	_ = combos
}

func TestGenerateSareeLook(t *testing.T) {
	saree := wardrobeItem("red silk saree", models.CategorySaree)
	blouse := wardrobeItem("gold blouse", models.CategoryTop)
	kolhapuris := wardrobeItem("brown kolhapuris", models.CategoryShoes)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{saree, blouse, kolhapuris}, "")
	require.NoError(t, err)

	var sareeCombo *models.OutfitCombination
	for i := range combos {
		if combos[i].Type == models.OutfitSaree {
			sareeCombo = &combos[i]
			break
		}
	}
	require.NotNil(t, sareeCombo, "expected a saree outfit")

	// saree + contrasting gold blouse + ethnic footwear
	assert.Len(t, sareeCombo.Items, 3)
	assert.Equal(t, "red silk saree with gold blouse", sareeCombo.Description)
}

func TestGenerateKurtiDupattaWithoutBottoms(t *testing.T) {
	kurti := wardrobeItem("green kurti", models.CategoryKurti)
	dupatta := wardrobeItem("white dupatta", models.CategoryDupatta)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{kurti, dupatta}, "")
	require.NoError(t, err)
	require.Len(t, combos, 1)

	assert.Equal(t, models.OutfitKurtiDupatta, combos[0].Type)
	assert.Equal(t, "green kurti with white dupatta", combos[0].Description)
}

func TestGenerateKurtiOnly(t *testing.T) {
	kurti := wardrobeItem("yellow kurti", models.CategoryKurti)
	necklace := wardrobeItem("silver necklace", models.CategoryAccessories)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{kurti, necklace}, "")
	require.NoError(t, err)
	require.Len(t, combos, 1)

	assert.Equal(t, models.OutfitKurtiOnly, combos[0].Type)
	assert.Equal(t, "yellow kurti", combos[0].Description)
}

func TestGenerateInsufficientItems(t *testing.T) {
	top := wardrobeItem("red top", models.CategoryTop)

	_, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{top}, "")
	require.Error(t, err)

	var insufficient *InsufficientItemsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 1, insufficient.TotalItems)
	assert.Equal(t, 1, insufficient.Breakdown.WesternTops)
}

func TestGenerateNoCompatibleOutfits(t *testing.T) {
	// Two accessories can never form an outfit.
	items := []models.WardrobeItem{
		wardrobeItem("silver necklace", models.CategoryAccessories),
		wardrobeItem("gold bangle", models.CategoryAccessories),
	}

	_, err := newStaticGenerator().Generate(context.Background(), items, "")
	require.Error(t, err)

	var noOutfits *NoOutfitsError
	require.True(t, errors.As(err, &noOutfits))
	assert.Equal(t, 2, noOutfits.TotalItems)
	assert.Equal(t, 2, noOutfits.Breakdown.Accessories)
}

func TestGenerateAnchorRestrictsOutput(t *testing.T) {
	redTop := wardrobeItem("red top", models.CategoryTop)
	blueTop := wardrobeItem("blue top", models.CategoryTop)
	jeans := wardrobeItem("black jeans", models.CategoryBottom)

	combos, err := newStaticGenerator().Generate(context.Background(),
		[]models.WardrobeItem{redTop, blueTop, jeans}, blueTop.ID.Hex())
	require.NoError(t, err)
	require.NotEmpty(t, combos)

	for _, combo := range combos {
		found := false
		for _, item := range combo.Items {
			if item.ID == blueTop.ID.Hex() {
				found = true
			}
			assert.NotEqual(t, redTop.ID.Hex(), item.ID, "non-anchor top must not appear")
		}
		assert.True(t, found, "every combination must contain the anchor")
	}
}

func TestGenerateUnknownAnchorFails(t *testing.T) {
	items := []models.WardrobeItem{
		wardrobeItem("red top", models.CategoryTop),
		wardrobeItem("black jeans", models.CategoryBottom),
	}

	_, err := newStaticGenerator().Generate(context.Background(), items, primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDedupeCombinationsIgnoresItemOrder(t *testing.T) {
	top := piece(wardrobeItem("red top", models.CategoryTop))
	jeans := piece(wardrobeItem("black jeans", models.CategoryBottom))
	dress := piece(wardrobeItem("blue dress", models.CategoryDress))

	combos := []models.OutfitCombination{
		{Type: models.OutfitWesternTopBottom, Items: []models.OutfitPiece{top, jeans}},
		// same pair, reversed order: the same outfit
		{Type: models.OutfitWesternTopBottom, Items: []models.OutfitPiece{jeans, top}},
		{Type: models.OutfitWesternDress, Items: []models.OutfitPiece{dress}},
	}

	unique := dedupeCombinations(combos)
	require.Len(t, unique, 2)
	assert.Equal(t, top.ID, unique[0].Items[0].ID, "the first of the duplicates survives")
	assert.Equal(t, dress.ID, unique[1].Items[0].ID)
}

func TestGenerateDeduplicatesAndCaps(t *testing.T) {
	var items []models.WardrobeItem
	for i := 0; i < 6; i++ {
		items = append(items, wardrobeItem(fmt.Sprintf("black top %d", i), models.CategoryTop))
	}
	for i := 0; i < 4; i++ {
		items = append(items, wardrobeItem(fmt.Sprintf("white jeans %d", i), models.CategoryBottom))
	}
	for i := 0; i < 3; i++ {
		items = append(items, wardrobeItem(fmt.Sprintf("black sneakers %d", i), models.CategoryShoes))
	}

	combos, err := newStaticGenerator().Generate(context.Background(), items, "")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(combos), 10)

	seen := map[string]bool{}
	for _, combo := range combos {
		key := ""
		for _, item := range combo.Items {
			key += item.ID + "|"
		}
		assert.False(t, seen[key], "duplicate combination returned")
		seen[key] = true
	}
}
