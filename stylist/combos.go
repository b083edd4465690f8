package stylist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/stylematch/stylematch-backend/models"
)

// maxCombinations caps the number of outfits returned per request.
const maxCombinations = 10

// Generator assembles outfit combinations from a user's wardrobe using the
// color oracle to gate pairings.
type Generator struct {
	Colors *Oracle
}

// NewGenerator builds a Generator around the given color oracle.
func NewGenerator(colors *Oracle) *Generator {
	return &Generator{Colors: colors}
}

// buckets is the wardrobe partitioned by category.
type buckets struct {
	tops          []models.WardrobeItem
	bottoms       []models.WardrobeItem
	dresses       []models.WardrobeItem
	kurtis        []models.WardrobeItem
	sarees        []models.WardrobeItem
	indianBottoms []models.WardrobeItem
	dupattas      []models.WardrobeItem
	shoes         []models.WardrobeItem
	accessories   []models.WardrobeItem
}

func partition(items []models.WardrobeItem) buckets {
	var b buckets
	for _, item := range items {
		switch item.Category {
		case models.CategoryTop:
			b.tops = append(b.tops, item)
		case models.CategoryBottom:
			b.bottoms = append(b.bottoms, item)
		case models.CategoryDress:
			b.dresses = append(b.dresses, item)
		case models.CategoryKurti:
			b.kurtis = append(b.kurtis, item)
		case models.CategorySaree:
			b.sarees = append(b.sarees, item)
		case models.CategoryIndianBottom:
			b.indianBottoms = append(b.indianBottoms, item)
		case models.CategoryDupatta:
			b.dupattas = append(b.dupattas, item)
		case models.CategoryShoes:
			b.shoes = append(b.shoes, item)
		default:
			b.accessories = append(b.accessories, item)
		}
	}
	return b
}

func (b buckets) counts() Breakdown {
	return Breakdown{
		WesternTops:    len(b.tops),
		WesternBottoms: len(b.bottoms),
		WesternDresses: len(b.dresses),
		Kurtis:         len(b.kurtis),
		Sarees:         len(b.sarees),
		IndianBottoms:  len(b.indianBottoms),
		Dupattas:       len(b.dupattas),
		Shoes:          len(b.shoes),
		Accessories:    len(b.accessories),
	}
}

// restrictTo narrows the anchor's own category bucket to just the anchor,
// so every combination the strategies can build is forced through it.
func (b buckets) restrictTo(anchor models.WardrobeItem) buckets {
	one := []models.WardrobeItem{anchor}
	switch anchor.Category {
	case models.CategoryTop:
		b.tops = one
	case models.CategoryBottom:
		b.bottoms = one
	case models.CategoryDress:
		b.dresses = one
	case models.CategoryKurti:
		b.kurtis = one
	case models.CategorySaree:
		b.sarees = one
	case models.CategoryIndianBottom:
		b.indianBottoms = one
	case models.CategoryDupatta:
		b.dupattas = one
	case models.CategoryShoes:
		b.shoes = one
	default:
		b.accessories = one
	}
	return b
}

// strategyFunc builds the combinations of one outfit type from the bucketed
// wardrobe. Adding a garment category means adding a strategy here, not
// threading new conditionals through the generator.
type strategyFunc func(ctx context.Context, g *Generator, b buckets) []models.OutfitCombination

var strategies = []strategyFunc{
	westernDressOutfits,
	westernTopBottomOutfits,
	indianKurtiOutfits,
	sareeOutfits,
	kurtiDupattaOutfits,
	kurtiOnlyOutfits,
}

// Generate assembles up to maxCombinations outfits from the user's wardrobe
// items. A non-empty anchorID restricts the result to combinations
// containing exactly that item.
//
// Fewer than two items fails with InsufficientItemsError; producing zero
// combinations fails with NoOutfitsError. Both carry the per-category
// breakdown.
func (g *Generator) Generate(ctx context.Context, items []models.WardrobeItem, anchorID string) ([]models.OutfitCombination, error) {
	b := partition(items)
	breakdown := b.counts()

	if len(items) < 2 {
		return nil, &InsufficientItemsError{TotalItems: len(items), Breakdown: breakdown}
	}

	if anchorID != "" {
		anchor, ok := findItem(items, anchorID)
		if !ok {
			return nil, fmt.Errorf("anchor item %s not found", anchorID)
		}
		b = b.restrictTo(anchor)
	}

	var combos []models.OutfitCombination
	for _, strategy := range strategies {
		combos = append(combos, strategy(ctx, g, b)...)
	}

	if anchorID != "" {
		combos = filterContaining(combos, anchorID)
	}

	combos = dedupeCombinations(combos)
	if len(combos) > maxCombinations {
		combos = combos[:maxCombinations]
	}

	if len(combos) == 0 {
		return nil, &NoOutfitsError{TotalItems: len(items), Breakdown: breakdown}
	}

	return combos, nil
}

// westernDressOutfits pairs each dress with matching footwear.
func westernDressOutfits(ctx context.Context, g *Generator, b buckets) []models.OutfitCombination {
	if len(b.dresses) == 0 || len(b.shoes) == 0 {
		return nil
	}

	var combos []models.OutfitCombination
	for _, dress := range capItems(b.dresses, 3) {
		dressColor := ExtractColor(dress.Description)
		for _, shoe := range capItems(g.matchingShoes(ctx, dressColor, b.shoes), 2) {
			combos = append(combos, models.OutfitCombination{
				Type:        models.OutfitWesternDress,
				Items:       []models.OutfitPiece{piece(dress), piece(shoe)},
				Description: fmt.Sprintf("%s with %s", dress.Description, shoe.Description),
			})
		}
	}
	return combos
}

// westernTopBottomOutfits pairs tops with bottoms and, when possible, adds
// footwear satisfying both pieces. A pair with no workable footwear still
// ships as a two-piece outfit.
func westernTopBottomOutfits(ctx context.Context, g *Generator, b buckets) []models.OutfitCombination {
	if len(b.tops) == 0 || len(b.bottoms) == 0 {
		return nil
	}

	var combos []models.OutfitCombination
	for _, top := range capItems(b.tops, 4) {
		topColor := ExtractColor(top.Description)
		for _, bottom := range capItems(g.matchingBottoms(ctx, topColor, b.bottoms), 2) {
			bottomColor := ExtractColor(bottom.Description)

			shoes := g.shoesForOutfit(ctx, topColor, bottomColor, b.shoes)
			if len(shoes) > 0 {
				shoe := shoes[0]
				combos = append(combos, models.OutfitCombination{
					Type:        models.OutfitWesternTopBottom,
					Items:       []models.OutfitPiece{piece(top), piece(bottom), piece(shoe)},
					Description: fmt.Sprintf("%s with %s and %s", top.Description, bottom.Description, shoe.Description),
				})
			} else {
				combos = append(combos, models.OutfitCombination{
					Type:        models.OutfitWesternTopBottom,
					Items:       []models.OutfitPiece{piece(top), piece(bottom)},
					Description: fmt.Sprintf("%s with %s", top.Description, bottom.Description),
				})
			}
		}
	}
	return combos
}

// indianKurtiOutfits pairs kurtis with pant-like Indian bottoms, adding a
// dupatta and ethnic footwear when available.
func indianKurtiOutfits(ctx context.Context, g *Generator, b buckets) []models.OutfitCombination {
	if len(b.kurtis) == 0 || len(b.indianBottoms) == 0 {
		return nil
	}

	var combos []models.OutfitCombination
	for _, kurti := range capItems(b.kurtis, 4) {
		kurtiColor := ExtractColor(kurti.Description)
		for _, bottom := range capItems(g.matchingIndianBottoms(ctx, kurtiColor, b.indianBottoms), 2) {
			items := []models.OutfitPiece{piece(kurti), piece(bottom)}
			desc := fmt.Sprintf("%s with %s", kurti.Description, bottom.Description)

			if dupattas := g.matchingDupattas(ctx, kurtiColor, b.dupattas); len(dupattas) > 0 {
				items = append(items, piece(dupattas[0]))
				desc += fmt.Sprintf(" and %s", dupattas[0].Description)
			}

			if shoe, ok := firstEthnicFootwear(b.shoes); ok {
				items = append(items, piece(shoe))
			}

			combos = append(combos, models.OutfitCombination{
				Type:        models.OutfitIndianKurti,
				Items:       items,
				Description: desc,
			})
		}
	}
	return combos
}

// sareeOutfits builds saree looks, borrowing a complementing blouse from the
// western tops and ethnic footwear when available.
func sareeOutfits(ctx context.Context, g *Generator, b buckets) []models.OutfitCombination {
	if len(b.sarees) == 0 {
		return nil
	}

	var combos []models.OutfitCombination
	for _, saree := range capItems(b.sarees, 3) {
		sareeColor := ExtractColor(saree.Description)
		items := []models.OutfitPiece{piece(saree)}
		desc := saree.Description

		if blouses := g.matchingBlouses(ctx, sareeColor, b.tops); len(blouses) > 0 {
			items = append(items, piece(blouses[0]))
			desc += fmt.Sprintf(" with %s", blouses[0].Description)
		}

		if shoe, ok := firstEthnicFootwear(b.shoes); ok {
			items = append(items, piece(shoe))
		}

		combos = append(combos, models.OutfitCombination{
			Type:        models.OutfitSaree,
			Items:       items,
			Description: desc,
		})
	}
	return combos
}

// kurtiDupattaOutfits covers wardrobes with kurtis and dupattas but no
// Indian bottoms.
func kurtiDupattaOutfits(ctx context.Context, g *Generator, b buckets) []models.OutfitCombination {
	if len(b.kurtis) == 0 || len(b.dupattas) == 0 || len(b.indianBottoms) > 0 {
		return nil
	}

	var combos []models.OutfitCombination
	for _, kurti := range capItems(b.kurtis, 3) {
		kurtiColor := ExtractColor(kurti.Description)
		for _, dupatta := range capItems(g.matchingDupattas(ctx, kurtiColor, b.dupattas), 2) {
			combos = append(combos, models.OutfitCombination{
				Type:        models.OutfitKurtiDupatta,
				Items:       []models.OutfitPiece{piece(kurti), piece(dupatta)},
				Description: fmt.Sprintf("%s with %s", kurti.Description, dupatta.Description),
			})
		}
	}
	return combos
}

// kurtiOnlyOutfits is the single-item strategy for wardrobes with nothing
// to pair a kurti with.
func kurtiOnlyOutfits(ctx context.Context, g *Generator, b buckets) []models.OutfitCombination {
	if len(b.kurtis) == 0 || len(b.indianBottoms) > 0 || len(b.dupattas) > 0 {
		return nil
	}

	var combos []models.OutfitCombination
	for _, kurti := range capItems(b.kurtis, 2) {
		combos = append(combos, models.OutfitCombination{
			Type:        models.OutfitKurtiOnly,
			Items:       []models.OutfitPiece{piece(kurti)},
			Description: kurti.Description,
		})
	}
	return combos
}

// matchingBottoms returns bottoms whose color pairs with the top, falling
// back to up to two neutral-toned bottoms when nothing pairs directly.
func (g *Generator) matchingBottoms(ctx context.Context, topColor string, bottoms []models.WardrobeItem) []models.WardrobeItem {
	var matching []models.WardrobeItem
	for _, bottom := range bottoms {
		if g.Colors.HighlyCompatible(ctx, topColor, ExtractColor(bottom.Description)) {
			matching = append(matching, bottom)
		}
	}
	if len(matching) > 0 {
		return matching
	}

	var neutral []models.WardrobeItem
	for _, bottom := range bottoms {
		switch ExtractColor(bottom.Description) {
		case "black", "white", "blue", "gray":
			neutral = append(neutral, bottom)
		}
	}
	return capItems(neutral, 2)
}

// matchingIndianBottoms returns pant-like Indian bottoms for a kurti.
// Skirt-like bottoms never pair with kurtis, whatever their color.
func (g *Generator) matchingIndianBottoms(ctx context.Context, kurtiColor string, bottoms []models.WardrobeItem) []models.WardrobeItem {
	var matching []models.WardrobeItem
	for _, bottom := range bottoms {
		if strings.Contains(strings.ToLower(bottom.Description), "skirt") {
			continue
		}
		bottomColor := ExtractColor(bottom.Description)
		if g.Colors.HighlyCompatible(ctx, kurtiColor, bottomColor) ||
			bottomColor == "black" || bottomColor == "white" || bottomColor == "beige" {
			matching = append(matching, bottom)
		}
	}
	return capItems(matching, 3)
}

// matchingDupattas returns dupattas that either pair with or deliberately
// contrast the kurti.
func (g *Generator) matchingDupattas(ctx context.Context, kurtiColor string, dupattas []models.WardrobeItem) []models.WardrobeItem {
	var matching []models.WardrobeItem
	for _, dupatta := range dupattas {
		dupattaColor := ExtractColor(dupatta.Description)
		if g.Colors.HighlyCompatible(ctx, kurtiColor, dupattaColor) ||
			g.Colors.BeautifulContrast(kurtiColor, dupattaColor) {
			matching = append(matching, dupatta)
		}
	}
	return matching
}

// matchingBlouses returns tops that complement a saree.
func (g *Generator) matchingBlouses(ctx context.Context, sareeColor string, tops []models.WardrobeItem) []models.WardrobeItem {
	var matching []models.WardrobeItem
	for _, top := range tops {
		topColor := ExtractColor(top.Description)
		if g.Colors.HighlyCompatible(ctx, sareeColor, topColor) ||
			g.Colors.BeautifulContrast(sareeColor, topColor) {
			matching = append(matching, top)
		}
	}
	return matching
}

// matchingShoes returns footwear pairing with a single piece, falling back
// to up to two neutral pairs.
func (g *Generator) matchingShoes(ctx context.Context, itemColor string, shoes []models.WardrobeItem) []models.WardrobeItem {
	var matching []models.WardrobeItem
	for _, shoe := range shoes {
		if g.Colors.HighlyCompatible(ctx, itemColor, ExtractColor(shoe.Description)) {
			matching = append(matching, shoe)
		}
	}
	if len(matching) > 0 {
		return matching
	}
	return capItems(neutralShoes(shoes), 2)
}

// shoesForOutfit picks footwear for a two-piece outfit. Preference order:
// shoes pairing with both pieces, then with either piece, then any
// neutral-colored pair.
func (g *Generator) shoesForOutfit(ctx context.Context, topColor, bottomColor string, shoes []models.WardrobeItem) []models.WardrobeItem {
	var both, either []models.WardrobeItem
	for _, shoe := range shoes {
		shoeColor := ExtractColor(shoe.Description)
		matchTop := g.Colors.HighlyCompatible(ctx, topColor, shoeColor)
		matchBottom := g.Colors.HighlyCompatible(ctx, bottomColor, shoeColor)
		switch {
		case matchTop && matchBottom:
			both = append(both, shoe)
		case matchTop || matchBottom:
			either = append(either, shoe)
		}
	}
	if len(both) > 0 {
		return both
	}
	if len(either) > 0 {
		return either
	}
	return neutralShoes(shoes)
}

func neutralShoes(shoes []models.WardrobeItem) []models.WardrobeItem {
	var neutral []models.WardrobeItem
	for _, shoe := range shoes {
		switch ExtractColor(shoe.Description) {
		case "black", "white", "brown", "gray":
			neutral = append(neutral, shoe)
		}
	}
	return neutral
}

// firstEthnicFootwear finds the first Indian-style pair, if any.
func firstEthnicFootwear(shoes []models.WardrobeItem) (models.WardrobeItem, bool) {
	for _, shoe := range shoes {
		lower := strings.ToLower(shoe.Description)
		for _, kw := range []string{"juttis", "mojaris", "kolhapuris", "ethnic"} {
			if strings.Contains(lower, kw) {
				return shoe, true
			}
		}
	}
	return models.WardrobeItem{}, false
}

func piece(item models.WardrobeItem) models.OutfitPiece {
	return models.OutfitPiece{
		ID:          item.ID.Hex(),
		Description: item.Description,
		Category:    item.Category,
		ImageURL:    item.ImageKey,
	}
}

func capItems(items []models.WardrobeItem, n int) []models.WardrobeItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func findItem(items []models.WardrobeItem, id string) (models.WardrobeItem, bool) {
	for _, item := range items {
		if item.ID.Hex() == id {
			return item, true
		}
	}
	return models.WardrobeItem{}, false
}

func filterContaining(combos []models.OutfitCombination, id string) []models.OutfitCombination {
	var kept []models.OutfitCombination
	for _, combo := range combos {
		for _, item := range combo.Items {
			if item.ID == id {
				kept = append(kept, combo)
				break
			}
		}
	}
	return kept
}

// dedupeCombinations drops combinations that contain the same set of items
// as an earlier one, regardless of internal order.
func dedupeCombinations(combos []models.OutfitCombination) []models.OutfitCombination {
	seen := make(map[string]bool)
	var unique []models.OutfitCombination

	for _, combo := range combos {
		ids := make([]string, 0, len(combo.Items))
		for _, item := range combo.Items {
			ids = append(ids, item.ID)
		}
		sort.Strings(ids)
		key := strings.Join(ids, ",")

		if !seen[key] {
			seen[key] = true
			unique = append(unique, combo)
		}
	}
	return unique
}
