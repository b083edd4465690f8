package stylist

import "strings"

// ColorUnknown is returned when no color keyword matches. Downstream
// selection treats it permissively rather than as a mismatch.
const ColorUnknown = "unknown"

// colorEntry maps a canonical color to the description keywords that imply
// it.
type colorEntry struct {
	color    string
	keywords []string
}

// colorTable is evaluated in order; the first canonical color with a
// synonym hit wins. The multicolor bucket catches pattern words rather than
// a hue.
var colorTable = []colorEntry{
	{"black", []string{"black", "ebony", "onyx"}},
	{"white", []string{"white", "ivory", "cream", "off-white"}},
	{"red", []string{"red", "crimson", "scarlet", "burgundy", "maroon"}},
	{"blue", []string{"blue", "navy", "denim", "sky blue", "royal blue", "light blue"}},
	{"green", []string{"green", "emerald", "olive", "forest", "mint"}},
	{"yellow", []string{"yellow", "gold", "mustard", "lemon"}},
	{"pink", []string{"pink", "rose", "fuchsia", "hot pink"}},
	{"purple", []string{"purple", "violet", "lavender", "lilac"}},
	{"orange", []string{"orange", "coral", "peach"}},
	{"brown", []string{"brown", "tan", "beige", "khaki", "taupe"}},
	{"gray", []string{"gray", "grey", "charcoal", "silver"}},
	{"multicolor", []string{"floral", "print", "pattern", "striped", "checkered", "polka dot"}},
}

// ExtractColor pulls a canonical color label out of a garment description,
// or ColorUnknown when nothing matches.
func ExtractColor(description string) string {
	lower := strings.ToLower(description)

	for _, entry := range colorTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.color
			}
		}
	}

	return ColorUnknown
}

// rgb is a 0-255 sRGB triple used by the palette strategy.
type rgb struct {
	R, G, B int
}

// canonicalRGB anchors each canonical color label to a representative RGB
// value for palette-distance checks.
var canonicalRGB = map[string]rgb{
	"black":  {0, 0, 0},
	"white":  {255, 255, 255},
	"red":    {220, 20, 60},
	"blue":   {30, 60, 200},
	"green":  {34, 139, 34},
	"yellow": {240, 200, 40},
	"pink":   {255, 105, 180},
	"purple": {128, 0, 128},
	"orange": {255, 140, 0},
	"brown":  {139, 90, 43},
	"gray":   {128, 128, 128},
}
