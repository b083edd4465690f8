package stylist

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlyCompatibleStaticTables(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"red", "red", true},        // same color
		{"black", "red", true},      // neutral goes with anything
		{"white", "green", true},    // neutral goes with anything
		{"red", "blue", true},       // harmony table
		{"yellow", "purple", true},  // harmony table
		{"yellow", "pink", false},   // no harmony either direction
		{"orange", "purple", false}, // no harmony either direction
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, HighlyCompatible(tc.a, tc.b), "%s + %s", tc.a, tc.b)
	}
}

func TestHighlyCompatibleIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"red", "blue"}, {"yellow", "pink"}, {"green", "brown"}, {"unknown", "black"},
	}
	for _, p := range pairs {
		assert.Equal(t, HighlyCompatible(p[0], p[1]), HighlyCompatible(p[1], p[0]), "%s / %s", p[0], p[1])
	}
}

func TestHighlyCompatibleUnknownPolicy(t *testing.T) {
	// unknown pairs with neutrals and itself, never with vivid colors
	assert.True(t, HighlyCompatible(ColorUnknown, "black"))
	assert.True(t, HighlyCompatible("white", ColorUnknown))
	assert.True(t, HighlyCompatible(ColorUnknown, ColorUnknown))
	assert.False(t, HighlyCompatible(ColorUnknown, "red"))
	assert.False(t, HighlyCompatible("pink", ColorUnknown))
}

func TestBeautifulContrast(t *testing.T) {
	assert.True(t, BeautifulContrast("red", "green"))
	assert.True(t, BeautifulContrast("green", "red"), "symmetric")
	assert.True(t, BeautifulContrast("blue", "orange"))
	assert.False(t, BeautifulContrast("black", "red"), "neutrals are not contrasts")
	assert.False(t, BeautifulContrast(ColorUnknown, "red"))
	assert.False(t, BeautifulContrast(ColorUnknown, ColorUnknown))
}

func TestNewPaletteClientEmptyEndpoint(t *testing.T) {
	assert.Nil(t, NewPaletteClient(""))
}

func TestOracleStaticWithoutPalette(t *testing.T) {
	o := NewOracle(nil)
	ctx := context.Background()

	assert.True(t, o.HighlyCompatible(ctx, "red", "black"))
	assert.False(t, o.HighlyCompatible(ctx, "yellow", "pink"))
	assert.True(t, o.BeautifulContrast("red", "green"))
}

func TestOraclePaletteService(t *testing.T) {
	// Palette service that always answers with pink, so any seed color is
	// palette-compatible with pink.
	pink := canonicalRGB["pink"]
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scheme", r.URL.Path)
		fmt.Fprintf(w, `{"colors":[{"rgb":{"r":%d,"g":%d,"b":%d}}]}`, pink.R, pink.G, pink.B)
	}))
	defer srv.Close()

	o := NewOracle(NewPaletteClient(srv.URL))
	ctx := context.Background()

	// Statically false, but the palette service approves it.
	assert.True(t, o.HighlyCompatible(ctx, "yellow", "pink"))
}

func TestOraclePaletteDistanceThreshold(t *testing.T) {
	// Palette far from everything: no canonical color is within distance 50
	// of (100, 200, 55) except green-ish values; use purple vs orange.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"colors":[{"rgb":{"r":10,"g":200,"b":10}}]}`)
	}))
	defer srv.Close()

	o := NewOracle(NewPaletteClient(srv.URL))
	ctx := context.Background()

	// Neither purple (128,0,128) nor orange (255,140,0) is near the palette,
	// and the pair is statically incompatible too.
	assert.False(t, o.HighlyCompatible(ctx, "purple", "orange"))
}

func TestOracleFallsBackWhenPaletteFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	o := NewOracle(NewPaletteClient(srv.URL))
	ctx := context.Background()

	// Static tables take over: harmony pair stays true, non-pair stays false.
	assert.True(t, o.HighlyCompatible(ctx, "red", "blue"))
	assert.False(t, o.HighlyCompatible(ctx, "yellow", "pink"))
}

func TestOracleFallsBackForUncodedColors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("palette service should not be called for colors without RGB")
	}))
	defer srv.Close()

	o := NewOracle(NewPaletteClient(srv.URL))
	ctx := context.Background()

	// multicolor and unknown have no canonical RGB; static rules apply.
	assert.True(t, o.HighlyCompatible(ctx, "multicolor", "multicolor"))
	assert.True(t, o.HighlyCompatible(ctx, ColorUnknown, "black"))
}
