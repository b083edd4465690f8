package stylist

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

// neutralColors go with anything. Keep in sync with the harmony tables.
var neutralColors = map[string]bool{
	"black": true,
	"white": true,
	"gray":  true,
	"brown": true,
	"beige": true,
	"khaki": true,
	"navy":  true,
}

// colorHarmonies lists classic fashion pairings per color. The table is
// stored one-directional; lookups check both directions.
var colorHarmonies = map[string][]string{
	"red":    {"black", "white", "gray", "blue", "navy"},
	"blue":   {"white", "black", "gray", "red", "pink", "yellow"},
	"green":  {"white", "black", "gray", "brown", "blue"},
	"yellow": {"white", "black", "gray", "blue", "purple"},
	"pink":   {"white", "black", "gray", "blue", "green"},
	"purple": {"white", "black", "gray", "yellow", "pink"},
	"orange": {"white", "black", "gray", "blue", "brown"},
}

// contrastPairs lists vivid complementary combinations used for accent
// pieces (dupattas, saree blouses). Separate from, and looser than, the
// harmony table.
var contrastPairs = map[string][]string{
	"red":    {"green", "gold", "yellow", "pink"},
	"green":  {"red", "pink", "orange", "purple"},
	"blue":   {"orange", "pink", "silver", "yellow"},
	"pink":   {"green", "blue", "purple", "red"},
	"purple": {"pink", "yellow", "gold", "green"},
	"yellow": {"purple", "red", "blue", "green"},
	"orange": {"blue", "green", "purple", "pink"},
}

// IsNeutral reports whether color is one of the neutral shades.
func IsNeutral(color string) bool {
	return neutralColors[color]
}

// HighlyCompatible decides whether two canonical colors pair well, from the
// static tables. Symmetric: both table directions are checked.
//
// Unknown colors are compatible with neutrals (and with unknown) only. This
// splits the difference between the two historical behaviors: an unlabeled
// garment can still enter an outfit through a neutral pairing, but it is
// never matched against a vivid hue it might clash with.
func HighlyCompatible(a, b string) bool {
	if a == b {
		return true
	}

	if a == ColorUnknown || b == ColorUnknown {
		return IsNeutral(a) || IsNeutral(b)
	}

	if IsNeutral(a) || IsNeutral(b) {
		return true
	}

	if containsColor(colorHarmonies[a], b) || containsColor(colorHarmonies[b], a) {
		return true
	}

	return false
}

// BeautifulContrast reports whether two colors make a deliberate vivid
// contrast. Checked in addition to HighlyCompatible when picking accent
// pieces.
func BeautifulContrast(a, b string) bool {
	if a == ColorUnknown || b == ColorUnknown {
		return false
	}
	return containsColor(contrastPairs[a], b) || containsColor(contrastPairs[b], a)
}

func containsColor(list []string, color string) bool {
	for _, c := range list {
		if c == color {
			return true
		}
	}
	return false
}

// paletteDistanceThreshold is the per-palette-entry Euclidean RGB distance
// (0-255 per channel) under which two colors count as compatible.
const paletteDistanceThreshold = 50

// PaletteClient talks to an external color-scheme service. Given a seed
// color it returns a generated palette of RGB values.
type PaletteClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewPaletteClient creates a client for the color-scheme service at
// endpoint. An empty endpoint returns nil, which Oracle treats as
// static-tables-only.
func NewPaletteClient(endpoint string) *PaletteClient {
	if endpoint == "" {
		return nil
	}
	return &PaletteClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type paletteResponse struct {
	Colors []struct {
		RGB struct {
			R int `json:"r"`
			G int `json:"g"`
			B int `json:"b"`
		} `json:"rgb"`
	} `json:"colors"`
}

// scheme fetches the generated palette for a seed color.
func (p *PaletteClient) scheme(ctx context.Context, seed rgb) ([]rgb, error) {
	url := fmt.Sprintf("%s/scheme?rgb=%d,%d,%d", p.endpoint, seed.R, seed.G, seed.B)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("palette: failed to build request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("palette: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("palette: service returned %d", resp.StatusCode)
	}

	var out paletteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("palette: failed to decode response: %w", err)
	}
	if len(out.Colors) == 0 {
		return nil, fmt.Errorf("palette: empty palette")
	}

	palette := make([]rgb, 0, len(out.Colors))
	for _, c := range out.Colors {
		palette = append(palette, rgb{c.RGB.R, c.RGB.G, c.RGB.B})
	}
	return palette, nil
}

// Oracle answers color-pairing questions. With a palette client it first
// asks the external color-scheme service; any failure or timeout falls back
// to the static tables. Without one it is the static tables.
type Oracle struct {
	palette *PaletteClient
}

// NewOracle builds an Oracle. palette may be nil.
func NewOracle(palette *PaletteClient) *Oracle {
	return &Oracle{palette: palette}
}

// HighlyCompatible is the strict pairing predicate gating whether two
// garments are combined at all.
func (o *Oracle) HighlyCompatible(ctx context.Context, a, b string) bool {
	if o.palette != nil {
		if ok, err := o.paletteCompatible(ctx, a, b); err == nil {
			return ok
		}
	}
	return HighlyCompatible(a, b)
}

// BeautifulContrast is the accent-piece predicate. The palette service
// models harmony, not contrast, so this is always the static table.
func (o *Oracle) BeautifulContrast(a, b string) bool {
	return BeautifulContrast(a, b)
}

// paletteCompatible seeds the scheme service with a's RGB and accepts b if
// its RGB lands within the distance threshold of any palette entry. Checked
// in both directions so the answer stays symmetric.
func (o *Oracle) paletteCompatible(ctx context.Context, a, b string) (bool, error) {
	if a == b {
		return true, nil
	}

	seedA, okA := canonicalRGB[a]
	seedB, okB := canonicalRGB[b]
	if !okA || !okB {
		// unknown and multicolor have no single RGB; leave those to the tables
		return false, fmt.Errorf("palette: no rgb for %q/%q", a, b)
	}

	palette, err := o.palette.scheme(ctx, seedA)
	if err != nil {
		return false, err
	}
	if paletteContains(palette, seedB) {
		return true, nil
	}

	palette, err = o.palette.scheme(ctx, seedB)
	if err != nil {
		return false, err
	}
	return paletteContains(palette, seedA), nil
}

func paletteContains(palette []rgb, c rgb) bool {
	for _, p := range palette {
		dr := float64(p.R - c.R)
		dg := float64(p.G - c.G)
		db := float64(p.B - c.B)
		if math.Sqrt(dr*dr+dg*dg+db*db) <= paletteDistanceThreshold {
			return true
		}
	}
	return false
}
