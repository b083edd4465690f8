package models

// Outfit combination types produced by the generator.
const (
	OutfitWesternDress     = "western_dress_outfit"
	OutfitWesternTopBottom = "western_top_bottom_outfit"
	OutfitIndianKurti      = "indian_kurti_outfit"
	OutfitSaree            = "saree_outfit"
	OutfitKurtiDupatta     = "kurti_dupatta_outfit"
	OutfitKurtiOnly        = "kurti_only"
)

// OutfitPiece is one garment inside a combination, trimmed down to what the
// client needs to render it.
type OutfitPiece struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
}

// OutfitCombination is an assembled outfit. Combinations are built fresh per
// request and never persisted; two combinations are the same outfit when they
// contain the same set of item ids, regardless of order.
type OutfitCombination struct {
	Type        string        `json:"type"`
	Items       []OutfitPiece `json:"items"`
	Description string        `json:"description"`
}
