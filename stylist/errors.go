package stylist

// Breakdown reports how many wardrobe items landed in each category. It is
// attached to generation errors so the client can tell the user what kind of
// item is missing.
type Breakdown struct {
	WesternTops    int `json:"western_tops"`
	WesternBottoms int `json:"western_bottoms"`
	WesternDresses int `json:"western_dresses"`
	Kurtis         int `json:"kurtis"`
	Sarees         int `json:"sarees"`
	IndianBottoms  int `json:"indian_bottoms"`
	Dupattas       int `json:"dupattas"`
	Shoes          int `json:"shoes"`
	Accessories    int `json:"accessories"`
}

// InsufficientItemsError means the wardrobe is too small to combine at all.
type InsufficientItemsError struct {
	TotalItems int
	Breakdown  Breakdown
}

func (e *InsufficientItemsError) Error() string {
	return "need at least 2 items to generate outfits"
}

// NoOutfitsError means items existed but no compatible combination could be
// assembled from them.
type NoOutfitsError struct {
	TotalItems int
	Breakdown  Breakdown
}

func (e *NoOutfitsError) Error() string {
	return "could not generate complete outfits, try adding more diverse clothing items"
}
