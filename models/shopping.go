package models

// ShoppingLink points the user at a place to buy a garment. Title and Price
// are best-effort: search-page scrapes fill them in, plain search links leave
// them empty.
type ShoppingLink struct {
	Retailer string `json:"retailer"`
	Title    string `json:"title,omitempty"`
	URL      string `json:"url"`
	Price    string `json:"price,omitempty"`
}
