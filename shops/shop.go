// Package shops resolves garment queries into retailer shopping links by
// scraping retailer search pages.
package shops

import (
	"fmt"

	"github.com/stylematch/stylematch-backend/models"
	"github.com/stylematch/stylematch-backend/shops/amazon"
	"github.com/stylematch/stylematch-backend/shops/flipkart"
	"github.com/stylematch/stylematch-backend/shops/myntra"
)

// Shop is one retailer we can search for garments.
type Shop interface {
	// Name is the retailer label put on returned links
	Name() string
	// SearchURL builds the retailer's search page URL for a query
	SearchURL(query string) string
	// Search scrapes up to limit product links for the query
	Search(query string, limit int) ([]models.ShoppingLink, error)
}

// All returns the registered retailers.
func All() []Shop {
	return []Shop{
		amazon.NewShop(),
		flipkart.NewShop(),
		myntra.NewShop(),
	}
}

// SearchAll queries every retailer for the garment and collects the results.
// A retailer whose scrape fails still contributes its plain search-page
// link, so the bundle is never empty.
func SearchAll(query string, perShop int) []models.ShoppingLink {
	var links []models.ShoppingLink
	for _, shop := range All() {
		results, err := shop.Search(query, perShop)
		if err != nil || len(results) == 0 {
			if err != nil {
				fmt.Printf("[Shops] %s search failed: %v\n", shop.Name(), err)
			}
			links = append(links, models.ShoppingLink{
				Retailer: shop.Name(),
				URL:      shop.SearchURL(query),
			})
			continue
		}
		links = append(links, results...)
	}
	return links
}
