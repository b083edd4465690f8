package myntra

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stylematch/stylematch-backend/models"
	"github.com/stylematch/stylematch-backend/shops/base"
)

type Shop struct {
	*base.Fetcher
}

func NewShop() *Shop {
	return &Shop{Fetcher: base.NewFetcher()}
}

func (s *Shop) Name() string {
	return "Myntra"
}

func (s *Shop) SearchURL(query string) string {
	// Myntra routes searches as path segments with dashes
	slug := strings.ReplaceAll(strings.TrimSpace(query), " ", "-")
	return "https://www.myntra.com/" + url.PathEscape(slug)
}

func (s *Shop) Search(query string, limit int) ([]models.ShoppingLink, error) {
	doc, err := s.FetchDocument(s.SearchURL(query), func(doc *goquery.Document) bool {
		// Myntra renders results client-side; the HTTP tier usually fails
		// this check and the headless tiers take over
		return doc.Find("li.product-base").Length() > 0
	})
	if err != nil {
		return nil, err
	}

	var links []models.ShoppingLink
	doc.Find("li.product-base").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(links) >= limit {
			return false
		}

		href := sel.Find("a").First().AttrOr("href", "")
		if href == "" {
			return true
		}
		if !strings.HasPrefix(href, "http") {
			href = "https://www.myntra.com/" + strings.TrimPrefix(href, "/")
		}

		brand := strings.TrimSpace(sel.Find("h3.product-brand").Text())
		product := strings.TrimSpace(sel.Find("h4.product-product").Text())
		title := strings.TrimSpace(brand + " " + product)
		if title == "" {
			return true
		}

		price := strings.TrimSpace(sel.Find("span.product-discountedPrice").Text())
		if price == "" {
			price = strings.TrimSpace(sel.Find("div.product-price span").First().Text())
		}

		links = append(links, models.ShoppingLink{
			Retailer: s.Name(),
			Title:    title,
			URL:      href,
			Price:    price,
		})
		return true
	})

	if len(links) == 0 {
		return nil, fmt.Errorf("no results parsed for %q", query)
	}

	return links, nil
}
