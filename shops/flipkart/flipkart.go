package flipkart

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
	return "Flipkart"
}

func (s *Shop) SearchURL(query string) string {
	return "https://www.flipkart.com/search?q=" + url.QueryEscape(query)
}

func (s *Shop) Search(query string, limit int) ([]models.ShoppingLink, error) {
	doc, err := s.FetchDocument(s.SearchURL(query), func(doc *goquery.Document) bool {
		return doc.Find("a[href*='/p/']").Length() > 0
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var links []models.ShoppingLink

	// Product cards are anchors whose href contains the /p/ product path.
	// Class names rotate between deployments, the path does not.
	doc.Find("a[href*='/p/']").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(links) >= limit {
			return false
		}

		href := sel.AttrOr("href", "")
		if href == "" {
			return true
		}
		if strings.HasPrefix(href, "/") {
			href = "https://www.flipkart.com" + href
		}
		if idx := strings.Index(href, "?"); idx > 0 {
			href = href[:idx]
		}
		if seen[href] {
			return true
		}

		title := strings.TrimSpace(sel.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(sel.Find("div.KzDlHZ").Text())
		}
		if title == "" {
			title = strings.TrimSpace(sel.Find("div._4rR01T").Text())
		}
		if title == "" {
			return true
		}

		price := strings.TrimSpace(sel.Find("div.Nx9bqj").First().Text())
		if price == "" {
			price = strings.TrimSpace(sel.Find("div._30jeq3").First().Text())
		}

		seen[href] = true
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
