package amazon

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
	return "Amazon"
}

func (s *Shop) SearchURL(query string) string {
	return "https://www.amazon.in/s?k=" + url.QueryEscape(query)
}

func (s *Shop) Search(query string, limit int) ([]models.ShoppingLink, error) {
	doc, err := s.FetchDocument(s.SearchURL(query), func(doc *goquery.Document) bool {
		return doc.Find("div[data-component-type='s-search-result']").Length() > 0
	})
	if err != nil {
		return nil, err
	}

	var links []models.ShoppingLink
	doc.Find("div[data-component-type='s-search-result']").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(links) >= limit {
			return false
		}

		title := strings.TrimSpace(sel.Find("h2 a span").First().Text())
		if title == "" {
			title = strings.TrimSpace(sel.Find("h2 span").First().Text())
		}

		href := sel.Find("h2 a").AttrOr("href", "")
		if href == "" {
			// Newer layout wraps the whole card in one link
			href = sel.Find("a.a-link-normal").First().AttrOr("href", "")
		}
		if href == "" || title == "" {
			return true
		}
		if strings.HasPrefix(href, "/") {
			href = "https://www.amazon.in" + href
		}

		// a-offscreen carries the clean rupee string, e.g. "₹1,299"
		price := strings.TrimSpace(sel.Find("span.a-price span.a-offscreen").First().Text())

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
