package api

import "strings"

// purchaseIntentKeywords flag a message as a shopping request. This is a
// substring heuristic with no confidence score; misses and false hits are a
// known limitation of the approach.
var purchaseIntentKeywords = []string{
	"buy",
	"purchase",
	"shop for",
	"shopping",
	"where can i get",
	"where can i find",
	"where to get",
	"link for",
	"links for",
	"price of",
	"order",
	"add to cart",
}

// productQueryStopPrefixes are lead-ins stripped from a shopping message to
// leave the garment query itself.
var productQueryStopPrefixes = []string{
	"i want to buy",
	"i want to purchase",
	"i would like to buy",
	"where can i get",
	"where can i find",
	"where to get",
	"can i buy",
	"help me buy",
	"buy me",
	"buy",
	"purchase",
	"shop for",
	"order",
	"show me",
	"find me",
	"links for",
	"link for",
	"price of",
}

// HasPurchaseIntent reports whether the message looks like a shopping
// request rather than a styling question.
func HasPurchaseIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range purchaseIntentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractProductQuery trims shopping lead-ins and filler from the message,
// leaving the words worth searching a retailer for. Falls back to the whole
// message when stripping would leave nothing.
func ExtractProductQuery(message string) string {
	query := strings.ToLower(strings.TrimSpace(message))
	query = strings.Trim(query, ".!?")

	for _, prefix := range productQueryStopPrefixes {
		if idx := strings.Index(query, prefix); idx >= 0 {
			candidate := strings.TrimSpace(query[idx+len(prefix):])
			if candidate != "" {
				query = candidate
				break
			}
		}
	}

	for _, filler := range []string{"a ", "an ", "the ", "some ", "me "} {
		query = strings.TrimPrefix(query, filler)
	}
	query = strings.TrimSuffix(query, " online")
	query = strings.TrimSuffix(query, " for me")

	if strings.TrimSpace(query) == "" {
		return strings.TrimSpace(message)
	}
	return strings.TrimSpace(query)
}
