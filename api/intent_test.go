package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPurchaseIntent(t *testing.T) {
	shopping := []string{
		"I want to buy a red saree",
		"Where can I get blue jeans?",
		"show me links for kurtis",
		"What is the price of this dress",
		"ORDER a black kurti",
	}
	for _, msg := range shopping {
		assert.True(t, HasPurchaseIntent(msg), "message: %s", msg)
	}

	advice := []string{
		"What should I wear with my black jeans?",
		"Does red go with green?",
		"Suggest an outfit for a wedding",
		"",
	}
	for _, msg := range advice {
		assert.False(t, HasPurchaseIntent(msg), "message: %s", msg)
	}
}

func TestExtractProductQuery(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I want to buy a red saree", "red saree"},
		{"where can I get blue denim jeans?", "blue denim jeans"},
		{"buy kurti online", "kurti"},
		{"show me some golden juttis", "golden juttis"},
		{"price of a silk saree", "silk saree"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ExtractProductQuery(tc.message), "message: %s", tc.message)
	}
}

func TestExtractProductQueryFallsBackToMessage(t *testing.T) {
	assert.Equal(t, "buy", ExtractProductQuery("buy"))
}
