package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylematch/stylematch-backend/shops"
	"github.com/stylematch/stylematch-backend/utils"
)

// ShopSearchRequest represents the payload for a shopping search
type ShopSearchRequest struct {
	Query string `json:"query"`
}

// ShopSearchHandler searches the retailer scrapers for a garment query and
// returns a bundle of shopping links. Scraper failures degrade to plain
// search-page links, never an error.
func ShopSearchHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Shop Search API]")

	var query string
	switch r.Method {
	case http.MethodGet:
		query = r.URL.Query().Get("query")
	case http.MethodPost:
		var req ShopSearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		query = req.Query
	default:
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query = strings.TrimSpace(query)
	if query == "" {
		utils.RespondError(w, &logMessageBuilder, "Query is required", http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Searching shops for: %s", query))

	links := shops.SearchAll(query, 3)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Found %d shopping links", len(links)))

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"query": query,
		"links": links,
	})
}
