package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stylematch/stylematch-backend/matcher"
	"github.com/stylematch/stylematch-backend/models"
	"github.com/stylematch/stylematch-backend/shops"
	"github.com/stylematch/stylematch-backend/stylist"
	"github.com/stylematch/stylematch-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// RecommendRequest represents the JSON payload for text-only recommendations
type RecommendRequest struct {
	Message string `json:"message"`
}

// IdentifiedItem describes what the matcher recognized in an uploaded image
type IdentifiedItem struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
}

const maxRecommendImageSize = 10 << 20 // 10 MB

func loadCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	collection := utils.GetCollection(utils.DatabaseName, "catalog")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.CatalogItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return items, nil
}

// RecommendHandler handles free-text and image recommendation queries.
// Purchase-intent messages get a shopping bundle from the retailer
// scrapers; everything else gets LLM styling advice. An attached image
// is identified against the catalog first so the query or advice can
// reference the actual garment.
func RecommendHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Recommend API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	message := ""
	var identified *IdentifiedItem

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxRecommendImageSize); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Failed to parse multipart form", http.StatusBadRequest)
			return
		}
		message = r.FormValue("message")

		if file, _, err := r.FormFile("image"); err == nil {
			defer file.Close()
			imageBytes, readErr := io.ReadAll(file)
			if readErr != nil {
				utils.RespondError(w, &logMessageBuilder, "Failed to read image", http.StatusBadRequest)
				return
			}

			vector, embedErr := embeddings.EmbedImage(ctx, imageBytes)
			if embedErr != nil {
				utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to embed image: %v", embedErr))
				utils.RespondError(w, &logMessageBuilder, "Failed to process image", http.StatusInternalServerError)
				return
			}

			catalog, catErr := loadCatalog(ctx)
			if catErr != nil {
				utils.AddToLogMessage(&logMessageBuilder, catErr.Error())
				utils.RespondError(w, &logMessageBuilder, "Failed to load catalog", http.StatusInternalServerError)
				return
			}

			description := matcher.Identify(ctx, embeddings, catalog, vector)
			identified = &IdentifiedItem{
				Description: description,
				Category:    stylist.Classify(description),
				Color:       stylist.ExtractColor(description),
			}
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Identified uploaded image as: %s", description))
		}
	} else {
		var req RecommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		message = req.Message
	}

	if message == "" && identified == nil {
		utils.RespondError(w, &logMessageBuilder, "Provide a message or an image", http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{}
	if identified != nil {
		response["identified_item"] = identified
	}

	if message != "" && HasPurchaseIntent(message) {
		query := ExtractProductQuery(message)
		if identified != nil {
			query = identified.Description
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Purchase intent detected, searching for: %s", query))

		links := shops.SearchAll(query, 3)
		response["type"] = "shopping"
		response["query"] = query
		response["shopping_links"] = links
		utils.RespondJSON(w, http.StatusOK, response)
		return
	}

	prompt := message
	if prompt == "" {
		prompt = fmt.Sprintf("What should I wear with my %s?", identified.Description)
	} else if identified != nil {
		prompt = fmt.Sprintf("%s (the user attached an image of: %s)", message, identified.Description)
	}

	advice, err := utils.GenerateStyleAdvice(ctx, prompt)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Gemini failed, using default advice: %v", err))
		advice = utils.DefaultStyleAdvice
	}

	response["type"] = "advice"
	response["advice"] = advice
	utils.RespondJSON(w, http.StatusOK, response)
}
