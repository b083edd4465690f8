package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stylematch/stylematch-backend/models"
	"github.com/stylematch/stylematch-backend/stylist"
	"github.com/stylematch/stylematch-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// GenerateOutfitsRequest represents the payload for outfit generation
type GenerateOutfitsRequest struct {
	AnchorItemID string `json:"anchor_item_id"`
}

// OutfitGenerateHandler assembles color-coordinated outfit combinations from
// the user's wardrobe, optionally anchored on one item.
func OutfitGenerateHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Outfit Generate API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req GenerateOutfitsRequest
	if r.Body != nil {
		// Body is optional; an empty body means no anchor.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	collection := utils.GetCollection(utils.DatabaseName, "wardrobe")
	cursor, err := collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to query wardrobe: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch wardrobe", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.WardrobeItem
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to decode wardrobe items", http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generating outfits from %d items for user %s", len(items), userID))

	combos, err := outfits.Generate(ctx, items, req.AnchorItemID)
	if err != nil {
		var insufficient *stylist.InsufficientItemsError
		var noOutfits *stylist.NoOutfitsError
		switch {
		case errors.As(err, &insufficient):
			utils.AddToLogMessage(&logMessageBuilder, "Not enough items to generate outfits")
			utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": insufficient.Error(),
				"debug_info": map[string]interface{}{
					"total_items": insufficient.TotalItems,
					"breakdown":   insufficient.Breakdown,
				},
			})
		case errors.As(err, &noOutfits):
			utils.AddToLogMessage(&logMessageBuilder, "No compatible outfits found")
			utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": noOutfits.Error(),
				"debug_info": map[string]interface{}{
					"total_items": noOutfits.TotalItems,
					"breakdown":   noOutfits.Breakdown,
				},
			})
		default:
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generation failed: %v", err))
			utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		}
		return
	}

	// Pieces carry S3 object keys; swap them for presigned URLs.
	for i := range combos {
		keys := make([]string, 0, len(combos[i].Items))
		for _, item := range combos[i].Items {
			keys = append(keys, item.ImageURL)
		}
		urls := utils.PresignImageURLs(ctx, keys)
		for j := range combos[i].Items {
			combos[i].Items[j].ImageURL = urls[j]
		}
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generated %d outfit combinations", len(combos)))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(combos),
		"outfits": combos,
	})
}
