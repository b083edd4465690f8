package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stylematch/stylematch-backend/matcher"
	"github.com/stylematch/stylematch-backend/models"
	"github.com/stylematch/stylematch-backend/stylist"
	"github.com/stylematch/stylematch-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxUploadSize = 50 << 20 // 50 MB across the whole batch

// UploadedItem is the per-image result returned by the upload endpoint
type UploadedItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// WardrobeItemResponse is one wardrobe entry in the list endpoint
type WardrobeItemResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeleteItemRequest represents the payload for deleting a wardrobe item
type DeleteItemRequest struct {
	ID string `json:"id"`
}

// WardrobeUploadHandler handles multipart clothing-image uploads. Each image
// is embedded, identified against the catalog, categorized, stored in S3 and
// saved as a wardrobe item. Any image failure aborts the whole batch and the
// error names the failing file.
func WardrobeUploadHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Wardrobe Upload API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		utils.RespondError(w, &logMessageBuilder, "No images provided", http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Processing %d images for user %s", len(files), userID))

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	catalog, err := loadCatalog(ctx)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, err.Error())
		utils.RespondError(w, &logMessageBuilder, "Failed to load catalog", http.StatusInternalServerError)
		return
	}

	collection := utils.GetCollection(utils.DatabaseName, "wardrobe")
	var results []UploadedItem

	for _, fileHeader := range files {
		item, procErr := processWardrobeImage(ctx, &logMessageBuilder, userID, fileHeader, catalog, collection)
		if procErr != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed on image %s: %v", fileHeader.Filename, procErr))
			utils.RespondError(w, &logMessageBuilder,
				fmt.Sprintf("Failed to process image %s", fileHeader.Filename), http.StatusInternalServerError)
			return
		}
		results = append(results, item)
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Uploaded %d wardrobe items", len(results)))
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": fmt.Sprintf("Added %d items to your wardrobe", len(results)),
		"items":   results,
	})
}

func processWardrobeImage(ctx context.Context, logMessageBuilder *strings.Builder, userID string,
	fileHeader *multipart.FileHeader, catalog []models.CatalogItem, collection *mongo.Collection) (UploadedItem, error) {

	file, err := fileHeader.Open()
	if err != nil {
		return UploadedItem{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return UploadedItem{}, fmt.Errorf("failed to read file: %w", err)
	}

	vector, err := embeddings.EmbedImage(ctx, imageBytes)
	if err != nil {
		return UploadedItem{}, fmt.Errorf("failed to embed image: %w", err)
	}

	description := matcher.Identify(ctx, embeddings, catalog, vector)
	category := stylist.Classify(description)
	utils.AddToLogMessage(logMessageBuilder, fmt.Sprintf("Identified %s as '%s' (%s)", fileHeader.Filename, description, category))

	embeddingJSON, err := matcher.MarshalEmbedding(vector)
	if err != nil {
		return UploadedItem{}, fmt.Errorf("failed to serialize embedding: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("wardrobe/%s/%s%s", userID, uuid.New().String(), ext)

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	if _, err := utils.UploadFileToS3(ctx, bytes.NewReader(imageBytes), objectKey, contentType); err != nil {
		return UploadedItem{}, fmt.Errorf("failed to upload to S3: %w", err)
	}

	item := models.WardrobeItem{
		UserID:      userID,
		Description: description,
		Category:    category,
		ImageKey:    objectKey,
		Embedding:   embeddingJSON,
		CreatedAt:   time.Now(),
	}
	res, err := collection.InsertOne(ctx, item)
	if err != nil {
		return UploadedItem{}, fmt.Errorf("failed to save wardrobe item: %w", err)
	}

	imageURL, err := utils.GetPresignedURL(ctx, objectKey)
	if err != nil {
		utils.AddToLogMessage(logMessageBuilder, fmt.Sprintf("Failed to presign %s: %v", objectKey, err))
		imageURL = ""
	}

	return UploadedItem{
		ID:          res.InsertedID.(primitive.ObjectID).Hex(),
		Description: description,
		Category:    category,
		ImageURL:    imageURL,
	}, nil
}

// WardrobeListHandler returns all wardrobe items for the authenticated user
func WardrobeListHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Wardrobe List API]")

	if r.Method != http.MethodGet {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	collection := utils.GetCollection(utils.DatabaseName, "wardrobe")
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
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

	responses := make([]WardrobeItemResponse, 0, len(items))
	for _, item := range items {
		imageURL, presignErr := utils.GetPresignedURL(ctx, item.ImageKey)
		if presignErr != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to presign %s: %v", item.ImageKey, presignErr))
			imageURL = ""
		}
		responses = append(responses, WardrobeItemResponse{
			ID:          item.ID.Hex(),
			Description: item.Description,
			Category:    item.Category,
			ImageURL:    imageURL,
			CreatedAt:   item.CreatedAt,
		})
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Returning %d wardrobe items for user %s", len(responses), userID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(responses),
		"items": responses,
	})
}

// WardrobeDeleteHandler removes a wardrobe item owned by the authenticated
// user. Items owned by someone else look the same as missing ones.
func WardrobeDeleteHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Wardrobe Delete API]")

	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req DeleteItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		utils.RespondError(w, &logMessageBuilder, "Item id is required", http.StatusBadRequest)
		return
	}

	objectID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid item id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	collection := utils.GetCollection(utils.DatabaseName, "wardrobe")
	res, err := collection.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to delete item: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to delete item", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, &logMessageBuilder, "Item not found", http.StatusNotFound)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Deleted wardrobe item %s for user %s", req.ID, userID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Item removed from wardrobe",
	})
}
