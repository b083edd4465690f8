package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/stylematch/stylematch-backend/clip"
	"github.com/stylematch/stylematch-backend/config"
	"github.com/stylematch/stylematch-backend/matcher"
	"github.com/stylematch/stylematch-backend/models"
	"github.com/stylematch/stylematch-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// Loads the fashion product catalog from a styles.csv dataset dump.
// Non-clothing rows are filtered out, rows already present in the catalog
// are skipped, descriptions are embedded via the CLIP service and product
// images (when present next to the CSV) are uploaded to S3.

var clothingCategories = map[string]bool{
	"Apparel":                 true,
	"Clothing":                true,
	"Topwear":                 true,
	"Bottomwear":              true,
	"Footwear":                true,
	"Dress":                   true,
	"Innerwear":               true,
	"Socks":                   true,
	"Loungewear and Nightwear": true,
}

var excludeCategories = map[string]bool{
	"Watches":                  true,
	"Perfume":                  true,
	"Jewellery":                true,
	"Accessories":              true,
	"Personal Care":            true,
	"Beauty and Personal Care": true,
	"Home":                     true,
	"Sports":                   true,
	"Toys":                     true,
}

var clothingArticleKeywords = []string{"shirt", "dress", "pant", "jean", "top", "skirt", "jacket", "shoe"}
var excludeArticleKeywords = []string{"watch", "perfume", "jewel"}

type catalogRow struct {
	ID          string
	Description string
}

func isClothingRow(masterCategory, subCategory, articleType string) bool {
	article := strings.ToLower(articleType)
	for _, kw := range excludeArticleKeywords {
		if strings.Contains(article, kw) {
			return false
		}
	}
	if excludeCategories[masterCategory] || excludeCategories[subCategory] {
		return false
	}
	if clothingCategories[masterCategory] || clothingCategories[subCategory] {
		return true
	}
	for _, kw := range clothingArticleKeywords {
		if strings.Contains(article, kw) {
			return true
		}
	}
	return false
}

func readRows(csvPath string) ([]catalogRow, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // the dataset has ragged rows, skip strictness

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"id", "masterCategory", "subCategory", "articleType", "productDisplayName"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV is missing column %q", required)
		}
	}

	var rows []catalogRow
	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		if len(record) <= col["productDisplayName"] {
			continue
		}
		if !isClothingRow(record[col["masterCategory"]], record[col["subCategory"]], record[col["articleType"]]) {
			continue
		}
		description := strings.TrimSpace(record[col["productDisplayName"]])
		// Skip if description is too generic or short
		if len(description) < 10 {
			continue
		}
		rows = append(rows, catalogRow{ID: record[col["id"]], Description: description})
	}
	return rows, nil
}

func main() {
	csvPath := flag.String("csv", "styles.csv", "path to the styles.csv dataset file")
	imagesDir := flag.String("images", "", "directory with <id>.jpg product images (optional)")
	flag.Parse()

	config.LoadConfig()

	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if *imagesDir != "" {
		if err := utils.InitS3(); err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
	}

	embedder, err := clip.NewClient(config.ClipEndpoint)
	if err != nil {
		log.Fatalf("Failed to create CLIP client: %v", err)
	}

	rows, err := readRows(*csvPath)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}
	fmt.Printf("After filtering: %d clothing items found\n", len(rows))

	ctx := context.Background()
	collection := utils.GetCollection(utils.DatabaseName, "catalog")

	// Exclude items already in the database
	existingValues, err := collection.Distinct(ctx, "description", bson.M{})
	if err != nil {
		log.Fatalf("Failed to query existing catalog: %v", err)
	}
	existing := make(map[string]bool, len(existingValues))
	for _, v := range existingValues {
		if s, ok := v.(string); ok {
			existing[s] = true
		}
	}

	var newRows []catalogRow
	for _, row := range rows {
		if !existing[row.Description] {
			newRows = append(newRows, row)
		}
	}
	fmt.Printf("New items to add: %d (excluding %d existing items)\n", len(newRows), len(existing))
	if len(newRows) == 0 {
		fmt.Println("No new items to add!")
		return
	}

	// Upload product images first so inserts can reference the object keys
	imageKeys := map[string]string{}
	if *imagesDir != "" {
		var sources []string
		sourceToRow := map[string]string{}
		for _, row := range newRows {
			path := filepath.Join(*imagesDir, row.ID+".jpg")
			if _, statErr := os.Stat(path); statErr != nil {
				fmt.Printf("Image not found: %s.jpg\n", row.ID)
				continue
			}
			sources = append(sources, path)
			sourceToRow[path] = row.ID
		}
		uploaded, upErr := utils.UploadImagesToS3(ctx, sources, "catalog")
		if upErr != nil {
			log.Fatalf("Failed to upload images: %v", upErr)
		}
		for src, key := range uploaded {
			imageKeys[sourceToRow[src]] = key
		}
	}

	successCount := 0
	for _, row := range newRows {
		vector, embedErr := embedder.EmbedText(ctx, row.Description)
		if embedErr != nil {
			fmt.Printf("Error embedding %q: %v\n", row.Description, embedErr)
			continue
		}
		embeddingJSON, marshalErr := matcher.MarshalEmbedding(vector)
		if marshalErr != nil {
			fmt.Printf("Error serializing embedding for %q: %v\n", row.Description, marshalErr)
			continue
		}

		item := models.CatalogItem{
			Description: row.Description,
			ImageKey:    imageKeys[row.ID],
			Embedding:   embeddingJSON,
			CreatedAt:   time.Now(),
		}
		if _, insertErr := collection.InsertOne(ctx, item); insertErr != nil {
			fmt.Printf("Error inserting %q: %v\n", row.Description, insertErr)
			continue
		}
		successCount++
		fmt.Printf("[%d] Added: %s\n", successCount, row.Description)
	}

	fmt.Printf("Successfully loaded %d new clothing items!\n", successCount)
}
