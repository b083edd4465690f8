package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wardrobe item categories. The classifier only ever assigns one of these.
const (
	CategorySaree        = "saree"
	CategoryKurti        = "kurti"
	CategoryDress        = "dress"
	CategoryTop          = "top"
	CategoryBottom       = "bottom"
	CategoryIndianBottom = "indian_bottom"
	CategoryDupatta      = "dupatta"
	CategoryShoes        = "shoes"
	CategoryAccessories  = "accessories"
)

// WardrobeItem is a user-owned garment created from an uploaded image.
type WardrobeItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	ImageKey    string             `bson:"image_key" json:"image_key"`
	// Embedding is the CLIP image vector serialized as a JSON float array.
	Embedding string    `bson:"embedding" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
