package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogItem is one entry of the reference fashion catalog used to identify
// uploaded clothing images. Items are created in bulk by the offline loader
// and are read-only afterwards.
type CatalogItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	ImageKey    string             `bson:"image_key,omitempty" json:"image_key,omitempty"`
	// Embedding is a CLIP vector serialized as a JSON float array.
	Embedding string    `bson:"embedding" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
