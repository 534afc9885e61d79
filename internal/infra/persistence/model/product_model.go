package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryDoc is the structured category embedded on a product document.
type CategoryDoc struct {
	Main   string `bson:"main"`
	Sub    string `bson:"sub"`
	Gender string `bson:"gender"`
}

// MerchantRefDoc denormalizes the owning merchant's name next to its id.
type MerchantRefDoc struct {
	Name string             `bson:"merchantName"`
	ID   primitive.ObjectID `bson:"merchantId"`
}

// ProductModel mirrors the 'products' collection.
type ProductModel struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Category    CategoryDoc          `bson:"category"`
	Brand       string               `bson:"brand"`
	Description string               `bson:"description"`
	Image       string               `bson:"image"`
	Price       float64              `bson:"price"`
	Reviews     []primitive.ObjectID `bson:"review"`
	CreatedAt   time.Time            `bson:"date"`
	Merchant    MerchantRefDoc       `bson:"merchant"`
}

// CollectionName returns the MongoDB collection backing this model.
func (ProductModel) CollectionName() string {
	return "products"
}
