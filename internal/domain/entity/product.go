package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default values applied to products created without a category or brand.
const (
	DefaultCategory = "Others"
	DefaultGender   = "Unisex"
	DefaultBrand    = "Bharatkart"
)

// Category is the structured product category.
type Category struct {
	Main   string
	Sub    string
	Gender string
}

// MerchantRef identifies the merchant owning a product, denormalizing the
// merchant name next to the id so catalog reads avoid an extra lookup.
type MerchantRef struct {
	Name string
	ID   primitive.ObjectID
}

// Product is a catalog entry owned by exactly one merchant. Stock is not
// stored here; it lives on the owning merchant's inventory line.
type Product struct {
	ID          primitive.ObjectID
	Name        string
	Category    Category
	Brand       string
	Description string
	Image       string
	Price       float64
	Reviews     []primitive.ObjectID
	CreatedAt   time.Time
	Merchant    MerchantRef
}
