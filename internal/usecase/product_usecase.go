package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to list a product for sale.
// Category fields default when empty; Quantity is the stock the acting
// merchant adds.
type CreateProductInput struct {
	Name         string
	CategoryMain string
	CategorySub  string
	Gender       string
	Brand        string
	Description  string
	Image        string
	Price        float64
	Quantity     int
}

// --- Output DTOs ---

// ProductDetailOutput bundles a product with the owning merchant's name and
// that merchant's current stock for it.
type ProductDetailOutput struct {
	Product      *entity.Product
	MerchantName string
	Available    int
}

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	// List returns the whole catalog, or only the products whose main
	// category matches when category is non-empty.
	List(ctx context.Context, category string) ([]*entity.Product, error)

	// Get returns a product together with its owning merchant's name and
	// current stock.
	Get(ctx context.Context, productID primitive.ObjectID) (*ProductDetailOutput, error)

	// Create lists a product for the acting merchant. When a product with
	// the same name already exists the merchant's stock is merged onto it
	// instead of creating a duplicate document.
	Create(ctx context.Context, merchantID primitive.ObjectID, input CreateProductInput) (*entity.Product, error)

	// Delete removes a product the acting merchant owns, cascading the
	// removal through inventories, sold orders, carts and order histories.
	// It returns the merchant's remaining catalog.
	Delete(ctx context.Context, merchantID, productID primitive.ObjectID) ([]*entity.Product, error)
}
