package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)

	// FindByName retrieves a product by its exact name, regardless of the
	// owning merchant. Catalog creation merges into this product when found.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// FindAll retrieves every product in the catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByCategory retrieves products whose main category matches.
	FindByCategory(ctx context.Context, mainCategory string) ([]*entity.Product, error)

	// FindByMerchant retrieves the products owned by a merchant.
	FindByMerchant(ctx context.Context, merchantID primitive.ObjectID) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites the stored product document with the given entity.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product document.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
