// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrMerchantNotFound is a domain-specific error returned when a merchant is not found.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository defines the standard operations for merchant persistence.
// The application layer will depend on this interface, not the concrete implementation.
type MerchantRepository interface {
	// FindByID retrieves a single merchant by their unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Merchant, error)

	// FindByEmail retrieves a single merchant by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Merchant, error)

	// FindByPhone retrieves a single merchant by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Merchant, error)

	// Create persists a new merchant entity to the storage.
	Create(ctx context.Context, merchant *entity.Merchant) error

	// Update overwrites the stored merchant document with the given entity.
	// This is a plain read-modify-write; concurrent updates are not serialized.
	Update(ctx context.Context, merchant *entity.Merchant) error

	// RemoveProductRefs removes every inventory line and sold-order line
	// referencing the product from the merchant document.
	RemoveProductRefs(ctx context.Context, merchantID, productID primitive.ObjectID) error
}
