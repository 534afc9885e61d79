package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a single user by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the stored user document with the given entity.
	Update(ctx context.Context, user *entity.User) error

	// RemoveProductRefsFromAll removes the product from every user's cart and
	// bought-order history. Used by the product delete cascade.
	RemoveProductRefsFromAll(ctx context.Context, productID primitive.ObjectID) error
}
