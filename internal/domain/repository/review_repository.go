package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error)

	// FindByAuthorAndProduct retrieves the review a user wrote for a product,
	// if any. Enforces the one-review-per-(user, product) invariant.
	FindByAuthorAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*entity.Review, error)

	// FindAll retrieves every review.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// Update overwrites the stored review document with the given entity.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review document.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
