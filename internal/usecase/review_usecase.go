package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Input DTOs ---

// ReviewInput defines the data for adding or editing a review.
type ReviewInput struct {
	Rating  int
	Comment string
}

// --- Output DTOs ---

// ReviewBundleOutput is returned after a review mutation: the reviewed
// product with its reviews resolved, plus the author's refreshed profile.
type ReviewBundleOutput struct {
	Product        *entity.Product
	ProductReviews []*entity.Review
	Profile        *UserProfileOutput
}

// ReviewUsecase defines the interface for the review lifecycle.
//
// Creation and every later mutation are gated on the author having actually
// bought the product, and edits and deletes are author-scoped.
type ReviewUsecase interface {
	// ListAll returns every review in the store. Public.
	ListAll(ctx context.Context) ([]*entity.Review, error)

	// Add creates a review for the product on behalf of the user. A user
	// may review a given product at most once.
	Add(ctx context.Context, userID, productID primitive.ObjectID, input ReviewInput) (*ReviewBundleOutput, error)

	// Edit replaces the rating and comment of the user's own review.
	Edit(ctx context.Context, userID, reviewID primitive.ObjectID, input ReviewInput) (*ReviewBundleOutput, error)

	// Delete removes the user's own review and drops the references held by
	// the product and the user.
	Delete(ctx context.Context, userID, reviewID primitive.ObjectID) error
}
