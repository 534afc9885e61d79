package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseUsecase defines the interface for purchase settlement.
//
// Settlement is deliberately non-transactional: each line is applied as a
// sequence of independent document updates with no rollback, so a failure
// partway through a batch leaves the already-settled lines committed.
type PurchaseUsecase interface {
	// Buy settles a single {product, quantity} purchase for the user.
	Buy(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*CartOutput, error)

	// Checkout settles every line currently in the user's cart, in order.
	Checkout(ctx context.Context, userID primitive.ObjectID) (*CartOutput, error)
}
