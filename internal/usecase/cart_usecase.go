package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartOutput is the state of the user's cart and order history after a cart
// or settlement mutation, with product references resolved.
type CartOutput struct {
	Cart   []ResolvedCartLine
	Orders []ResolvedOrder
}

// CartUsecase defines the interface for shopping-cart operations.
type CartUsecase interface {
	// Add puts quantity units of the product into the user's cart. Lines
	// for the same product merge by summing.
	Add(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*CartOutput, error)

	// Remove takes quantity units of the product out of the cart. Removing
	// the full line quantity deletes the line; asking for more than the
	// line holds fails and leaves the line unchanged.
	Remove(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*CartOutput, error)
}
