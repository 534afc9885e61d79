package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is a {product, quantity} pair in a user's shopping cart.
// Quantities are always >= 1; adding the same product merges by summing.
type CartLine struct {
	ProductID primitive.ObjectID
	Quantity  int
}

// BoughtOrder records a settled purchase on the user side.
type BoughtOrder struct {
	MerchantID primitive.ObjectID
	ProductID  primitive.ObjectID
	Quantity   int
}

// User is a customer account with a cart, a purchase history and references
// to the reviews it has authored.
type User struct {
	ID       primitive.ObjectID
	Name     string
	Email    string
	Phone    string
	Password string // bcrypt hash, never the plaintext.
	Location Location
	Cart     []CartLine
	Orders   []BoughtOrder
	Reviews  []primitive.ObjectID
}

// CartQuantity returns the quantity of a product in the cart, or 0 when the
// product is not present.
func (u *User) CartQuantity(productID primitive.ObjectID) int {
	for _, line := range u.Cart {
		if line.ProductID == productID {
			return line.Quantity
		}
	}

	return 0
}

// HasBought reports whether the user has a purchase record for the product.
// This is the purchase-gate used by the review lifecycle.
func (u *User) HasBought(productID primitive.ObjectID) bool {
	for _, order := range u.Orders {
		if order.ProductID == productID {
			return true
		}
	}

	return false
}
