package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is a postal location attached to merchant and user accounts.
type Location struct {
	Pincode string // Postal code.
	Address string // Free-form street address.
}

// InventoryLine is a {product, quantity} pair on a merchant record
// representing sellable stock.
type InventoryLine struct {
	ProductID primitive.ObjectID
	Quantity  int
}

// SoldOrder records a settled sale on the merchant side.
type SoldOrder struct {
	Location  Location
	UserID    primitive.ObjectID
	ProductID primitive.ObjectID
	Quantity  int
}

// Merchant is a seller account. It owns product inventory, accumulates
// earnings on settlement and keeps a history of sold orders.
type Merchant struct {
	ID         primitive.ObjectID
	Name       string
	Email      string
	Phone      string
	Password   string // bcrypt hash, never the plaintext.
	NationalID string
	Location   Location
	Inventory  []InventoryLine
	SoldOrders []SoldOrder
	Earnings   float64
}

// InventoryQuantity returns the merchant's current stock for a product,
// or 0 when no inventory line exists.
func (m *Merchant) InventoryQuantity(productID primitive.ObjectID) int {
	for _, line := range m.Inventory {
		if line.ProductID == productID {
			return line.Quantity
		}
	}

	return 0
}
