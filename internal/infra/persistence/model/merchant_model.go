// Package model contains the BSON document shapes persisted to MongoDB.
// These are kept separate from the domain entities so wire concerns (bson
// tags, omitempty rules) never leak into the domain layer.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocationDoc is the embedded postal location document.
type LocationDoc struct {
	Pincode string `bson:"pincode"`
	Address string `bson:"address"`
}

// InventoryLineDoc is one sellable-stock line on a merchant document.
type InventoryLineDoc struct {
	ProductID primitive.ObjectID `bson:"product"`
	Quantity  int                `bson:"quantity"`
}

// SoldOrderDoc is one settled sale on a merchant document.
type SoldOrderDoc struct {
	Location  LocationDoc        `bson:"location"`
	UserID    primitive.ObjectID `bson:"user"`
	ProductID primitive.ObjectID `bson:"product"`
	Quantity  int                `bson:"quantity"`
}

// MerchantModel mirrors the 'merchants' collection.
type MerchantModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Phone      string             `bson:"phone"`
	Password   string             `bson:"password"`
	NationalID string             `bson:"nationalId"`
	Location   LocationDoc        `bson:"location"`
	Inventory  []InventoryLineDoc `bson:"products"`
	SoldOrders []SoldOrderDoc     `bson:"soldproducts"`
	Earnings   float64            `bson:"earnedmoney"`
}

// CollectionName returns the MongoDB collection backing this model.
func (MerchantModel) CollectionName() string {
	return "merchants"
}
