package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLineDoc is one cart entry on a user document.
type CartLineDoc struct {
	ProductID primitive.ObjectID `bson:"product"`
	Quantity  int                `bson:"quantity"`
}

// BoughtOrderDoc is one settled purchase on a user document.
type BoughtOrderDoc struct {
	MerchantID primitive.ObjectID `bson:"merchant"`
	ProductID  primitive.ObjectID `bson:"product"`
	Quantity   int                `bson:"quantity"`
}

// UserModel mirrors the 'users' collection.
type UserModel struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty"`
	Name     string               `bson:"name"`
	Email    string               `bson:"email"`
	Phone    string               `bson:"phone"`
	Password string               `bson:"password"`
	Location LocationDoc          `bson:"location"`
	Cart     []CartLineDoc        `bson:"cart"`
	Orders   []BoughtOrderDoc     `bson:"boughtproducts"`
	Reviews  []primitive.ObjectID `bson:"reviews"`
}

// CollectionName returns the MongoDB collection backing this model.
func (UserModel) CollectionName() string {
	return "users"
}
