package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewAuthorDoc is the authoring-user snapshot embedded on a review document.
type ReviewAuthorDoc struct {
	Username string             `bson:"username"`
	UserID   primitive.ObjectID `bson:"userId"`
}

// ReviewModel mirrors the 'reviews' collection.
type ReviewModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Rating    int                `bson:"ratings"`
	Comment   string             `bson:"comments"`
	Author    ReviewAuthorDoc    `bson:"user"`
	ProductID primitive.ObjectID `bson:"product"`
	CreatedAt time.Time          `bson:"date"`
}

// CollectionName returns the MongoDB collection backing this model.
func (ReviewModel) CollectionName() string {
	return "reviews"
}
