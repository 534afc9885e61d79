package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewAuthor is a snapshot of the authoring user: the username at the time
// of writing plus the stable user id.
type ReviewAuthor struct {
	Username string
	UserID   primitive.ObjectID
}

// Review is a rating and comment a user leaves on a product they purchased.
// At most one review exists per (user, product) pair.
type Review struct {
	ID        primitive.ObjectID
	Rating    int // 1 to 5.
	Comment   string
	Author    ReviewAuthor
	ProductID primitive.ObjectID
	CreatedAt time.Time
}
