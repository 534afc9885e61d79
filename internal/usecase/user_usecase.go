package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Pincode  string
	Address  string
}

// UpdateUserProfileInput carries a merge-patch of user profile fields.
// Nil fields are left untouched.
type UpdateUserProfileInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
	Pincode  *string
	Address  *string
}

// --- Output DTOs ---

// ResolvedCartLine is a cart entry with the product reference resolved into
// the full product document.
type ResolvedCartLine struct {
	Product  *entity.Product
	Quantity int
}

// ResolvedOrder is a bought-order entry with the product reference resolved
// into the full product document.
type ResolvedOrder struct {
	Product    *entity.Product
	MerchantID primitive.ObjectID
	Quantity   int
}

// UserAuthOutput returns the user record together with a fresh access token
// after registration or login. Login additionally resolves the cart and the
// order history into product documents.
type UserAuthOutput struct {
	User        *entity.User
	AccessToken string
	Cart        []ResolvedCartLine
	Orders      []ResolvedOrder
}

// UserProfileOutput bundles the user record with its resolved order history
// and review documents.
type UserProfileOutput struct {
	User    *entity.User
	Orders  []ResolvedOrder
	Reviews []*entity.Review
}

// UserUsecase defines the interface for user account operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*UserAuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*UserAuthOutput, error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*UserProfileOutput, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *UpdateUserProfileInput) (*entity.User, error)
}
