// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Input DTOs ---

// RegisterMerchantInput defines the data required to register a new merchant.
type RegisterMerchantInput struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	NationalID string
	Pincode    string
	Address    string
}

// LoginInput defines the data required for an account to log in.
// Shared by the merchant and user auth flows.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateMerchantProfileInput carries a merge-patch of merchant profile
// fields. Nil fields are left untouched.
type UpdateMerchantProfileInput struct {
	Name       *string
	Email      *string
	Phone      *string
	Password   *string
	NationalID *string
	Pincode    *string
	Address    *string
}

// --- Output DTOs ---

// MerchantAuthOutput returns the merchant record together with a fresh
// access token after registration or login.
type MerchantAuthOutput struct {
	Merchant    *entity.Merchant
	AccessToken string
}

// MerchantUsecase defines the interface for merchant account operations.
// This is the contract that the delivery layer depends on.
type MerchantUsecase interface {
	Register(ctx context.Context, input RegisterMerchantInput) (*MerchantAuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*MerchantAuthOutput, error)
	GetProfile(ctx context.Context, merchantID primitive.ObjectID) (*entity.Merchant, error)
	UpdateProfile(ctx context.Context, merchantID primitive.ObjectID, input *UpdateMerchantProfileInput) (*entity.Merchant, error)
}
