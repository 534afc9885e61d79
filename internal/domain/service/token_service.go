package service

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bazaar/internal/domain/entity"
)

// Claims defines the custom claims for the signed access tokens.
// The role is part of the authenticated identity: a token is either a
// merchant token or a user token, never both.
type Claims struct {
	SubjectID primitive.ObjectID
	Role      entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given subject and role.
	GenerateToken(subjectID primitive.ObjectID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
