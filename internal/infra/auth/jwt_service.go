// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
)

const defaultAccessTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.SecretKey.AccessTTL
	if ttl == 0 {
		ttl = defaultAccessTTL
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: ttl,
	}, nil
}

// GenerateToken creates a signed access token carrying the subject id and role.
func (s *jwtService) GenerateToken(subjectID primitive.ObjectID, role entity.Role) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and returns typed claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var raw tokenClaims

	token, err := jwt.ParseWithClaims(tokenString, &raw, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	subjectID, err := primitive.ObjectIDFromHex(raw.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject id in token")
	}

	role := entity.Role(raw.Role)
	if !role.IsValid() {
		return nil, errors.Errorf("invalid role in token: %q", raw.Role)
	}

	return &service.Claims{
		SubjectID:        subjectID,
		Role:             role,
		RegisteredClaims: raw.RegisteredClaims,
	}, nil
}
