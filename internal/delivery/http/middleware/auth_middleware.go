package middleware

import (
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// ContextKeySubjectID is where Authenticate stores the token subject.
	ContextKeySubjectID = "subjectID"

	// ContextKeyRole is where Authenticate stores the token role.
	ContextKeyRole = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the authenticated
// subject id and role on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WithDetails("Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(ContextKeySubjectID, claims.SubjectID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole checks that the authenticated token carries the given role.
// It must be used AFTER Authenticate. The role is part of the identity: a
// merchant token never passes a user-scoped route, whatever account ids
// happen to collide.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok || role != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("requires '" + requiredRole.String() + "' role")
			}

			return next(c)
		}
	}
}

// SubjectID extracts the authenticated subject id stored by Authenticate.
func SubjectID(c echo.Context) (primitive.ObjectID, error) {
	id, ok := c.Get(ContextKeySubjectID).(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, domainerrors.ErrTokenInvalid.WithDetails("subject missing from request context")
	}

	return id, nil
}
