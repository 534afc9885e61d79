package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTokenService accepts exactly one token string.
type stubTokenService struct {
	token  string
	claims *service.Claims
}

func (s *stubTokenService) GenerateToken(primitive.ObjectID, entity.Role) (string, error) {
	return s.token, nil
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString != s.token {
		return nil, errors.New("signature invalid")
	}

	return s.claims, nil
}

func authTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user-auth/profile", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	subjectID := primitive.NewObjectID()
	m := NewAuthMiddleware(&stubTokenService{
		token:  "good-token",
		claims: &service.Claims{SubjectID: subjectID, Role: entity.RoleUser},
	})

	c, _ := authTestContext("Bearer good-token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	gotID, err := SubjectID(c)
	require.NoError(t, err)
	assert.Equal(t, subjectID, gotID)
	assert.Equal(t, entity.RoleUser, c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{token: "good-token"})
	c, _ := authTestContext("")

	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{token: "good-token"})
	c, _ := authTestContext("Basic Zm9vOmJhcg==")

	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_BadToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{token: "good-token"})
	c, _ := authTestContext("Bearer forged-token")

	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_RequireRole_Pass(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{
		token:  "good-token",
		claims: &service.Claims{SubjectID: primitive.NewObjectID(), Role: entity.RoleMerchant},
	})
	c, rec := authTestContext("Bearer good-token")

	chain := m.Authenticate(m.RequireRole(entity.RoleMerchant)(okHandler))

	require.NoError(t, chain(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A valid user token never passes a merchant-scoped route. The role is part
// of the identity, not a per-request probe.
func TestAuthMiddleware_RequireRole_WrongRole(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{
		token:  "good-token",
		claims: &service.Claims{SubjectID: primitive.NewObjectID(), Role: entity.RoleUser},
	})
	c, _ := authTestContext("Bearer good-token")

	chain := m.Authenticate(m.RequireRole(entity.RoleMerchant)(okHandler))

	assert.ErrorIs(t, chain(c), domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireRole_WithoutAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{token: "good-token"})
	c, _ := authTestContext("")

	err := m.RequireRole(entity.RoleUser)(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
