package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.SecretKey.AccessTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	subjectID := primitive.NewObjectID()

	token, err := jwtService.GenerateToken(subjectID, entity.RoleMerchant)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, entity.RoleMerchant, claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("secret_one_very_long_for_testing_purposes", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("secret_two_very_long_for_testing_purposes", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(primitive.NewObjectID(), entity.RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing", -time.Minute))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(primitive.NewObjectID(), entity.RoleUser)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(testConfig("", time.Hour))
	assert.Error(t, err)
}
