package impl

import (
	"context"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// merchantServiceFixtures holds all test dependencies for merchant service tests.
type merchantServiceFixtures struct {
	service      usecase.MerchantUsecase
	merchantRepo *memMerchantRepo
}

func createTestMerchantService(t *testing.T) merchantServiceFixtures {
	t.Helper()

	merchantRepo := newMemMerchantRepo()
	service := NewMerchantService(merchantRepo, fakeHasher{}, fakeTokenService{}, newDiscardLogger())

	return merchantServiceFixtures{
		service:      service,
		merchantRepo: merchantRepo,
	}
}

func validRegisterMerchantInput() usecase.RegisterMerchantInput {
	return usecase.RegisterMerchantInput{
		Name:       "Corner Store",
		Email:      "store@example.com",
		Phone:      "9876543210",
		Password:   "Password1!",
		NationalID: "123456789012",
		Pincode:    "560001",
		Address:    "12 Market Road",
	}
}

func TestMerchantService_Register_Success(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	output, err := fx.service.Register(ctx, validRegisterMerchantInput())

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Merchant.ID.IsZero())
	assert.NotEmpty(t, output.AccessToken)
	// Stored password is the hash, never the plaintext.
	assert.Equal(t, "hashed:Password1!", output.Merchant.Password)

	stored, err := fx.merchantRepo.FindByEmail(ctx, "store@example.com")
	require.NoError(t, err)
	assert.Equal(t, output.Merchant.ID, stored.ID)
}

func TestMerchantService_Register_EmailTaken(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterMerchantInput())
	require.NoError(t, err)

	input := validRegisterMerchantInput()
	input.Phone = "1112223334"

	_, err = fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestMerchantService_Register_PhoneTaken(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterMerchantInput())
	require.NoError(t, err)

	input := validRegisterMerchantInput()
	input.Email = "other@example.com"

	_, err = fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrPhoneTaken)
}

func TestMerchantService_Login_Success(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, validRegisterMerchantInput())
	require.NoError(t, err)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "store@example.com",
		Password: "Password1!",
	})

	require.NoError(t, err)
	assert.Equal(t, registered.Merchant.ID, output.Merchant.ID)
	assert.NotEmpty(t, output.AccessToken)
}

func TestMerchantService_Login_UnknownEmail(t *testing.T) {
	fx := createTestMerchantService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestMerchantService_Login_WrongPassword(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterMerchantInput())
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, usecase.LoginInput{
		Email:    "store@example.com",
		Password: "WrongPass1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestMerchantService_UpdateProfile_MergePatch(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, validRegisterMerchantInput())
	require.NoError(t, err)

	newName := "Corner Store Deluxe"
	newPincode := "560002"
	updated, err := fx.service.UpdateProfile(ctx, registered.Merchant.ID, &usecase.UpdateMerchantProfileInput{
		Name:    &newName,
		Pincode: &newPincode,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newPincode, updated.Location.Pincode)
	// Omitted fields keep their stored value.
	assert.Equal(t, "store@example.com", updated.Email)
	assert.Equal(t, "12 Market Road", updated.Location.Address)
	assert.Equal(t, "123456789012", updated.NationalID)
}

func TestMerchantService_UpdateProfile_EmailConflict(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	first, err := fx.service.Register(ctx, validRegisterMerchantInput())
	require.NoError(t, err)

	other := validRegisterMerchantInput()
	other.Email = "second@example.com"
	other.Phone = "1112223334"
	_, err = fx.service.Register(ctx, other)
	require.NoError(t, err)

	taken := "second@example.com"
	_, err = fx.service.UpdateProfile(ctx, first.Merchant.ID, &usecase.UpdateMerchantProfileInput{
		Email: &taken,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestMerchantService_UpdateProfile_SameEmailNoConflict(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, validRegisterMerchantInput())
	require.NoError(t, err)

	// Re-submitting the account's own email is not a conflict.
	same := "store@example.com"
	_, err = fx.service.UpdateProfile(ctx, registered.Merchant.ID, &usecase.UpdateMerchantProfileInput{
		Email: &same,
	})

	assert.NoError(t, err)
}

func TestMerchantService_UpdateProfile_RehashesPassword(t *testing.T) {
	fx := createTestMerchantService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, validRegisterMerchantInput())
	require.NoError(t, err)

	newPassword := "Fresh$ecret9"
	updated, err := fx.service.UpdateProfile(ctx, registered.Merchant.ID, &usecase.UpdateMerchantProfileInput{
		Password: &newPassword,
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:Fresh$ecret9", updated.Password)
}

func TestMerchantService_GetProfile_NotFound(t *testing.T) {
	fx := createTestMerchantService(t)

	_, err := fx.service.GetProfile(context.Background(), newObjectID(t))

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
