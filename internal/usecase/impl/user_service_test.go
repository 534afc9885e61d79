package impl

import (
	"context"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service     usecase.UserUsecase
	userRepo    *memUserRepo
	productRepo *memProductRepo
	reviewRepo  *memReviewRepo
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := newMemUserRepo()
	productRepo := newMemProductRepo()
	reviewRepo := newMemReviewRepo()
	service := NewUserService(userRepo, productRepo, reviewRepo, fakeHasher{}, fakeTokenService{}, newDiscardLogger())

	return userServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

func validRegisterUserInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Name:     "Asha Kumar",
		Email:    "asha@example.com",
		Phone:    "9000000001",
		Password: "Password1!",
		Pincode:  "560001",
		Address:  "4 Lake View",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), validRegisterUserInput())

	require.NoError(t, err)
	assert.False(t, output.User.ID.IsZero())
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, "hashed:Password1!", output.User.Password)
	assert.Empty(t, output.User.Cart)
	assert.Empty(t, output.User.Orders)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterUserInput())
	require.NoError(t, err)

	input := validRegisterUserInput()
	input.Phone = "9000000002"

	_, err = fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

// Uniqueness is scoped per collection: a merchant account holding an email
// does not block a user registration with the same email.
func TestUserService_Register_EmailSharedWithMerchant(t *testing.T) {
	userFx := createTestUserService(t)
	merchantFx := createTestMerchantService(t)
	ctx := context.Background()

	merchantInput := validRegisterMerchantInput()
	merchantInput.Email = "shared@example.com"
	_, err := merchantFx.service.Register(ctx, merchantInput)
	require.NoError(t, err)

	userInput := validRegisterUserInput()
	userInput.Email = "shared@example.com"
	output, err := userFx.service.Register(ctx, userInput)

	require.NoError(t, err)
	assert.Equal(t, "shared@example.com", output.User.Email)
}

func TestUserService_Login_ResolvesCartAndOrders(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, validRegisterUserInput())
	require.NoError(t, err)

	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)
	stored, err := fx.userRepo.FindByID(ctx, registered.User.ID)
	require.NoError(t, err)
	stored.Cart = append(stored.Cart, cartLine(product.ID, 2))
	stored.Orders = append(stored.Orders, boughtOrder(product.Merchant.ID, product.ID, 1))
	require.NoError(t, fx.userRepo.Update(ctx, stored))

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "Password1!",
	})

	require.NoError(t, err)
	require.Len(t, output.Cart, 1)
	assert.Equal(t, product.ID, output.Cart[0].Product.ID)
	assert.Equal(t, 2, output.Cart[0].Quantity)
	require.Len(t, output.Orders, 1)
	assert.Equal(t, product.ID, output.Orders[0].Product.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterUserInput())
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "nope12345",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_BundlesOrdersAndReviews(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, validRegisterUserInput())
	require.NoError(t, err)

	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)
	review := seedReview(t, fx.reviewRepo, registered.User.ID, product.ID)

	stored, err := fx.userRepo.FindByID(ctx, registered.User.ID)
	require.NoError(t, err)
	stored.Orders = append(stored.Orders, boughtOrder(product.Merchant.ID, product.ID, 1))
	stored.Reviews = append(stored.Reviews, review.ID)
	require.NoError(t, fx.userRepo.Update(ctx, stored))

	profile, err := fx.service.GetProfile(ctx, registered.User.ID)

	require.NoError(t, err)
	require.Len(t, profile.Orders, 1)
	assert.Equal(t, product.ID, profile.Orders[0].Product.ID)
	require.Len(t, profile.Reviews, 1)
	assert.Equal(t, review.ID, profile.Reviews[0].ID)
}

func TestUserService_UpdateProfile_MergePatch(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, validRegisterUserInput())
	require.NoError(t, err)

	newPhone := "9000000009"
	updated, err := fx.service.UpdateProfile(ctx, registered.User.ID, &usecase.UpdateUserProfileInput{
		Phone: &newPhone,
	})

	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, "asha@example.com", updated.Email)
	assert.Equal(t, "Asha Kumar", updated.Name)
}

func TestUserService_UpdateProfile_PhoneConflict(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	first, err := fx.service.Register(ctx, validRegisterUserInput())
	require.NoError(t, err)

	other := validRegisterUserInput()
	other.Email = "second@example.com"
	other.Phone = "9000000002"
	_, err = fx.service.Register(ctx, other)
	require.NoError(t, err)

	taken := "9000000002"
	_, err = fx.service.UpdateProfile(ctx, first.User.ID, &usecase.UpdateUserProfileInput{
		Phone: &taken,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPhoneTaken)
}
