package impl

import (
	"context"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	userRepo    *memUserRepo
	productRepo *memProductRepo
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	userRepo := newMemUserRepo()
	productRepo := newMemProductRepo()
	service := NewCartService(userRepo, productRepo, newDiscardLogger())

	return cartServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func TestCartService_Add_NewLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := seedUser(t, fx.userRepo, "asha")
	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)

	output, err := fx.service.Add(ctx, user.ID, product.ID, 2)

	require.NoError(t, err)
	require.Len(t, output.Cart, 1)
	assert.Equal(t, product.ID, output.Cart[0].Product.ID)
	assert.Equal(t, 2, output.Cart[0].Quantity)

	stored, err := fx.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CartQuantity(product.ID))
}

// Adding the same product twice merges into a single line by summing.
func TestCartService_Add_MergesSameProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := seedUser(t, fx.userRepo, "asha")
	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)

	_, err := fx.service.Add(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)

	output, err := fx.service.Add(ctx, user.ID, product.ID, 3)

	require.NoError(t, err)
	require.Len(t, output.Cart, 1)
	assert.Equal(t, 5, output.Cart[0].Quantity)
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	user := seedUser(t, fx.userRepo, "asha")

	_, err := fx.service.Add(context.Background(), user.ID, newObjectID(t), 1)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_Add_ZeroQuantity(t *testing.T) {
	fx := createTestCartService(t)
	user := seedUser(t, fx.userRepo, "asha")
	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)

	_, err := fx.service.Add(context.Background(), user.ID, product.ID, 0)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_Remove_FullLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := seedUser(t, fx.userRepo, "asha")
	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)

	_, err := fx.service.Add(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)

	output, err := fx.service.Remove(ctx, user.ID, product.ID, 3)

	require.NoError(t, err)
	assert.Empty(t, output.Cart)

	stored, err := fx.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Cart)
}

func TestCartService_Remove_Decrements(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := seedUser(t, fx.userRepo, "asha")
	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)

	_, err := fx.service.Add(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)

	output, err := fx.service.Remove(ctx, user.ID, product.ID, 1)

	require.NoError(t, err)
	require.Len(t, output.Cart, 1)
	assert.Equal(t, 2, output.Cart[0].Quantity)
}

// Asking for more than the line holds fails and leaves the line unchanged.
func TestCartService_Remove_MoreThanLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := seedUser(t, fx.userRepo, "asha")
	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)

	_, err := fx.service.Add(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)

	_, err = fx.service.Remove(ctx, user.ID, product.ID, 5)

	assert.ErrorIs(t, err, domainerrors.ErrCartMismatch)

	stored, err := fx.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CartQuantity(product.ID))
}

func TestCartService_Remove_NotInCart(t *testing.T) {
	fx := createTestCartService(t)
	user := seedUser(t, fx.userRepo, "asha")
	product := seedProduct(t, fx.productRepo, "Blue Shirt", 499)

	_, err := fx.service.Remove(context.Background(), user.ID, product.ID, 1)

	assert.ErrorIs(t, err, domainerrors.ErrNotInCart)
}
