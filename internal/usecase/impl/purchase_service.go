package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// purchaseService implements the PurchaseUsecase interface.
//
// Settlement runs as a sequence of independent document updates with no
// rollback: a failure partway through a batch leaves the already-applied
// lines committed. Each per-line mutation goes through applyLine so the
// whole step could later be wrapped in a transaction without touching the
// callers.
type purchaseService struct {
	userRepo     repository.UserRepository
	merchantRepo repository.MerchantRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(
	userRepo repository.UserRepository,
	merchantRepo repository.MerchantRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.PurchaseUsecase {
	return &purchaseService{
		userRepo:     userRepo,
		merchantRepo: merchantRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Buy settles a single {product, quantity} purchase.
func (srv *purchaseService) Buy(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*usecase.CartOutput, error) {
	srv.logger.Info("Settling purchase", "userID", userID.Hex(), "productID", productID.Hex(), "quantity", quantity)

	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := srv.applyLine(ctx, user, productID, quantity); err != nil {
		return nil, err
	}

	return srv.cartOutput(ctx, user)
}

// Checkout settles every line currently in the user's cart, in order. Lines
// already settled stay committed when a later line fails.
func (srv *purchaseService) Checkout(ctx context.Context, userID primitive.ObjectID) (*usecase.CartOutput, error) {
	srv.logger.Info("Settling cart checkout", "userID", userID.Hex())

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Snapshot the lines; applyLine mutates user.Cart as it goes.
	lines := make([]entity.CartLine, len(user.Cart))
	copy(lines, user.Cart)

	for _, line := range lines {
		if err := srv.applyLine(ctx, user, line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}

	return srv.cartOutput(ctx, user)
}

// applyLine settles one {product, quantity} line for the user:
//
//  1. resolve the product and its owning merchant
//  2. fail when quantity exceeds the merchant's inventory line
//  3. decrement inventory, credit earnings, append the merchant sold-order
//  4. append the user bought-order and consume the matching cart line
//  5. persist the merchant, then the user
//
// The stock check and the writes are not atomic; a concurrent purchase of
// the same line can interleave between them.
func (srv *purchaseService) applyLine(ctx context.Context, user *entity.User, productID primitive.ObjectID, quantity int) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	merchant, err := srv.merchantRepo.FindByID(ctx, product.Merchant.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to find owning merchant")
	}

	invIdx := -1
	for i := range merchant.Inventory {
		if merchant.Inventory[i].ProductID == productID {
			invIdx = i
			break
		}
	}
	if invIdx < 0 || quantity > merchant.Inventory[invIdx].Quantity {
		return domainerrors.ErrInsufficientStock
	}

	// A cart line for the product is consumed by the purchase; buying more
	// than the cart holds is rejected before anything is written. A direct
	// buy with no cart line leaves the cart untouched.
	cartIdx := -1
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			cartIdx = i
			break
		}
	}
	if cartIdx >= 0 && user.Cart[cartIdx].Quantity < quantity {
		return domainerrors.ErrCartMismatch
	}

	merchant.Inventory[invIdx].Quantity -= quantity
	merchant.Earnings += product.Price * float64(quantity)
	merchant.SoldOrders = append(merchant.SoldOrders, entity.SoldOrder{
		Location:  user.Location,
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  quantity,
	})

	if err := srv.merchantRepo.Update(ctx, merchant); err != nil {
		return errors.Wrap(err, "failed to settle merchant side")
	}

	user.Orders = append(user.Orders, entity.BoughtOrder{
		MerchantID: merchant.ID,
		ProductID:  product.ID,
		Quantity:   quantity,
	})
	if cartIdx >= 0 {
		if user.Cart[cartIdx].Quantity == quantity {
			user.Cart = append(user.Cart[:cartIdx], user.Cart[cartIdx+1:]...)
		} else {
			user.Cart[cartIdx].Quantity -= quantity
		}
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to settle user side")
	}

	return nil
}

func (srv *purchaseService) findUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *purchaseService) cartOutput(ctx context.Context, user *entity.User) (*usecase.CartOutput, error) {
	cart, err := resolveCart(ctx, srv.productRepo, user)
	if err != nil {
		return nil, err
	}
	orders, err := resolveOrders(ctx, srv.productRepo, user)
	if err != nil {
		return nil, err
	}

	return &usecase.CartOutput{Cart: cart, Orders: orders}, nil
}
