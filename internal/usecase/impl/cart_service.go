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

// cartService implements the CartUsecase interface.
type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		userRepo:    userRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Add puts quantity units of the product into the user's cart. A line for
// the same product merges by summing.
func (srv *cartService) Add(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*usecase.CartOutput, error) {
	srv.logger.Debug("Adding to cart", "userID", userID.Hex(), "productID", productID.Hex(), "quantity", quantity)

	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The product must still exist in the catalog.
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	merged := false
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		user.Cart = append(user.Cart, entity.CartLine{ProductID: productID, Quantity: quantity})
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	return srv.cartOutput(ctx, user)
}

// Remove takes quantity units of the product out of the cart. Removing the
// full line quantity deletes the line; a request for more than the line
// holds fails without touching it.
func (srv *cartService) Remove(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*usecase.CartOutput, error) {
	srv.logger.Debug("Removing from cart", "userID", userID.Hex(), "productID", productID.Hex(), "quantity", quantity)

	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domainerrors.ErrNotInCart
	}

	switch line := &user.Cart[idx]; {
	case quantity > line.Quantity:
		return nil, domainerrors.ErrCartMismatch
	case quantity == line.Quantity:
		user.Cart = append(user.Cart[:idx], user.Cart[idx+1:]...)
	default:
		line.Quantity -= quantity
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	return srv.cartOutput(ctx, user)
}

func (srv *cartService) findUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *cartService) cartOutput(ctx context.Context, user *entity.User) (*usecase.CartOutput, error) {
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
