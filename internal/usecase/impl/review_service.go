package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ListAll returns every review in the store.
func (srv *reviewService) ListAll(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Add creates a review for the product on behalf of the user.
//
// The user must have actually bought the product, and may review a given
// product at most once. On success the review id is appended to both the
// product document and the user document.
func (srv *reviewService) Add(ctx context.Context, userID, productID primitive.ObjectID, input usecase.ReviewInput) (*usecase.ReviewBundleOutput, error) {
	srv.logger.Info("Adding review", "userID", userID.Hex(), "productID", productID.Hex())

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	// One review per (user, product).
	if _, err := srv.reviewRepo.FindByAuthorAndProduct(ctx, userID, productID); err == nil {
		return nil, domainerrors.ErrReviewExists
	} else if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to check existing review")
	}

	// Purchase gate: the bought-order must reference this exact product.
	if !user.HasBought(productID) {
		return nil, domainerrors.ErrPurchaseRequired
	}

	review := &entity.Review{
		Rating:  input.Rating,
		Comment: input.Comment,
		Author: entity.ReviewAuthor{
			Username: user.Name,
			UserID:   user.ID,
		},
		ProductID: product.ID,
		CreatedAt: time.Now(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	product.Reviews = append(product.Reviews, review.ID)
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to attach review to product")
	}

	user.Reviews = append(user.Reviews, review.ID)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to attach review to user")
	}

	return srv.bundle(ctx, product, user)
}

// Edit replaces the rating and comment of the user's own review. The
// purchase gate is re-validated on every mutation.
func (srv *reviewService) Edit(ctx context.Context, userID, reviewID primitive.ObjectID, input usecase.ReviewInput) (*usecase.ReviewBundleOutput, error) {
	srv.logger.Info("Editing review", "userID", userID.Hex(), "reviewID", reviewID.Hex())

	review, user, err := srv.authorScopedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Comment = input.Comment

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	product, err := srv.findProduct(ctx, review.ProductID)
	if err != nil {
		return nil, err
	}

	return srv.bundle(ctx, product, user)
}

// Delete removes the user's own review and drops the references held by the
// product and the user.
func (srv *reviewService) Delete(ctx context.Context, userID, reviewID primitive.ObjectID) error {
	srv.logger.Info("Deleting review", "userID", userID.Hex(), "reviewID", reviewID.Hex())

	review, user, err := srv.authorScopedReview(ctx, userID, reviewID)
	if err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	// Drop the product-side reference. A product deleted in the meantime
	// has nothing left to clean up.
	product, err := srv.productRepo.FindByID(ctx, review.ProductID)
	if err == nil {
		product.Reviews = removeID(product.Reviews, reviewID)
		if err := srv.productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to detach review from product")
		}
	} else if !errors.Is(err, repository.ErrProductNotFound) {
		return errors.Wrap(err, "failed to find reviewed product")
	}

	user.Reviews = removeID(user.Reviews, reviewID)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to detach review from user")
	}

	return nil
}

// authorScopedReview resolves the review and the acting user, enforcing that
// the user authored the review and still holds a purchase record for the
// reviewed product.
func (srv *reviewService) authorScopedReview(ctx context.Context, userID, reviewID primitive.ObjectID) (*entity.Review, *entity.User, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, nil, domainerrors.ErrReviewNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find review")
	}

	if review.Author.UserID != userID {
		return nil, nil, domainerrors.ErrNotReviewAuthor
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if !user.HasBought(review.ProductID) {
		return nil, nil, domainerrors.ErrPurchaseRequired
	}

	return review, user, nil
}

func (srv *reviewService) findUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *reviewService) findProduct(ctx context.Context, productID primitive.ObjectID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// bundle assembles the post-mutation response: the product with resolved
// reviews plus the author's refreshed profile.
func (srv *reviewService) bundle(ctx context.Context, product *entity.Product, user *entity.User) (*usecase.ReviewBundleOutput, error) {
	productReviews, err := resolveReviews(ctx, srv.reviewRepo, product.Reviews)
	if err != nil {
		return nil, err
	}

	orders, err := resolveOrders(ctx, srv.productRepo, user)
	if err != nil {
		return nil, err
	}
	userReviews, err := resolveReviews(ctx, srv.reviewRepo, user.Reviews)
	if err != nil {
		return nil, err
	}

	return &usecase.ReviewBundleOutput{
		Product:        product,
		ProductReviews: productReviews,
		Profile: &usecase.UserProfileOutput{
			User:    user,
			Orders:  orders,
			Reviews: userReviews,
		},
	}, nil
}

func removeID(ids []primitive.ObjectID, target primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}

	return out
}
