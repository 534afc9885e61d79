package impl

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resolveCart expands the user's cart references into product documents.
// Lines whose product no longer exists are dropped from the view.
func resolveCart(ctx context.Context, productRepo repository.ProductRepository, user *entity.User) ([]usecase.ResolvedCartLine, error) {
	lines := make([]usecase.ResolvedCartLine, 0, len(user.Cart))
	for _, line := range user.Cart {
		product, err := productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve cart line")
		}
		lines = append(lines, usecase.ResolvedCartLine{Product: product, Quantity: line.Quantity})
	}

	return lines, nil
}

// resolveOrders expands the user's bought orders into product documents.
// Orders whose product no longer exists are dropped from the view.
func resolveOrders(ctx context.Context, productRepo repository.ProductRepository, user *entity.User) ([]usecase.ResolvedOrder, error) {
	orders := make([]usecase.ResolvedOrder, 0, len(user.Orders))
	for _, order := range user.Orders {
		product, err := productRepo.FindByID(ctx, order.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve order")
		}
		orders = append(orders, usecase.ResolvedOrder{
			Product:    product,
			MerchantID: order.MerchantID,
			Quantity:   order.Quantity,
		})
	}

	return orders, nil
}

// resolveReviews expands review id references into review documents,
// skipping dangling references.
func resolveReviews(ctx context.Context, reviewRepo repository.ReviewRepository, ids []primitive.ObjectID) ([]*entity.Review, error) {
	reviews := make([]*entity.Review, 0, len(ids))
	for _, id := range ids {
		review, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve review")
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}
