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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	merchantRepo repository.MerchantRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	merchantRepo repository.MerchantRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// List returns the catalog, optionally filtered by main category.
func (srv *productService) List(ctx context.Context, category string) ([]*entity.Product, error) {
	if category != "" {
		products, err := srv.productRepo.FindByCategory(ctx, category)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products by category")
		}

		return products, nil
	}

	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Get returns a product with its owning merchant's name and current stock.
func (srv *productService) Get(ctx context.Context, productID primitive.ObjectID) (*usecase.ProductDetailOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	merchant, err := srv.merchantRepo.FindByID(ctx, product.Merchant.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find owning merchant")
	}

	return &usecase.ProductDetailOutput{
		Product:      product,
		MerchantName: merchant.Name,
		Available:    merchant.InventoryQuantity(product.ID),
	}, nil
}

// Create lists a product for the acting merchant. A product with the same
// name already in the catalog is merged into instead of duplicated: the
// merchant's inventory line for the existing document is incremented.
func (srv *productService) Create(ctx context.Context, merchantID primitive.ObjectID, input usecase.CreateProductInput) (*entity.Product, error) {
	srv.logger.Info("Creating product", "merchantID", merchantID.Hex(), "name", input.Name)

	merchant, err := srv.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	existing, err := srv.productRepo.FindByName(ctx, input.Name)
	switch {
	case err == nil:
		// Merge: stock the existing document under this merchant.
		srv.addInventory(merchant, existing.ID, input.Quantity)
		if err := srv.merchantRepo.Update(ctx, merchant); err != nil {
			return nil, errors.Wrap(err, "failed to update merchant inventory")
		}

		return existing, nil
	case errors.Is(err, repository.ErrProductNotFound):
		// Fall through to create a new document.
	default:
		return nil, errors.Wrap(err, "failed to check product name")
	}

	product := &entity.Product{
		Name: input.Name,
		Category: entity.Category{
			Main:   defaultIfEmpty(input.CategoryMain, entity.DefaultCategory),
			Sub:    defaultIfEmpty(input.CategorySub, entity.DefaultCategory),
			Gender: defaultIfEmpty(input.Gender, entity.DefaultGender),
		},
		Brand:       defaultIfEmpty(input.Brand, entity.DefaultBrand),
		Description: input.Description,
		Image:       input.Image,
		Price:       input.Price,
		CreatedAt:   time.Now(),
		Merchant: entity.MerchantRef{
			Name: merchant.Name,
			ID:   merchant.ID,
		},
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.addInventory(merchant, product.ID, input.Quantity)
	if err := srv.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, errors.Wrap(err, "failed to update merchant inventory")
	}

	return product, nil
}

// Delete removes a product the merchant owns and cascades the removal:
// the document itself, the owner's inventory and sold-order lines, and the
// product's presence in every user's cart and order history. The steps run
// as independent updates; there is no rollback.
func (srv *productService) Delete(ctx context.Context, merchantID, productID primitive.ObjectID) ([]*entity.Product, error) {
	srv.logger.Info("Deleting product", "merchantID", merchantID.Hex(), "productID", productID.Hex())

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.Merchant.ID != merchantID {
		return nil, domainerrors.ErrNotOwner
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return nil, errors.Wrap(err, "failed to delete product")
	}
	if err := srv.merchantRepo.RemoveProductRefs(ctx, merchantID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to remove product from merchant")
	}
	if err := srv.userRepo.RemoveProductRefsFromAll(ctx, productID); err != nil {
		return nil, errors.Wrap(err, "failed to remove product from users")
	}

	remaining, err := srv.productRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list remaining products")
	}

	return remaining, nil
}

// addInventory merges quantity onto the merchant's inventory line for the
// product, creating the line when absent.
func (srv *productService) addInventory(merchant *entity.Merchant, productID primitive.ObjectID, quantity int) {
	for i := range merchant.Inventory {
		if merchant.Inventory[i].ProductID == productID {
			merchant.Inventory[i].Quantity += quantity
			return
		}
	}

	merchant.Inventory = append(merchant.Inventory, entity.InventoryLine{
		ProductID: productID,
		Quantity:  quantity,
	})
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
