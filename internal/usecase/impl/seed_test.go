package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seed helpers build prepopulated documents directly in the fakes, bypassing
// the services, so each test arranges exactly the state it needs.

func seedMerchant(t *testing.T, repo *memMerchantRepo, name string) *entity.Merchant {
	t.Helper()

	merchant := &entity.Merchant{
		Name:       name,
		Email:      name + "@example.com",
		Phone:      "9" + primitive.NewObjectID().Hex()[:9],
		Password:   "hashed:Password1!",
		NationalID: "123456789012",
		Location:   entity.Location{Pincode: "560001", Address: "12 Market Road"},
	}
	require.NoError(t, repo.Create(context.Background(), merchant))

	return merchant
}

func seedUser(t *testing.T, repo *memUserRepo, name string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:     name,
		Email:    name + "@example.com",
		Phone:    "8" + primitive.NewObjectID().Hex()[:9],
		Password: "hashed:Password1!",
		Location: entity.Location{Pincode: "560004", Address: "4 Lake View"},
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

// seedProduct creates a product owned by a throwaway merchant reference.
func seedProduct(t *testing.T, repo *memProductRepo, name string, price float64) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name: name,
		Category: entity.Category{
			Main:   "Clothing",
			Sub:    "Shirts",
			Gender: entity.DefaultGender,
		},
		Brand:       entity.DefaultBrand,
		Description: "A perfectly ordinary item.",
		Image:       "https://img.example.com/p.jpg",
		Price:       price,
		CreatedAt:   time.Now(),
		Merchant:    entity.MerchantRef{Name: "Seeded Seller", ID: primitive.NewObjectID()},
	}
	require.NoError(t, repo.Create(context.Background(), product))

	return product
}

// seedProductFor creates a product owned by the given merchant and stocks
// the merchant's inventory with quantity units.
func seedProductFor(t *testing.T, productRepo *memProductRepo, merchantRepo *memMerchantRepo, merchant *entity.Merchant, name string, price float64, quantity int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name: name,
		Category: entity.Category{
			Main:   "Clothing",
			Sub:    "Shirts",
			Gender: entity.DefaultGender,
		},
		Brand:       entity.DefaultBrand,
		Description: "A perfectly ordinary item.",
		Image:       "https://img.example.com/p.jpg",
		Price:       price,
		CreatedAt:   time.Now(),
		Merchant:    entity.MerchantRef{Name: merchant.Name, ID: merchant.ID},
	}
	require.NoError(t, productRepo.Create(context.Background(), product))

	merchant.Inventory = append(merchant.Inventory, entity.InventoryLine{ProductID: product.ID, Quantity: quantity})
	require.NoError(t, merchantRepo.Update(context.Background(), merchant))

	return product
}

func seedReview(t *testing.T, repo *memReviewRepo, userID, productID primitive.ObjectID) *entity.Review {
	t.Helper()

	review := &entity.Review{
		Rating:    4,
		Comment:   "Solid product.",
		Author:    entity.ReviewAuthor{Username: "seeded", UserID: userID},
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), review))

	return review
}

func cartLine(productID primitive.ObjectID, quantity int) entity.CartLine {
	return entity.CartLine{ProductID: productID, Quantity: quantity}
}

func boughtOrder(merchantID, productID primitive.ObjectID, quantity int) entity.BoughtOrder {
	return entity.BoughtOrder{MerchantID: merchantID, ProductID: productID, Quantity: quantity}
}
