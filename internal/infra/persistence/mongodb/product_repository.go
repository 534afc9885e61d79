package mongodb

import (
	"context"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// productRepository implements the repository.ProductRepository interface
// on top of the 'products' collection.
type productRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database, cfg *config.Config) repository.ProductRepository {
	return &productRepository{
		coll:    db.Collection(model.ProductModel{}.CollectionName()),
		timeout: opTimeout(cfg),
	}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var productM model.ProductModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// FindByName retrieves a single product by its exact name. Used for
// merge-on-create lookups; absence is reported as ErrProductNotFound.
func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var productM model.ProductModel
	if err := repo.coll.FindOne(ctx, bson.M{"name": name}).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

// FindAll retrieves every product in the catalog.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.findMany(ctx, bson.M{})
}

// FindByCategory retrieves every product whose main category matches.
func (repo *productRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return repo.findMany(ctx, bson.M{"category.main": category})
}

// FindByMerchant retrieves every product owned by the given merchant.
func (repo *productRepository) FindByMerchant(ctx context.Context, merchantID primitive.ObjectID) ([]*entity.Product, error) {
	return repo.findMany(ctx, bson.M{"merchant.merchantId": merchantID})
}

func (repo *productRepository) findMany(ctx context.Context, filter bson.M) ([]*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	defer cursor.Close(ctx)

	var models []model.ProductModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products, nil
}

// Create persists a new product entity and backfills the generated id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	productM := fromProductDomain(product)

	result, err := repo.coll.InsertOne(ctx, productM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}

	return nil
}

// Update overwrites the stored product document with the given entity.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	productM := fromProductDomain(product)

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, productM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product document from the catalog.
func (repo *productRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	reviews := make([]primitive.ObjectID, len(data.Reviews))
	copy(reviews, data.Reviews)

	return &entity.Product{
		ID:   data.ID,
		Name: data.Name,
		Category: entity.Category{
			Main:   data.Category.Main,
			Sub:    data.Category.Sub,
			Gender: data.Category.Gender,
		},
		Brand:       data.Brand,
		Description: data.Description,
		Image:       data.Image,
		Price:       data.Price,
		Reviews:     reviews,
		CreatedAt:   data.CreatedAt,
		Merchant: entity.MerchantRef{
			Name: data.Merchant.Name,
			ID:   data.Merchant.ID,
		},
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	reviews := make([]primitive.ObjectID, len(data.Reviews))
	copy(reviews, data.Reviews)

	return &model.ProductModel{
		ID:   data.ID,
		Name: data.Name,
		Category: model.CategoryDoc{
			Main:   data.Category.Main,
			Sub:    data.Category.Sub,
			Gender: data.Category.Gender,
		},
		Brand:       data.Brand,
		Description: data.Description,
		Image:       data.Image,
		Price:       data.Price,
		Reviews:     reviews,
		CreatedAt:   data.CreatedAt,
		Merchant: model.MerchantRefDoc{
			Name: data.Merchant.Name,
			ID:   data.Merchant.ID,
		},
	}
}
