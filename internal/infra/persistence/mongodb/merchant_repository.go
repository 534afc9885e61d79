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

// merchantRepository implements the repository.MerchantRepository interface
// on top of the 'merchants' collection.
type merchantRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMerchantRepository is the constructor for merchantRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewMerchantRepository(db *mongo.Database, cfg *config.Config) repository.MerchantRepository {
	return &merchantRepository{
		coll:    db.Collection(model.MerchantModel{}.CollectionName()),
		timeout: opTimeout(cfg),
	}
}

// FindByID retrieves a single merchant by their unique ID.
func (repo *merchantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Merchant, error) {
	return repo.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail retrieves a single merchant by their email address.
func (repo *merchantRepository) FindByEmail(ctx context.Context, email string) (*entity.Merchant, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

// FindByPhone retrieves a single merchant by their phone number.
func (repo *merchantRepository) FindByPhone(ctx context.Context, phone string) (*entity.Merchant, error) {
	return repo.findOne(ctx, bson.M{"phone": phone})
}

func (repo *merchantRepository) findOne(ctx context.Context, filter bson.M) (*entity.Merchant, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var merchantM model.MerchantModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&merchantM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	return toMerchantDomain(&merchantM), nil
}

// Create persists a new merchant entity and backfills the generated id.
func (repo *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	merchantM := fromMerchantDomain(merchant)

	result, err := repo.coll.InsertOne(ctx, merchantM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		merchant.ID = id
	}

	return nil
}

// Update overwrites the stored merchant document with the given entity.
// This is a plain last-write-wins replace; concurrent writers are not serialized.
func (repo *merchantRepository) Update(ctx context.Context, merchant *entity.Merchant) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	merchantM := fromMerchantDomain(merchant)

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": merchant.ID}, merchantM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update merchant")
	}
	if result.MatchedCount == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// RemoveProductRefs pulls every inventory and sold-order line referencing the
// product from the merchant document.
func (repo *merchantRepository) RemoveProductRefs(ctx context.Context, merchantID, productID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	update := bson.M{"$pull": bson.M{
		"products":     bson.M{"product": productID},
		"soldproducts": bson.M{"product": productID},
	}}

	if _, err := repo.coll.UpdateByID(ctx, merchantID, update); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove product refs from merchant")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	inventory := make([]entity.InventoryLine, 0, len(data.Inventory))
	for _, line := range data.Inventory {
		inventory = append(inventory, entity.InventoryLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	soldOrders := make([]entity.SoldOrder, 0, len(data.SoldOrders))
	for _, order := range data.SoldOrders {
		soldOrders = append(soldOrders, entity.SoldOrder{
			Location:  entity.Location{Pincode: order.Location.Pincode, Address: order.Location.Address},
			UserID:    order.UserID,
			ProductID: order.ProductID,
			Quantity:  order.Quantity,
		})
	}

	return &entity.Merchant{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Password:   data.Password,
		NationalID: data.NationalID,
		Location:   entity.Location{Pincode: data.Location.Pincode, Address: data.Location.Address},
		Inventory:  inventory,
		SoldOrders: soldOrders,
		Earnings:   data.Earnings,
	}
}

func fromMerchantDomain(data *entity.Merchant) *model.MerchantModel {
	if data == nil {
		return nil
	}

	inventory := make([]model.InventoryLineDoc, 0, len(data.Inventory))
	for _, line := range data.Inventory {
		inventory = append(inventory, model.InventoryLineDoc{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	soldOrders := make([]model.SoldOrderDoc, 0, len(data.SoldOrders))
	for _, order := range data.SoldOrders {
		soldOrders = append(soldOrders, model.SoldOrderDoc{
			Location:  model.LocationDoc{Pincode: order.Location.Pincode, Address: order.Location.Address},
			UserID:    order.UserID,
			ProductID: order.ProductID,
			Quantity:  order.Quantity,
		})
	}

	return &model.MerchantModel{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Password:   data.Password,
		NationalID: data.NationalID,
		Location:   model.LocationDoc{Pincode: data.Location.Pincode, Address: data.Location.Address},
		Inventory:  inventory,
		SoldOrders: soldOrders,
		Earnings:   data.Earnings,
	}
}
