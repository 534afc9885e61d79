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

// userRepository implements the repository.UserRepository interface
// on top of the 'users' collection.
type userRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		coll:    db.Collection(model.UserModel{}.CollectionName()),
		timeout: opTimeout(cfg),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

// FindByPhone retrieves a single user by their phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"phone": phone})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity and backfills the generated id.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	userM := fromUserDomain(user)

	result, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return nil
}

// Update overwrites the stored user document with the given entity.
// This is a plain last-write-wins replace; concurrent writers are not serialized.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	userM := fromUserDomain(user)

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, userM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// RemoveProductRefsFromAll pulls cart and order lines referencing the product
// from every user document. Used when a product is deleted from the catalog.
func (repo *userRepository) RemoveProductRefsFromAll(ctx context.Context, productID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	update := bson.M{"$pull": bson.M{
		"cart":           bson.M{"product": productID},
		"boughtproducts": bson.M{"product": productID},
	}}

	if _, err := repo.coll.UpdateMany(ctx, bson.M{}, update); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove product refs from users")
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	cart := make([]entity.CartLine, 0, len(data.Cart))
	for _, line := range data.Cart {
		cart = append(cart, entity.CartLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	orders := make([]entity.BoughtOrder, 0, len(data.Orders))
	for _, order := range data.Orders {
		orders = append(orders, entity.BoughtOrder{
			MerchantID: order.MerchantID,
			ProductID:  order.ProductID,
			Quantity:   order.Quantity,
		})
	}

	reviews := make([]primitive.ObjectID, len(data.Reviews))
	copy(reviews, data.Reviews)

	return &entity.User{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Password: data.Password,
		Location: entity.Location{Pincode: data.Location.Pincode, Address: data.Location.Address},
		Cart:     cart,
		Orders:   orders,
		Reviews:  reviews,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	cart := make([]model.CartLineDoc, 0, len(data.Cart))
	for _, line := range data.Cart {
		cart = append(cart, model.CartLineDoc{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	orders := make([]model.BoughtOrderDoc, 0, len(data.Orders))
	for _, order := range data.Orders {
		orders = append(orders, model.BoughtOrderDoc{
			MerchantID: order.MerchantID,
			ProductID:  order.ProductID,
			Quantity:   order.Quantity,
		})
	}

	reviews := make([]primitive.ObjectID, len(data.Reviews))
	copy(reviews, data.Reviews)

	return &model.UserModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Password: data.Password,
		Location: model.LocationDoc{Pincode: data.Location.Pincode, Address: data.Location.Address},
		Cart:     cart,
		Orders:   orders,
		Reviews:  reviews,
	}
}
