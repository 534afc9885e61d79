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

// reviewRepository implements the repository.ReviewRepository interface
// on top of the 'reviews' collection.
type reviewRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database, cfg *config.Config) repository.ReviewRepository {
	return &reviewRepository{
		coll:    db.Collection(model.ReviewModel{}.CollectionName()),
		timeout: opTimeout(cfg),
	}
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error) {
	return repo.findOne(ctx, bson.M{"_id": id})
}

// FindByAuthorAndProduct retrieves the review a user left on a product, if any.
// Backs the one-review-per-user-per-product rule.
func (repo *reviewRepository) FindByAuthorAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*entity.Review, error) {
	return repo.findOne(ctx, bson.M{"user.userId": userID, "product": productID})
}

func (repo *reviewRepository) findOne(ctx context.Context, filter bson.M) (*entity.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var reviewM model.ReviewModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&reviewM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// FindAll retrieves every review in the store.
func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}
	defer cursor.Close(ctx)

	var models []model.ReviewModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode reviews")
	}

	reviews := make([]*entity.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, toReviewDomain(&models[i]))
	}

	return reviews, nil
}

// Create persists a new review entity and backfills the generated id.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	reviewM := fromReviewDomain(review)

	result, err := repo.coll.InsertOne(ctx, reviewM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = id
	}

	return nil
}

// Update overwrites the stored review document with the given entity.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	reviewM := fromReviewDomain(review)

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": review.ID}, reviewM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}
	if result.MatchedCount == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes the review document.
func (repo *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete review")
	}
	if result.DeletedCount == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:      data.ID,
		Rating:  data.Rating,
		Comment: data.Comment,
		Author: entity.ReviewAuthor{
			Username: data.Author.Username,
			UserID:   data.Author.UserID,
		},
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:      data.ID,
		Rating:  data.Rating,
		Comment: data.Comment,
		Author: model.ReviewAuthorDoc{
			Username: data.Author.Username,
			UserID:   data.Author.UserID,
		},
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}
