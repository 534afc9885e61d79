package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	logger      *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:    userRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register creates a new user account and signs an access token for it.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.UserAuthOutput, error) {
	srv.logger.Info("Registering user", "email", input.Email)

	// Uniqueness is per collection: a merchant account may share the email.
	if err := srv.checkContactsFree(ctx, input.Email, input.Phone, primitive.NilObjectID); err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashed,
		Location: entity.Location{
			Pincode: input.Pincode,
			Address: input.Address,
		},
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokens.GenerateToken(user.ID, entity.RoleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &usecase.UserAuthOutput{User: user, AccessToken: token}, nil
}

// Login authenticates a user by email and password. The response carries the
// cart and order history resolved into product documents.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.UserAuthOutput, error) {
	srv.logger.Debug("User login attempt", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.GenerateToken(user.ID, entity.RoleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	cart, err := resolveCart(ctx, srv.productRepo, user)
	if err != nil {
		return nil, err
	}
	orders, err := resolveOrders(ctx, srv.productRepo, user)
	if err != nil {
		return nil, err
	}

	return &usecase.UserAuthOutput{
		User:        user,
		AccessToken: token,
		Cart:        cart,
		Orders:      orders,
	}, nil
}

// GetProfile retrieves the user record for the authenticated subject,
// bundling the resolved order history and authored reviews.
func (srv *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*usecase.UserProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	orders, err := resolveOrders(ctx, srv.productRepo, user)
	if err != nil {
		return nil, err
	}
	reviews, err := resolveReviews(ctx, srv.reviewRepo, user.Reviews)
	if err != nil {
		return nil, err
	}

	return &usecase.UserProfileOutput{User: user, Orders: orders, Reviews: reviews}, nil
}

// UpdateProfile applies a merge-patch to the user record. Fields left nil
// in the input keep their stored value.
func (srv *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *usecase.UpdateUserProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", "userID", userID.Hex())

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	email, phone := "", ""
	if input.Email != nil && *input.Email != user.Email {
		email = *input.Email
	}
	if input.Phone != nil && *input.Phone != user.Phone {
		phone = *input.Phone
	}
	if err := srv.checkContactsFree(ctx, email, phone, user.ID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Pincode != nil {
		user.Location.Pincode = *input.Pincode
	}
	if input.Address != nil {
		user.Location.Address = *input.Address
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.Password = hashed
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// checkContactsFree returns a conflict error when the email or phone belongs
// to a user other than selfID. Empty strings are skipped.
func (srv *userService) checkContactsFree(ctx context.Context, email, phone string, selfID primitive.ObjectID) error {
	if email != "" {
		existing, err := srv.userRepo.FindByEmail(ctx, email)
		if err == nil && existing.ID != selfID {
			return domainerrors.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}
	}

	if phone != "" {
		existing, err := srv.userRepo.FindByPhone(ctx, phone)
		if err == nil && existing.ID != selfID {
			return domainerrors.ErrPhoneTaken
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check phone")
		}
	}

	return nil
}
