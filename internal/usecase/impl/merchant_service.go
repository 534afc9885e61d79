// Package impl contains the application-specific business rules implementations.
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

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	merchantRepo repository.MerchantRepository
	hasher       service.PasswordHasher
	tokens       service.TokenService
	logger       *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(
	merchantRepo repository.MerchantRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.MerchantUsecase {
	return &merchantService{
		merchantRepo: merchantRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

// Register creates a new merchant account and signs an access token for it.
func (srv *merchantService) Register(ctx context.Context, input usecase.RegisterMerchantInput) (*usecase.MerchantAuthOutput, error) {
	srv.logger.Info("Registering merchant", "email", input.Email)

	// 1. Reject when the email or phone is already taken. Uniqueness is
	// per collection: the same email may exist as a user account.
	if err := srv.checkContactsFree(ctx, input.Email, input.Phone, primitive.NilObjectID); err != nil {
		return nil, err
	}

	// 2. Hash the password before it ever touches storage.
	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	merchant := &entity.Merchant{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Password:   hashed,
		NationalID: input.NationalID,
		Location: entity.Location{
			Pincode: input.Pincode,
			Address: input.Address,
		},
	}

	// 3. Persist and issue the token.
	if err := srv.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, errors.Wrap(err, "failed to create merchant")
	}

	token, err := srv.tokens.GenerateToken(merchant.ID, entity.RoleMerchant)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &usecase.MerchantAuthOutput{Merchant: merchant, AccessToken: token}, nil
}

// Login authenticates a merchant by email and password.
func (srv *merchantService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.MerchantAuthOutput, error) {
	srv.logger.Debug("Merchant login attempt", "email", input.Email)

	merchant, err := srv.merchantRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	if !srv.hasher.Check(input.Password, merchant.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.GenerateToken(merchant.ID, entity.RoleMerchant)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &usecase.MerchantAuthOutput{Merchant: merchant, AccessToken: token}, nil
}

// GetProfile retrieves the merchant record for the authenticated subject.
func (srv *merchantService) GetProfile(ctx context.Context, merchantID primitive.ObjectID) (*entity.Merchant, error) {
	merchant, err := srv.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	return merchant, nil
}

// UpdateProfile applies a merge-patch to the merchant record. Fields left
// nil in the input keep their stored value.
func (srv *merchantService) UpdateProfile(ctx context.Context, merchantID primitive.ObjectID, input *usecase.UpdateMerchantProfileInput) (*entity.Merchant, error) {
	srv.logger.Info("Updating merchant profile", "merchantID", merchantID.Hex())

	// 1. Resolve the record behind the token subject.
	merchant, err := srv.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	// 2. A changed email or phone must not collide with another merchant.
	email, phone := "", ""
	if input.Email != nil && *input.Email != merchant.Email {
		email = *input.Email
	}
	if input.Phone != nil && *input.Phone != merchant.Phone {
		phone = *input.Phone
	}
	if err := srv.checkContactsFree(ctx, email, phone, merchant.ID); err != nil {
		return nil, err
	}

	// 3. Merge the provided fields.
	if input.Name != nil {
		merchant.Name = *input.Name
	}
	if input.Email != nil {
		merchant.Email = *input.Email
	}
	if input.Phone != nil {
		merchant.Phone = *input.Phone
	}
	if input.NationalID != nil {
		merchant.NationalID = *input.NationalID
	}
	if input.Pincode != nil {
		merchant.Location.Pincode = *input.Pincode
	}
	if input.Address != nil {
		merchant.Location.Address = *input.Address
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		merchant.Password = hashed
	}

	// 4. Save the updated record.
	if err := srv.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, errors.Wrap(err, "failed to update merchant")
	}

	return merchant, nil
}

// checkContactsFree returns a conflict error when the email or phone belongs
// to a merchant other than selfID. Empty strings are skipped.
func (srv *merchantService) checkContactsFree(ctx context.Context, email, phone string, selfID primitive.ObjectID) error {
	if email != "" {
		existing, err := srv.merchantRepo.FindByEmail(ctx, email)
		if err == nil && existing.ID != selfID {
			return domainerrors.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, repository.ErrMerchantNotFound) {
			return errors.Wrap(err, "failed to check email")
		}
	}

	if phone != "" {
		existing, err := srv.merchantRepo.FindByPhone(ctx, phone)
		if err == nil && existing.ID != selfID {
			return domainerrors.ErrPhoneTaken
		}
		if err != nil && !errors.Is(err, repository.ErrMerchantNotFound) {
			return errors.Wrap(err, "failed to check phone")
		}
	}

	return nil
}
