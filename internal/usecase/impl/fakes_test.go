package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They return copies on reads so the services'
// read-modify-write flows behave like they do against a real document store:
// nothing is visible until Update persists it.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newObjectID(t *testing.T) primitive.ObjectID {
	t.Helper()

	return primitive.NewObjectID()
}

// --- merchant repository fake ---

type memMerchantRepo struct {
	items map[primitive.ObjectID]*entity.Merchant
}

func newMemMerchantRepo() *memMerchantRepo {
	return &memMerchantRepo{items: make(map[primitive.ObjectID]*entity.Merchant)}
}

func (r *memMerchantRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Merchant, error) {
	if m, ok := r.items[id]; ok {
		return copyMerchant(m), nil
	}

	return nil, repository.ErrMerchantNotFound
}

func (r *memMerchantRepo) FindByEmail(_ context.Context, email string) (*entity.Merchant, error) {
	for _, m := range r.items {
		if m.Email == email {
			return copyMerchant(m), nil
		}
	}

	return nil, repository.ErrMerchantNotFound
}

func (r *memMerchantRepo) FindByPhone(_ context.Context, phone string) (*entity.Merchant, error) {
	for _, m := range r.items {
		if m.Phone == phone {
			return copyMerchant(m), nil
		}
	}

	return nil, repository.ErrMerchantNotFound
}

func (r *memMerchantRepo) Create(_ context.Context, merchant *entity.Merchant) error {
	merchant.ID = primitive.NewObjectID()
	r.items[merchant.ID] = copyMerchant(merchant)

	return nil
}

func (r *memMerchantRepo) Update(_ context.Context, merchant *entity.Merchant) error {
	if _, ok := r.items[merchant.ID]; !ok {
		return repository.ErrMerchantNotFound
	}
	r.items[merchant.ID] = copyMerchant(merchant)

	return nil
}

func (r *memMerchantRepo) RemoveProductRefs(_ context.Context, merchantID, productID primitive.ObjectID) error {
	m, ok := r.items[merchantID]
	if !ok {
		return nil
	}

	inventory := m.Inventory[:0]
	for _, line := range m.Inventory {
		if line.ProductID != productID {
			inventory = append(inventory, line)
		}
	}
	m.Inventory = inventory

	sold := m.SoldOrders[:0]
	for _, order := range m.SoldOrders {
		if order.ProductID != productID {
			sold = append(sold, order)
		}
	}
	m.SoldOrders = sold

	return nil
}

func copyMerchant(m *entity.Merchant) *entity.Merchant {
	out := *m
	out.Inventory = append([]entity.InventoryLine(nil), m.Inventory...)
	out.SoldOrders = append([]entity.SoldOrder(nil), m.SoldOrders...)

	return &out
}

// --- user repository fake ---

type memUserRepo struct {
	items map[primitive.ObjectID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{items: make(map[primitive.ObjectID]*entity.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	if u, ok := r.items[id]; ok {
		return copyUser(u), nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			return copyUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Phone == phone {
			return copyUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = primitive.NewObjectID()
	r.items[user.ID] = copyUser(user)

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.items[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.items[user.ID] = copyUser(user)

	return nil
}

func (r *memUserRepo) RemoveProductRefsFromAll(_ context.Context, productID primitive.ObjectID) error {
	for _, u := range r.items {
		cart := u.Cart[:0]
		for _, line := range u.Cart {
			if line.ProductID != productID {
				cart = append(cart, line)
			}
		}
		u.Cart = cart

		orders := u.Orders[:0]
		for _, order := range u.Orders {
			if order.ProductID != productID {
				orders = append(orders, order)
			}
		}
		u.Orders = orders
	}

	return nil
}

func copyUser(u *entity.User) *entity.User {
	out := *u
	out.Cart = append([]entity.CartLine(nil), u.Cart...)
	out.Orders = append([]entity.BoughtOrder(nil), u.Orders...)
	out.Reviews = append([]primitive.ObjectID(nil), u.Reviews...)

	return &out
}

// --- product repository fake ---

type memProductRepo struct {
	items map[primitive.ObjectID]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: make(map[primitive.ObjectID]*entity.Product)}
}

func (r *memProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Product, error) {
	if p, ok := r.items[id]; ok {
		return copyProduct(p), nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) FindByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Name == name {
			return copyProduct(p), nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, copyProduct(p))
	}

	return out, nil
}

func (r *memProductRepo) FindByCategory(_ context.Context, mainCategory string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.items {
		if p.Category.Main == mainCategory {
			out = append(out, copyProduct(p))
		}
	}

	return out, nil
}

func (r *memProductRepo) FindByMerchant(_ context.Context, merchantID primitive.ObjectID) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.items {
		if p.Merchant.ID == merchantID {
			out = append(out, copyProduct(p))
		}
	}

	return out, nil
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = primitive.NewObjectID()
	r.items[product.ID] = copyProduct(product)

	return nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.items[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.items[product.ID] = copyProduct(product)

	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.items, id)

	return nil
}

func copyProduct(p *entity.Product) *entity.Product {
	out := *p
	out.Reviews = append([]primitive.ObjectID(nil), p.Reviews...)

	return &out
}

// --- review repository fake ---

type memReviewRepo struct {
	items map[primitive.ObjectID]*entity.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{items: make(map[primitive.ObjectID]*entity.Review)}
}

func (r *memReviewRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Review, error) {
	if rv, ok := r.items[id]; ok {
		out := *rv
		return &out, nil
	}

	return nil, repository.ErrReviewNotFound
}

func (r *memReviewRepo) FindByAuthorAndProduct(_ context.Context, userID, productID primitive.ObjectID) (*entity.Review, error) {
	for _, rv := range r.items {
		if rv.Author.UserID == userID && rv.ProductID == productID {
			out := *rv
			return &out, nil
		}
	}

	return nil, repository.ErrReviewNotFound
}

func (r *memReviewRepo) FindAll(_ context.Context) ([]*entity.Review, error) {
	out := make([]*entity.Review, 0, len(r.items))
	for _, rv := range r.items {
		c := *rv
		out = append(out, &c)
	}

	return out, nil
}

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	review.ID = primitive.NewObjectID()
	c := *review
	r.items[review.ID] = &c

	return nil
}

func (r *memReviewRepo) Update(_ context.Context, review *entity.Review) error {
	if _, ok := r.items[review.ID]; !ok {
		return repository.ErrReviewNotFound
	}
	c := *review
	r.items[review.ID] = &c

	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(r.items, id)

	return nil
}

// --- service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(subjectID primitive.ObjectID, role entity.Role) (string, error) {
	return role.String() + ":" + subjectID.Hex(), nil
}

func (fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	parts := strings.SplitN(tokenString, ":", 2)
	if len(parts) != 2 {
		return nil, errors.New("malformed fake token")
	}

	id, err := primitive.ObjectIDFromHex(parts[1])
	if err != nil {
		return nil, err
	}

	return &service.Claims{SubjectID: id, Role: entity.Role(parts[0])}, nil
}
