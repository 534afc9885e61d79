package handler

import (
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// View models returned to clients. Password hashes never appear here.

type locationView struct {
	Pincode string `json:"pincode"`
	Address string `json:"address"`
}

type inventoryLineView struct {
	ProductID primitive.ObjectID `json:"product"`
	Quantity  int                `json:"quantity"`
}

type soldOrderView struct {
	Location  locationView       `json:"location"`
	UserID    primitive.ObjectID `json:"user"`
	ProductID primitive.ObjectID `json:"product"`
	Quantity  int                `json:"quantity"`
}

type merchantView struct {
	ID         primitive.ObjectID  `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	NationalID string              `json:"nationalId"`
	Location   locationView        `json:"location"`
	Inventory  []inventoryLineView `json:"products"`
	SoldOrders []soldOrderView     `json:"soldProducts"`
	Earnings   float64             `json:"earnedMoney"`
}

type cartLineView struct {
	ProductID primitive.ObjectID `json:"product"`
	Quantity  int                `json:"quantity"`
}

type boughtOrderView struct {
	MerchantID primitive.ObjectID `json:"merchant"`
	ProductID  primitive.ObjectID `json:"product"`
	Quantity   int                `json:"quantity"`
}

type userView struct {
	ID       primitive.ObjectID   `json:"id"`
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	Phone    string               `json:"phone"`
	Location locationView         `json:"location"`
	Cart     []cartLineView       `json:"cart"`
	Orders   []boughtOrderView    `json:"boughtProducts"`
	Reviews  []primitive.ObjectID `json:"reviews"`
}

type categoryView struct {
	Main   string `json:"main"`
	Sub    string `json:"sub"`
	Gender string `json:"gender"`
}

type merchantRefView struct {
	Name string             `json:"merchantName"`
	ID   primitive.ObjectID `json:"merchantId"`
}

type productView struct {
	ID          primitive.ObjectID   `json:"id"`
	Name        string               `json:"name"`
	Category    categoryView         `json:"category"`
	Brand       string               `json:"brand"`
	Description string               `json:"description"`
	Image       string               `json:"image"`
	Price       float64              `json:"price"`
	Reviews     []primitive.ObjectID `json:"reviews"`
	CreatedAt   time.Time            `json:"date"`
	Merchant    merchantRefView      `json:"merchant"`
}

type reviewAuthorView struct {
	Username string             `json:"username"`
	UserID   primitive.ObjectID `json:"userId"`
}

type reviewView struct {
	ID        primitive.ObjectID `json:"id"`
	Rating    int                `json:"ratings"`
	Comment   string             `json:"comments"`
	Author    reviewAuthorView   `json:"user"`
	ProductID primitive.ObjectID `json:"product"`
	CreatedAt time.Time          `json:"date"`
}

type resolvedCartLineView struct {
	Product  productView `json:"product"`
	Quantity int         `json:"quantity"`
}

type resolvedOrderView struct {
	Product    productView        `json:"product"`
	MerchantID primitive.ObjectID `json:"merchant"`
	Quantity   int                `json:"quantity"`
}

type cartStateView struct {
	Cart   []resolvedCartLineView `json:"cart"`
	Orders []resolvedOrderView    `json:"boughtProducts"`
}

type userProfileView struct {
	User    userView            `json:"user"`
	Orders  []resolvedOrderView `json:"boughtProducts"`
	Reviews []reviewView        `json:"reviews"`
}

type productDetailView struct {
	Product      productView `json:"product"`
	MerchantName string      `json:"merchantName"`
	Available    int         `json:"quantityAvailable"`
}

type authView struct {
	Account any    `json:"account"`
	Token   string `json:"token"`
}

func presentMerchant(m *entity.Merchant) merchantView {
	inventory := make([]inventoryLineView, 0, len(m.Inventory))
	for _, line := range m.Inventory {
		inventory = append(inventory, inventoryLineView{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	sold := make([]soldOrderView, 0, len(m.SoldOrders))
	for _, order := range m.SoldOrders {
		sold = append(sold, soldOrderView{
			Location:  locationView{Pincode: order.Location.Pincode, Address: order.Location.Address},
			UserID:    order.UserID,
			ProductID: order.ProductID,
			Quantity:  order.Quantity,
		})
	}

	return merchantView{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		NationalID: m.NationalID,
		Location:   locationView{Pincode: m.Location.Pincode, Address: m.Location.Address},
		Inventory:  inventory,
		SoldOrders: sold,
		Earnings:   m.Earnings,
	}
}

func presentUser(u *entity.User) userView {
	cart := make([]cartLineView, 0, len(u.Cart))
	for _, line := range u.Cart {
		cart = append(cart, cartLineView{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	orders := make([]boughtOrderView, 0, len(u.Orders))
	for _, order := range u.Orders {
		orders = append(orders, boughtOrderView{MerchantID: order.MerchantID, ProductID: order.ProductID, Quantity: order.Quantity})
	}

	reviews := u.Reviews
	if reviews == nil {
		reviews = []primitive.ObjectID{}
	}

	return userView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Location: locationView{Pincode: u.Location.Pincode, Address: u.Location.Address},
		Cart:     cart,
		Orders:   orders,
		Reviews:  reviews,
	}
}

func presentProduct(p *entity.Product) productView {
	reviews := p.Reviews
	if reviews == nil {
		reviews = []primitive.ObjectID{}
	}

	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Category:    categoryView{Main: p.Category.Main, Sub: p.Category.Sub, Gender: p.Category.Gender},
		Brand:       p.Brand,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Reviews:     reviews,
		CreatedAt:   p.CreatedAt,
		Merchant:    merchantRefView{Name: p.Merchant.Name, ID: p.Merchant.ID},
	}
}

func presentProducts(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, presentProduct(p))
	}

	return views
}

func presentReview(r *entity.Review) reviewView {
	return reviewView{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Author:    reviewAuthorView{Username: r.Author.Username, UserID: r.Author.UserID},
		ProductID: r.ProductID,
		CreatedAt: r.CreatedAt,
	}
}

func presentReviews(reviews []*entity.Review) []reviewView {
	views := make([]reviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, presentReview(r))
	}

	return views
}

func presentResolvedCart(lines []usecase.ResolvedCartLine) []resolvedCartLineView {
	views := make([]resolvedCartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, resolvedCartLineView{Product: presentProduct(line.Product), Quantity: line.Quantity})
	}

	return views
}

func presentResolvedOrders(orders []usecase.ResolvedOrder) []resolvedOrderView {
	views := make([]resolvedOrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, resolvedOrderView{
			Product:    presentProduct(order.Product),
			MerchantID: order.MerchantID,
			Quantity:   order.Quantity,
		})
	}

	return views
}

func presentCartState(output *usecase.CartOutput) cartStateView {
	return cartStateView{
		Cart:   presentResolvedCart(output.Cart),
		Orders: presentResolvedOrders(output.Orders),
	}
}

func presentUserProfile(output *usecase.UserProfileOutput) userProfileView {
	return userProfileView{
		User:    presentUser(output.User),
		Orders:  presentResolvedOrders(output.Orders),
		Reviews: presentReviews(output.Reviews),
	}
}
