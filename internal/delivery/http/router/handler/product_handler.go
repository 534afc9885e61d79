package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler holds dependencies for catalog, cart and purchase handlers.
type ProductHandler struct {
	products  usecase.ProductUsecase
	cart      usecase.CartUsecase
	purchases usecase.PurchaseUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(
	products usecase.ProductUsecase,
	cart usecase.CartUsecase,
	purchases usecase.PurchaseUsecase,
	logger *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		products:  products,
		cart:      cart,
		purchases: purchases,
		logger:    logger,
	}
}

type createProductRequest struct {
	Name         string  `json:"name" validate:"required,min=4"`
	CategoryMain string  `json:"category"`
	CategorySub  string  `json:"subCategory"`
	Gender       string  `json:"gender"`
	Brand        string  `json:"brand"`
	Description  string  `json:"description" validate:"required,min=10"`
	Image        string  `json:"image" validate:"required"`
	Price        float64 `json:"price" validate:"required,gte=0"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
}

type quantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// List returns the catalog, optionally filtered with ?category=.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentProducts(products), "")
}

// Get returns one product with the owning merchant's name and stock.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.products.Get(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productDetailView{
		Product:      presentProduct(detail.Product),
		MerchantName: detail.MerchantName,
		Available:    detail.Available,
	}, "")
}

// Create lists a product for the authenticated merchant.
func (h *ProductHandler) Create(c echo.Context) error {
	merchantID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.products.Create(c.Request().Context(), merchantID, usecase.CreateProductInput{
		Name:         req.Name,
		CategoryMain: req.CategoryMain,
		CategorySub:  req.CategorySub,
		Gender:       req.Gender,
		Brand:        req.Brand,
		Description:  req.Description,
		Image:        req.Image,
		Price:        req.Price,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentProduct(product), "Product listed successfully")
}

// Delete removes a product the authenticated merchant owns and returns the
// merchant's remaining catalog.
func (h *ProductHandler) Delete(c echo.Context) error {
	merchantID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	productID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	remaining, err := h.products.Delete(c.Request().Context(), merchantID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentProducts(remaining), "Product deleted successfully")
}

// AddToCart puts units of the product into the authenticated user's cart.
func (h *ProductHandler) AddToCart(c echo.Context) error {
	userID, productID, quantity, err := h.cartMutationArgs(c)
	if err != nil {
		return err
	}

	output, err := h.cart.Add(c.Request().Context(), userID, productID, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentCartState(output), "Added to cart")
}

// RemoveFromCart takes units of the product out of the cart.
func (h *ProductHandler) RemoveFromCart(c echo.Context) error {
	userID, productID, quantity, err := h.cartMutationArgs(c)
	if err != nil {
		return err
	}

	output, err := h.cart.Remove(c.Request().Context(), userID, productID, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentCartState(output), "Removed from cart")
}

// Buy settles a single {product, quantity} purchase.
func (h *ProductHandler) Buy(c echo.Context) error {
	userID, productID, quantity, err := h.cartMutationArgs(c)
	if err != nil {
		return err
	}

	output, err := h.purchases.Buy(c.Request().Context(), userID, productID, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentCartState(output), "Purchase successful")
}

// Checkout settles every line currently in the user's cart.
func (h *ProductHandler) Checkout(c echo.Context) error {
	userID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	output, err := h.purchases.Checkout(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentCartState(output), "Checkout successful")
}

// cartMutationArgs extracts the authenticated user, the :id path product and
// the body quantity shared by the cart and single-purchase endpoints.
func (h *ProductHandler) cartMutationArgs(c echo.Context) (userID, productID primitive.ObjectID, quantity int, err error) {
	userID, err = middleware.SubjectID(c)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, 0, err
	}

	productID, err = pathObjectID(c, "id")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, 0, err
	}

	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, 0,
			domainerrors.ErrValidationFailed.WithDetails("invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, 0, errors.WithStack(err)
	}

	return userID, productID, req.Quantity, nil
}

// pathObjectID parses an ObjectID path parameter.
func pathObjectID(c echo.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter")
	}

	return id, nil
}
