package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user auth and profile handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type registerUserRequest struct {
	Name     string `json:"name" validate:"required,min=5"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Password string `json:"password" validate:"required,password"`
	Pincode  string `json:"pincode" validate:"required,min=6"`
	Address  string `json:"address" validate:"required"`
}

type updateUserProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=5"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=10"`
	Password *string `json:"password" validate:"omitempty,password"`
	Pincode  *string `json:"pincode" validate:"omitempty,min=6"`
	Address  *string `json:"address" validate:"omitempty,min=1"`
}

type userAuthView struct {
	Account any                    `json:"account"`
	Token   string                 `json:"token"`
	Cart    []resolvedCartLineView `json:"cart"`
	Orders  []resolvedOrderView    `json:"boughtProducts"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Pincode:  req.Pincode,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authView{
		Account: presentUser(output.User),
		Token:   output.AccessToken,
	}, "User registered successfully")
}

// Login handles the user login request. The response bundles the cart and
// order history resolved into product documents.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userAuthView{
		Account: presentUser(output.User),
		Token:   output.AccessToken,
		Cart:    presentResolvedCart(output.Cart),
		Orders:  presentResolvedOrders(output.Orders),
	}, "Login successful")
}

// GetProfile returns the authenticated user's record with resolved orders
// and authored reviews.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentUserProfile(profile), "")
}

// UpdateProfile merge-patches the authenticated user's record.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	var req updateUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateUserProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Pincode:  req.Pincode,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentUser(user), "Profile updated successfully")
}
