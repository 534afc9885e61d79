// Package handler contains the HTTP handlers for the application.
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

// MerchantHandler holds dependencies for merchant auth and profile handlers.
type MerchantHandler struct {
	uc     usecase.MerchantUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{uc: uc, logger: logger}
}

type registerMerchantRequest struct {
	Name       string `json:"name" validate:"required,min=5"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,min=10"`
	Password   string `json:"password" validate:"required,password"`
	NationalID string `json:"nationalId" validate:"required,min=12"`
	Pincode    string `json:"pincode" validate:"required,min=6"`
	Address    string `json:"address" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateMerchantProfileRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=5"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,min=10"`
	Password   *string `json:"password" validate:"omitempty,password"`
	NationalID *string `json:"nationalId" validate:"omitempty,min=12"`
	Pincode    *string `json:"pincode" validate:"omitempty,min=6"`
	Address    *string `json:"address" validate:"omitempty,min=1"`
}

// Register handles the merchant registration request.
func (h *MerchantHandler) Register(c echo.Context) error {
	var req registerMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterMerchantInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		NationalID: req.NationalID,
		Pincode:    req.Pincode,
		Address:    req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authView{
		Account: presentMerchant(output.Merchant),
		Token:   output.AccessToken,
	}, "Merchant registered successfully")
}

// Login handles the merchant login request.
func (h *MerchantHandler) Login(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, authView{
		Account: presentMerchant(output.Merchant),
		Token:   output.AccessToken,
	}, "Login successful")
}

// GetProfile returns the authenticated merchant's record.
func (h *MerchantHandler) GetProfile(c echo.Context) error {
	merchantID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	merchant, err := h.uc.GetProfile(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentMerchant(merchant), "")
}

// UpdateProfile merge-patches the authenticated merchant's record.
func (h *MerchantHandler) UpdateProfile(c echo.Context) error {
	merchantID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	var req updateMerchantProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	merchant, err := h.uc.UpdateProfile(c.Request().Context(), merchantID, &usecase.UpdateMerchantProfileInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		NationalID: req.NationalID,
		Pincode:    req.Pincode,
		Address:    req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentMerchant(merchant), "Profile updated successfully")
}
