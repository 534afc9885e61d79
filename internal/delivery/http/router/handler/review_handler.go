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

// ReviewHandler holds dependencies for review lifecycle handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

type reviewRequest struct {
	Rating  int    `json:"ratings" validate:"required,min=1,max=5"`
	Comment string `json:"comments" validate:"required,min=5"`
}

type reviewBundleView struct {
	Product        productView     `json:"product"`
	ProductReviews []reviewView    `json:"reviews"`
	Profile        userProfileView `json:"profile"`
}

// ListAll returns every review. Public.
func (h *ReviewHandler) ListAll(c echo.Context) error {
	reviews, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentReviews(reviews), "")
}

// Add creates a review for the :productID path product.
func (h *ReviewHandler) Add(c echo.Context) error {
	userID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	productID, err := pathObjectID(c, "productID")
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Add(c.Request().Context(), userID, productID, usecase.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentReviewBundle(output), "Review added successfully")
}

// Edit replaces the rating and comment of the :id path review.
func (h *ReviewHandler) Edit(c echo.Context) error {
	userID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	reviewID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Edit(c.Request().Context(), userID, reviewID, usecase.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentReviewBundle(output), "Review updated successfully")
}

// Delete removes the :id path review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := middleware.SubjectID(c)
	if err != nil {
		return err
	}

	reviewID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

func presentReviewBundle(output *usecase.ReviewBundleOutput) reviewBundleView {
	return reviewBundleView{
		Product:        presentProduct(output.Product),
		ProductReviews: presentReviews(output.ProductReviews),
		Profile:        presentUserProfile(output.Profile),
	}
}
