// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MerchantHandler *handler.MerchantHandler
	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	ReviewHandler   *handler.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	merchantHandler *handler.MerchantHandler
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	reviewHandler   *handler.ReviewHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		merchantHandler: params.MerchantHandler,
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		reviewHandler:   params.ReviewHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	requireMerchant := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleMerchant),
	}
	requireUser := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleUser),
	}

	// Merchant auth routes
	merchantAuth := api.Group("/merchant-auth")
	{
		merchantAuth.POST("/register", r.merchantHandler.Register)
		merchantAuth.POST("/login", r.merchantHandler.Login)
		merchantAuth.GET("/profile", r.merchantHandler.GetProfile, requireMerchant...)
		merchantAuth.PUT("/profile", r.merchantHandler.UpdateProfile, requireMerchant...)
	}

	// User auth routes
	userAuth := api.Group("/user-auth")
	{
		userAuth.POST("/register", r.userHandler.Register)
		userAuth.POST("/login", r.userHandler.Login)
		userAuth.GET("/profile", r.userHandler.GetProfile, requireUser...)
		userAuth.PUT("/profile", r.userHandler.UpdateProfile, requireUser...)
	}

	// Catalog, cart and purchase routes
	products := api.Group("/products")
	{
		products.GET("", r.productHandler.List)
		products.POST("", r.productHandler.Create, requireMerchant...)
		products.POST("/checkout", r.productHandler.Checkout, requireUser...)
		products.GET("/:id", r.productHandler.Get)
		products.DELETE("/:id", r.productHandler.Delete, requireMerchant...)
		products.POST("/:id/cart", r.productHandler.AddToCart, requireUser...)
		products.DELETE("/:id/cart", r.productHandler.RemoveFromCart, requireUser...)
		products.POST("/:id/buy", r.productHandler.Buy, requireUser...)
	}

	// Review routes
	reviews := api.Group("/reviews")
	{
		reviews.GET("", r.reviewHandler.ListAll)
		reviews.POST("/:productID", r.reviewHandler.Add, requireUser...)
		reviews.PUT("/:id", r.reviewHandler.Edit, requireUser...)
		reviews.DELETE("/:id", r.reviewHandler.Delete, requireUser...)
	}
}
