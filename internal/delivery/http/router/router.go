// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	productHandler *handler.ProductHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog routes. Reads are public, mutations require a valid token.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/search", r.productHandler.Search)
		productGroup.GET("/categories", r.productHandler.Categories)
		productGroup.GET("/:id", r.productHandler.Get)

		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.Authenticate)
	}
}
