// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shelf/config"
	"shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/router/handler"
	"shelf/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthorHandler  *handler.AuthorHandler
	BookHandler    *handler.BookHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authorHandler  *handler.AuthorHandler
	bookHandler    *handler.BookHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authorHandler:  params.AuthorHandler,
		bookHandler:    params.BookHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.DELETE("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// User routes; reads are public, deleting an account requires an admin session.
	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Author routes; only mutations require a session.
	authorGroup := e.Group("/authors")
	{
		authorGroup.GET("", r.authorHandler.ListAuthors)
		authorGroup.GET("/:id", r.authorHandler.GetAuthor)
		authorGroup.POST("", r.authorHandler.CreateAuthor, r.authMiddleware.Authenticate)
		authorGroup.PUT("/:id", r.authorHandler.UpdateAuthor, r.authMiddleware.Authenticate)
		authorGroup.DELETE("/:id", r.authorHandler.DeleteAuthor, r.authMiddleware.Authenticate)
	}

	// Book routes, including the like relation; only mutations require a session.
	bookGroup := e.Group("/books")
	{
		bookGroup.GET("", r.bookHandler.ListBooks)
		bookGroup.GET("/:id", r.bookHandler.GetBook)
		bookGroup.GET("/:id/likes", r.bookHandler.ListBookLikes)
		bookGroup.POST("", r.bookHandler.CreateBook, r.authMiddleware.Authenticate)
		bookGroup.PUT("/:id", r.bookHandler.UpdateBook, r.authMiddleware.Authenticate)
		bookGroup.DELETE("/:id", r.bookHandler.DeleteBook, r.authMiddleware.Authenticate)
		bookGroup.POST("/like", r.bookHandler.LikeBook, r.authMiddleware.Authenticate)
	}
}
