// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Sebastian609/SOA-PARTNERS/internal/delivery/http/middleware"
	"github.com/Sebastian609/SOA-PARTNERS/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PartnerHandler      *handler.PartnerHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	partnerHandler      *handler.PartnerHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		partnerHandler:      params.PartnerHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	partnerGroup := e.Group("/partners")
	{
		partnerGroup.POST("", r.partnerHandler.Create)
		partnerGroup.PUT("", r.partnerHandler.Update)
		partnerGroup.POST("/login", r.partnerHandler.Login)
		partnerGroup.POST("/update-password", r.partnerHandler.UpdatePassword)

		partnerGroup.GET("", r.partnerHandler.GetPaginated)
		partnerGroup.GET("/all", r.partnerHandler.ListAll)
		partnerGroup.GET("/active", r.partnerHandler.ListActive)
		partnerGroup.GET("/token/:token", r.partnerHandler.GetByToken)
		partnerGroup.GET("/name/:name", r.partnerHandler.GetByName)
		partnerGroup.GET("/:id", r.partnerHandler.GetByID)

		partnerGroup.DELETE("/:id", r.partnerHandler.SoftDelete)
		partnerGroup.POST("/:id/restore", r.partnerHandler.Restore)
		partnerGroup.POST("/:id/activate", r.partnerHandler.Activate)
		partnerGroup.POST("/:id/deactivate", r.partnerHandler.Deactivate)
	}
}
