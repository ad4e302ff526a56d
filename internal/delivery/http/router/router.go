// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmstay/internal/delivery/http/middleware"
	"farmstay/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	DeviceHandler       *handler.DeviceHandler
	BroadcastHandler    *handler.BroadcastHandler
	BookingHandler      *handler.BookingHandler
	ListingHandler      *handler.ListingHandler
	NotificationHandler *handler.NotificationHandler
	PendingHandler      *handler.PendingHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	deviceHandler       *handler.DeviceHandler
	broadcastHandler    *handler.BroadcastHandler
	bookingHandler      *handler.BookingHandler
	listingHandler      *handler.ListingHandler
	notificationHandler *handler.NotificationHandler
	pendingHandler      *handler.PendingHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		deviceHandler:       params.DeviceHandler,
		broadcastHandler:    params.BroadcastHandler,
		bookingHandler:      params.BookingHandler,
		listingHandler:      params.ListingHandler,
		notificationHandler: params.NotificationHandler,
		pendingHandler:      params.PendingHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Device routes for any authenticated account
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/broadcasts", r.broadcastHandler.CreateBroadcast)
		adminGroup.GET("/broadcasts", r.broadcastHandler.ListBroadcasts)
		adminGroup.PATCH("/bookings/:id/status", r.bookingHandler.UpdateBookingStatus)
		adminGroup.PATCH("/listings/:id/approval", r.listingHandler.SetListingApproval)
		adminGroup.POST("/notifications/send", r.notificationHandler.SendManual)
		adminGroup.GET("/pending/stream", r.pendingHandler.StreamPendingCounts)
	}
}
