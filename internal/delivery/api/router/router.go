// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/config"
	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/router/handler"
	"tracker/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TrackingHandler *handler.TrackingHandler
	DeviceHandler   *handler.DeviceHandler
	WSHandler       *handler.WSHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	trackingHandler *handler.TrackingHandler
	deviceHandler   *handler.DeviceHandler
	wsHandler       *handler.WSHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		trackingHandler: params.TrackingHandler,
		deviceHandler:   params.DeviceHandler,
		wsHandler:       params.WSHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Viewers may pass the token as ?token= on upgrade
	e.GET("/ws", r.wsHandler.Connect, r.authMiddleware.Authenticate)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	courierOnly := r.authMiddleware.RequireRole(entity.RoleCourier)
	courierOrDispatcher := r.authMiddleware.RequireRole(entity.RoleCourier, entity.RoleDispatcher)
	dispatcherOnly := r.authMiddleware.RequireRole(entity.RoleDispatcher)

	deliveriesGroup := apiV1.Group("/deliveries/:id")
	{
		deliveriesGroup.POST("/tracking", r.trackingHandler.InitializeTracking, courierOrDispatcher)
		deliveriesGroup.GET("/tracking", r.trackingHandler.GetSnapshot)
		deliveriesGroup.POST("/locations", r.trackingHandler.ReportLocation, courierOnly)
		deliveriesGroup.POST("/status", r.trackingHandler.AdvanceStatus, courierOrDispatcher)
		deliveriesGroup.GET("/trail", r.trackingHandler.GetLocationTrail)
		deliveriesGroup.PUT("/route", r.trackingHandler.RecalculateRoute, courierOrDispatcher)
		deliveriesGroup.GET("/notifications", r.trackingHandler.ListNotificationLogs, dispatcherOnly)
		deliveriesGroup.GET("/share-code", r.trackingHandler.GetShareCode)
	}

	apiV1.POST("/share-codes/resolve", r.trackingHandler.ResolveShareCode)
	apiV1.GET("/couriers/:id/deliveries", r.trackingHandler.ListCourierDeliveries, courierOrDispatcher)

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.POST("/token", r.testHandler.IssueToken)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
