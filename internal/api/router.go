package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oceanbook/booking-system/internal/api/handler"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

// Deps carries everything the router needs to register routes.
type Deps struct {
	Bookings     ports.BookingService
	Shipments    ports.ShipmentService
	Dispatcher   handler.EventDispatcher
	Mongo        *mongo.Database
	Redis        *redis.Client
	KafkaBrokers []string
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Booking routes ---
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	e.POST("/v1/bookings", bookingHandler.Create)
	e.GET("/v1/bookings/:reference", bookingHandler.Get)
	e.PUT("/v1/bookings/:reference", bookingHandler.Update)
	e.POST("/v1/bookings/:reference/cancel", bookingHandler.Cancel)

	// --- Shipment routes ---
	shipmentHandler := handler.NewShipmentHandler(deps.Shipments)
	e.GET("/v1/shipments/:reference", shipmentHandler.Get)

	// --- Carrier event ingestion ---
	eventHandler := handler.NewCarrierEventHandler(deps.Dispatcher)
	e.POST("/v1/carrier-events", eventHandler.Receive)
	e.POST("/v1/carrier-events/batch", eventHandler.ReceiveBatch)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis, deps.KafkaBrokers)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
