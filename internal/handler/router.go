package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voicefront/internal/handler/api"
	"voicefront/internal/handler/middleware"
	"voicefront/internal/pkg/config"
)

type Handlers struct {
	Health       *api.HealthHandler
	Catalog      *api.CatalogHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Customer     *api.CustomerHandler
}

func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.Guard(cfg.Guard))
	{
		apiGroup.GET("/items", h.Catalog.ListItems)

		apiGroup.GET("/availability", h.Availability.Check)
		apiGroup.POST("/availability", h.Availability.Check)

		bookings := apiGroup.Group("/bookings")
		{
			bookings.POST("", h.Booking.Create)
			bookings.GET("/check", h.Booking.Check)
			bookings.POST("/check", h.Booking.Check)
			bookings.POST("/cancel", h.Booking.Cancel)
			bookings.POST("/modify", h.Booking.Modify)
			bookings.POST("/change", h.Booking.Change)
		}

		customers := apiGroup.Group("/customers")
		{
			customers.GET("/lookup", h.Customer.Lookup)
			customers.POST("/lookup", h.Customer.Lookup)
		}
	}

	return r
}
