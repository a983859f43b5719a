// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charter/internal/http/handlers"
	"charter/internal/http/middleware"
	"charter/internal/maps"
	"charter/internal/modules/booking"
	"charter/internal/modules/fare"
	"charter/internal/modules/fleet"
	"charter/internal/modules/tariff"
)

type RouterDeps struct {
	Tariffs *tariff.Service
	Fares   *fare.Service
	Fleet   *fleet.Service
	Booking *booking.Service
	// Routes is optional; without it quotes carry no travel estimate.
	Routes *maps.RouteService
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	catalogHandler := handlers.NewCatalogHandler(deps.Tariffs, deps.Fares)
	quoteHandler := handlers.NewQuoteHandler(deps.Fleet, deps.Routes)
	bookingHandler := handlers.NewBookingHandler(deps.Booking)

	api := r.Group("/api")
	{
		api.GET("/locations", catalogHandler.Locations)
		api.GET("/vehicles", catalogHandler.Vehicles)
		api.GET("/routes", catalogHandler.Routes)
		api.POST("/quotes", quoteHandler.Quote)
		api.POST("/bookings", bookingHandler.Submit)
		api.GET("/enquiry", bookingHandler.EnquiryLink)
	}

	return r
}
