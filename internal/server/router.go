// Package server assembles the HTTP router from the feature modules.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travelbooking/internal/catalog"
	"travelbooking/internal/database"
	"travelbooking/internal/domain"
	"travelbooking/internal/middleware"
	"travelbooking/internal/modules/auth"
	"travelbooking/internal/modules/booking"
	"travelbooking/internal/modules/car"
	"travelbooking/internal/modules/flight"
	"travelbooking/internal/modules/hotel"
	"travelbooking/internal/pkg/cache"
	"travelbooking/internal/pkg/jwt"
	"travelbooking/internal/pkg/response"
	"travelbooking/internal/pkg/validator"
	"travelbooking/internal/repository"
)

// Catalogs are the item sources searched and booked against.
type Catalogs struct {
	Flights  catalog.Store[domain.Flight]
	Hotels   catalog.Store[domain.Hotel]
	Cars     catalog.Store[domain.Car]
	Airports []domain.Airport
}

type Options struct {
	DB       *gorm.DB
	Log      *slog.Logger
	JWT      *jwt.Service
	Catalogs Catalogs

	// Cache is optional; nil disables search result caching.
	Cache    cache.Cache
	CacheTTL time.Duration

	CORSOrigins  []string
	MaxBodyBytes int64
}

type Server struct {
	Engine *gin.Engine
	Hub    *booking.Hub
}

func New(opts Options) *Server {
	validator.Register()

	users := repository.NewUserRepository(opts.DB)
	bookings := repository.NewBookingRepository(opts.DB)

	hub := booking.NewHub()
	committer := booking.NewCommitter(bookings, hub)

	flights := catalog.NewSearcher(domain.CatalogFlights, opts.Catalogs.Flights, opts.Cache, opts.CacheTTL)
	hotels := catalog.NewSearcher(domain.CatalogHotels, opts.Catalogs.Hotels, opts.Cache, opts.CacheTTL)
	cars := catalog.NewSearcher(domain.CatalogCars, opts.Catalogs.Cars, opts.Cache, opts.CacheTTL)

	authHandler := auth.NewHandler(auth.NewService(users, opts.JWT))
	flightHandler := flight.NewHandler(flight.NewService(flights, opts.Catalogs.Airports, committer))
	hotelHandler := hotel.NewHandler(hotel.NewService(hotels, committer))
	carHandler := car.NewHandler(car.NewService(cars, committer))
	bookingHandler := booking.NewHandler(
		booking.NewService(bookings, hub),
		hub,
		opts.JWT,
		middleware.OriginChecker(opts.CORSOrigins),
	)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(opts.Log))
	r.Use(middleware.ErrorLogger(opts.Log))
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.MaxBodySize(opts.MaxBodyBytes))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	api := r.Group("/api")
	{
		api.GET("/health", health(opts.DB))

		// public
		authHandler.RegisterPublicRoutes(api)
		bookingHandler.RegisterLiveRoutes(api)

		// public, caller attached when a token is sent
		search := api.Group("")
		search.Use(middleware.OptionalAuth(opts.JWT))
		{
			flightHandler.RegisterPublicRoutes(search)
			hotelHandler.RegisterPublicRoutes(search)
			carHandler.RegisterPublicRoutes(search)
		}

		// protected
		protected := api.Group("")
		protected.Use(middleware.JWTAuth(opts.JWT))
		{
			authHandler.RegisterProtectedRoutes(protected)
			flightHandler.RegisterProtectedRoutes(protected)
			hotelHandler.RegisterProtectedRoutes(protected)
			carHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	return &Server{Engine: r, Hub: hub}
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Database unavailable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"database": "ok"})
	}
}
