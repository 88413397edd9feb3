package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travelbooking/internal/catalog"
	"travelbooking/internal/config"
	"travelbooking/internal/database"
	"travelbooking/internal/domain"
	"travelbooking/internal/pkg/cache"
	jwtsvc "travelbooking/internal/pkg/jwt"
	"travelbooking/internal/pkg/logger"
	"travelbooking/internal/repository"
	"travelbooking/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	log := logger.Init(os.Stdout, cfg.LogLevel)
	if cfg.ProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	var searchCache cache.Cache
	if cfg.RedisAddr != "" {
		searchCache = cache.NewRedisCache(cfg.RedisAddr, "travelbooking")
		if err := cache.Ping(ctx, searchCache); err != nil {
			log.Warn("redis unavailable, search cache disabled", "addr", cfg.RedisAddr, "error", err)
			searchCache = nil
		}
	}

	srv := server.New(server.Options{
		DB:           db,
		Log:          log,
		JWT:          jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL),
		Catalogs:     catalogs(cfg.CatalogSource, db),
		Cache:        searchCache,
		CacheTTL:     cfg.SearchCacheTTL,
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Engine,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server starting", "addr", httpServer.Addr, "env", cfg.AppEnv, "catalog", cfg.CatalogSource)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	srv.Hub.Close()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func catalogs(source string, db *gorm.DB) server.Catalogs {
	if source == config.CatalogDatabase {
		return server.Catalogs{
			Flights:  repository.NewCatalogRepository[domain.Flight](db, domain.CatalogFlights),
			Hotels:   repository.NewCatalogRepository[domain.Hotel](db, domain.CatalogHotels),
			Cars:     repository.NewCatalogRepository[domain.Car](db, domain.CatalogCars),
			Airports: catalog.SampleAirports(),
		}
	}
	return server.Catalogs{
		Flights:  catalog.NewMemoryStore(catalog.SampleFlights()),
		Hotels:   catalog.NewMemoryStore(catalog.SampleHotels()),
		Cars:     catalog.NewMemoryStore(catalog.SampleCars()),
		Airports: catalog.SampleAirports(),
	}
}
