package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"

	"travelbooking/internal/catalog"
	"travelbooking/internal/config"
	"travelbooking/internal/database"
	"travelbooking/internal/domain"
	"travelbooking/internal/modules/auth"
	"travelbooking/internal/pkg/logger"
	"travelbooking/internal/repository"
)

const (
	demoEmail    = "demo@travelbooking.dev"
	demoPassword = "demo123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	log := logger.Init(os.Stdout, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("DB connection failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	log.Info("seeding catalogs...")
	if err := repository.NewCatalogRepository[domain.Flight](db, domain.CatalogFlights).Seed(ctx, catalog.SampleFlights()); err != nil {
		log.Error("seed flights failed", "error", err)
		os.Exit(1)
	}
	if err := repository.NewCatalogRepository[domain.Hotel](db, domain.CatalogHotels).Seed(ctx, catalog.SampleHotels()); err != nil {
		log.Error("seed hotels failed", "error", err)
		os.Exit(1)
	}
	if err := repository.NewCatalogRepository[domain.Car](db, domain.CatalogCars).Seed(ctx, catalog.SampleCars()); err != nil {
		log.Error("seed cars failed", "error", err)
		os.Exit(1)
	}

	log.Info("creating demo user...")
	hash, err := auth.HashPassword(demoPassword, bcrypt.DefaultCost)
	if err != nil {
		log.Error("hash password failed", "error", err)
		os.Exit(1)
	}
	demo := &domain.User{
		FirstName:    "Demo",
		LastName:     "Traveller",
		Email:        demoEmail,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	switch err := repository.NewUserRepository(db).Create(ctx, demo); {
	case errors.Is(err, domain.ErrConflict):
		log.Info("demo user already exists", "email", demoEmail)
	case err != nil:
		log.Error("create demo user failed", "error", err)
		os.Exit(1)
	default:
		log.Info("demo user created", "email", demoEmail, "password", demoPassword)
	}

	log.Info("seed complete",
		"flights", len(catalog.SampleFlights()),
		"hotels", len(catalog.SampleHotels()),
		"cars", len(catalog.SampleCars()),
	)
}
