package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HailNail/MindArc/internal/auth"
	"github.com/HailNail/MindArc/internal/config"
	deliveryhttp "github.com/HailNail/MindArc/internal/delivery/http"
	"github.com/HailNail/MindArc/internal/infrastructure/cloudstore"
	"github.com/HailNail/MindArc/internal/infrastructure/googleauth"
	"github.com/HailNail/MindArc/internal/infrastructure/logger"
	"github.com/HailNail/MindArc/internal/infrastructure/mongodb"
	"github.com/HailNail/MindArc/internal/infrastructure/stripepay"
	"github.com/HailNail/MindArc/internal/usecase"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(),
	}
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return New(cfg).Run()
}

func (a *App) Run() error {
	a.logger.Info("Starting mind-arc API")

	client, err := a.initMongoDB()
	if err != nil {
		return err
	}
	defer func() {
		if err := mongodb.Disconnect(client); err != nil {
			a.logger.Warn("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := client.Database(a.cfg.Mongo.DB)
	userRepo, err := mongodb.NewUserRepositoryMongo(ctx, db)
	if err != nil {
		return err
	}
	categoryRepo, err := mongodb.NewCategoryRepositoryMongo(ctx, db)
	if err != nil {
		return err
	}
	productRepo, err := mongodb.NewProductRepositoryMongo(ctx, db)
	if err != nil {
		return err
	}
	orderRepo, err := mongodb.NewOrderRepositoryMongo(ctx, db)
	if err != nil {
		return err
	}

	payments := stripepay.NewGateway(a.cfg.Stripe.SecretKey, a.cfg.Stripe.PublishableKey)

	blobs, err := cloudstore.NewUploader(a.cfg.Cloudinary.CloudName, a.cfg.Cloudinary.APIKey, a.cfg.Cloudinary.APISecret)
	if err != nil {
		return fmt.Errorf("failed to initialise blob store: %w", err)
	}

	identity := googleauth.NewVerifier(a.cfg.Google.ClientID)
	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret)

	router := deliveryhttp.NewRouter(deliveryhttp.Deps{
		Logger:               a.logger,
		Tokens:               tokens,
		Users:                userRepo,
		Auth:                 usecase.NewAuthUseCase(userRepo, identity),
		User:                 usecase.NewUserUseCase(userRepo),
		Catalog:              usecase.NewCatalogUseCase(categoryRepo, productRepo),
		Orders:               usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, payments),
		Sales:                usecase.NewSalesUseCase(payments),
		Blobs:                blobs,
		StripePublishableKey: payments.PublishableKey(),
		AllowedOrigins:       a.cfg.HTTP.AllowedOrigins,
		CookieSecure:         a.cfg.HTTP.CookieSecure,
	})

	server := &http.Server{
		Addr:    ":" + a.cfg.HTTP.Port,
		Handler: router,
	}

	return a.runServerWithGracefulShutdown(server)
}

func (a *App) initMongoDB() (*mongo.Client, error) {
	a.logger.Info("Connecting to MongoDB", "uri", a.cfg.Mongo.URI, "db", a.cfg.Mongo.DB)

	client, err := mongodb.Connect(a.cfg.Mongo.URI)
	if err != nil {
		a.logger.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.logger.Info("Connected to MongoDB successfully")
	return client, nil
}

func (a *App) runServerWithGracefulShutdown(server *http.Server) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server", "port", a.cfg.HTTP.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		a.logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			a.logger.Warn("Graceful shutdown timeout, forcing stop", "error", err)
			if closeErr := server.Close(); closeErr != nil {
				return fmt.Errorf("failed to stop server: %w", closeErr)
			}
		}

		a.logger.Info("Graceful shutdown completed")
		return nil
	}
}
