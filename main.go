// File: medinatours/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"medinatours/config"
	"medinatours/database"
	availabilityRepo "medinatours/database/repository/availability"
	sessionRepo "medinatours/database/repository/session"
	subscriberRepo "medinatours/database/repository/subscriber"
	"medinatours/handlers"
	"medinatours/middleware"
	"medinatours/models"
	"medinatours/routes"
	"medinatours/services/availability"
	"medinatours/services/booking"
	"medinatours/services/catalog"
	"medinatours/services/mailer"
	"medinatours/services/media"
	"medinatours/services/newsletter"
	"medinatours/services/payment"
	"medinatours/utils"
)

func newBlobStore(ctx context.Context) (media.BlobStore, error) {
	if config.AppConfig.StorageBackend == "cloudinary" {
		return media.NewCloudinaryBlobStore(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
	}
	return media.NewGCSBlobStore(ctx, config.AppConfig.FirebaseCredentials, config.AppConfig.StorageBucket)
}

func newGateway() payment.Gateway {
	if config.AppConfig.PaymentGateway == "stripe" {
		stripe.Key = config.AppConfig.StripeKey
		return payment.NewStripeGateway(
			config.AppConfig.PaymentSuccessURL,
			config.AppConfig.PaymentFailURL,
		)
	}
	return payment.NewKonnectGateway(
		config.AppConfig.KonnectBaseURL,
		config.AppConfig.KonnectAPIKey,
		config.AppConfig.KonnectWalletID,
		config.AppConfig.KonnectWebhookURL,
		config.AppConfig.PaymentSuccessURL,
		config.AppConfig.PaymentFailURL,
	)
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	blobStore, err := newBlobStore(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize blob storage: %v", err)
	}
	lifecycle := media.NewLifecycle(blobStore)

	mailService := mailer.New(
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailFromName,
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPass,
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisMailDB,
	)
	mailService.StartWorker(ctx)

	// Repositories.
	slotRepo := availabilityRepo.NewKeyedAvailabilityRepo(database.Store)
	coachRepo := sessionRepo.NewKeyedSessionRepo(database.Store)
	subsRepo := subscriberRepo.NewKeyedSubscriberRepo(database.Store)

	// Services.
	policy, err := models.ParseSlotBookingPolicy(config.AppConfig.SlotBookingPolicy)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	availabilitySvc := availability.NewService(slotRepo, policy)
	bookingCoord := booking.NewCoordinator(coachRepo)
	newsletterSvc := newsletter.NewService(subsRepo, mailService)
	paymentSvc := payment.NewService(newGateway(), database.Store, mailService)

	// Handlers.
	verifier := &middleware.FirebaseVerifier{Client: database.AuthClient}
	handlerBundle := &handlers.Bundle{
		Events:       handlers.NewCatalogHandler(catalog.NewService(catalog.Events, database.Store, lifecycle)),
		Articles:     handlers.NewCatalogHandler(catalog.NewService(catalog.Articles, database.Store, lifecycle)),
		Members:      handlers.NewCatalogHandler(catalog.NewService(catalog.Members, database.Store, lifecycle)),
		Merchandise:  handlers.NewCatalogHandler(catalog.NewService(catalog.Merchandise, database.Store, lifecycle)),
		PrivateTours: handlers.NewCatalogHandler(catalog.NewService(catalog.PrivateTours, database.Store, lifecycle)),
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Coaching:     handlers.NewCoachingHandler(bookingCoord),
		Newsletter:   handlers.NewNewsletterHandler(newsletterSvc),
		Payment:      handlers.NewPaymentHandler(paymentSvc),
		Admin:        handlers.NewAdminHandler(database.AuthClient),
		AdminAuth:    middleware.AdminAuth(verifier),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "3004"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
