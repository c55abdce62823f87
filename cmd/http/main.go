package main

import (
	"caremarket-service/cmd/migration"
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/delivery/http/controllers"
	"caremarket-service/internal/app/delivery/http/middlewares"
	"caremarket-service/internal/app/delivery/http/routers"
	"caremarket-service/internal/app/drivers/database"
	"caremarket-service/internal/app/drivers/logger"
	"caremarket-service/internal/app/drivers/messaging"
	"caremarket-service/internal/app/drivers/storage"
	"caremarket-service/internal/app/services/core/availability"
	"caremarket-service/internal/app/services/core/bookings"
	"caremarket-service/internal/app/services/core/messages"
	"caremarket-service/internal/app/services/core/providers"
	"caremarket-service/internal/app/services/core/translations"
	"caremarket-service/internal/app/services/shared/events"
	"caremarket-service/internal/app/services/shared/locker"
	"caremarket-service/internal/app/services/shared/payment_gateway"
	"caremarket-service/internal/app/services/shared/redis"
	minioStorage "caremarket-service/internal/app/services/shared/storage"
	"caremarket-service/internal/app/services/shared/transaction"
	"caremarket-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting caremarket service",
		zap.String("version", Version),
		zap.String("tag", Tag),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	migrationCtx, cancelMigration := context.WithTimeout(context.Background(), 30*time.Second)
	err = migration.Run(migrationCtx, mongoDB, internalConfig.MongoDB.DBName, log)
	cancelMigration()
	if err != nil {
		log.Fatal("Error running migration", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap, minioClient); err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) error {
	dbName := bootstrap.InternalConfig.MongoDB.DBName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	transactor := transaction.NewMongoTransactor(bootstrap.MongoDB)
	objectStorage := minioStorage.NewMinioStorage(minioClient, bootstrap.InternalConfig.Minio.BucketName)
	paymentGateway := payment_gateway.NewStripeService(bootstrap.InternalConfig)
	eventPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.EventsExchange, bootstrap.Logger)
	if err != nil {
		return err
	}
	bootstrap.EventPublisherClose = eventPublisher.Close

	// Repositories
	profileRepository := providers.NewProfileMongoRepository(bootstrap.MongoDB, dbName)
	availabilityRepository := availability.NewAvailabilityMongoRepository(bootstrap.MongoDB, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	messageRepository := messages.NewMessageMongoRepository(bootstrap.MongoDB, dbName)
	translationRepository := translations.NewTranslationMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	availabilityUsecase := availability.NewAvailabilityUsecase(
		availabilityRepository,
		profileRepository,
		transactor,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	providerUsecase := providers.NewProviderUsecase(profileRepository, availabilityUsecase, objectStorage, bootstrap.InternalConfig, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		availabilityRepository,
		profileRepository,
		paymentGateway,
		eventPublisher,
		lockService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	profanityChecker := messages.NewWordlistProfanityChecker(
		utils.ParseCSV(bootstrap.InternalConfig.Moderation.ProfanityWords),
		bootstrap.InternalConfig.Moderation.StrictProfanity,
	)
	messageUsecase := messages.NewMessageUsecase(
		messageRepository,
		eventPublisher,
		messages.NewModerator(profanityChecker, time.Now),
		bootstrap.Logger,
	)
	translationCache := translations.NewMemoryCache(time.Duration(bootstrap.InternalConfig.Translation.CacheTTLInSeconds) * time.Second)
	translationUsecase := translations.NewTranslationUsecase(translationRepository, translationCache, bootstrap.Logger)

	// Workers
	sweepWorker := availability.NewSweepWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, availabilityUsecase)
	sweepWorker.Start(context.Background())
	bootstrap.SweepWorkerStop = sweepWorker.Stop

	// Controllers
	maxPhotoBytes := int64(bootstrap.InternalConfig.Minio.ProfilePhotoMaxUploadSizeInMB) << 20
	providerController := controllers.NewProviderController(bootstrap.Logger, providerUsecase, maxPhotoBytes)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)
	webhookController := controllers.NewWebhookController(bootstrap.Logger, bookingUsecase)
	messageController := controllers.NewMessageController(bootstrap.Logger, messageUsecase)
	translationController := controllers.NewTranslationController(bootstrap.Logger, translationUsecase)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		providerController,
		availabilityController,
		bookingController,
		webhookController,
		messageController,
		translationController,
	)
	return nil
}
