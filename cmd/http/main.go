package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sangha-service/internal/app/config"
	"sangha-service/internal/app/delivery/http/controllers"
	"sangha-service/internal/app/delivery/http/middlewares"
	"sangha-service/internal/app/delivery/http/routers"
	"sangha-service/internal/app/drivers/database"
	"sangha-service/internal/app/drivers/logger"
	"sangha-service/internal/app/drivers/mailer"
	"sangha-service/internal/app/drivers/messaging"
	"sangha-service/internal/app/drivers/storage"
	"sangha-service/internal/app/services/core/contacts"
	"sangha-service/internal/app/services/core/donations"
	"sangha-service/internal/app/services/core/receipts"
	"sangha-service/internal/app/services/core/transactions"
	mailersvc "sangha-service/internal/app/services/shared/mailer"
	"sangha-service/internal/app/services/shared/mailqueue"
	"sangha-service/internal/app/services/shared/payment_gateway"
	"sangha-service/internal/app/services/shared/ratelimiter"
	redissvc "sangha-service/internal/app/services/shared/redis"
	storagesvc "sangha-service/internal/app/services/shared/storage"
	"sangha-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(driverConfig, internalConfig)

	if err := internalConfig.Validate(driverConfig); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQConnection(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	worker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	worker.Stop()

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) *receipts.Worker {
	// Redis
	redisRepository := redissvc.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger)

	// Mail queue and mailer
	mailQueue, err := mailqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Mailer.AckQueue, 1)
	if err != nil {
		bootstrap.Logger.Fatal("failed to set up mail queue", zap.Error(err))
	}
	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerService := mailersvc.NewMailerService(smtpClient, mailQueue)

	// Payment gateway
	var gatewayService = payment_gateway.NewMockService()
	if bootstrap.InternalConfig.PaymentGateway.Mode == constvars.GatewayModeLive {
		gatewayService = payment_gateway.NewPhonePeService(bootstrap.InternalConfig, bootstrap.Logger)
	}

	// Payload archive
	archiveService := storagesvc.NewMinioArchive(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// Donation
	transactionRepository := transactions.NewTransactionMongoRepository(bootstrap.MongoDB)
	donationUsecase := donations.NewDonationUsecase(
		transactionRepository,
		gatewayService,
		mailerService,
		archiveService,
		redisRepository,
		bootstrap.Logger,
		bootstrap.InternalConfig,
	)
	gatewayTimeout := time.Duration(bootstrap.InternalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second
	donationController := controllers.NewDonationController(bootstrap.Logger, donationUsecase, 3*gatewayTimeout)

	// Contact
	contactUsecase := contacts.NewContactUsecase(mailerService, bootstrap.Logger, bootstrap.InternalConfig.Mailer)
	contactLimiter := ratelimiter.NewContactLimiter(
		redisRepository,
		bootstrap.Logger,
		bootstrap.InternalConfig.Contact.WindowSeconds,
		bootstrap.InternalConfig.Contact.RateLimitPerWindow,
	)
	contactController := controllers.NewContactController(bootstrap.Logger, contactUsecase, contactLimiter, 30*time.Second)

	// Receipt worker
	worker := receipts.NewWorker(mailQueue, mailerService, bootstrap.Logger)
	if err := worker.Start(context.Background()); err != nil {
		bootstrap.Logger.Fatal("failed to start receipt worker", zap.Error(err))
	}

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, httpMiddlewares, donationController, contactController)
	return worker
}
