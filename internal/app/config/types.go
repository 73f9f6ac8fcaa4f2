package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Database
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App            App
		PaymentGateway PaymentGateway
		Mailer         Mailer
		Contact        Contact
		Donation       Donation
	}

	App struct {
		Env                      string
		Port                     string
		Timezone                 string
		BaseUrl                  string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
	}

	PaymentGateway struct {
		Mode                    string
		BaseUrl                 string
		MerchantID              string
		SaltKey                 string
		SaltIndex               string
		TransactionPrefix       string
		RequestTimeoutInSeconds int
		MaxRequestsPerSecond    int
	}

	Mailer struct {
		ContactRecipient string
		AckQueue         string
	}

	Contact struct {
		RateLimitPerWindow int
		WindowSeconds      int
	}

	Donation struct {
		Currency                string
		StatusCacheTTLInSeconds int
	}
)
