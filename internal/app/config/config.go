package config

import (
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "sangha"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "donation-payloads"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "noreply@sanghachadwam.org"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			BaseUrl:                  utils.GetEnvString("APP_BASE_URL", "http://localhost:3000"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		PaymentGateway: PaymentGateway{
			Mode:                    utils.GetEnvString("PHONEPE_MODE", constvars.GatewayModeMock),
			BaseUrl:                 utils.GetEnvString("PHONEPE_BASE_URL", "https://api-preprod.phonepe.com/apis/pg-sandbox"),
			MerchantID:              utils.GetEnvString("PHONEPE_MERCHANT_ID", constvars.PhonePeSandboxMerchantID),
			SaltKey:                 utils.GetEnvString("PHONEPE_SALT_KEY", constvars.PhonePeSandboxSaltKey),
			SaltIndex:               utils.GetEnvString("PHONEPE_SALT_INDEX", constvars.PhonePeSandboxSaltIndex),
			TransactionPrefix:       utils.GetEnvString("PHONEPE_TRANSACTION_PREFIX", "SANGHA"),
			RequestTimeoutInSeconds: utils.GetEnvInt("PHONEPE_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:    utils.GetEnvInt("PHONEPE_MAX_REQUESTS_PER_SECOND", 20),
		},
		Mailer: Mailer{
			ContactRecipient: utils.GetEnvString("CONTACT_RECIPIENT_EMAIL", "info@sanghachadwam.org"),
			AckQueue:         utils.GetEnvString("DONATION_ACK_QUEUE", "donation_ack_queue"),
		},
		Contact: Contact{
			RateLimitPerWindow: utils.GetEnvInt("CONTACT_RATE_LIMIT_PER_WINDOW", 5),
			WindowSeconds:      utils.GetEnvInt("CONTACT_RATE_LIMIT_WINDOW_SECONDS", 60),
		},
		Donation: Donation{
			Currency:                utils.GetEnvString("DONATION_CURRENCY", "INR"),
			StatusCacheTTLInSeconds: utils.GetEnvInt("DONATION_STATUS_CACHE_TTL_IN_SECONDS", 30),
		},
	}
}
