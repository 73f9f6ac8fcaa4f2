package donations

import (
	"context"
	"encoding/base64"
	"errors"
	"sangha-service/internal/app/config"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/app/models"
	"sangha-service/internal/app/services/shared/payment_gateway"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTransactionRepository struct {
	store  map[string]*models.Transaction
	events *[]string
}

func (f *fakeTransactionRepository) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	transaction, ok := f.store[transactionID]
	if !ok {
		return nil, nil
	}
	copied := *transaction
	return &copied, nil
}

func (f *fakeTransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	*f.events = append(*f.events, "insert:"+string(transaction.Status))
	transaction.CreatedAt = time.Now().UTC()
	transaction.UpdatedAt = transaction.CreatedAt
	copied := *transaction
	f.store[transaction.ID] = &copied
	return transaction, nil
}

func (f *fakeTransactionRepository) UpdateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	*f.events = append(*f.events, "update:"+string(transaction.Status))
	copied := *transaction
	f.store[transaction.ID] = &copied
	return transaction, nil
}

type fakeGateway struct {
	events     *[]string
	err        error
	lastInput  *contracts.CreateOrderInput
	paymentURL string
}

func (f *fakeGateway) CreateOrder(ctx context.Context, input *contracts.CreateOrderInput) (*contracts.CreateOrderOutput, error) {
	*f.events = append(*f.events, "gateway")
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &contracts.CreateOrderOutput{PaymentURL: f.paymentURL}, nil
}

type fakeMailer struct {
	enqueued []*contracts.EmailMessage
	sent     []*contracts.EmailMessage
}

func (f *fakeMailer) SendEmail(ctx context.Context, message *contracts.EmailMessage) error {
	f.sent = append(f.sent, message)
	return nil
}

func (f *fakeMailer) EnqueueEmail(ctx context.Context, message *contracts.EmailMessage) error {
	f.enqueued = append(f.enqueued, message)
	return nil
}

func (f *fakeMailer) ValidateEmail(email string) bool { return true }

type fakeArchive struct {
	payloads map[string][]byte
}

func (f *fakeArchive) ArchivePayload(ctx context.Context, transactionID string, payload []byte) error {
	f.payloads[transactionID] = payload
	return nil
}

type fakeRedis struct {
	store map[string]string
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) { return f.store[key], nil }
func (f *fakeRedis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.store[key] = value
	return nil
}
func (f *fakeRedis) Delete(ctx context.Context, key string) error { delete(f.store, key); return nil }
func (f *fakeRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 1, nil
}

type usecaseFixture struct {
	usecase contracts.DonationUsecase
	repo    *fakeTransactionRepository
	gateway *fakeGateway
	mailer  *fakeMailer
	archive *fakeArchive
	redis   *fakeRedis
	events  []string
}

func newFixture(gatewayErr error) *usecaseFixture {
	fixture := &usecaseFixture{
		mailer:  &fakeMailer{},
		archive: &fakeArchive{payloads: map[string][]byte{}},
		redis:   &fakeRedis{store: map[string]string{}},
	}
	fixture.repo = &fakeTransactionRepository{store: map[string]*models.Transaction{}, events: &fixture.events}
	fixture.gateway = &fakeGateway{events: &fixture.events, err: gatewayErr, paymentURL: "https://pay.phonepe.com/pay/test"}

	internalConfig := &config.InternalConfig{
		App: config.App{BaseUrl: "https://sanghachadwam.org"},
		PaymentGateway: config.PaymentGateway{
			MerchantID:        "MERCHANTUAT",
			SaltKey:           "SALT_KEY",
			SaltIndex:         "1",
			TransactionPrefix: "SANGHA",
		},
		Donation: config.Donation{Currency: "INR", StatusCacheTTLInSeconds: 30},
	}
	fixture.usecase = NewDonationUsecase(
		fixture.repo, fixture.gateway, fixture.mailer, fixture.archive, fixture.redis,
		zap.NewNop(), internalConfig,
	)
	return fixture
}

func decodePayload(t *testing.T, payloadBase64 string) requests.PhonePePayload {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(payloadBase64)
	assert.NoError(t, err)
	var payload requests.PhonePePayload
	assert.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestInitializePayment(t *testing.T) {
	t.Run("Missing fields are rejected without touching the gateway", func(t *testing.T) {
		fixture := newFixture(nil)
		_, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "250",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, fixture.events)
	})

	t.Run("Malformed email gets a field-specific message", func(t *testing.T) {
		fixture := newFixture(nil)
		_, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "250",
			Name:   "Asha",
			Email:  "not-an-email",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "email must be a valid email address", customErr.ClientMessage)
		assert.Empty(t, fixture.events)
	})

	t.Run("Non-numeric amount is rejected", func(t *testing.T) {
		fixture := newFixture(nil)
		_, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "abc",
			Name:   "Asha",
			Email:  "asha@example.org",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, fixture.events)
	})

	t.Run("Overflowing amount is rejected without touching the gateway", func(t *testing.T) {
		fixture := newFixture(nil)
		_, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "100000000000000000000",
			Name:   "Asha",
			Email:  "asha@example.org",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, fixture.events)
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		fixture := newFixture(nil)
		_, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "0",
			Name:   "Asha",
			Email:  "asha@example.org",
		})

		assert.Error(t, err)
	})

	t.Run("Amount is converted to paise in the gateway payload", func(t *testing.T) {
		fixture := newFixture(nil)
		_, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "250",
			Name:   "Asha",
			Email:  "asha@example.org",
		})

		assert.NoError(t, err)
		payload := decodePayload(t, fixture.gateway.lastInput.PayloadBase64)
		assert.Equal(t, int64(25000), payload.Amount)
		assert.Equal(t, "MERCHANTUAT", payload.MerchantID)
		assert.Equal(t, "https://sanghachadwam.org/donation-success", payload.RedirectURL)
		assert.Equal(t, constvars.PhonePeRedirectMode, payload.RedirectMode)
		assert.Equal(t, constvars.PhonePeInstrumentPayPage, payload.PaymentInstrument.Type)
	})

	t.Run("Pending record is written before the gateway is invoked", func(t *testing.T) {
		fixture := newFixture(nil)
		_, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "100",
			Name:   "Asha",
			Email:  "asha@example.org",
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"insert:pending", "gateway", "update:initiated"}, fixture.events)
	})

	t.Run("Success returns URL and transaction ID and records the link", func(t *testing.T) {
		fixture := newFixture(nil)
		response, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "500.75",
			Name:   "Asha",
			Email:  "asha@example.org",
		})

		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "https://pay.phonepe.com/pay/test", response.PaymentURL)
		assert.Regexp(t, `^SANGHA\d+$`, response.TransactionID)

		stored := fixture.repo.store[response.TransactionID]
		assert.Equal(t, models.StatusInitiated, stored.Status)
		assert.Equal(t, "https://pay.phonepe.com/pay/test", stored.PaymentLink)
		assert.Equal(t, int64(50000), stored.AmountMinor)
		assert.Equal(t, "INR", stored.Currency)

		assert.Len(t, fixture.mailer.enqueued, 1)
		assert.Equal(t, "asha@example.org", fixture.mailer.enqueued[0].To)
		assert.Contains(t, fixture.archive.payloads, response.TransactionID)
	})

	t.Run("Mock gateway URL embeds the generated transaction ID", func(t *testing.T) {
		fixture := newFixture(nil)
		usecase := NewDonationUsecase(
			fixture.repo, payment_gateway.NewMockService(), fixture.mailer, fixture.archive, fixture.redis,
			zap.NewNop(),
			&config.InternalConfig{
				App:            config.App{BaseUrl: "https://sanghachadwam.org"},
				PaymentGateway: config.PaymentGateway{MerchantID: "MERCHANTUAT", SaltKey: "SALT_KEY", SaltIndex: "1", TransactionPrefix: "SANGHA"},
				Donation:       config.Donation{Currency: "INR"},
			},
		)

		response, err := usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "500",
			Name:   "Asha",
			Email:  "asha@example.com",
		})

		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Regexp(t, `^SANGHA\d+$`, response.TransactionID)
		assert.Contains(t, response.PaymentURL, response.TransactionID)
	})

	t.Run("Gateway failure marks the record failed and keeps detail out of the response", func(t *testing.T) {
		fixture := newFixture(exceptions.ErrGatewayNon2xx(errors.New("upstream said no"), 503))
		_, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "100",
			Name:   "Asha",
			Email:  "asha@example.org",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientPaymentInitFailed, customErr.ClientMessage)
		assert.NotContains(t, customErr.ClientMessage, "upstream")

		assert.Equal(t, []string{"insert:pending", "gateway", "update:failed"}, fixture.events)
		assert.Empty(t, fixture.mailer.enqueued)
	})
}

func TestGetPaymentStatus(t *testing.T) {
	t.Run("Unknown transaction yields not found", func(t *testing.T) {
		fixture := newFixture(nil)
		_, err := fixture.usecase.GetPaymentStatus(context.Background(), "SANGHA000")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Known transaction is returned and cached", func(t *testing.T) {
		fixture := newFixture(nil)
		response, err := fixture.usecase.InitializePayment(context.Background(), &requests.InitializePaymentRequest{
			Amount: "100",
			Name:   "Asha",
			Email:  "asha@example.org",
		})
		assert.NoError(t, err)

		status, err := fixture.usecase.GetPaymentStatus(context.Background(), response.TransactionID)
		assert.NoError(t, err)
		assert.True(t, status.Success)
		assert.Equal(t, string(models.StatusInitiated), status.Status)
		assert.Equal(t, float64(100), status.Amount)

		assert.NotEmpty(t, fixture.redis.store["TXN_STATUS:"+response.TransactionID])
	})
}
