package donations

import (
	"context"
	"errors"
	"fmt"
	"sangha-service/internal/app/config"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/app/models"
	"sangha-service/internal/app/services/shared/payment_gateway"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/dto/responses"
	"sangha-service/internal/pkg/exceptions"
	"sangha-service/internal/pkg/utils"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const statusCacheKeyFormat = "TXN_STATUS:%s"

type donationUsecase struct {
	TransactionRepository contracts.TransactionRepository
	GatewayService        contracts.PaymentGatewayService
	MailerService         contracts.MailerService
	ArchiveService        contracts.ArchiveService
	RedisRepository       contracts.RedisRepository
	Log                   *zap.Logger
	InternalConfig        *config.InternalConfig
}

func NewDonationUsecase(
	transactionRepository contracts.TransactionRepository,
	gatewayService contracts.PaymentGatewayService,
	mailerService contracts.MailerService,
	archiveService contracts.ArchiveService,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.DonationUsecase {
	return &donationUsecase{
		TransactionRepository: transactionRepository,
		GatewayService:        gatewayService,
		MailerService:         mailerService,
		ArchiveService:        archiveService,
		RedisRepository:       redisRepository,
		Log:                   logger,
		InternalConfig:        internalConfig,
	}
}

// InitializePayment validates the donation, writes a pending ledger
// entry, then asks the gateway for a redirect URL. The ledger insert
// happens before the gateway call so a donor who completes payment is
// always reconcilable even if this process dies mid-flight.
func (uc *donationUsecase) InitializePayment(ctx context.Context, request *requests.InitializePaymentRequest) (*responses.InitializePaymentResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && fieldErrors[0].Tag() != "required" {
			return nil, exceptions.ErrInputValidation(err)
		}
		return nil, exceptions.ErrMissingRequiredPaymentFields(err)
	}
	amountMinor, ok := request.AmountMinorUnits()
	if !ok {
		return nil, exceptions.ErrInvalidAmount(fmt.Errorf("amount %q is not a positive number", request.Amount.String()))
	}

	gatewayConfig := uc.InternalConfig.PaymentGateway
	transactionID, err := utils.GenerateTransactionID(gatewayConfig.TransactionPrefix)
	if err != nil {
		return nil, exceptions.BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, "failed to generate transaction identifier")
	}

	payload := requests.PhonePePayload{
		MerchantID:            gatewayConfig.MerchantID,
		MerchantTransactionID: transactionID,
		Amount:                amountMinor,
		RedirectURL:           uc.InternalConfig.App.BaseUrl + constvars.DonationSuccessPathSuffix,
		RedirectMode:          constvars.PhonePeRedirectMode,
		MobileNumber:          constvars.PhonePePlaceholderMSISDN,
		PaymentInstrument: requests.PhonePePayloadInstrument{
			Type: constvars.PhonePeInstrumentPayPage,
		},
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	payloadBase64 := payment_gateway.EncodePayload(payloadJSON)
	checksum := payment_gateway.SignPayload(payloadBase64, gatewayConfig.SaltKey, gatewayConfig.SaltIndex)

	transaction := &models.Transaction{
		ID:          transactionID,
		DonorName:   request.Name,
		DonorEmail:  request.Email,
		Amount:      float64(amountMinor) / 100,
		AmountMinor: amountMinor,
		Currency:    uc.InternalConfig.Donation.Currency,
		Status:      models.StatusPending,
	}
	if _, err := uc.TransactionRepository.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	if err := uc.ArchiveService.ArchivePayload(ctx, transactionID, payloadJSON); err != nil {
		uc.Log.Warn("InitializePayment payload archive failed",
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Error(err))
	}

	order, err := uc.GatewayService.CreateOrder(ctx, &contracts.CreateOrderInput{
		TransactionID: transactionID,
		PayloadBase64: payloadBase64,
		Checksum:      checksum,
	})
	if err != nil {
		transaction.Status = models.StatusFailed
		if _, updateErr := uc.TransactionRepository.UpdateTransaction(ctx, transaction); updateErr != nil {
			uc.Log.Error("InitializePayment failed-status update failed",
				zap.String(constvars.LoggingTransactionIDKey, transactionID),
				zap.Error(updateErr))
		}
		return nil, err
	}

	transaction.Status = models.StatusInitiated
	transaction.PaymentLink = order.PaymentURL
	if _, err := uc.TransactionRepository.UpdateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	uc.enqueueAcknowledgment(ctx, transaction)

	uc.Log.Info("payment initialized",
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
		zap.Int64(constvars.LoggingAmountKey, amountMinor))

	return &responses.InitializePaymentResponse{
		Success:       true,
		PaymentURL:    order.PaymentURL,
		TransactionID: transactionID,
	}, nil
}

// GetPaymentStatus reads a ledger entry, preferring the short-lived
// redis copy so donor-side polling after redirect stays off mongo.
func (uc *donationUsecase) GetPaymentStatus(ctx context.Context, transactionID string) (*responses.PaymentStatusResponse, error) {
	cacheKey := fmt.Sprintf(statusCacheKeyFormat, transactionID)
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var response responses.PaymentStatusResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
	}

	transaction, err := uc.TransactionRepository.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrTransactionNotFound(nil)
	}

	response := &responses.PaymentStatusResponse{
		Success:       true,
		TransactionID: transaction.ID,
		Status:        string(transaction.Status),
		Amount:        transaction.Amount,
		Currency:      transaction.Currency,
		CreatedAt:     transaction.CreatedAt,
	}

	if encoded, err := json.Marshal(response); err == nil {
		ttl := time.Duration(uc.InternalConfig.Donation.StatusCacheTTLInSeconds) * time.Second
		if err := uc.RedisRepository.Set(ctx, cacheKey, string(encoded), ttl); err != nil {
			uc.Log.Warn("GetPaymentStatus cache write failed",
				zap.String(constvars.LoggingTransactionIDKey, transactionID),
				zap.Error(err))
		}
	}

	return response, nil
}

// enqueueAcknowledgment defers the thank-you email to the receipt
// worker. A broker hiccup must not fail an already initiated payment.
func (uc *donationUsecase) enqueueAcknowledgment(ctx context.Context, transaction *models.Transaction) {
	message := &contracts.EmailMessage{
		To:      transaction.DonorEmail,
		Subject: fmt.Sprintf(constvars.DonationAckSubjectFormat, transaction.DonorName),
		TextBody: fmt.Sprintf(
			"Dear %s,\n\nThank you for initiating a donation of %s %.2f. Your transaction reference is %s.\n",
			transaction.DonorName, transaction.Currency, transaction.Amount, transaction.ID,
		),
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>Thank you for initiating a donation of %s %.2f.</p><p>Your transaction reference is <strong>%s</strong>.</p>",
			transaction.DonorName, transaction.Currency, transaction.Amount, transaction.ID,
		),
	}
	if err := uc.MailerService.EnqueueEmail(ctx, message); err != nil {
		uc.Log.Warn("InitializePayment acknowledgment enqueue failed",
			zap.String(constvars.LoggingTransactionIDKey, transaction.ID),
			zap.Error(err))
	}
}
