package contracts

import (
	"context"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/dto/responses"
)

type DonationUsecase interface {
	InitializePayment(ctx context.Context, request *requests.InitializePaymentRequest) (*responses.InitializePaymentResponse, error)
	GetPaymentStatus(ctx context.Context, transactionID string) (*responses.PaymentStatusResponse, error)
}
