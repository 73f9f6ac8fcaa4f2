package payment_gateway

import (
	"context"
	"fmt"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/pkg/constvars"
)

type mockService struct{}

// NewMockService synthesizes a redirect URL without touching the network.
// Used where merchant credentials are not provisioned and in tests.
func NewMockService() contracts.PaymentGatewayService {
	return &mockService{}
}

func (s *mockService) CreateOrder(ctx context.Context, input *contracts.CreateOrderInput) (*contracts.CreateOrderOutput, error) {
	return &contracts.CreateOrderOutput{
		PaymentURL: fmt.Sprintf(constvars.PhonePeMockPayURLFormat, input.TransactionID),
	}, nil
}
