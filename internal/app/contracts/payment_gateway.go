package contracts

import (
	"context"
)

// CreateOrderInput carries the signed order for the gateway: the
// base64-encoded payload plus the checksum computed over it.
type CreateOrderInput struct {
	TransactionID string
	PayloadBase64 string
	Checksum      string
}

type CreateOrderOutput struct {
	PaymentURL string
}

// PaymentGatewayService abstracts the external gateway call. The live
// implementation performs the signed HTTPS request; the mock synthesizes
// a redirect URL for environments without merchant credentials.
type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error)
}
