package contracts

import (
	"context"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/dto/responses"
)

type ContactUsecase interface {
	SendEmail(ctx context.Context, request *requests.SendEmailRequest) (*responses.SendEmailResponse, error)
}
