package contracts

import (
	"context"
	"sangha-service/internal/app/models"
)

type TransactionRepository interface {
	FindByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
}
