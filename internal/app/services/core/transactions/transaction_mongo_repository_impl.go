package transactions

import (
	"context"
	"errors"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/app/models"
	"sangha-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const transactionCollection = "transactions"

type transactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Database) contracts.TransactionRepository {
	return &transactionMongoRepository{
		Collection: db.Collection(transactionCollection),
	}
}

func (repo *transactionMongoRepository) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := repo.Collection.FindOne(ctx, bson.M{"_id": transactionID}).Decode(&transaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (repo *transactionMongoRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	_, err := repo.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return transaction, nil
}

func (repo *transactionMongoRepository) UpdateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	transaction.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"donor_name":   transaction.DonorName,
		"donor_email":  transaction.DonorEmail,
		"amount":       transaction.Amount,
		"amount_minor": transaction.AmountMinor,
		"currency":     transaction.Currency,
		"payment_link": transaction.PaymentLink,
		"status":       transaction.Status,
		"updated_at":   transaction.UpdatedAt,
	}}
	result, err := repo.Collection.UpdateByID(ctx, transaction.ID, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return nil, exceptions.ErrTransactionNotFound(nil)
	}
	return transaction, nil
}
