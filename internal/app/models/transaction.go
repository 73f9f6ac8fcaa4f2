package models

import (
	"time"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusInitiated TransactionStatus = "initiated"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is the durable donation ledger record, written before the
// gateway redirect URL is handed to the client so an asynchronous
// confirmation always has something to match against.
type Transaction struct {
	ID          string            `json:"id" bson:"_id"`
	DonorName   string            `json:"donor_name" bson:"donor_name"`
	DonorEmail  string            `json:"donor_email" bson:"donor_email"`
	Amount      float64           `json:"amount" bson:"amount"`
	AmountMinor int64             `json:"amount_minor" bson:"amount_minor"`
	Currency    string            `json:"currency" bson:"currency"`
	PaymentLink string            `json:"payment_link,omitempty" bson:"payment_link,omitempty"`
	Status      TransactionStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
