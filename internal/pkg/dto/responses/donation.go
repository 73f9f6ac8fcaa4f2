package responses

import "time"

// InitializePaymentResponse mirrors the wire contract of
// /api/initialize-payment on success.
type InitializePaymentResponse struct {
	Success       bool   `json:"success"`
	PaymentURL    string `json:"paymentUrl"`
	TransactionID string `json:"transactionId"`
}

// PaymentStatusResponse is returned by /api/payment-status/{transactionID}.
type PaymentStatusResponse struct {
	Success       bool      `json:"success"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
}
