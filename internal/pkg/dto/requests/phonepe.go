package requests

// PhonePePayload is the order-creation payload signed and sent to the
// gateway. Amount is in paise.
type PhonePePayload struct {
	MerchantID            string                   `json:"merchantId"`
	MerchantTransactionID string                   `json:"merchantTransactionId"`
	Amount                int64                    `json:"amount"`
	RedirectURL           string                   `json:"redirectUrl"`
	RedirectMode          string                   `json:"redirectMode"`
	MobileNumber          string                   `json:"mobileNumber"`
	PaymentInstrument     PhonePePayloadInstrument `json:"paymentInstrument"`
}

type PhonePePayloadInstrument struct {
	Type string `json:"type"`
}
