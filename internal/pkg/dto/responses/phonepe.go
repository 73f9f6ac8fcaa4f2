package responses

// PhonePePayResponse models the gateway's order-creation response body.
type PhonePePayResponse struct {
	Success bool                   `json:"success"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Data    PhonePePayResponseData `json:"data"`
}

type PhonePePayResponseData struct {
	MerchantID            string                    `json:"merchantId"`
	MerchantTransactionID string                    `json:"merchantTransactionId"`
	InstrumentResponse    PhonePeInstrumentResponse `json:"instrumentResponse"`
}

type PhonePeInstrumentResponse struct {
	Type         string              `json:"type"`
	RedirectInfo PhonePeRedirectInfo `json:"redirectInfo"`
}

type PhonePeRedirectInfo struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}
