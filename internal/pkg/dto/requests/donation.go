package requests

import (
	"math"
	"strconv"
)

// AmountValue accepts a JSON number or a numeric string, since clients
// send both. The raw token is kept as-is and parsed on demand.
type AmountValue string

func (a *AmountValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		s = ""
	}
	*a = AmountValue(s)
	return nil
}

func (a AmountValue) String() string {
	return string(a)
}

// InitializePaymentRequest is the payload accepted by /api/initialize-payment.
type InitializePaymentRequest struct {
	Amount AmountValue `json:"amount" validate:"required"`
	Name   string      `json:"name" validate:"required"`
	Email  string      `json:"email" validate:"required,email"`
}

// maxAmountMajor bounds the accepted donation so the paise conversion
// can never overflow int64.
const maxAmountMajor = math.MaxInt64 / 100

// AmountMinorUnits converts the major-unit amount to paise. The major
// amount is truncated before multiplying by 100, so "250.75" becomes
// 25000, matching the gateway's integer contract. NaN, infinities, and
// amounts past the overflow ceiling are rejected alongside non-positive
// values.
func (r *InitializePaymentRequest) AmountMinorUnits() (int64, bool) {
	value, err := strconv.ParseFloat(string(r.Amount), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value <= 0 || value >= maxAmountMajor {
		return 0, false
	}
	return int64(value) * 100, true
}
