package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// GenerateRequestID returns a correlation ID for a single HTTP request.
func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateTransactionID builds a gateway transaction identifier of the
// form prefix + unix-milli timestamp + crypto-random digits. The gateway
// treats the identifier as an opaque numeric string after the prefix, so
// the suffix stays digits-only; randomness comes from crypto/rand to keep
// concurrent requests from colliding.
func GenerateTransactionID(prefix string) (string, error) {
	suffix, err := GenerateDigits(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d%s", prefix, time.Now().UnixMilli(), suffix), nil
}

// GenerateDigits draws n decimal digits from crypto/rand.
func GenerateDigits(n int) (string, error) {
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))

	out := make([]byte, n)
	for i := range out {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = digits[num.Int64()]
	}

	return string(out), nil
}
