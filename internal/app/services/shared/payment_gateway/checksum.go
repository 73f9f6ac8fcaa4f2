package payment_gateway

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"sangha-service/internal/pkg/constvars"
)

// EncodePayload returns the base64 form of the serialized order payload,
// which is both the request body content and the checksum input.
func EncodePayload(payloadJSON []byte) string {
	return base64.StdEncoding.EncodeToString(payloadJSON)
}

// SignPayload computes the gateway checksum over an encoded payload:
// hex(sha256(base64Payload + saltKey)) + "###" + saltIndex. The gateway
// recomputes the same digest with its copy of the salt key, so the salt
// never travels on the wire.
func SignPayload(payloadBase64, saltKey, saltIndex string) string {
	sum := sha256.Sum256([]byte(payloadBase64 + saltKey))
	return hex.EncodeToString(sum[:]) + constvars.PhonePeChecksumSeparator + saltIndex
}
