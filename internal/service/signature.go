package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks a client-submitted payment callback against the
// gateway's HMAC scheme: hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
// Pure function, no I/O. This is the sole mechanism distinguishing a genuine
// gateway callback from a forged claim of payment success, so it must run
// before any other verification step.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	// Constant-time compare; the expected digest is secret-derived.
	return hmac.Equal([]byte(expected), []byte(signature))
}
