package tests

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"techfest/internal/service"
)

// sign computes the gateway's callback signature the way the gateway does.
func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_AcceptsGenuineSignature(t *testing.T) {
	t.Parallel()

	secret := "test_secret"
	sig := sign("order_ABC123", "pay_XYZ789", secret)

	if !service.VerifySignature("order_ABC123", "pay_XYZ789", sig, secret) {
		t.Error("expected genuine signature to verify")
	}
}

func TestVerifySignature_IsDeterministic(t *testing.T) {
	t.Parallel()

	secret := "test_secret"
	sig := sign("order_ABC123", "pay_XYZ789", secret)

	for i := 0; i < 10; i++ {
		if !service.VerifySignature("order_ABC123", "pay_XYZ789", sig, secret) {
			t.Fatalf("verification flipped on call %d", i)
		}
	}
}

func TestVerifySignature_RejectsAnySingleCharacterFlip(t *testing.T) {
	t.Parallel()

	secret := "test_secret"
	sig := sign("order_ABC123", "pay_XYZ789", secret)

	for i := 0; i < len(sig); i++ {
		tampered := []byte(sig)
		if tampered[i] == 'a' {
			tampered[i] = 'b'
		} else {
			tampered[i] = 'a'
		}
		if service.VerifySignature("order_ABC123", "pay_XYZ789", string(tampered), secret) {
			t.Errorf("tampered signature accepted (flipped position %d)", i)
		}
	}
}

func TestVerifySignature_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	sig := sign("order_ABC123", "pay_XYZ789", "test_secret")

	if service.VerifySignature("order_ABC123", "pay_XYZ789", sig, "other_secret") {
		t.Error("signature verified under a different secret")
	}
}

func TestVerifySignature_RejectsSwappedIdentifiers(t *testing.T) {
	t.Parallel()

	secret := "test_secret"
	sig := sign("order_ABC123", "pay_XYZ789", secret)

	if service.VerifySignature("pay_XYZ789", "order_ABC123", sig, secret) {
		t.Error("signature verified with order and payment ids swapped")
	}
}
