// Package signature implements the HMAC-SHA256 scheme the payment
// gateway uses to attest that a payment confirmation is genuine. The
// signed string is "orderID|paymentID" and the digest is hex-encoded.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Sign computes the hex-encoded HMAC-SHA256 of "orderID|paymentID"
// under secret. Exposed so tests and sandbox tooling can produce
// valid signatures.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verifier checks gateway signatures against a server-held secret.
// Verification happens server-side only; a client-asserted "payment
// succeeded" flag is never trusted.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier { return &Verifier{secret: secret} }

// Verify reports whether sig is the HMAC of "orderID|paymentID" under
// the configured secret. The comparison is constant-time.
func (v *Verifier) Verify(orderID, paymentID, sig string) bool {
	if v.secret == "" || orderID == "" || paymentID == "" || sig == "" {
		return false
	}
	sigBytes, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := mac.Sum(nil)
	return subtle.ConstantTimeCompare(expected, sigBytes) == 1
}
