package signature

import "testing"

func TestSignThenVerify_RoundTrip(t *testing.T) {
	v := NewVerifier("test-secret")
	sig := Sign("test-secret", "order_123", "pay_456")
	if !v.Verify("order_123", "pay_456", sig) {
		t.Fatalf("valid signature rejected")
	}
}

func TestVerify_Deterministic(t *testing.T) {
	a := Sign("s", "o", "p")
	b := Sign("s", "o", "p")
	if a != b {
		t.Fatalf("signing not deterministic: %q vs %q", a, b)
	}
}

func TestVerify_RejectsBitFlip(t *testing.T) {
	v := NewVerifier("test-secret")
	sig := Sign("test-secret", "order_123", "pay_456")

	// flip one hex digit
	flipped := []byte(sig)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	if v.Verify("order_123", "pay_456", string(flipped)) {
		t.Fatalf("bit-flipped signature accepted")
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	v := NewVerifier("other-secret")
	sig := Sign("test-secret", "order_123", "pay_456")
	if v.Verify("order_123", "pay_456", sig) {
		t.Fatalf("signature under wrong secret accepted")
	}
}

func TestVerify_RejectsSwappedIDs(t *testing.T) {
	v := NewVerifier("test-secret")
	sig := Sign("test-secret", "order_123", "pay_456")
	if v.Verify("pay_456", "order_123", sig) {
		t.Fatalf("signature accepted with order/payment ids swapped")
	}
}

func TestVerify_RejectsMalformed(t *testing.T) {
	v := NewVerifier("test-secret")
	for _, sig := range []string{"", "not-hex", "zz"} {
		if v.Verify("order_123", "pay_456", sig) {
			t.Fatalf("malformed signature %q accepted", sig)
		}
	}
}

func TestVerify_EmptySecret(t *testing.T) {
	v := NewVerifier("")
	sig := Sign("", "order_123", "pay_456")
	if v.Verify("order_123", "pay_456", sig) {
		t.Fatalf("verifier with empty secret must reject everything")
	}
}
