package models

import "testing"

func TestParsePaymentMethodAdapters(t *testing.T) {
	cases := map[string]PaymentMethod{
		"cod":    PaymentCOD,
		"COD":    PaymentCOD,
		"cash":   PaymentCOD,
		"":       PaymentCOD,
		"card":   PaymentCard,
		"Stripe": PaymentCard,
		"online": PaymentCard,
		"wallet": PaymentWallet,
		"bKash":  PaymentWallet,
		"BKASH":  PaymentWallet,
	}

	for raw, want := range cases {
		got, err := ParsePaymentMethod(raw)
		if err != nil {
			t.Fatalf("ParsePaymentMethod(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParsePaymentMethod(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestParsePaymentMethodRejectsUnknown(t *testing.T) {
	if _, err := ParsePaymentMethod("paypal"); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestPaymentMethodOnline(t *testing.T) {
	if PaymentCOD.Online() {
		t.Fatal("cod must not be online")
	}
	if !PaymentCard.Online() || !PaymentWallet.Online() {
		t.Fatal("card and wallet must be online")
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled} {
		if !ValidOrderStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidOrderStatus("bogus") {
		t.Fatal("expected bogus status to be invalid")
	}
}
