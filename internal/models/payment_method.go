package models

import (
	"fmt"
	"strings"
)

// PaymentMethod is the canonical payment variant used across the domain.
// Gateway- and UI-specific identifiers (COD, Stripe, bKash, online) are
// translated at the edges via ParsePaymentMethod.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

// ParsePaymentMethod maps edge identifiers onto the canonical variants.
// An empty value defaults to cash on delivery, matching the order intake
// behavior of the storefront. "online" is the generic checkout alias for
// the card gateway.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "cod", "cash":
		return PaymentCOD, nil
	case "card", "stripe", "online":
		return PaymentCard, nil
	case "wallet", "bkash":
		return PaymentWallet, nil
	}
	return "", fmt.Errorf("invalid payment method: %s", raw)
}

// Online reports whether the method requires a gateway payment step.
// Online orders start in pending status until payment confirmation.
func (m PaymentMethod) Online() bool {
	return m == PaymentCard || m == PaymentWallet
}
