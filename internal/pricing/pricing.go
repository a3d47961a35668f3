package pricing

import (
	"math"

	"natalify-backend/internal/models"
)

// defaultDeliveryCharge applies to any division missing from the table.
const defaultDeliveryCharge = 120

// Delivery charges per Bangladesh division, in BDT.
var deliveryCharges = map[string]int{
	"Dhaka":      70,
	"Chattogram": 120,
	"Khulna":     120,
	"Rajshahi":   120,
	"Rangpur":    120,
	"Barishal":   120,
	"Sylhet":     120,
	"Mymensingh": 120,
}

// DeliveryCharge returns the courier charge for the given division.
// Unknown divisions fall back to the outside-Dhaka rate.
func DeliveryCharge(division string) int {
	if charge, ok := deliveryCharges[division]; ok {
		return charge
	}
	return defaultDeliveryCharge
}

// PaymentFee computes the gateway fee on the delivery-inclusive amount:
// card 2.9% + 30 BDT, wallet 1.8%, cash on delivery free. The intermediate
// value is rounded half up before summation.
func PaymentFee(method models.PaymentMethod, amount int) int {
	switch method {
	case models.PaymentCard:
		return int(math.Round(float64(amount)*0.029 + 30))
	case models.PaymentWallet:
		return int(math.Round(float64(amount) * 0.018))
	}
	return 0
}

// Subtotal sums item price times quantity.
func Subtotal(items []models.OrderItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

// Quote is a full checkout price breakdown.
type Quote struct {
	Subtotal       int `json:"subtotal"`
	DeliveryCharge int `json:"deliveryCharge"`
	PaymentFee     int `json:"paymentFee"`
	TotalAmount    int `json:"totalAmount"`
}

// QuoteOrder prices a cart for a division and payment method. The fee is
// computed on subtotal plus delivery charge, so the order of operations
// matters: delivery first, then fee, then total.
func QuoteOrder(items []models.OrderItem, division string, method models.PaymentMethod) Quote {
	subtotal := Subtotal(items)
	delivery := DeliveryCharge(division)
	fee := PaymentFee(method, subtotal+delivery)

	return Quote{
		Subtotal:       subtotal,
		DeliveryCharge: delivery,
		PaymentFee:     fee,
		TotalAmount:    subtotal + delivery + fee,
	}
}
