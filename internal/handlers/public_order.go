package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"natalify-backend/internal/models"
	"natalify-backend/internal/pricing"
	"natalify-backend/internal/store"
)

type createOrderRequest struct {
	Customer      models.OrderCustomer `json:"customer"`
	Items         []models.OrderItem   `json:"items"`
	PaymentMethod string               `json:"paymentMethod"`
	Notes         string               `json:"notes"`
}

// CreateOrder validates the intake, prices the items and appends the
// order. The total covers items only; delivery charge and gateway fee
// folding is the checkout caller's concern (see CheckoutQuote). COD
// orders start confirmed, online orders stay pending until the gateway
// confirms payment.
func CreateOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.Customer.Name) == "" ||
			strings.TrimSpace(req.Customer.Phone) == "" ||
			strings.TrimSpace(req.Customer.Address) == "" ||
			len(req.Items) == 0 {
			respondWithError(c, http.StatusBadRequest, "Missing required information")
			return
		}

		method, err := models.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		status := models.OrderConfirmed
		if method.Online() {
			status = models.OrderPending
		}

		order := orders.Create(models.Order{
			Customer:      req.Customer,
			Items:         req.Items,
			TotalAmount:   pricing.Subtotal(req.Items),
			Status:        status,
			PaymentMethod: method,
			PaymentStatus: models.PaymentPending,
			Notes:         req.Notes,
		})

		log.Info().
			Str("orderNumber", order.OrderNumber).
			Str("paymentMethod", string(order.PaymentMethod)).
			Int("totalAmount", order.TotalAmount).
			Msg("order created")

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created successfully",
			"order": gin.H{
				"id":                order.ID,
				"orderNumber":       order.OrderNumber,
				"totalAmount":       order.TotalAmount,
				"estimatedDelivery": time.Now().Add(3 * 24 * time.Hour),
				"paymentMethod":     order.PaymentMethod,
				"status":            order.Status,
			},
		})
	}
}

// TrackOrders returns a phone number's order history together with the
// customer profile derived from it. The profile is computed on the fly;
// nothing customer-shaped is stored server-side.
func TrackOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := strings.TrimSpace(c.Query("phone"))
		if phone == "" {
			respondWithError(c, http.StatusBadRequest, "Phone number is required")
			return
		}

		history := orders.ByPhone(phone)
		response := gin.H{"orders": history}
		if len(history) > 0 {
			response["profile"] = models.BuildCustomerProfile(history)
		}
		c.JSON(http.StatusOK, response)
	}
}

type checkoutQuoteRequest struct {
	Items         []models.OrderItem `json:"items"`
	Division      string             `json:"division"`
	PaymentMethod string             `json:"paymentMethod"`
}

// CheckoutQuote prices a cart for a division and payment method: subtotal,
// delivery charge, gateway fee on the delivery-inclusive amount, and the
// grand total.
func CheckoutQuote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutQuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if len(req.Items) == 0 {
			respondWithError(c, http.StatusBadRequest, "At least one item is required")
			return
		}

		method, err := models.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		c.JSON(http.StatusOK, pricing.QuoteOrder(req.Items, req.Division, method))
	}
}
