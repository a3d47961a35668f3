package handlers

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"natalify-backend/internal/payments"
	"natalify-backend/internal/store"
)

type stripeIntentRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	OrderID  string            `json:"orderId"`
	Metadata map[string]string `json:"metadata"`
}

type stripeConfirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

// CreateStripePaymentIntent delegates to the card gateway. The amount
// arrives in major units and is converted to the currency's minor units.
// Gateway failures surface directly; there are no retries.
func CreateStripePaymentIntent(stripe *payments.StripeClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req stripeIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.Amount <= 0 || strings.TrimSpace(req.OrderID) == "" {
			respondWithError(c, http.StatusBadRequest, "Amount and order ID are required")
			return
		}

		currency := req.Currency
		if currency == "" {
			currency = "usd"
		}

		amountMinor := int(math.Round(req.Amount * 100))
		intent, err := stripe.CreatePaymentIntent(c.Request.Context(), amountMinor, currency, req.OrderID, req.Metadata)
		if err != nil {
			log.Error().Err(err).Str("orderId", req.OrderID).Msg("stripe payment intent creation failed")
			respondWithError(c, http.StatusInternalServerError, "Failed to create payment intent: "+err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"clientSecret":    intent.ClientSecret,
			"paymentIntentId": intent.ID,
		})
	}
}

// ConfirmStripePayment checks the intent's state with the gateway and, on
// success, marks the order it references as paid.
func ConfirmStripePayment(stripe *payments.StripeClient, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req stripeConfirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.PaymentIntentID) == "" {
			respondWithError(c, http.StatusBadRequest, "Payment Intent ID is required")
			return
		}

		intent, err := stripe.RetrievePaymentIntent(c.Request.Context(), req.PaymentIntentID)
		if err != nil {
			log.Error().Err(err).Str("paymentIntentId", req.PaymentIntentID).Msg("stripe payment confirmation failed")
			respondWithError(c, http.StatusInternalServerError, "Failed to confirm payment: "+err.Error())
			return
		}

		if intent.Status != "succeeded" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Payment not successful",
				"status":  intent.Status,
			})
			return
		}

		if orderID := intent.Metadata["orderId"]; orderID != "" {
			if _, err := orders.MarkPaid(orderID); err != nil {
				log.Warn().Str("orderId", orderID).Msg("paid order not found in store")
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Payment confirmed successfully",
		})
	}
}

type bkashCreateRequest struct {
	OrderID string `json:"orderId"`
}

type bkashExecuteRequest struct {
	PaymentID string `json:"paymentID"`
	OrderID   string `json:"orderId"`
}

// CreateBkashPayment opens a wallet payment for an order's full amount,
// using the order number as the merchant invoice.
func CreateBkashPayment(bkash *payments.BkashClient, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bkashCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		order, err := orders.Get(strings.TrimSpace(req.OrderID))
		if err != nil {
			respondWithError(c, http.StatusNotFound, "Order not found")
			return
		}

		payment, err := bkash.CreatePayment(c.Request.Context(), order.TotalAmount, order.OrderNumber)
		if err != nil {
			log.Error().Err(err).Str("orderId", order.ID).Msg("bkash payment creation failed")
			respondWithError(c, http.StatusInternalServerError, "Failed to create payment: "+err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"paymentID": payment.PaymentID,
			"bkashURL":  payment.BkashURL,
		})
	}
}

// ExecuteBkashPayment finalizes a wallet payment and marks the order paid
// when the gateway reports completion.
func ExecuteBkashPayment(bkash *payments.BkashClient, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bkashExecuteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.PaymentID) == "" {
			respondWithError(c, http.StatusBadRequest, "Payment ID is required")
			return
		}

		payment, err := bkash.ExecutePayment(c.Request.Context(), req.PaymentID)
		if err != nil {
			log.Error().Err(err).Str("paymentID", req.PaymentID).Msg("bkash payment execution failed")
			respondWithError(c, http.StatusInternalServerError, "Failed to execute payment: "+err.Error())
			return
		}

		if !payment.Completed() {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Payment not successful",
				"status":  payment.TransactionStatus,
			})
			return
		}

		if req.OrderID != "" {
			if _, err := orders.MarkPaid(req.OrderID); err != nil {
				log.Warn().Str("orderId", req.OrderID).Msg("paid order not found in store")
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Payment confirmed successfully",
			"trxID":   payment.TrxID,
		})
	}
}
