package handlers

import (
	"net/http"
	"time"

	"restaurant-api/config"
	"restaurant-api/models"
	"restaurant-api/payments"
	"restaurant-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaymentHandler serves the gateway-facing endpoints. The gateway client is
// constructed once at startup and injected here; handlers hold no other state.
type PaymentHandler struct {
	Gateway payments.Gateway
}

func NewPaymentHandler(gateway payments.Gateway) *PaymentHandler {
	return &PaymentHandler{Gateway: gateway}
}

type CreateGatewayOrderRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

type VerifyPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	OrderID           uint   `json:"order_id" binding:"required"`
}

// CreateGatewayOrder registers a payment order with the gateway and returns
// its id together with the public key the checkout widget needs.
func (h *PaymentHandler) CreateGatewayOrder(c *gin.Context) {
	var req CreateGatewayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is required"})
		return
	}
	if *req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	gatewayOrderID, err := h.Gateway.CreateOrder(*req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"razorpay_order_id": gatewayOrderID,
		"razorpay_key_id":   h.Gateway.KeyID(),
	})
}

// VerifyPayment checks the gateway's callback signature and, when valid,
// confirms the order and records the payment in a single transaction so a
// confirmed order without a payment row (or the reverse) can never be read.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: " + err.Error()})
		return
	}

	if !h.Gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed: invalid signature"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusConfirmed, statemachine.ActorGateway); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", models.StatusConfirmed).Error; err != nil {
			return err
		}
		payment := models.Payment{
			OrderID:           order.ID,
			PaymentMethod:     payments.MethodRazorpay,
			RazorpayPaymentID: req.RazorpayPaymentID,
			RazorpayOrderID:   req.RazorpayOrderID,
			RazorpaySignature: req.RazorpaySignature,
			Amount:            order.TotalPrice,
			Status:            models.PaymentSuccess,
			PaymentDate:       time.Now(),
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment successful and order confirmed"})
}
