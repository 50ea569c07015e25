package handlers

import (
	"log"
	"math"
	"net/http"

	"foodee-api/middleware"
	"foodee-api/models"

	"github.com/gin-gonic/gin"
)

type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}

type RecordPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	TransactionID string  `json:"transaction_id"`
	CartItemIDs   []uint  `json:"cart_item_ids"`
}

// CreatePaymentIntent asks the gateway for a payment intent over the
// given price, converted to minor currency units, and returns the
// client secret needed to complete the charge.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	amount := int64(math.Round(req.Price * 100))
	secret, err := h.Gateway.CreateIntent(c.Request.Context(), amount)
	if err != nil {
		log.Printf("failed to create payment intent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_secret": secret})
}

// RecordPayment stores a payment for the authenticated caller and
// deletes the cart items it settles, as one transaction.
func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	payment := models.Payment{
		Email:         middleware.GetEmail(c),
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		CartItemIDs:   req.CartItemIDs,
	}
	deleted, err := h.Payments.Settle(c.Request.Context(), &payment)
	if err != nil {
		log.Printf("failed to record payment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"inserted_id":   payment.ID,
		"deleted_count": deleted,
	})
}

// ListPayments returns payments for the email query parameter, with the
// same ownership rule as cart reads.
func (h *Handler) ListPayments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.Payment{})
		return
	}

	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
		return
	}

	payments, err := h.Payments.ListByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("failed to list payments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
