package handlers

import (
	"log"
	"net/http"

	"foodee-api/middleware"
	"foodee-api/models"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// ListCarts returns the cart items for the email query parameter.
// No email yields an empty list; someone else's email yields 403.
func (h *Handler) ListCarts(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.CartItem{})
		return
	}

	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
		return
	}

	items, err := h.Carts.ListByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("failed to list cart items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to list cart items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddCartItem inserts a cart item. No ownership check on write.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	item := models.CartItem{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	}
	if err := h.Carts.Insert(c.Request.Context(), &item); err != nil {
		log.Printf("failed to add cart item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to add cart item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inserted_id": item.ID})
}

// DeleteCartItem removes a cart item by ID. No ownership check.
func (h *Handler) DeleteCartItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.Carts.DeleteByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to delete cart item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to delete cart item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_count": deleted})
}
