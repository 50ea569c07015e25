package handlers

import (
	"log"
	"net/http"

	"foodee-api/models"

	"github.com/gin-gonic/gin"
)

type AddMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required"`
}

// ListMenu returns all menu items (public)
func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.Menu.List(c.Request.Context())
	if err != nil {
		log.Printf("failed to list menu: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to list menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem inserts a menu item — admin only
func (h *Handler) AddMenuItem(c *gin.Context) {
	var req AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}
	if err := h.Menu.Insert(c.Request.Context(), &item); err != nil {
		log.Printf("failed to add menu item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to add menu item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inserted_id": item.ID})
}

// DeleteMenuItem removes a menu item by ID — admin only
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.Menu.DeleteByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to delete menu item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to delete menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_count": deleted})
}
