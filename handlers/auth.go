package handlers

import (
	"net/http"

	"foodee-api/middleware"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// IssueToken signs a 1 hour JWT for the identity in the request body.
// The caller's identity is taken on trust; no credential check happens here.
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	token, err := middleware.GenerateToken(h.JWTSecret, req.Email, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
