package handlers

import (
	"log"
	"net/http"

	"foodee-api/middleware"
	"foodee-api/models"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// ListUsers returns all users — admin only
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		log.Printf("failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser registers a user on first signup. Posting an already
// registered email is a no-op that returns the existing-user marker.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	existing, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Printf("failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to look up user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  models.RoleDefault,
	}
	if err := h.Users.Insert(c.Request.Context(), &user); err != nil {
		log.Printf("failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inserted_id": user.ID})
}

// PromoteAdmin sets role=admin on the target user.
func (h *Handler) PromoteAdmin(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	modified, err := h.Users.PromoteAdmin(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to promote user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to promote user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modified_count": modified})
}

// CheckAdmin reports whether the given email holds the admin role.
// Asking about anyone but yourself answers false without a lookup.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user != nil && user.IsAdmin()})
}
