package handlers

import (
	"log"
	"net/http"

	"foodee-api/models"

	"github.com/gin-gonic/gin"
)

type AddReviewRequest struct {
	Name    string  `json:"name" binding:"required"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating" binding:"min=0,max=5"`
}

// ListReviews returns all reviews (public)
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.Reviews.List(c.Request.Context())
	if err != nil {
		log.Printf("failed to list reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AddReview inserts a review from an authenticated caller.
func (h *Handler) AddReview(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	review := models.Review{
		Name:    req.Name,
		Details: req.Details,
		Rating:  req.Rating,
	}
	if err := h.Reviews.Insert(c.Request.Context(), &review); err != nil {
		log.Printf("failed to add review: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to add review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inserted_id": review.ID})
}
