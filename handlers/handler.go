package handlers

import (
	"net/http"
	"strconv"

	"foodee-api/payments"
	"foodee-api/repository"

	"github.com/gin-gonic/gin"
)

// Handler carries the stores and the payment gateway used by all routes.
type Handler struct {
	JWTSecret string
	Users     *repository.Users
	Menu      *repository.Menu
	Reviews   *repository.Reviews
	Carts     *repository.Carts
	Payments  *repository.Payments
	Gateway   payments.Gateway
}

// parseID converts a path parameter into a store identifier.
// On failure it writes a 400 response and reports false.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   true,
			"message": "invalid id: " + c.Param(param),
		})
		return 0, false
	}
	return uint(id), true
}
