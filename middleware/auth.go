package middleware

import (
	"net/http"
	"strings"
	"time"

	"foodee-api/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload. Email is the authorization key the rest
// of the system compares against.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

const contextKeyEmail = "email"

// GenerateToken signs a JWT for the given identity with a 1 hour expiry.
func GenerateToken(secret, email, name string) (string, error) {
	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// AuthRequired validates the bearer token and puts the decoded email
// into the request context for downstream ownership checks.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "unauthorized access",
			})
			return
		}

		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "unauthorized access",
			})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "unauthorized access",
			})
			return
		}

		c.Set(contextKeyEmail, claims.Email)
		c.Next()
	}
}

// AdminRequired resolves the authenticated email to a stored user and
// rejects callers whose role is not admin. Must run after AuthRequired.
func AdminRequired(users *repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetEmail(c)
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   true,
				"message": "failed to look up user",
			})
			return
		}
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   true,
				"message": "forbidden access",
			})
			return
		}
		c.Next()
	}
}

// GetEmail extracts the authenticated email from the context.
// Empty when AuthRequired has not run.
func GetEmail(c *gin.Context) string {
	val, _ := c.Get(contextKeyEmail)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}
