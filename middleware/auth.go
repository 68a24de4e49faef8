// middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"docbook/models"
	"docbook/services/auth"
	"docbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware resolves the bearer token to a user and stores it on the
// context under utils.UserKey. Requests without a valid token are rejected.
func AuthMiddleware(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "missing bearer token")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "missing bearer token")
			return
		}

		user, err := authSvc.CurrentUser(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrTokenRevoked) {
				utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", err.Error())
				return
			}
			utils.ContextLogger(c).Error("auth lookup failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Authentication error", "")
			return
		}

		c.Set(utils.UserKey, user)
		c.Set(utils.TokenKey, tokenString)
		c.Set(utils.LoggerKey, utils.ContextLogger(c).With(zap.String("userID", user.ID)))
		c.Next()
	}
}

// CurrentUser returns the user AuthMiddleware stored on c, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(utils.UserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
