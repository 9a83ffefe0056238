// internal/middleware/auth.go
package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/anvogue/anvogue-admin/internal/backend"
	"github.com/anvogue/anvogue-admin/internal/config"
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired accepts a bearer token issued by the catalog backend when it is well formed
// and not expired, and forwards it on every backend call made for the request.
func AuthRequired(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			c.Abort()
			return
		}

		token := strings.TrimSpace(parts[1])
		claims, err := utils.ParseSessionToken(token, cfg.JWTSecret, time.Now())
		if err != nil {
			key := i18n.KeyAuthInvalidToken
			if errors.Is(err, utils.ErrTokenExpired) {
				key = i18n.KeyAuthTokenExpired
			}
			utils.UnauthorizedResponse(c, i18n.T(lang, key))
			c.Abort()
			return
		}

		// Set session info in context
		c.Set("token", token)
		c.Set("user_id", claims.SessionKey(token))
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), token))
		c.Next()
	}
}
