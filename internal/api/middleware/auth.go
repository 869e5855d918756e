package middleware

import (
	"Lumina/internal/api/config"
	"Lumina/internal/pkg/response"
	"Lumina/internal/pkg/security"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 写操作统一闸门：共享口令 Bearer，或登录签发的 ADMIN JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		secret := config.Cfg.Auth.Secret
		if secret == "" {
			secret = config.InsecureDefaultSecret
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1 {
			// 共享口令无身份信息，记为默认操作者
			c.Set("username", "editor")
			c.Next()
			return
		}

		claims, err := security.ValidateToken(token)
		if err != nil || claims.Role != security.RoleAdmin {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
