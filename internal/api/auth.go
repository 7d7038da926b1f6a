package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// requireJWT admits a request carrying an X-Admin-Key header that matches
// s.adminKeyHash (when one is configured); otherwise it validates a bearer
// token signed with s.jwtSecret using an HMAC method (HS256/HS384/HS512).
// Without a matching admin key, an empty secret rejects every request —
// admin routes fail closed.
func (s *Server) requireJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.adminKeyHash != "" {
			if key := c.GetHeader("X-Admin-Key"); key != "" && verifyAdminKey(s.adminKeyHash, key) {
				c.Next()
				return
			}
		}

		if len(s.jwtSecret) == 0 {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin routes are disabled: no jwt signing secret configured"})
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		_, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.jwtSecret, nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Next()
	}
}
