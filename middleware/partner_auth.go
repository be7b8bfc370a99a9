package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// PartnerIDKey is the gin context key the resolved partner id is stored
// under.
const PartnerIDKey = "partnerID"

// PartnerAuth resolves the calling partner from a bearer token whose claims
// carry a numeric "partnerId". Everything under /api/pos is partner-scoped,
// so requests without a resolvable partner are rejected here.
func PartnerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing bearer token",
			})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid token",
			})
			return
		}

		id, ok := claims["partnerId"].(float64)
		if !ok || id <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "token carries no partner identity",
			})
			return
		}

		c.Set(PartnerIDKey, uint(id))
		c.Next()
	}
}

// IssuePartnerToken builds a signed token for a partner id. Used by the seed
// logging and tests; the real login flow lives outside this service.
func IssuePartnerToken(secret string, partnerID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"partnerId": partnerID,
	})
	return token.SignedString([]byte(secret))
}
