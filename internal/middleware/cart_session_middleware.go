package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasminebk/beautyuniverse-backend/config"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
)

// CartTokenKey is the gin context key holding the guest cart token
const CartTokenKey = "cart_token"

// CartSessionMiddleware resolves the guest cart token from the request
// header or cookie, minting a fresh one for first-time visitors. The token
// is echoed back both as a cookie and a response header so header-based
// clients and browsers both keep their cart.
func CartSessionMiddleware(manager *cart.Manager, cfg *config.CartConfig) gin.HandlerFunc {
	maxAge := int(cfg.SnapshotTTL.Seconds())

	return func(c *gin.Context) {
		token := c.GetHeader(cfg.TokenHeader)
		if token == "" {
			if cookie, err := c.Cookie(cfg.TokenCookie); err == nil {
				token = cookie
			}
		}
		if token == "" {
			token = manager.NewToken()
		}

		c.Set(CartTokenKey, token)
		c.Header(cfg.TokenHeader, token)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.TokenCookie, token, maxAge, "/", "", false, true)

		c.Next()
	}
}

// GetCartToken extracts the guest cart token from context
func GetCartToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(CartTokenKey)
	if !exists {
		return "", false
	}
	return token.(string), true
}
