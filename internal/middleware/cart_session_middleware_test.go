package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasminebk/beautyuniverse-backend/config"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	"github.com/yasminebk/beautyuniverse-backend/internal/errors"
	"github.com/yasminebk/beautyuniverse-backend/pkg/i18n"
)

func cartTestConfig() *config.CartConfig {
	return &config.CartConfig{
		SnapshotTTL: 30 * 24 * time.Hour,
		TokenHeader: "X-Cart-Token",
		TokenCookie: "bu_cart_token",
	}
}

func setupCartSessionTest() (*gin.Engine, *cart.Manager) {
	gin.SetMode(gin.TestMode)
	manager := cart.NewManager(cart.NewMemorySnapshotStore())
	router := gin.New()
	router.Use(CartSessionMiddleware(manager, cartTestConfig()))
	router.GET("/cart", func(c *gin.Context) {
		token, _ := GetCartToken(c)
		c.JSON(http.StatusOK, gin.H{"token": token})
	})
	return router, manager
}

func TestCartSessionMiddleware_MintsTokenForNewVisitor(t *testing.T) {
	router, _ := setupCartSessionTest()

	req := httptest.NewRequest("GET", "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	token := w.Header().Get("X-Cart-Token")
	assert.NotEmpty(t, token)

	// The cookie carries the same token
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "bu_cart_token" {
			assert.Equal(t, token, cookie.Value)
			found = true
		}
	}
	assert.True(t, found)
}

func TestCartSessionMiddleware_ReusesHeaderToken(t *testing.T) {
	router, _ := setupCartSessionTest()

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("X-Cart-Token", "existing-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "existing-token", w.Header().Get("X-Cart-Token"))
	assert.Contains(t, w.Body.String(), "existing-token")
}

func TestCartSessionMiddleware_ReusesCookieToken(t *testing.T) {
	router, _ := setupCartSessionTest()

	req := httptest.NewRequest("GET", "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "bu_cart_token", Value: "cookie-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "cookie-token", w.Header().Get("X-Cart-Token"))
}

func TestLocaleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LocaleMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"lang": errors.RequestLang(c)})
	})

	tests := []struct {
		name   string
		path   string
		header string
		want   i18n.Lang
	}{
		{"query wins", "/?lang=fr", "ar", i18n.LangFr},
		{"accept-language header", "/", "fr-DZ,fr;q=0.9", i18n.LangFr},
		{"arabic header", "/", "ar-DZ", i18n.LangAr},
		{"default when absent", "/", "", i18n.DefaultLang},
		{"unknown falls back", "/?lang=en", "", i18n.DefaultLang},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, string(tt.want), w.Header().Get("Content-Language"))
		})
	}
}
