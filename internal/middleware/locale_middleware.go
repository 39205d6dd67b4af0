package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yasminebk/beautyuniverse-backend/internal/errors"
	"github.com/yasminebk/beautyuniverse-backend/pkg/i18n"
)

// LocaleMiddleware negotiates the response language. An explicit ?lang=
// query wins over the Accept-Language header; anything unrecognized falls
// back to the default.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("lang")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}

		lang := i18n.Parse(raw)
		c.Set(errors.LangKey, lang)
		c.Header("Content-Language", string(lang))

		c.Next()
	}
}
