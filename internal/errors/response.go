package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasminebk/beautyuniverse-backend/pkg/i18n"
)

// LangKey is the gin context key under which the locale middleware stores
// the request language.
const LangKey = "lang"

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error   string `json:"error"`   // stable code for the storefront to map
	Message string `json:"message"` // localized user-facing message
}

// RequestLang returns the language negotiated for this request
func RequestLang(c *gin.Context) i18n.Lang {
	if v, exists := c.Get(LangKey); exists {
		if lang, ok := v.(i18n.Lang); ok {
			return lang
		}
	}
	return i18n.DefaultLang
}

// RespondWithError writes a localized error response.
// messageKey is an i18n key; the user sees it in the request language.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, messageKey string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: i18n.T(RequestLang(c), messageKey),
	})
}

// Shortcuts for the common cases

func Unauthorized(c *gin.Context) {
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, "auth.login_required")
}

func Forbidden(c *gin.Context) {
	RespondWithError(c, http.StatusForbidden, AuthzForbidden, "auth.forbidden")
}

func BadRequest(c *gin.Context, errorCode string, messageKey string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, messageKey)
}

func NotFound(c *gin.Context, errorCode string, messageKey string) {
	RespondWithError(c, http.StatusNotFound, errorCode, messageKey)
}

func Conflict(c *gin.Context, errorCode string, messageKey string) {
	RespondWithError(c, http.StatusConflict, errorCode, messageKey)
}

func InternalError(c *gin.Context) {
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, "internal.error")
}

// ValidationError carries per-field validation messages
type ValidationError struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func RespondWithValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Error:   ValidationInvalidInput,
		Message: i18n.T(RequestLang(c), "validation.invalid_input"),
		Fields:  fields,
	})
}
