package errors

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorInfo pairs a stable code with the i18n key of its user message
type ErrorInfo struct {
	Code       string
	MessageKey string
}

// ParseError maps storage-level errors to a code and message key without
// leaking driver details to the client. context hints at the operation
// ("product", "order", "checkout", ...).
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, MessageKey: "internal.error"}
	}

	errStrLower := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, MessageKey: notFoundKey(context)}
	}

	// PostgreSQL constraint classes

	// Unique violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		if strings.Contains(errStrLower, "email") || strings.Contains(errStrLower, "idx_users_email") {
			return ErrorInfo{Code: AuthEmailAlreadyExists, MessageKey: "auth.email_exists"}
		}
		return ErrorInfo{Code: ResourceAlreadyExists, MessageKey: "validation.invalid_input"}
	}

	// Foreign key violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		if strings.Contains(errStrLower, "product_id") {
			return ErrorInfo{Code: ProductNotFound, MessageKey: "product.not_found"}
		}
		return ErrorInfo{Code: ResourceConflict, MessageKey: "validation.invalid_input"}
	}

	// Not-null violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{Code: ValidationRequired, MessageKey: "validation.required"}
	}

	// Connectivity
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{Code: InternalDatabaseError, MessageKey: "internal.error"}
	}

	return ErrorInfo{Code: InternalServerError, MessageKey: "internal.error"}
}

// ParseAndRespond maps err through ParseError and writes the localized
// response in one step
func ParseAndRespond(c *gin.Context, statusCode int, err error, context string) {
	info := ParseError(err, context)
	RespondWithError(c, statusCode, info.Code, info.MessageKey)
}

func notFoundKey(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "product") {
		return "product.not_found"
	}
	if strings.Contains(contextLower, "order") || strings.Contains(contextLower, "checkout") {
		return "order.not_found"
	}
	if strings.Contains(contextLower, "cart") {
		return "cart.item_not_found"
	}
	return "internal.error"
}
