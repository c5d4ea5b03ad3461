package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes absent from this table fall back to the prefix rules in
// GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,

	// Duplicates and repeat operations
	"ALREADY_EXISTS":       http.StatusConflict,
	"DUPLICATE_REFERENCE":  http.StatusConflict,
	"CHART_ALREADY_SEEDED": http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rule violations
	"UNKNOWN_TRANSACTION_TYPE":  http.StatusUnprocessableEntity,
	"MAPPING_NOT_RESOLVED":      http.StatusUnprocessableEntity,
	"MAPPING_AMBIGUOUS":         http.StatusUnprocessableEntity,
	"VAT_ACCOUNTS_MISSING":      http.StatusUnprocessableEntity,
	"UNBALANCED_ENTRY":          http.StatusUnprocessableEntity,
	"ALREADY_DISPOSED":          http.StatusUnprocessableEntity,
	"INACTIVE_ACCOUNT":          http.StatusUnprocessableEntity,
	"SAME_ACCOUNT":              http.StatusUnprocessableEntity,
	"PROTECTED_ACCOUNT":         http.StatusUnprocessableEntity,
	"TEMPLATES_NOT_SEEDED":      http.StatusUnprocessableEntity,
	"DEPRECIATION_EXCEEDS_COST": http.StatusUnprocessableEntity,
	"INVALID_STATE":             http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes are classified by shape: *_NOT_FOUND is 404, INVALID_*
// is 400, anything else is 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasSuffix(code, "_NOT_FOUND") {
		return http.StatusNotFound
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
