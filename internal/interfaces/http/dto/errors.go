package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeUpstream is used when the ERP backend rejects or fails a call
	ErrCodeUpstream = "ERR_UPSTREAM"
	// ErrCodeUpstreamTimeout is used when the ERP backend does not answer in time
	ErrCodeUpstreamTimeout = "ERR_UPSTREAM_TIMEOUT"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Business rule error codes for the sale flow
const (
	// ErrCodeEmptyCart is used when checkout runs with no line items
	ErrCodeEmptyCart = "ERR_EMPTY_CART"
	// ErrCodeNoProfile is used when no POS profile is bound to the session
	ErrCodeNoProfile = "ERR_NO_POS_PROFILE"
	// ErrCodeNoActiveSession is used when an operation needs an open cash session
	ErrCodeNoActiveSession = "ERR_NO_ACTIVE_SESSION"
	// ErrCodeSessionActive is used when starting a session while one is open
	ErrCodeSessionActive = "ERR_SESSION_ACTIVE"
	// ErrCodeSaleInFlight is used when a second checkout races an in-flight one
	ErrCodeSaleInFlight = "ERR_SALE_IN_FLIGHT"
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Upstream failures surface as 502/504 so the UI can distinguish
	// "backend said no" from "terminal is broken"
	ErrCodeUpstream:        http.StatusBadGateway,
	ErrCodeUpstreamTimeout: http.StatusGatewayTimeout,

	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,

	ErrCodeNotFound: http.StatusNotFound,
	ErrCodeConflict: http.StatusConflict,

	ErrCodeEmptyCart:       http.StatusUnprocessableEntity,
	ErrCodeNoProfile:       http.StatusUnprocessableEntity,
	ErrCodeNoActiveSession: http.StatusUnprocessableEntity,
	ErrCodeSessionActive:   http.StatusConflict,
	ErrCodeSaleInFlight:    http.StatusConflict,
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the API's standardized codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":         ErrCodeNotFound,
	"INVALID_INPUT":     ErrCodeBadRequest,
	"INVALID_STATE":     ErrCodeInvalidState,
	"UNAUTHORIZED":      ErrCodeUnauthorized,
	"VALIDATION":        ErrCodeValidation,
	"EMPTY_CART":        ErrCodeEmptyCart,
	"NO_POS_PROFILE":    ErrCodeNoProfile,
	"NO_ACTIVE_SESSION": ErrCodeNoActiveSession,
	"SESSION_ACTIVE":    ErrCodeSessionActive,
	"SALE_IN_FLIGHT":    ErrCodeSaleInFlight,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
