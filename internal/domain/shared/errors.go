package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState    = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrUnauthorized    = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrEmptyCart       = NewDomainError("EMPTY_CART", "Cart has no line items")
	ErrNoProfile       = NewDomainError("NO_POS_PROFILE", "No POS profile selected")
	ErrNoActiveSession = NewDomainError("NO_ACTIVE_SESSION", "No cash session is open")
	ErrSessionActive   = NewDomainError("SESSION_ACTIVE", "A cash session is already open")
	ErrSaleInFlight    = NewDomainError("SALE_IN_FLIGHT", "A sale submission is already in progress")
)
