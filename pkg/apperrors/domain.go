package apperrors

import "net/http"

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrExternalService wraps a failure from an upstream provider (Stripe, SMTP).
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// ErrDatabase wraps an unexpected database failure as a 500.
func ErrDatabase(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)
}

// Predefined errors for the auth domain.
var (
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email already exists", http.StatusConflict)
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrEmailNotConfirmed  = New(CodeEmailNotConfirmed, "auth", "Email address has not been confirmed", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 8 characters long", http.StatusBadRequest)
)

// Predefined errors for the payments domain.
var (
	ErrPaymentFailed = New(CodePaymentFailed, "payments", "Payment processing failed", http.StatusBadRequest)
)
