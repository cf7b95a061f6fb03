package errs

import "errors"

// Sentinel errors shared across the usecase layers, grouped by the failure
// taxonomy handlers map onto HTTP statuses.
var (
	// Not found
	ErrRequestNotFound = errors.New("booking request not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrStudioNotFound  = errors.New("studio not found")

	// Invalid state
	ErrAlreadyProcessed = errors.New("booking request already processed")
	ErrInvalidState     = errors.New("invalid state for requested transition")

	// Validation
	ErrValidationFailed = errors.New("validation failed")

	// Payment: capture failure aborts the transition, cancel failure is
	// tolerated and only recorded.
	ErrPaymentCaptureFailed = errors.New("payment capture failed")
	ErrPaymentAuthFailed    = errors.New("payment authorization failed")

	// Booking slot conflict
	ErrBookingConflict = errors.New("booking slot conflict")

	// Persistence: always fatal, never retried silently
	ErrPersistenceFailed = errors.New("persistence failed")
)
