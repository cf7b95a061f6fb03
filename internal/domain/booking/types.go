package booking

import "strings"

// Status is the canonical lifecycle state. Stored records may carry any case
// variant ("PENDING", "pending"); Parse normalizes at the boundary.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseStatus normalizes a raw stored status value. Case variants are
// accepted, and the "canceled" spelling maps to StatusCancelled.
func ParseStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, true
	case "confirmed":
		return StatusConfirmed, true
	case "rejected":
		return StatusRejected, true
	case "cancelled", "canceled":
		return StatusCancelled, true
	case "completed":
		return StatusCompleted, true
	default:
		return "", false
	}
}

// PaymentStatus tracks the payment intent attached to a request.
type PaymentStatus string

const (
	PaymentAuthorized   PaymentStatus = "authorized"
	PaymentCaptured     PaymentStatus = "captured"
	PaymentCanceled     PaymentStatus = "canceled"
	// PaymentCancelFailed records a decline whose intent cancellation failed.
	// The intent expires on the provider side; the marker exists for operator
	// visibility only.
	PaymentCancelFailed PaymentStatus = "cancel_failed"
)
