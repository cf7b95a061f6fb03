package booking

import (
	"errors"
	"time"
)

var (
	ErrNotPending       = errors.New("request is not pending")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrAlreadyCompleted = errors.New("cannot cancel a completed booking")
)

// Request is an unconfirmed reservation held in the request collection.
// Field names follow the stored JSON shape; Status may hold any case variant
// on load and is normalized through ParseStatus at the lifecycle boundary.
type Request struct {
	ID              string        `json:"id"`
	StudioID        string        `json:"studioId"`
	StudioName      string        `json:"studioName,omitempty"`
	RoomID          string        `json:"roomId,omitempty"`
	RoomName        string        `json:"roomName,omitempty"`
	UserID          string        `json:"userId"`
	UserName        string        `json:"userName,omitempty"`
	UserEmail       string        `json:"userEmail,omitempty"`
	Date            string        `json:"date"`
	StartTime       string        `json:"startTime"`
	EndTime         string        `json:"endTime"`
	DurationHours   float64       `json:"duration,omitempty"`
	HourlyRate      float64       `json:"hourlyRate,omitempty"`
	TotalCost       float64       `json:"totalCost"`
	BaseAmount      float64       `json:"baseAmount,omitempty"`
	PlatformFee     float64       `json:"companyFee,omitempty"`
	TotalAmount     float64       `json:"totalAmount,omitempty"`
	Message         string        `json:"message,omitempty"`
	Status          string        `json:"status"`
	PaymentIntentID string        `json:"paymentIntentId,omitempty"`
	PaymentStatus   PaymentStatus `json:"paymentStatus,omitempty"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
	RejectedAt      *time.Time    `json:"rejectedAt,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (r *Request) CanonicalStatus() (Status, bool) {
	return ParseStatus(r.Status)
}

// Integrity-validation surface. Value receivers so both Request and Booking
// slices satisfy the guard's interface.
func (r Request) RecordID() string    { return r.ID }
func (r Request) RefUserID() string   { return r.UserID }
func (r Request) RefStudioID() string { return r.StudioID }
func (r Request) RawStatus() string   { return r.Status }
func (r Request) RefSchedule() Schedule {
	return Schedule{Date: r.Date, StartTime: r.StartTime, EndTime: r.EndTime}
}

func (r *Request) IsPending() bool {
	s, ok := r.CanonicalStatus()
	return ok && s == StatusPending
}

func (r *Request) Schedule() Schedule {
	return Schedule{Date: r.Date, StartTime: r.StartTime, EndTime: r.EndTime}
}

// Reject moves a pending request to its terminal rejected state. The request
// stays in the request collection with the rejection metadata attached.
func (r *Request) Reject(reason string, now time.Time) error {
	if !r.IsPending() {
		return ErrNotPending
	}
	if reason == "" {
		reason = "No reason provided"
	}
	r.Status = StatusRejected.String()
	r.RejectionReason = reason
	at := now
	r.RejectedAt = &at
	r.UpdatedAt = now
	return nil
}

// Confirmed builds the Booking that replaces this request in the booking
// collection. The caller persists the booking first, then removes the request.
func (r *Request) Confirmed(now time.Time) Booking {
	req := *r
	req.Status = StatusConfirmed.String()
	req.UpdatedAt = now
	return Booking{
		Request:     req,
		ConfirmedAt: now,
	}
}

// Booking is a confirmed reservation. It carries every request field plus the
// confirmation timestamp; afterwards only status transitions and timestamps
// change.
type Booking struct {
	Request
	ConfirmedAt time.Time  `json:"confirmedAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// EffectiveStatus derives completion from elapsed time: a confirmed booking
// whose end has passed reads as completed. Nothing is written back.
func (b *Booking) EffectiveStatus(now time.Time) Status {
	s, ok := b.CanonicalStatus()
	if !ok {
		return ""
	}
	if s == StatusConfirmed {
		if end, err := b.Schedule().EndDateTime(); err == nil && !end.After(now) {
			return StatusCompleted
		}
	}
	return s
}

// Cancel transitions confirmed → cancelled. Already-cancelled and completed
// (derived) bookings are rejected.
func (b *Booking) Cancel(now time.Time) error {
	switch b.EffectiveStatus(now) {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	b.Status = StatusCancelled.String()
	at := now
	b.CancelledAt = &at
	b.UpdatedAt = now
	return nil
}
