//go:build unit

package booking_test

import (
	"testing"

	"studiobook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want booking.Status
		ok   bool
	}{
		{name: "lowercase pending", raw: "pending", want: booking.StatusPending, ok: true},
		{name: "uppercase pending", raw: "PENDING", want: booking.StatusPending, ok: true},
		{name: "mixed case confirmed", raw: "Confirmed", want: booking.StatusConfirmed, ok: true},
		{name: "double-l cancelled", raw: "cancelled", want: booking.StatusCancelled, ok: true},
		{name: "single-l canceled maps to cancelled", raw: "canceled", want: booking.StatusCancelled, ok: true},
		{name: "uppercase single-l canceled", raw: "CANCELED", want: booking.StatusCancelled, ok: true},
		{name: "surrounding whitespace", raw: "  rejected  ", want: booking.StatusRejected, ok: true},
		{name: "completed", raw: "completed", want: booking.StatusCompleted, ok: true},
		{name: "unknown value", raw: "archived", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := booking.ParseStatus(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.True(t, booking.StatusRejected.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, booking.StatusPending.IsValid())
	assert.False(t, booking.Status("archived").IsValid())
	// IsValid is strict about case; ParseStatus is the normalizing entry
	assert.False(t, booking.Status("Pending").IsValid())
}
