package response

import (
	"time"

	"github.com/jinzhu/copier"

	"studiobook/internal/domain/booking"
	"studiobook/internal/usecase/queries"
)

// BookingRecordResponse is the write-path echo of a request or booking record.
type BookingRecordResponse struct {
	ID              string     `json:"id"`
	StudioID        string     `json:"studioId"`
	StudioName      string     `json:"studioName,omitempty"`
	RoomID          string     `json:"roomId,omitempty"`
	RoomName        string     `json:"roomName,omitempty"`
	UserID          string     `json:"userId"`
	Date            string     `json:"date"`
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime"`
	TotalCost       float64    `json:"totalCost"`
	PlatformFee     float64    `json:"companyFee,omitempty"`
	TotalAmount     float64    `json:"totalAmount,omitempty"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromRequest(r *booking.Request) *BookingRecordResponse {
	var resp BookingRecordResponse
	_ = copier.Copy(&resp, r)
	resp.PaymentStatus = string(r.PaymentStatus)
	return &resp
}

func FromBooking(b *booking.Booking) *BookingRecordResponse {
	resp := FromRequest(&b.Request)
	confirmedAt := b.ConfirmedAt
	resp.ConfirmedAt = &confirmedAt
	resp.CancelledAt = b.CancelledAt
	return resp
}

// DeclineResponse surfaces whether releasing the payment hold failed; the
// decline itself still took effect.
type DeclineResponse struct {
	Request      *BookingRecordResponse `json:"request"`
	CancelFailed bool                   `json:"cancelFailed,omitempty"`
}

type BookingListResponse struct {
	Bookings []queries.BookingView `json:"bookings"`
}

type RequestListResponse struct {
	Requests []queries.BookingView `json:"requests"`
}

type DashboardResponse struct {
	Pending      []queries.BookingView `json:"pending"`
	Upcoming     []queries.BookingView `json:"upcoming"`
	Past         []queries.BookingView `json:"past"`
	PendingCount int                   `json:"pendingCount"`
	Revenue      float64               `json:"revenue"`
	Followers    int                   `json:"followers"`
}

func FromDashboard(d *queries.Dashboard) *DashboardResponse {
	var resp DashboardResponse
	_ = copier.Copy(&resp, d)
	return &resp
}
