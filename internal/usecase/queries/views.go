package queries

import (
	"context"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/directory"
)

// Placeholders used when a booking's reference data is missing. Callers get
// a labelled unknown instead of an error on read paths.
const (
	UnknownArtistName = "Unknown artist"
	UnknownStudioName = "Unknown studio"
)

// ArtistBrief is the display projection of the booking's artist.
type ArtistBrief struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Slug        string `json:"slug,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// BookingView is one merged row of the active-bookings read model: a Booking
// or a confirmed Request, with derived datetimes and joined display data.
type BookingView struct {
	ID              string                `json:"id"`
	StudioID        string                `json:"studioId"`
	StudioName      string                `json:"studioName"`
	RoomID          string                `json:"roomId,omitempty"`
	RoomName        string                `json:"roomName,omitempty"`
	Artist          ArtistBrief           `json:"artist"`
	Date            string                `json:"date"`
	StartTime       string                `json:"startTime"`
	EndTime         string                `json:"endTime"`
	StartDateTime   time.Time             `json:"startDateTime"`
	EndDateTime     time.Time             `json:"endDateTime"`
	Status          booking.Status        `json:"status"`
	PaymentStatus   booking.PaymentStatus `json:"paymentStatus,omitempty"`
	TotalCost       float64               `json:"totalCost"`
	Message         string                `json:"message,omitempty"`
	RejectionReason string                `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// Dashboard is the studio operator's aggregate view. PendingCount is the raw
// tally straight off the request store; it can exceed len(Pending) while
// invalid records are being filtered from the enriched view.
type Dashboard struct {
	Pending      []BookingView `json:"pending"`
	Upcoming     []BookingView `json:"upcoming"`
	Past         []BookingView `json:"past"`
	PendingCount int           `json:"pendingCount"`
	Revenue      float64       `json:"revenue"`
	Followers    int           `json:"followers"`
}

// Partition is the three-way split of active bookings. Every input row lands
// in exactly one bucket.
type Partition struct {
	Pending  []BookingView `json:"pending"`
	Upcoming []BookingView `json:"upcoming"`
	Past     []BookingView `json:"past"`
}

// StudioView is a studio listing row with follower enrichment.
type StudioView struct {
	directory.Studio
	Followers int `json:"followers"`
}

// Read-side ports, implemented by the infra repositories.

type BookingReader interface {
	ListByStudio(ctx context.Context, studioID string) ([]booking.Booking, error)
}

type RequestReader interface {
	ListByStudio(ctx context.Context, studioID string) ([]booking.Request, error)
	ListByUser(ctx context.Context, userID string) ([]booking.Request, error)
	CountPendingByStudio(ctx context.Context, studioID string) (int, error)
}

type DirectoryReader interface {
	ListUsers(ctx context.Context) ([]directory.User, error)
	ListStudios(ctx context.Context) ([]directory.Studio, error)
	ListFollows(ctx context.Context) ([]directory.Follow, error)
}
