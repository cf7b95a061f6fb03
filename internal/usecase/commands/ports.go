package commands

import (
	"context"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/directory"
)

// RequestRepository is the write-side port for the request collection.
type RequestRepository interface {
	List(ctx context.Context) ([]booking.Request, error)
	FindByID(ctx context.Context, id string) (*booking.Request, error)
	Append(ctx context.Context, req *booking.Request) error
	Save(ctx context.Context, req *booking.Request) error
	Remove(ctx context.Context, id string) error
	// Prune drops every record keep rejects, holding the collection lock
	// for the whole cycle; it reports how many were dropped and the path of
	// the backup taken before the rewrite ("" when nothing changed).
	Prune(ctx context.Context, backupSuffix string, keep func(booking.Request) bool) (removed int, backupPath string, err error)
}

// BookingRepository is the write-side port for the booking collection.
// Append must be idempotent on ID so a half-finished migration can be retried.
type BookingRepository interface {
	List(ctx context.Context) ([]booking.Booking, error)
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	ListByStudio(ctx context.Context, studioID string) ([]booking.Booking, error)
	Append(ctx context.Context, b booking.Booking) error
	Save(ctx context.Context, b *booking.Booking) error
	Prune(ctx context.Context, backupSuffix string, keep func(booking.Booking) bool) (removed int, backupPath string, err error)
}

// DirectoryRepository reads and (for slug maintenance only) rewrites the
// reference collections.
type DirectoryRepository interface {
	ListUsers(ctx context.Context) ([]directory.User, error)
	ListStudios(ctx context.Context) ([]directory.Studio, error)
	FindUserByID(ctx context.Context, id string) (*directory.User, error)
	FindStudioByID(ctx context.Context, id string) (*directory.Studio, error)
	// UpdateUsers and UpdateStudios rewrite a reference collection through
	// a closure run under the collection lock.
	UpdateUsers(ctx context.Context, fn func(users []directory.User) ([]directory.User, error)) error
	UpdateStudios(ctx context.Context, fn func(studios []directory.Studio) ([]directory.Studio, error)) error
}

// PaymentGateway is the external payment capability: authorize a manual-
// capture hold at creation, capture on confirm, cancel on decline. Any
// non-nil error is a failure; timeouts are the provider's concern and come
// back as errors here.
type PaymentGateway interface {
	Authorize(ctx context.Context, amountCents int64, customerRef string, metadata map[string]string) (string, error)
	Capture(ctx context.Context, intentID string) error
	Cancel(ctx context.Context, intentID string) error
}
