package repository

import (
	"context"
	"log/slog"

	"studiobook/internal/domain/booking"
	"studiobook/internal/infra"
	"studiobook/internal/infra/jsonstore"
	"studiobook/internal/pkg/errs"
)

// BookingRepository persists confirmed bookings. Records are append-only
// except for status transitions.
type BookingRepository struct {
	store  *jsonstore.Store
	logger *slog.Logger
}

func NewBookingRepository(store *jsonstore.Store, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{store: store, logger: logger}
}

func (r *BookingRepository) List(_ context.Context) ([]booking.Booking, error) {
	return jsonstore.Load[booking.Booking](r.store, jsonstore.CollectionBookings)
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, infra.WrapStoreErr(r.logger, infra.KindNotFound, "booking "+id, nil)
}

func (r *BookingRepository) ListByStudio(ctx context.Context, studioID string) ([]booking.Booking, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]booking.Booking, 0, len(records))
	for _, rec := range records {
		if rec.StudioID == studioID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Append adds the booking unless a record with the same ID already exists, in
// which case it returns without writing. That makes the confirm migration
// idempotent: a retried migration lands on the existing row.
func (r *BookingRepository) Append(_ context.Context, b booking.Booking) error {
	return jsonstore.Update(r.store, jsonstore.CollectionBookings, func(records []booking.Booking) ([]booking.Booking, error) {
		for i := range records {
			if records[i].ID == b.ID {
				return records, nil
			}
		}
		return append(records, b), nil
	})
}

func (r *BookingRepository) Save(_ context.Context, b *booking.Booking) error {
	found := false
	err := jsonstore.Update(r.store, jsonstore.CollectionBookings, func(records []booking.Booking) ([]booking.Booking, error) {
		for i := range records {
			if records[i].ID == b.ID {
				records[i] = *b
				found = true
				return records, nil
			}
		}
		return records, nil
	})
	if err != nil {
		return err
	}
	if !found {
		return infra.WrapStoreErr(r.logger, infra.KindNotFound, "booking "+b.ID, nil)
	}
	return nil
}

// Prune mirrors RequestRepository.Prune for the booking collection: the
// whole read-filter-write cycle holds the collection lock, with a backup of
// the previous file when anything is dropped.
func (r *BookingRepository) Prune(_ context.Context, backupSuffix string, keep func(booking.Booking) bool) (int, string, error) {
	removed := 0
	backup := ""
	err := jsonstore.Update(r.store, jsonstore.CollectionBookings, func(records []booking.Booking) ([]booking.Booking, error) {
		kept := make([]booking.Booking, 0, len(records))
		for _, rec := range records {
			if keep(rec) {
				kept = append(kept, rec)
			}
		}
		removed = len(records) - len(kept)
		if removed == 0 {
			return records, nil
		}
		path, err := r.store.Backup(jsonstore.CollectionBookings, backupSuffix)
		if err != nil {
			return nil, errs.Wrap(err, "backup booking collection")
		}
		backup = path
		return kept, nil
	})
	if err != nil {
		return 0, "", err
	}
	return removed, backup, nil
}
