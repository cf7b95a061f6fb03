package repository

import (
	"context"
	"log/slog"
	"strings"

	"studiobook/internal/domain/booking"
	"studiobook/internal/infra"
	"studiobook/internal/infra/jsonstore"
	"studiobook/internal/pkg/errs"
)

// RequestRepository persists booking requests in the request collection.
type RequestRepository struct {
	store  *jsonstore.Store
	logger *slog.Logger
}

func NewRequestRepository(store *jsonstore.Store, logger *slog.Logger) *RequestRepository {
	return &RequestRepository{store: store, logger: logger}
}

func (r *RequestRepository) List(_ context.Context) ([]booking.Request, error) {
	return jsonstore.Load[booking.Request](r.store, jsonstore.CollectionRequests)
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*booking.Request, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, infra.WrapStoreErr(r.logger, infra.KindNotFound, "booking request "+id, nil)
}

func (r *RequestRepository) ListByStudio(ctx context.Context, studioID string) ([]booking.Request, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]booking.Request, 0, len(records))
	for _, rec := range records {
		if rec.StudioID == studioID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *RequestRepository) ListByUser(ctx context.Context, userID string) ([]booking.Request, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]booking.Request, 0, len(records))
	for _, rec := range records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *RequestRepository) Append(_ context.Context, req *booking.Request) error {
	return jsonstore.Update(r.store, jsonstore.CollectionRequests, func(records []booking.Request) ([]booking.Request, error) {
		return append(records, *req), nil
	})
}

// Save replaces the stored record with the same ID.
func (r *RequestRepository) Save(_ context.Context, req *booking.Request) error {
	found := false
	err := jsonstore.Update(r.store, jsonstore.CollectionRequests, func(records []booking.Request) ([]booking.Request, error) {
		for i := range records {
			if records[i].ID == req.ID {
				records[i] = *req
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
		return infra.WrapStoreErr(r.logger, infra.KindNotFound, "booking request "+req.ID, nil)
	}
	return nil
}

// Remove deletes the request with the given ID. Removing an absent request is
// a no-op: confirm migration retries must converge, not fail.
func (r *RequestRepository) Remove(_ context.Context, id string) error {
	return jsonstore.Update(r.store, jsonstore.CollectionRequests, func(records []booking.Request) ([]booking.Request, error) {
		out := records[:0]
		for _, rec := range records {
			if rec.ID != id {
				out = append(out, rec)
			}
		}
		return out, nil
	})
}

// Prune rewrites the collection keeping only the records keep accepts. Read,
// backup and write all happen under the collection lock, so writers landing
// during the rewrite are never clobbered by a stale snapshot. The previous
// file is copied aside only when something is dropped.
func (r *RequestRepository) Prune(_ context.Context, backupSuffix string, keep func(booking.Request) bool) (int, string, error) {
	removed := 0
	backup := ""
	err := jsonstore.Update(r.store, jsonstore.CollectionRequests, func(records []booking.Request) ([]booking.Request, error) {
		kept := make([]booking.Request, 0, len(records))
		for _, rec := range records {
			if keep(rec) {
				kept = append(kept, rec)
			}
		}
		removed = len(records) - len(kept)
		if removed == 0 {
			return records, nil
		}
		path, err := r.store.Backup(jsonstore.CollectionRequests, backupSuffix)
		if err != nil {
			return nil, errs.Wrap(err, "backup request collection")
		}
		backup = path
		return kept, nil
	})
	if err != nil {
		return 0, "", err
	}
	return removed, backup, nil
}

// CountPendingByStudio feeds the pending dashboard tile without loading the
// enriched view.
func (r *RequestRepository) CountPendingByStudio(ctx context.Context, studioID string) (int, error) {
	records, err := r.ListByStudio(ctx, studioID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, rec := range records {
		if strings.EqualFold(rec.Status, booking.StatusPending.String()) {
			n++
		}
	}
	return n, nil
}

