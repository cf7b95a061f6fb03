package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/directory"
	"studiobook/internal/pkg/clock"
)

// ReferenceProvider supplies the reference-data snapshots the guard validates
// against. Implementations return empty slices when the data is unavailable,
// never nil-with-success.
type ReferenceProvider interface {
	ListUsers(ctx context.Context) ([]directory.User, error)
	ListStudios(ctx context.Context) ([]directory.Studio, error)
}

// Validatable is the booking-shaped surface the guard checks. Both Request
// and Booking satisfy it through their embedded fields.
type Validatable interface {
	RecordID() string
	RefUserID() string
	RefStudioID() string
	RefSchedule() booking.Schedule
	RawStatus() string
}

// IntegrityGuard validates that booking records reference existing users and
// studios and carry well-formed temporal fields and a known status. The store
// has no foreign keys, so this is the only referential check in the system.
// Identifier sets are cached with a TTL; a failed rebuild falls back to empty
// sets, which conservatively invalidates everything rather than granting
// false trust.
type IntegrityGuard struct {
	provider ReferenceProvider
	clock    clock.Clock
	ttl      time.Duration
	logger   *slog.Logger

	mu        sync.RWMutex
	userIDs   map[string]struct{}
	studioIDs map[string]struct{}
	expiresAt time.Time

	dropped atomic.Int64
}

func NewIntegrityGuard(provider ReferenceProvider, clk clock.Clock, ttl time.Duration, logger *slog.Logger) *IntegrityGuard {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &IntegrityGuard{
		provider: provider,
		clock:    clk,
		ttl:      ttl,
		logger:   logger,
	}
}

// Refresh rebuilds the identifier cache unconditionally. Concurrent rebuilds
// are idempotent; the last writer wins and staleness within one TTL window is
// acceptable.
func (g *IntegrityGuard) Refresh(ctx context.Context) {
	userIDs := make(map[string]struct{})
	studioIDs := make(map[string]struct{})

	users, uerr := g.provider.ListUsers(ctx)
	studios, serr := g.provider.ListStudios(ctx)
	if uerr != nil || serr != nil {
		g.logger.Error("integrity cache rebuild failed, falling back to empty sets",
			slog.Any("users_error", uerr),
			slog.Any("studios_error", serr),
		)
	} else {
		for _, u := range users {
			userIDs[u.ID] = struct{}{}
		}
		for _, s := range studios {
			studioIDs[s.ID] = struct{}{}
		}
	}

	g.mu.Lock()
	g.userIDs = userIDs
	g.studioIDs = studioIDs
	g.expiresAt = g.clock.Now().Add(g.ttl)
	g.mu.Unlock()

	g.logger.Info("integrity cache updated",
		slog.Int("users", len(userIDs)),
		slog.Int("studios", len(studioIDs)),
	)
}

func (g *IntegrityGuard) ensureFresh(ctx context.Context) {
	g.mu.RLock()
	fresh := g.userIDs != nil && g.clock.Now().Before(g.expiresAt)
	g.mu.RUnlock()
	if !fresh {
		g.Refresh(ctx)
	}
}

// IsValid checks, in order: identifier present, user resolves, studio
// resolves, temporal fields present, status recognized (case-insensitive).
func (g *IntegrityGuard) IsValid(ctx context.Context, rec Validatable) bool {
	if rec == nil || rec.RecordID() == "" {
		g.logger.Warn("invalid booking record: missing id")
		return false
	}

	g.ensureFresh(ctx)
	g.mu.RLock()
	defer g.mu.RUnlock()

	id := rec.RecordID()
	if _, ok := g.userIDs[rec.RefUserID()]; rec.RefUserID() == "" || !ok {
		g.logger.Warn("invalid booking record: user not found",
			slog.String("record_id", id), slog.String("user_id", rec.RefUserID()))
		return false
	}
	if _, ok := g.studioIDs[rec.RefStudioID()]; rec.RefStudioID() == "" || !ok {
		g.logger.Warn("invalid booking record: studio not found",
			slog.String("record_id", id), slog.String("studio_id", rec.RefStudioID()))
		return false
	}

	sched := rec.RefSchedule()
	if sched.Date == "" || sched.StartTime == "" || sched.EndTime == "" {
		g.logger.Warn("invalid booking record: missing temporal fields", slog.String("record_id", id))
		return false
	}

	if _, ok := booking.ParseStatus(rec.RawStatus()); !ok {
		g.logger.Warn("invalid booking record: unrecognized status",
			slog.String("record_id", id), slog.String("status", rec.RawStatus()))
		return false
	}
	return true
}

// FilterValid drops invalid records and counts them. It never grows the input
// and is idempotent on an already-valid set.
func FilterValid[T Validatable](g *IntegrityGuard, ctx context.Context, records []T) []T {
	valid := make([]T, 0, len(records))
	for _, rec := range records {
		if g.IsValid(ctx, rec) {
			valid = append(valid, rec)
		}
	}
	if n := len(records) - len(valid); n > 0 {
		g.dropped.Add(int64(n))
		g.logger.Info("filtered invalid booking records",
			slog.Int("dropped", n),
			slog.Int64("dropped_total", g.dropped.Load()),
		)
	}
	return valid
}

// DroppedCount reports how many records FilterValid has excluded since start.
func (g *IntegrityGuard) DroppedCount() int64 {
	return g.dropped.Load()
}
