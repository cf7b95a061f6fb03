//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/directory"
	"studiobook/internal/infra/jsonstore"
	"studiobook/internal/infra/repository"
	"studiobook/internal/pkg/clock"
	"studiobook/internal/usecase"
	"studiobook/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryFixture struct {
	store   *jsonstore.Store
	queries queries.BookingQueries
	clock   *clock.MockClock
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	store := jsonstore.NewStore(t.TempDir(), logger)

	requests := repository.NewRequestRepository(store, logger)
	bookings := repository.NewBookingRepository(store, logger)
	dir := repository.NewDirectoryRepository(store, logger)

	require.NoError(t, jsonstore.SaveAll(store, jsonstore.CollectionUsers, []directory.User{
		{ID: "u1", Name: "Ana", Slug: "ana"},
		{ID: "u2", Name: "Ben"},
	}))
	require.NoError(t, jsonstore.SaveAll(store, jsonstore.CollectionStudios, []directory.Studio{
		{ID: "s1", Name: "The Dojo"},
	}))

	clk := clock.NewMockClock(time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local))
	guard := usecase.NewIntegrityGuard(dir, clk, time.Minute, logger)

	return &queryFixture{
		store:   store,
		queries: queries.NewBookingQueries(bookings, requests, dir, guard, clk, logger),
		clock:   clk,
	}
}

func record(id, userID, status, date, start, end string) booking.Request {
	return booking.Request{
		ID:         id,
		StudioID:   "s1",
		StudioName: "The Dojo",
		UserID:     userID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		TotalCost:  100,
		Status:     status,
	}
}

func asBooking(r booking.Request) booking.Booking {
	return booking.Booking{Request: r, ConfirmedAt: r.CreatedAt}
}

func TestActiveBookings(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionBookings, []booking.Booking{
		asBooking(record("b-upcoming", "u1", "confirmed", "2026-09-20", "10:00", "12:00")),
		asBooking(record("b-cancelled", "u1", "cancelled", "2026-09-21", "10:00", "12:00")),
		asBooking(record("b-past", "u1", "confirmed", "2026-09-01", "10:00", "12:00")),
		asBooking(record("b-orphan", "ghost", "confirmed", "2026-09-22", "10:00", "12:00")),
	}))
	require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionRequests, []booking.Request{
		record("r-pending", "u1", "pending", "2026-09-18", "10:00", "12:00"),
		record("r-migrating", "u1", "confirmed", "2026-09-19", "10:00", "12:00"),
		record("r-rejected", "u1", "rejected", "2026-09-17", "10:00", "12:00"),
	}))

	views, err := f.queries.ActiveBookings(ctx, "s1")
	require.NoError(t, err)

	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	// Cancelled, rejected and orphaned records are out; the past confirmed
	// booking reads as completed but stays in the active view. Ascending by
	// start.
	assert.Equal(t, []string{"b-past", "r-pending", "r-migrating", "b-upcoming"}, ids)

	byID := make(map[string]queries.BookingView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.Equal(t, booking.StatusCompleted, byID["b-past"].Status)
	assert.Equal(t, booking.StatusConfirmed, byID["b-upcoming"].Status)
	assert.Equal(t, booking.StatusPending, byID["r-pending"].Status)
	assert.Equal(t, "Ana", byID["b-upcoming"].Artist.DisplayName)
	assert.Equal(t, "ana", byID["b-upcoming"].Artist.Slug)
}

func TestActiveBookingsNormalizesCaseVariants(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionBookings, []booking.Booking{
		asBooking(record("b-upper", "u1", "CONFIRMED", "2026-09-20", "10:00", "12:00")),
		asBooking(record("b-canceled", "u1", "CANCELED", "2026-09-21", "10:00", "12:00")),
	}))

	views, err := f.queries.ActiveBookings(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "b-upper", views[0].ID)
	assert.Equal(t, booking.StatusConfirmed, views[0].Status)
}

func TestPendingRequests(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionRequests, []booking.Request{
		record("r1", "u1", "pending", "2026-09-18", "10:00", "12:00"),
		record("r2", "u1", "PENDING", "2026-09-17", "10:00", "12:00"),
		record("r3", "u1", "rejected", "2026-09-16", "10:00", "12:00"),
	}))

	views, err := f.queries.PendingRequests(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "r2", views[0].ID)
	assert.Equal(t, "r1", views[1].ID)
}

func TestUserRequests(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	unknown := record("r-unknown", "ghost", "pending", "2026-09-18", "10:00", "12:00")
	unknown.UserName = "Walk-in"
	noNameAtAll := record("r-nameless", "ghost2", "pending", "2026-09-19", "10:00", "12:00")
	noNameAtAll.UserID = "ghost2"

	require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionRequests, []booking.Request{
		record("r1", "u1", "rejected", "2026-09-16", "10:00", "12:00"),
		record("r2", "u1", "pending", "2026-09-17", "10:00", "12:00"),
	}))

	t.Run("all statuses included", func(t *testing.T) {
		views, err := f.queries.UserRequests(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, booking.StatusRejected, views[0].Status)
		assert.Equal(t, booking.StatusPending, views[1].Status)
	})

	t.Run("missing reference data degrades to placeholders", func(t *testing.T) {
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionRequests, []booking.Request{unknown, noNameAtAll}))

		views, err := f.queries.UserRequests(ctx, "ghost")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Walk-in", views[0].Artist.DisplayName)

		views, err = f.queries.UserRequests(ctx, "ghost2")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, queries.UnknownArtistName, views[0].Artist.DisplayName)
	})
}

func TestPartitionBookings(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)
	views := []queries.BookingView{
		{ID: "p1", Status: booking.StatusPending, EndDateTime: now.Add(-time.Hour)},
		{ID: "u1", Status: booking.StatusConfirmed, EndDateTime: now.Add(time.Hour)},
		{ID: "past1", Status: booking.StatusCompleted, EndDateTime: now.Add(-time.Hour)},
		{ID: "edge", Status: booking.StatusConfirmed, EndDateTime: now},
	}

	part := queries.PartitionBookings(views, now)

	// Pending wins over time, a past end date notwithstanding
	require.Len(t, part.Pending, 1)
	assert.Equal(t, "p1", part.Pending[0].ID)

	require.Len(t, part.Upcoming, 1)
	assert.Equal(t, "u1", part.Upcoming[0].ID)

	// Ending exactly now is past, not upcoming
	require.Len(t, part.Past, 2)

	total := len(part.Pending) + len(part.Upcoming) + len(part.Past)
	assert.Equal(t, len(views), total, "partition must be exhaustive and disjoint")
}

func TestRevenue(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)
	views := []queries.BookingView{
		{ID: "in-month", TotalCost: 100, StartDateTime: time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
		{ID: "also-in", TotalCost: 50, StartDateTime: time.Date(2026, 9, 30, 23, 0, 0, 0, time.Local)},
		{ID: "last-month", TotalCost: 75, StartDateTime: time.Date(2026, 8, 31, 23, 0, 0, 0, time.Local)},
		{ID: "next-month", TotalCost: 60, StartDateTime: time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)},
	}

	assert.Equal(t, 150.0, queries.Revenue(views, now))
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionBookings, []booking.Booking{
		asBooking(record("b-upcoming", "u1", "confirmed", "2026-09-20", "10:00", "12:00")),
		asBooking(record("b-past", "u1", "confirmed", "2026-09-01", "10:00", "12:00")),
	}))
	require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionRequests, []booking.Request{
		record("r-pending", "u1", "pending", "2026-09-18", "10:00", "12:00"),
	}))
	require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionFollows, []directory.Follow{
		{FollowerID: "u1", FollowingID: "s1"},
		{FollowerID: "u2", FollowingID: "s1"},
		{FollowerID: "u1", FollowingID: "other"},
	}))

	d, err := f.queries.Dashboard(ctx, "s1")
	require.NoError(t, err)

	require.Len(t, d.Pending, 1)
	require.Len(t, d.Upcoming, 1)
	require.Len(t, d.Past, 1)
	assert.Equal(t, "r-pending", d.Pending[0].ID)
	assert.Equal(t, "b-upcoming", d.Upcoming[0].ID)
	assert.Equal(t, "b-past", d.Past[0].ID)
	assert.Equal(t, 1, d.PendingCount)
	assert.Equal(t, 300.0, d.Revenue)
	assert.Equal(t, 2, d.Followers)
}
