//go:build unit

package repository_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/infra"
	"studiobook/internal/infra/jsonstore"
	"studiobook/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newRequestRepo(t *testing.T) *repository.RequestRepository {
	t.Helper()
	store := jsonstore.NewStore(t.TempDir(), testLogger())
	return repository.NewRequestRepository(store, testLogger())
}

func sampleRequest(id, studioID, userID, status string) booking.Request {
	return booking.Request{
		ID:        id,
		StudioID:  studioID,
		UserID:    userID,
		Date:      "2026-09-10",
		StartTime: "10:00",
		EndTime:   "12:00",
		TotalCost: 100,
		Status:    status,
		CreatedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRequestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("append and find", func(t *testing.T) {
		repo := newRequestRepo(t)
		req := sampleRequest("r1", "s1", "u1", "pending")
		require.NoError(t, repo.Append(ctx, &req))

		got, err := repo.FindByID(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, req, *got)
	})

	t.Run("find unknown id reports not found", func(t *testing.T) {
		repo := newRequestRepo(t)
		_, err := repo.FindByID(ctx, "nope")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("save replaces in place", func(t *testing.T) {
		repo := newRequestRepo(t)
		req := sampleRequest("r1", "s1", "u1", "pending")
		require.NoError(t, repo.Append(ctx, &req))

		req.Status = "rejected"
		req.RejectionReason = "slot gone"
		require.NoError(t, repo.Save(ctx, &req))

		got, err := repo.FindByID(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "rejected", got.Status)
		assert.Equal(t, "slot gone", got.RejectionReason)
	})

	t.Run("save of an absent record reports not found", func(t *testing.T) {
		repo := newRequestRepo(t)
		req := sampleRequest("ghost", "s1", "u1", "pending")
		err := repo.Save(ctx, &req)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("remove is a no-op for absent ids", func(t *testing.T) {
		repo := newRequestRepo(t)
		req := sampleRequest("r1", "s1", "u1", "pending")
		require.NoError(t, repo.Append(ctx, &req))

		require.NoError(t, repo.Remove(ctx, "r1"))
		require.NoError(t, repo.Remove(ctx, "r1"))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("list filters by studio and user", func(t *testing.T) {
		repo := newRequestRepo(t)
		for _, req := range []booking.Request{
			sampleRequest("r1", "s1", "u1", "pending"),
			sampleRequest("r2", "s1", "u2", "pending"),
			sampleRequest("r3", "s2", "u1", "pending"),
		} {
			r := req
			require.NoError(t, repo.Append(ctx, &r))
		}

		byStudio, err := repo.ListByStudio(ctx, "s1")
		require.NoError(t, err)
		assert.Len(t, byStudio, 2)

		byUser, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, byUser, 2)
	})

	t.Run("pending count is case-insensitive", func(t *testing.T) {
		repo := newRequestRepo(t)
		for _, req := range []booking.Request{
			sampleRequest("r1", "s1", "u1", "pending"),
			sampleRequest("r2", "s1", "u2", "PENDING"),
			sampleRequest("r3", "s1", "u3", "rejected"),
		} {
			r := req
			require.NoError(t, repo.Append(ctx, &r))
		}

		n, err := repo.CountPendingByStudio(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestRequestRepositoryPrune(t *testing.T) {
	ctx := context.Background()
	store := jsonstore.NewStore(t.TempDir(), testLogger())
	repo := repository.NewRequestRepository(store, testLogger())

	for _, req := range []booking.Request{
		sampleRequest("r1", "s1", "u1", "pending"),
		sampleRequest("r2", "s1", "", "pending"),
		sampleRequest("r3", "s1", "u3", "bogus"),
	} {
		r := req
		require.NoError(t, repo.Append(ctx, &r))
	}

	removed, backup, err := repo.Prune(ctx, "123", func(r booking.Request) bool {
		return r.UserID != "" && r.Status == "pending"
	})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	require.NotEmpty(t, backup)
	assert.FileExists(t, backup)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "r1", all[0].ID)

	removed, backup, err = repo.Prune(ctx, "456", func(booking.Request) bool { return true })
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Empty(t, backup)
}

func TestBookingRepositoryAppendIdempotent(t *testing.T) {
	ctx := context.Background()
	store := jsonstore.NewStore(t.TempDir(), testLogger())
	repo := repository.NewBookingRepository(store, testLogger())

	b := booking.Booking{
		Request:     sampleRequest("b1", "s1", "u1", "confirmed"),
		ConfirmedAt: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Append(ctx, b))
	require.NoError(t, repo.Append(ctx, b))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
