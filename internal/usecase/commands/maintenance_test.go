//go:build unit

package commands_test

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
	"studiobook/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type maintenanceFixture struct {
	store       *jsonstore.Store
	maintenance commands.MaintenanceCommands
	directory   *repository.DirectoryRepository
}

func newMaintenanceFixture(t *testing.T) *maintenanceFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	store := jsonstore.NewStore(t.TempDir(), logger)

	requests := repository.NewRequestRepository(store, logger)
	bookings := repository.NewBookingRepository(store, logger)
	dir := repository.NewDirectoryRepository(store, logger)

	clk := clock.NewMockClock(time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local))
	guard := usecase.NewIntegrityGuard(dir, clk, time.Minute, logger)

	return &maintenanceFixture{
		store:       store,
		maintenance: commands.NewMaintenanceCommands(requests, bookings, dir, guard, clk, logger),
		directory:   dir,
	}
}

func TestCleanOrphans(t *testing.T) {
	ctx := context.Background()

	t.Run("removes dangling records and backs up first", func(t *testing.T) {
		f := newMaintenanceFixture(t)
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionUsers, []directory.User{{ID: "u1", Name: "Ana"}}))
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionStudios, []directory.Studio{{ID: "s1", Name: "The Dojo"}}))

		valid := booking.Request{
			ID: "ok", StudioID: "s1", UserID: "u1",
			Date: "2026-09-20", StartTime: "10:00", EndTime: "12:00", Status: "pending",
		}
		orphanUser := valid
		orphanUser.ID = "bad-user"
		orphanUser.UserID = "ghost"
		orphanStatus := valid
		orphanStatus.ID = "bad-status"
		orphanStatus.Status = "archived"

		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionRequests, []booking.Request{valid, orphanUser, orphanStatus}))
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionBookings, []booking.Booking{
			{Request: valid},
			{Request: orphanUser},
		}))

		report, err := f.maintenance.CleanOrphans(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.RemovedBookings)
		assert.Equal(t, 2, report.RemovedRequests)
		require.Len(t, report.BackupFiles, 2)
		for _, path := range report.BackupFiles {
			_, statErr := os.Stat(path)
			assert.NoError(t, statErr)
		}

		remaining, err := jsonstore.Load[booking.Request](f.store, jsonstore.CollectionRequests)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "ok", remaining[0].ID)
	})

	t.Run("clean data is left alone", func(t *testing.T) {
		f := newMaintenanceFixture(t)
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionUsers, []directory.User{{ID: "u1", Name: "Ana"}}))
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionStudios, []directory.Studio{{ID: "s1", Name: "The Dojo"}}))
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionRequests, []booking.Request{{
			ID: "ok", StudioID: "s1", UserID: "u1",
			Date: "2026-09-20", StartTime: "10:00", EndTime: "12:00", Status: "pending",
		}}))

		report, err := f.maintenance.CleanOrphans(ctx)
		require.NoError(t, err)
		assert.Zero(t, report.RemovedBookings)
		assert.Zero(t, report.RemovedRequests)
		assert.Empty(t, report.BackupFiles)
	})
}

func TestBackfillSlugs(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns unique slugs to named records", func(t *testing.T) {
		f := newMaintenanceFixture(t)
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionUsers, []directory.User{
			{ID: "u1", Name: "Ana Lima", Slug: "ana-lima"},
			{ID: "u2", Name: "Ana Lima"},
			{ID: "u3", Name: ""},
		}))
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionStudios, []directory.Studio{
			{ID: "s1", Name: "The Dojo"},
		}))

		report, err := f.maintenance.BackfillSlugs(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.UsersUpdated)
		assert.Equal(t, 1, report.StudiosUpdated)

		users, err := f.directory.ListUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ana-lima", users[0].Slug)
		assert.Equal(t, "ana-lima-1", users[1].Slug)
		assert.Empty(t, users[2].Slug)

		studios, err := f.directory.ListStudios(ctx)
		require.NoError(t, err)
		assert.Equal(t, "the-dojo", studios[0].Slug)
	})

	t.Run("idempotent", func(t *testing.T) {
		f := newMaintenanceFixture(t)
		require.NoError(t, jsonstore.SaveAll(f.store, jsonstore.CollectionUsers, []directory.User{
			{ID: "u1", Name: "Ana Lima"},
		}))

		first, err := f.maintenance.BackfillSlugs(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.UsersUpdated)

		second, err := f.maintenance.BackfillSlugs(ctx)
		require.NoError(t, err)
		assert.Zero(t, second.UsersUpdated)
	})
}
