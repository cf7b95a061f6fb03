package commands

import (
	"context"
	"log/slog"
	"strconv"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/directory"
	"studiobook/internal/pkg/clock"
	"studiobook/internal/pkg/errs"
	"studiobook/internal/usecase"
)

// CleanOrphansReport summarizes one orphan-cleanup run.
type CleanOrphansReport struct {
	RemovedBookings int      `json:"removedBookings"`
	RemovedRequests int      `json:"removedRequests"`
	BackupFiles     []string `json:"backupFiles,omitempty"`
}

// BackfillReport summarizes one slug backfill run.
type BackfillReport struct {
	UsersUpdated   int `json:"usersUpdated"`
	StudiosUpdated int `json:"studiosUpdated"`
}

type MaintenanceCommands interface {
	// CleanOrphans removes bookings and requests that fail integrity
	// validation (dangling user/studio references, missing temporal fields,
	// unknown status). Each touched collection is backed up first.
	CleanOrphans(ctx context.Context) (*CleanOrphansReport, error)
	// BackfillSlugs assigns a unique slug to every user and studio that has
	// a name but no slug. Idempotent.
	BackfillSlugs(ctx context.Context) (*BackfillReport, error)
}

type maintenanceCommandsImpl struct {
	requests  RequestRepository
	bookings  BookingRepository
	directory DirectoryRepository
	guard     *usecase.IntegrityGuard
	clock     clock.Clock
	logger    *slog.Logger
}

func NewMaintenanceCommands(
	requests RequestRepository,
	bookings BookingRepository,
	dir DirectoryRepository,
	guard *usecase.IntegrityGuard,
	clk clock.Clock,
	logger *slog.Logger,
) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		requests:  requests,
		bookings:  bookings,
		directory: dir,
		guard:     guard,
		clock:     clk,
		logger:    logger,
	}
}

func (m *maintenanceCommandsImpl) CleanOrphans(ctx context.Context) (*CleanOrphansReport, error) {
	// Force a fresh snapshot so the cleanup judges against current reference
	// data, not a cache about to expire.
	m.guard.Refresh(ctx)
	suffix := strconv.FormatInt(m.clock.Now().Unix(), 10)

	report := &CleanOrphansReport{}

	removed, backup, err := m.bookings.Prune(ctx, suffix, func(b booking.Booking) bool {
		return m.guard.IsValid(ctx, b)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	report.RemovedBookings = removed
	if backup != "" {
		report.BackupFiles = append(report.BackupFiles, backup)
	}

	removed, backup, err = m.requests.Prune(ctx, suffix, func(r booking.Request) bool {
		return m.guard.IsValid(ctx, r)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	report.RemovedRequests = removed
	if backup != "" {
		report.BackupFiles = append(report.BackupFiles, backup)
	}

	m.logger.Info("orphan cleanup finished",
		slog.Int("removed_bookings", report.RemovedBookings),
		slog.Int("removed_requests", report.RemovedRequests),
	)
	return report, nil
}

func (m *maintenanceCommandsImpl) BackfillSlugs(ctx context.Context) (*BackfillReport, error) {
	report := &BackfillReport{}

	err := m.directory.UpdateUsers(ctx, func(users []directory.User) ([]directory.User, error) {
		taken := make(map[string]string, len(users))
		for _, u := range users {
			if u.Slug != "" {
				taken[u.Slug] = u.ID
			}
		}
		for i := range users {
			u := &users[i]
			if u.Slug != "" || u.Name == "" {
				if u.Slug == "" {
					m.logger.Warn("user has no name and no slug, skipping", slog.String("user_id", u.ID))
				}
				continue
			}
			slug := directory.AssignUniqueSlug(directory.Slugify(u.Name), taken, u.ID)
			u.Slug = slug
			taken[slug] = u.ID
			report.UsersUpdated++
		}
		return users, nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}

	err = m.directory.UpdateStudios(ctx, func(studios []directory.Studio) ([]directory.Studio, error) {
		taken := make(map[string]string, len(studios))
		for _, s := range studios {
			if s.Slug != "" {
				taken[s.Slug] = s.ID
			}
		}
		for i := range studios {
			s := &studios[i]
			if s.Slug != "" || s.Name == "" {
				continue
			}
			slug := directory.AssignUniqueSlug(directory.Slugify(s.Name), taken, s.ID)
			s.Slug = slug
			taken[slug] = s.ID
			report.StudiosUpdated++
		}
		return studios, nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}

	m.logger.Info("slug backfill finished",
		slog.Int("users_updated", report.UsersUpdated),
		slog.Int("studios_updated", report.StudiosUpdated),
	)
	return report, nil
}
