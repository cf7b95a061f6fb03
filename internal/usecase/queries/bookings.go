package queries

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/directory"
	"studiobook/internal/pkg/clock"
	"studiobook/internal/usecase"
)

type BookingQueries interface {
	// ActiveBookings merges the booking collection with confirmed requests
	// for a studio, excluding cancelled and rejected records, enriched and
	// sorted ascending by start.
	ActiveBookings(ctx context.Context, studioID string) ([]BookingView, error)
	// PendingRequests lists a studio's pending requests with artist display
	// data joined.
	PendingRequests(ctx context.Context, studioID string) ([]BookingView, error)
	// UserRequests lists every request a user has made, any status.
	UserRequests(ctx context.Context, userID string) ([]BookingView, error)
	// Dashboard bundles partitioned active bookings, the current calendar
	// month's revenue and the studio's follower count.
	Dashboard(ctx context.Context, studioID string) (*Dashboard, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReader
	requests  RequestReader
	directory DirectoryReader
	guard     *usecase.IntegrityGuard
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBookingQueries(
	bookings BookingReader,
	requests RequestReader,
	dir DirectoryReader,
	guard *usecase.IntegrityGuard,
	clk clock.Clock,
	logger *slog.Logger,
) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		requests:  requests,
		directory: dir,
		guard:     guard,
		clock:     clk,
		logger:    logger,
	}
}

func (q *bookingQueriesImpl) ActiveBookings(ctx context.Context, studioID string) ([]BookingView, error) {
	now := q.clock.Now()

	bookings, err := q.bookings.ListByStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}
	bookings = usecase.FilterValid(q.guard, ctx, bookings)

	requests, err := q.requests.ListByStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}
	requests = usecase.FilterValid(q.guard, ctx, requests)

	artists := q.artistIndex(ctx)

	views := make([]BookingView, 0, len(bookings)+len(requests))
	for i := range bookings {
		b := &bookings[i]
		status := b.EffectiveStatus(now)
		if status == booking.StatusCancelled || status == booking.StatusRejected {
			continue
		}
		if view, ok := q.toView(&b.Request, status, artists); ok {
			view.CreatedAt = b.CreatedAt
			views = append(views, view)
		}
	}
	for i := range requests {
		r := &requests[i]
		status, _ := r.CanonicalStatus()
		// Confirmed requests still awaiting migration count as active;
		// pending ones feed the pending partition. Terminal requests stay
		// out of the operational view.
		if status != booking.StatusConfirmed && status != booking.StatusPending {
			continue
		}
		if view, ok := q.toView(r, status, artists); ok {
			views = append(views, view)
		}
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].StartDateTime.Before(views[j].StartDateTime)
	})
	return views, nil
}

func (q *bookingQueriesImpl) PendingRequests(ctx context.Context, studioID string) ([]BookingView, error) {
	requests, err := q.requests.ListByStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}
	requests = usecase.FilterValid(q.guard, ctx, requests)
	artists := q.artistIndex(ctx)

	views := make([]BookingView, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		if !r.IsPending() {
			continue
		}
		if view, ok := q.toView(r, booking.StatusPending, artists); ok {
			views = append(views, view)
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].StartDateTime.Before(views[j].StartDateTime)
	})
	return views, nil
}

func (q *bookingQueriesImpl) UserRequests(ctx context.Context, userID string) ([]BookingView, error) {
	requests, err := q.requests.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	artists := q.artistIndex(ctx)

	views := make([]BookingView, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		status, ok := r.CanonicalStatus()
		if !ok {
			continue
		}
		if view, viewOK := q.toView(r, status, artists); viewOK {
			views = append(views, view)
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].StartDateTime.Before(views[j].StartDateTime)
	})
	return views, nil
}

func (q *bookingQueriesImpl) Dashboard(ctx context.Context, studioID string) (*Dashboard, error) {
	active, err := q.ActiveBookings(ctx, studioID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	part := PartitionBookings(active, now)

	pendingCount, err := q.requests.CountPendingByStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Pending:      part.Pending,
		Upcoming:     part.Upcoming,
		Past:         part.Past,
		PendingCount: pendingCount,
		Revenue:      Revenue(active, now),
		Followers:    q.followerCount(ctx, studioID),
	}, nil
}

// PartitionBookings splits active bookings three ways: pending by status,
// the rest by whether their end is still ahead of now. Exhaustive and
// disjoint by construction.
func PartitionBookings(views []BookingView, now time.Time) Partition {
	part := Partition{
		Pending:  []BookingView{},
		Upcoming: []BookingView{},
		Past:     []BookingView{},
	}
	for _, v := range views {
		switch {
		case v.Status == booking.StatusPending:
			part.Pending = append(part.Pending, v)
		case v.EndDateTime.After(now):
			part.Upcoming = append(part.Upcoming, v)
		default:
			part.Past = append(part.Past, v)
		}
	}
	return part
}

// Revenue sums totalCost over bookings starting within now's calendar month.
func Revenue(views []BookingView, now time.Time) float64 {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var total float64
	for _, v := range views {
		if !v.StartDateTime.Before(monthStart) && v.StartDateTime.Before(monthEnd) {
			total += v.TotalCost
		}
	}
	return total
}

// toView derives datetimes and joins artist display data. Records whose
// temporal fields do not parse are dropped here with a warning; the guard has
// already checked presence, not well-formedness.
func (q *bookingQueriesImpl) toView(r *booking.Request, status booking.Status, artists map[string]directory.User) (BookingView, bool) {
	sched := r.Schedule()
	start, err := sched.StartDateTime()
	if err != nil {
		q.logger.Warn("dropping record with malformed schedule", slog.String("record_id", r.ID))
		return BookingView{}, false
	}
	end, err := sched.EndDateTime()
	if err != nil {
		q.logger.Warn("dropping record with malformed schedule", slog.String("record_id", r.ID))
		return BookingView{}, false
	}

	artist := ArtistBrief{ID: r.UserID, DisplayName: UnknownArtistName}
	if u, ok := artists[r.UserID]; ok {
		artist.DisplayName = u.Name
		artist.Slug = u.Slug
		artist.AvatarURL = u.AvatarURL
	} else if r.UserName != "" {
		artist.DisplayName = r.UserName
	}

	studioName := r.StudioName
	if studioName == "" {
		studioName = UnknownStudioName
	}

	return BookingView{
		ID:              r.ID,
		StudioID:        r.StudioID,
		StudioName:      studioName,
		RoomID:          r.RoomID,
		RoomName:        r.RoomName,
		Artist:          artist,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		StartDateTime:   start,
		EndDateTime:     end,
		Status:          status,
		PaymentStatus:   r.PaymentStatus,
		TotalCost:       r.TotalCost,
		Message:         r.Message,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
	}, true
}

// artistIndex loads the user collection keyed by ID. Unavailable reference
// data degrades to placeholders, never to a failed read.
func (q *bookingQueriesImpl) artistIndex(ctx context.Context) map[string]directory.User {
	users, err := q.directory.ListUsers(ctx)
	if err != nil {
		q.logger.Warn("user collection unavailable, using placeholders", slog.Any("error", err))
		return map[string]directory.User{}
	}
	index := make(map[string]directory.User, len(users))
	for _, u := range users {
		index[u.ID] = u
	}
	return index
}

func (q *bookingQueriesImpl) followerCount(ctx context.Context, studioID string) int {
	follows, err := q.directory.ListFollows(ctx)
	if err != nil {
		return 0
	}
	n := 0
	for _, f := range follows {
		if f.FollowingID == studioID {
			n++
		}
	}
	return n
}
