package commands

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"studiobook/internal/domain/booking"
	"studiobook/internal/infra"
	"studiobook/internal/pkg/clock"
	"studiobook/internal/pkg/config"
	"studiobook/internal/pkg/errs"
)

type CreateRequestParams struct {
	StudioID   string
	RoomID     string
	UserID     string
	Date       string
	StartTime  string
	EndTime    string
	HourlyRate float64
	TotalCost  float64
	Message    string
}

// DeclineResult reports the tolerated-failure variant of the external cancel:
// the decline itself always succeeds, PaymentCancelFailed tells the operator
// the hold will expire on the provider side instead of being released now.
type DeclineResult struct {
	Request      *booking.Request
	CancelFailed bool
}

type BookingCommands interface {
	CreateRequest(ctx context.Context, params CreateRequestParams) (*booking.Request, error)
	ConfirmRequest(ctx context.Context, id string) (*booking.Booking, error)
	DeclineRequest(ctx context.Context, id string, reason string) (*DeclineResult, error)
	CancelBooking(ctx context.Context, id string) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	requests  RequestRepository
	bookings  BookingRepository
	directory DirectoryRepository
	gateway   PaymentGateway
	clock     clock.Clock
	feePct    float64
	logger    *slog.Logger

	// The store has no row locking, so lifecycle transitions that span the
	// decide-then-write window are serialized here.
	mu sync.Mutex
}

func NewBookingCommands(
	requests RequestRepository,
	bookings BookingRepository,
	dir DirectoryRepository,
	gateway PaymentGateway,
	clk clock.Clock,
	cfg config.PaymentConfig,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		requests:  requests,
		bookings:  bookings,
		directory: dir,
		gateway:   gateway,
		clock:     clk,
		feePct:    cfg.FeePercent,
		logger:    logger,
	}
}

// CreateRequest authorizes a payment hold and appends a pending request.
func (c *bookingCommandsImpl) CreateRequest(ctx context.Context, params CreateRequestParams) (*booking.Request, error) {
	user, err := c.directory.FindUserByID(ctx, params.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	studio, err := c.directory.FindStudioByID(ctx, params.StudioID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStudioNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	if user.CustomerRef == "" {
		return nil, errs.Mark(errs.New("user has no payment customer reference"), errs.ErrValidationFailed)
	}

	fees := booking.CalculateFee(params.TotalCost, c.feePct)
	req, err := booking.NewRequest(booking.NewRequestParams{
		StudioID:   studio.ID,
		StudioName: studio.Name,
		RoomID:     params.RoomID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		Date:       params.Date,
		StartTime:  params.StartTime,
		EndTime:    params.EndTime,
		HourlyRate: params.HourlyRate,
		TotalCost:  params.TotalCost,
		Message:    params.Message,
	}, fees, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	intentID, err := c.gateway.Authorize(ctx, fees.TotalCents, user.CustomerRef, map[string]string{
		"userId":   user.ID,
		"studioId": studio.ID,
		"roomId":   params.RoomID,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentAuthFailed)
	}
	req.PaymentIntentID = intentID
	req.PaymentStatus = booking.PaymentAuthorized

	if err := c.requests.Append(ctx, req); err != nil {
		// The hold is orphaned on our side; release it best-effort so the
		// artist is not left with a dangling authorization.
		if cancelErr := c.gateway.Cancel(ctx, intentID); cancelErr != nil {
			c.logger.Warn("failed to release authorization after persist failure",
				slog.String("intent_id", intentID), slog.Any("error", cancelErr))
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}

	c.logger.Info("booking request created",
		slog.String("request_id", req.ID),
		slog.String("studio_id", req.StudioID),
		slog.String("intent_id", intentID),
	)
	return req, nil
}

// ConfirmRequest moves pending → confirmed: capture the hold, write the
// booking collection first, then remove the request. If the removal fails the
// request is visible in both collections, which a retried confirm resolves;
// the reverse order could lose the record entirely.
func (c *bookingCommandsImpl) ConfirmRequest(ctx context.Context, id string) (*booking.Booking, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	req, err := c.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// A fully migrated request lives only in the booking
			// collection; confirming it again is a repeat, not a miss.
			if _, findErr := c.bookings.FindByID(ctx, id); findErr == nil {
				return nil, errs.ErrAlreadyProcessed
			}
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	if !req.IsPending() {
		return nil, errs.ErrAlreadyProcessed
	}

	if err := c.checkSlotConflict(ctx, req); err != nil {
		return nil, err
	}

	// Recovery path: a previous confirm wrote the booking but failed to
	// remove the request. The payment is already captured; just finish the
	// migration.
	if existing, findErr := c.bookings.FindByID(ctx, id); findErr == nil {
		if removeErr := c.requests.Remove(ctx, id); removeErr != nil {
			return nil, errs.Mark(removeErr, errs.ErrPersistenceFailed)
		}
		c.logger.Info("completed interrupted migration", slog.String("request_id", id))
		return existing, nil
	}

	if req.PaymentIntentID != "" {
		if err := c.gateway.Capture(ctx, req.PaymentIntentID); err != nil {
			// No state change: the request stays pending and the caller is
			// told to retry.
			c.logger.Error("payment capture failed, confirm aborted",
				slog.String("request_id", id),
				slog.String("intent_id", req.PaymentIntentID),
			)
			return nil, errs.Mark(err, errs.ErrPaymentCaptureFailed)
		}
		req.PaymentStatus = booking.PaymentCaptured
	}

	confirmed := req.Confirmed(c.clock.Now())
	if err := c.bookings.Append(ctx, confirmed); err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	if err := c.requests.Remove(ctx, id); err != nil {
		// Booking persisted, request removal failed: detectable double
		// presence, recoverable by re-running confirm.
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}

	c.logger.Info("booking confirmed",
		slog.String("booking_id", confirmed.ID),
		slog.String("studio_id", confirmed.StudioID),
	)
	return &confirmed, nil
}

// DeclineRequest moves pending → rejected. The external cancel is
// best-effort: its failure is recorded on the record, never surfaced as an
// operation failure.
func (c *bookingCommandsImpl) DeclineRequest(ctx context.Context, id string, reason string) (*DeclineResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	req, err := c.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	if !req.IsPending() {
		return nil, errs.ErrAlreadyProcessed
	}

	cancelFailed := false
	if req.PaymentIntentID != "" {
		if cancelErr := c.gateway.Cancel(ctx, req.PaymentIntentID); cancelErr != nil {
			cancelFailed = true
			req.PaymentStatus = booking.PaymentCancelFailed
			c.logger.Warn("payment intent cancel failed, decline proceeds",
				slog.String("request_id", id),
				slog.String("intent_id", req.PaymentIntentID),
				slog.Any("error", cancelErr),
			)
		} else {
			req.PaymentStatus = booking.PaymentCanceled
		}
	}

	if err := req.Reject(reason, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrAlreadyProcessed)
	}
	if err := c.requests.Save(ctx, req); err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}

	c.logger.Info("booking request declined",
		slog.String("request_id", id),
		slog.String("reason", req.RejectionReason),
		slog.Bool("cancel_failed", cancelFailed),
	)
	return &DeclineResult{Request: req, CancelFailed: cancelFailed}, nil
}

// CancelBooking moves confirmed → cancelled. Refunds are an explicit future
// extension, not automatic.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id string) (*booking.Booking, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}
	if err := b.Cancel(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidState)
	}
	if err := c.bookings.Save(ctx, b); err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailed)
	}

	c.logger.Info("booking cancelled", slog.String("booking_id", id))
	return b, nil
}

// checkSlotConflict rejects a confirm that would double-book the same room
// (or, with no room, the studio) for an overlapping slot.
func (c *bookingCommandsImpl) checkSlotConflict(ctx context.Context, req *booking.Request) error {
	active, err := c.bookings.ListByStudio(ctx, req.StudioID)
	if err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailed)
	}
	now := c.clock.Now()
	for i := range active {
		other := &active[i]
		if other.ID == req.ID {
			continue
		}
		status := other.EffectiveStatus(now)
		if status != booking.StatusConfirmed {
			continue
		}
		if req.RoomID != "" && other.RoomID != "" && !strings.EqualFold(req.RoomID, other.RoomID) {
			continue
		}
		if req.Schedule().Overlaps(other.Schedule()) {
			return errs.ErrBookingConflict
		}
	}
	return nil
}
