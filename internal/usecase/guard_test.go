//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/directory"
	"studiobook/internal/pkg/clock"
	"studiobook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	users   []directory.User
	studios []directory.Studio
	err     error
	calls   int
}

func (p *stubProvider) ListUsers(_ context.Context) ([]directory.User, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.users, nil
}

func (p *stubProvider) ListStudios(_ context.Context) ([]directory.Studio, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.studios, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func validRecord(id string) booking.Request {
	return booking.Request{
		ID:        id,
		UserID:    "u1",
		StudioID:  "s1",
		Date:      "2026-09-10",
		StartTime: "10:00",
		EndTime:   "12:00",
		Status:    "pending",
	}
}

func newGuard(provider usecase.ReferenceProvider, clk clock.Clock) *usecase.IntegrityGuard {
	return usecase.NewIntegrityGuard(provider, clk, time.Minute, quietLogger())
}

func TestIntegrityGuardIsValid(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{
		users:   []directory.User{{ID: "u1"}},
		studios: []directory.Studio{{ID: "s1"}},
	}
	guard := newGuard(provider, clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))

	cases := []struct {
		name   string
		mutate func(*booking.Request)
		want   bool
	}{
		{name: "fully valid", mutate: func(*booking.Request) {}, want: true},
		{name: "uppercase status accepted", mutate: func(r *booking.Request) { r.Status = "CONFIRMED" }, want: true},
		{name: "single-l canceled accepted", mutate: func(r *booking.Request) { r.Status = "canceled" }, want: true},
		{name: "missing id", mutate: func(r *booking.Request) { r.ID = "" }, want: false},
		{name: "unknown user", mutate: func(r *booking.Request) { r.UserID = "ghost" }, want: false},
		{name: "empty user", mutate: func(r *booking.Request) { r.UserID = "" }, want: false},
		{name: "unknown studio", mutate: func(r *booking.Request) { r.StudioID = "ghost" }, want: false},
		{name: "missing date", mutate: func(r *booking.Request) { r.Date = "" }, want: false},
		{name: "missing start time", mutate: func(r *booking.Request) { r.StartTime = "" }, want: false},
		{name: "missing end time", mutate: func(r *booking.Request) { r.EndTime = "" }, want: false},
		{name: "unknown status", mutate: func(r *booking.Request) { r.Status = "archived" }, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord("r1")
			tc.mutate(&rec)
			assert.Equal(t, tc.want, guard.IsValid(ctx, rec))
		})
	}
}

func TestIntegrityGuardCaching(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	provider := &stubProvider{
		users:   []directory.User{{ID: "u1"}},
		studios: []directory.Studio{{ID: "s1"}},
	}
	guard := newGuard(provider, clk)

	rec := validRecord("r1")
	require.True(t, guard.IsValid(ctx, rec))
	require.True(t, guard.IsValid(ctx, rec))
	assert.Equal(t, 1, provider.calls, "cache should serve the second check")

	clk.Advance(2 * time.Minute)
	require.True(t, guard.IsValid(ctx, rec))
	assert.Equal(t, 2, provider.calls, "expired cache should trigger a rebuild")
}

func TestIntegrityGuardProviderFailure(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	provider := &stubProvider{err: errors.New("io failure")}
	guard := newGuard(provider, clk)

	// Empty-set fallback invalidates everything instead of trusting blindly
	assert.False(t, guard.IsValid(ctx, validRecord("r1")))
}

func TestFilterValid(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{
		users:   []directory.User{{ID: "u1"}},
		studios: []directory.Studio{{ID: "s1"}},
	}
	guard := newGuard(provider, clock.NewMockClock(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))

	bad := validRecord("r2")
	bad.UserID = "ghost"
	in := []booking.Request{validRecord("r1"), bad, validRecord("r3")}

	out := usecase.FilterValid(guard, ctx, in)
	require.Len(t, out, 2)
	assert.Equal(t, "r1", out[0].ID)
	assert.Equal(t, "r3", out[1].ID)
	assert.Equal(t, int64(1), guard.DroppedCount())

	t.Run("idempotent on valid output", func(t *testing.T) {
		again := usecase.FilterValid(guard, ctx, out)
		assert.Equal(t, out, again)
		assert.Equal(t, int64(1), guard.DroppedCount())
	})
}
