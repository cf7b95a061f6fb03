package booking

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrMissingField = errors.New("missing required field")

// NewRequestParams carries the caller-supplied fields of a booking request.
// Payment authorization happens after construction; the factory only shapes
// and validates the record.
type NewRequestParams struct {
	StudioID   string
	StudioName string
	RoomID     string
	RoomName   string
	UserID     string
	UserName   string
	UserEmail  string
	Date       string
	StartTime  string
	EndTime    string
	HourlyRate float64
	TotalCost  float64
	Message    string
}

// FeeBreakdown is the platform-fee split applied on top of the studio's rate,
// in cents.
type FeeBreakdown struct {
	BaseCents  int64
	FeeCents   int64
	TotalCents int64
}

func CalculateFee(totalCostDollars float64, feePercent float64) FeeBreakdown {
	base := DollarsToCents(totalCostDollars)
	fee := int64(math.Round(float64(base) * feePercent / 100.0))
	return FeeBreakdown{
		BaseCents:  base,
		FeeCents:   fee,
		TotalCents: base + fee,
	}
}

func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100.0
}

// NewRequest validates params, applies the fee breakdown and returns a pending
// request with a collision-resistant identifier.
func NewRequest(params NewRequestParams, fees FeeBreakdown, now time.Time) (*Request, error) {
	for _, required := range []string{params.StudioID, params.RoomID, params.UserID, params.Date, params.StartTime, params.EndTime} {
		if required == "" {
			return nil, ErrMissingField
		}
	}
	if _, err := NewSchedule(params.Date, params.StartTime, params.EndTime); err != nil {
		return nil, err
	}

	sched := Schedule{Date: params.Date, StartTime: params.StartTime, EndTime: params.EndTime}
	start, _ := sched.StartDateTime()
	end, _ := sched.EndDateTime()

	return &Request{
		ID:            uuid.NewString(),
		StudioID:      params.StudioID,
		StudioName:    params.StudioName,
		RoomID:        params.RoomID,
		RoomName:      params.RoomName,
		UserID:        params.UserID,
		UserName:      params.UserName,
		UserEmail:     params.UserEmail,
		Date:          params.Date,
		StartTime:     params.StartTime,
		EndTime:       params.EndTime,
		DurationHours: end.Sub(start).Hours(),
		HourlyRate:    params.HourlyRate,
		TotalCost:     params.TotalCost,
		BaseAmount:    CentsToDollars(fees.BaseCents),
		PlatformFee:   CentsToDollars(fees.FeeCents),
		TotalAmount:   CentsToDollars(fees.TotalCents),
		Message:       params.Message,
		Status:        StatusPending.String(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
