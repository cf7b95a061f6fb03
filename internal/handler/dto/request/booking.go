package request

import (
	"strings"

	"studiobook/internal/usecase/commands"
)

type CreateBookingRequest struct {
	StudioID   string  `json:"studioId" binding:"required"`
	RoomID     string  `json:"roomId,omitempty"`
	Date       string  `json:"date" binding:"required"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    string  `json:"endTime" binding:"required"`
	HourlyRate float64 `json:"hourlyRate,omitempty"`
	TotalCost  float64 `json:"totalCost" binding:"required,gt=0"`
	Message    string  `json:"message,omitempty"`
}

func (r CreateBookingRequest) ToParams(userID string) commands.CreateRequestParams {
	return commands.CreateRequestParams{
		StudioID:   strings.TrimSpace(r.StudioID),
		RoomID:     strings.TrimSpace(r.RoomID),
		UserID:     userID,
		Date:       strings.TrimSpace(r.Date),
		StartTime:  strings.TrimSpace(r.StartTime),
		EndTime:    strings.TrimSpace(r.EndTime),
		HourlyRate: r.HourlyRate,
		TotalCost:  r.TotalCost,
		Message:    strings.TrimSpace(r.Message),
	}
}

type DeclineBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (r DeclineBookingRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}
