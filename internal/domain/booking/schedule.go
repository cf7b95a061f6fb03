package booking

import (
	"errors"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

// Schedule is the temporal slot of a request or booking: a calendar date plus
// wall-clock start and end times, the way the records are stored.
type Schedule struct {
	Date      string
	StartTime string
	EndTime   string
}

func NewSchedule(date, startTime, endTime string) (Schedule, error) {
	s := Schedule{Date: date, StartTime: startTime, EndTime: endTime}
	start, err := s.StartDateTime()
	if err != nil {
		return Schedule{}, err
	}
	end, err := s.EndDateTime()
	if err != nil {
		return Schedule{}, err
	}
	if !end.After(start) {
		return Schedule{}, ErrInvalidSchedule
	}
	return s, nil
}

func (s Schedule) StartDateTime() (time.Time, error) {
	return combine(s.Date, s.StartTime)
}

func (s Schedule) EndDateTime() (time.Time, error) {
	return combine(s.Date, s.EndTime)
}

// Overlaps reports whether two schedules on the same date intersect.
// Malformed times never overlap; integrity validation handles those.
func (s Schedule) Overlaps(other Schedule) bool {
	if s.Date != other.Date {
		return false
	}
	aStart, err := s.StartDateTime()
	if err != nil {
		return false
	}
	aEnd, err := s.EndDateTime()
	if err != nil {
		return false
	}
	bStart, err := other.StartDateTime()
	if err != nil {
		return false
	}
	bEnd, err := other.EndDateTime()
	if err != nil {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func combine(date, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+"T"+TimeLayout, date+"T"+hhmm, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidSchedule
	}
	return t, nil
}
