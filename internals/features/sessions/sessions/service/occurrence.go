// file: internals/features/sessions/sessions/service/occurrence.go
package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	schedModel "tutorku_backend/internals/features/sessions/schedules/model"
)

var (
	// ErrNoActiveSchedule: the class has no active weekly schedule to expand.
	ErrNoActiveSchedule = errors.New("class has no active weekly schedule")
	// ErrInvalidTimeFormat: a schedule carries a malformed HH:MM string.
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

/* =========================
   Weekday & clock helpers
========================= */

// Weekday follows the stored day_of_week convention: 0=Sunday .. 6=Saturday.
// Note the mismatch with the Monday-anchored week used for expansion; the
// translation lives in a single place, nthWeekdayOnOrAfter.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (w Weekday) Valid() bool { return w >= Sunday && w <= Saturday }

// MondayOfWeek returns midnight of the Monday of t's ISO week, in t's
// location.
func MondayOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	// time.Weekday: Sunday=0 .. Saturday=6; Monday-anchored offset
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -back)
}

// NthWeekdayOnOrAfter maps (monday anchor, stored weekday, week offset)
// to a calendar date. Within a Monday-anchored week, Sunday (0) falls at
// the end, so the day offset is (weekday+6)%7: Monday=0 .. Sunday=6.
func NthWeekdayOnOrAfter(monday time.Time, weekday Weekday, weekOffset int) time.Time {
	return monday.AddDate(0, 0, weekOffset*7+(int(weekday)+6)%7)
}

// ClockTime is a wall-clock time of day parsed from an "HH:MM" string.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockString accepts "HH:MM" (and tolerates "HH:MM:SS", which some
// legacy rows carry).
func ParseClockString(s string) (ClockTime, error) {
	if t, err := time.Parse("15:04", s); err == nil {
		return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
	}
	return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// At combines the clock time with a calendar date in loc.
func (ct ClockTime) At(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), ct.Hour, ct.Minute, 0, 0, loc)
}

/* =========================
   Planning
========================= */

// PlannedOccurrence is one computed (not yet persisted) session slot.
type PlannedOccurrence struct {
	Schedule *schedModel.WeeklyScheduleModel
	StartAt  time.Time
	EndAt    time.Time
}

// PlanOccurrences expands the given schedules over [0, weeks) weeks from
// the Monday anchor. Pure: no clock, no storage. The result is sorted by
// StartAt, so planning the same inputs twice yields the same plan, and a
// longer horizon yields a superset of a shorter one.
//
// Per legacy behavior, end_time earlier than start_time is not rejected;
// the end rolls over to the next day.
func PlanOccurrences(schedules []schedModel.WeeklyScheduleModel, mondayAnchor time.Time, weeks int) ([]PlannedOccurrence, error) {
	if weeks <= 0 {
		return nil, fmt.Errorf("weeks must be positive, got %d", weeks)
	}

	out := make([]PlannedOccurrence, 0, weeks*len(schedules))
	loc := mondayAnchor.Location()

	for i := range schedules {
		sched := &schedules[i]

		wd := Weekday(sched.WeeklyScheduleDayOfWeek)
		if !wd.Valid() {
			return nil, fmt.Errorf("schedule %s: day_of_week out of range: %d",
				sched.WeeklyScheduleID, sched.WeeklyScheduleDayOfWeek)
		}
		startTOD, err := ParseClockString(sched.WeeklyScheduleStartTime)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", sched.WeeklyScheduleID, err)
		}
		endTOD, err := ParseClockString(sched.WeeklyScheduleEndTime)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", sched.WeeklyScheduleID, err)
		}

		for w := 0; w < weeks; w++ {
			day := NthWeekdayOnOrAfter(mondayAnchor, wd, w)
			startAt := startTOD.At(day, loc)
			endAt := endTOD.At(day, loc)
			if endAt.Before(startAt) {
				endAt = endAt.Add(24 * time.Hour)
			}
			out = append(out, PlannedOccurrence{
				Schedule: sched,
				StartAt:  startAt,
				EndAt:    endAt,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out, nil
}
