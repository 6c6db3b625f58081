// file: internals/features/sessions/sessions/service/occurrence_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	schedModel "tutorku_backend/internals/features/sessions/schedules/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday itself", date(2024, time.January, 1), date(2024, time.January, 1)},
		{"midweek wednesday", date(2024, time.January, 3), date(2024, time.January, 1)},
		{"saturday", date(2024, time.January, 6), date(2024, time.January, 1)},
		{"sunday belongs to the week behind it", date(2024, time.January, 7), date(2024, time.January, 1)},
		{"sunday across a year boundary", date(2023, time.December, 31), date(2023, time.December, 25)},
		{"tuesday across a year boundary", date(2024, time.December, 31), date(2024, time.December, 30)},
		{"time of day is dropped", time.Date(2024, time.January, 3, 23, 59, 0, 0, time.UTC), date(2024, time.January, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MondayOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("MondayOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("MondayOfWeek(%v) landed on %v", tt.in, got.Weekday())
			}
		})
	}
}

func TestNthWeekdayOnOrAfter(t *testing.T) {
	monday := date(2024, time.January, 1)

	tests := []struct {
		name       string
		weekday    Weekday
		weekOffset int
		want       time.Time
	}{
		{"monday week 0", Monday, 0, date(2024, time.January, 1)},
		{"tuesday week 0", Tuesday, 0, date(2024, time.January, 2)},
		{"saturday week 0", Saturday, 0, date(2024, time.January, 6)},
		{"sunday lands at the end of the week", Sunday, 0, date(2024, time.January, 7)},
		{"monday week 1", Monday, 1, date(2024, time.January, 8)},
		{"sunday week 1", Sunday, 1, date(2024, time.January, 14)},
		{"thursday week 4", Thursday, 4, date(2024, time.February, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NthWeekdayOnOrAfter(monday, tt.weekday, tt.weekOffset)
			if !got.Equal(tt.want) {
				t.Errorf("NthWeekdayOnOrAfter(%v, %d, %d) = %v, want %v",
					monday, tt.weekday, tt.weekOffset, got, tt.want)
			}
		})
	}
}

func TestNthWeekdayOnOrAfter_YearBoundary(t *testing.T) {
	// Monday 2024-12-30: the week spills into 2025.
	monday := date(2024, time.December, 30)

	if got, want := NthWeekdayOnOrAfter(monday, Wednesday, 0), date(2025, time.January, 1); !got.Equal(want) {
		t.Errorf("wednesday = %v, want %v", got, want)
	}
	if got, want := NthWeekdayOnOrAfter(monday, Sunday, 0), date(2025, time.January, 5); !got.Equal(want) {
		t.Errorf("sunday = %v, want %v", got, want)
	}
}

func TestParseClockString(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"18:00", ClockTime{18, 0}, false},
		{"09:30", ClockTime{9, 30}, false},
		{"00:00", ClockTime{0, 0}, false},
		{"23:59", ClockTime{23, 59}, false},
		{"07:15:00", ClockTime{7, 15}, false}, // legacy seconds suffix
		{"25:00", ClockTime{}, true},
		{"12:60", ClockTime{}, true},
		{"noon", ClockTime{}, true},
		{"", ClockTime{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockString(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClockString(%q): expected error", tt.in)
				}
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Errorf("ParseClockString(%q): error %v is not ErrInvalidTimeFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClockString(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClockString(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func mkSchedule(dow int, start, end string) schedModel.WeeklyScheduleModel {
	return schedModel.WeeklyScheduleModel{
		WeeklyScheduleID:        uuid.New(),
		WeeklyScheduleClassID:   uuid.New(),
		WeeklyScheduleDayOfWeek: dow,
		WeeklyScheduleStartTime: start,
		WeeklyScheduleEndTime:   end,
		WeeklyScheduleIsActive:  true,
	}
}

func TestPlanOccurrences_SingleSchedule(t *testing.T) {
	// Every Tuesday 18:00-20:00, two weeks from Monday 2024-01-01.
	scheds := []schedModel.WeeklyScheduleModel{mkSchedule(2, "18:00", "20:00")}
	monday := date(2024, time.January, 1)

	got, err := PlanOccurrences(scheds, monday, 2)
	if err != nil {
		t.Fatalf("PlanOccurrences: %v", err)
	}
	wantStarts := []time.Time{
		time.Date(2024, time.January, 2, 18, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 9, 18, 0, 0, 0, time.UTC),
	}
	if len(got) != len(wantStarts) {
		t.Fatalf("got %d occurrences, want %d", len(got), len(wantStarts))
	}
	for i, occ := range got {
		if !occ.StartAt.Equal(wantStarts[i]) {
			t.Errorf("occurrence %d start = %v, want %v", i, occ.StartAt, wantStarts[i])
		}
		if want := wantStarts[i].Add(2 * time.Hour); !occ.EndAt.Equal(want) {
			t.Errorf("occurrence %d end = %v, want %v", i, occ.EndAt, want)
		}
		if occ.Schedule == nil || occ.Schedule.WeeklyScheduleID != scheds[0].WeeklyScheduleID {
			t.Errorf("occurrence %d not linked back to its schedule", i)
		}
	}
}

func TestPlanOccurrences_MultipleSchedulesSorted(t *testing.T) {
	// Tue 18:00 + Thu 09:00: output interleaves in time order, not
	// schedule order.
	scheds := []schedModel.WeeklyScheduleModel{
		mkSchedule(4, "09:00", "10:00"), // Thursday
		mkSchedule(2, "18:00", "20:00"), // Tuesday
	}
	monday := date(2024, time.January, 1)

	got, err := PlanOccurrences(scheds, monday, 2)
	if err != nil {
		t.Fatalf("PlanOccurrences: %v", err)
	}
	wantStarts := []time.Time{
		time.Date(2024, time.January, 2, 18, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 9, 18, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 11, 9, 0, 0, 0, time.UTC),
	}
	if len(got) != len(wantStarts) {
		t.Fatalf("got %d occurrences, want %d", len(got), len(wantStarts))
	}
	for i, occ := range got {
		if !occ.StartAt.Equal(wantStarts[i]) {
			t.Errorf("occurrence %d start = %v, want %v", i, occ.StartAt, wantStarts[i])
		}
	}
}

func TestPlanOccurrences_OvernightRollsToNextDay(t *testing.T) {
	scheds := []schedModel.WeeklyScheduleModel{mkSchedule(5, "22:00", "01:00")} // Friday night
	monday := date(2024, time.January, 1)

	got, err := PlanOccurrences(scheds, monday, 1)
	if err != nil {
		t.Fatalf("PlanOccurrences: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(got))
	}
	wantStart := time.Date(2024, time.January, 5, 22, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.January, 6, 1, 0, 0, 0, time.UTC)
	if !got[0].StartAt.Equal(wantStart) {
		t.Errorf("start = %v, want %v", got[0].StartAt, wantStart)
	}
	if !got[0].EndAt.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", got[0].EndAt, wantEnd)
	}
}

func TestPlanOccurrences_LongerHorizonIsSuperset(t *testing.T) {
	scheds := []schedModel.WeeklyScheduleModel{
		mkSchedule(2, "18:00", "20:00"),
		mkSchedule(0, "10:00", "11:30"), // Sunday
	}
	monday := date(2024, time.January, 1)

	short, err := PlanOccurrences(scheds, monday, 4)
	if err != nil {
		t.Fatalf("PlanOccurrences(4): %v", err)
	}
	long, err := PlanOccurrences(scheds, monday, 8)
	if err != nil {
		t.Fatalf("PlanOccurrences(8): %v", err)
	}
	if len(short) != 8 || len(long) != 16 {
		t.Fatalf("got %d/%d occurrences, want 8/16", len(short), len(long))
	}
	// Every occurrence in a week < 4 precedes every occurrence in a
	// week >= 4, so the short plan is a prefix of the long one.
	for i := range short {
		if !short[i].StartAt.Equal(long[i].StartAt) || !short[i].EndAt.Equal(long[i].EndAt) {
			t.Errorf("occurrence %d differs: short=%v long=%v", i, short[i].StartAt, long[i].StartAt)
		}
	}
}

func TestPlanOccurrences_Errors(t *testing.T) {
	monday := date(2024, time.January, 1)

	t.Run("non-positive weeks", func(t *testing.T) {
		for _, weeks := range []int{0, -1} {
			if _, err := PlanOccurrences([]schedModel.WeeklyScheduleModel{mkSchedule(1, "10:00", "11:00")}, monday, weeks); err == nil {
				t.Errorf("weeks=%d: expected error", weeks)
			}
		}
	})

	t.Run("day of week out of range", func(t *testing.T) {
		if _, err := PlanOccurrences([]schedModel.WeeklyScheduleModel{mkSchedule(7, "10:00", "11:00")}, monday, 1); err == nil {
			t.Error("expected error for day_of_week=7")
		}
	})

	t.Run("malformed start time", func(t *testing.T) {
		_, err := PlanOccurrences([]schedModel.WeeklyScheduleModel{mkSchedule(1, "later", "11:00")}, monday, 1)
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("error %v is not ErrInvalidTimeFormat", err)
		}
	})

	t.Run("malformed end time", func(t *testing.T) {
		_, err := PlanOccurrences([]schedModel.WeeklyScheduleModel{mkSchedule(1, "10:00", "midnight")}, monday, 1)
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("error %v is not ErrInvalidTimeFormat", err)
		}
	})
}

func TestPlanOccurrences_EmptySchedules(t *testing.T) {
	got, err := PlanOccurrences(nil, date(2024, time.January, 1), 4)
	if err != nil {
		t.Fatalf("PlanOccurrences: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d occurrences, want 0", len(got))
	}
}
