package progress

import (
	"testing"
	"time"
)

var noon = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		lastDate string
		want     int
	}{
		{"first ever exercise", 0, "", 1},
		{"same day keeps streak", 4, "2026-08-29", 4},
		{"next day extends", 4, "2026-08-28", 5},
		{"two day gap resets", 9, "2026-08-27", 1},
		{"long gap resets", 30, "2026-01-01", 1},
		{"future date resets", 5, "2026-09-10", 1},
		{"corrupt date resets", 7, "yesterday-ish", 1},
		{"corrupt partial date resets", 7, "2026-08", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, date := NextStreak(tt.current, tt.lastDate, noon)
			if got != tt.want {
				t.Errorf("NextStreak(%d, %q) = %d, want %d", tt.current, tt.lastDate, got, tt.want)
			}
			if date != "2026-08-29" {
				t.Errorf("stored date = %q, want today", date)
			}
		})
	}
}

// Repeated same-day calls never inflate the streak beyond the first call
// of that day.
func TestNextStreakSameDayIdempotent(t *testing.T) {
	streak, date := NextStreak(0, "", noon)
	for range 10 {
		streak, date = NextStreak(streak, date, noon)
	}
	if streak != 1 {
		t.Errorf("streak after repeated same-day calls = %d, want 1", streak)
	}
}

// A call per day for a week builds a streak of seven.
func TestNextStreakDailyPractice(t *testing.T) {
	streak, date := 0, ""
	for day := range 7 {
		streak, date = NextStreak(streak, date, noon.AddDate(0, 0, day))
	}
	if streak != 7 {
		t.Errorf("streak after 7 consecutive days = %d, want 7", streak)
	}
}

// The day boundary is UTC: one minute before and after midnight UTC land
// on different calendar days.
func TestNextStreakUTCBoundary(t *testing.T) {
	beforeMidnight := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	afterMidnight := time.Date(2026, 8, 29, 0, 1, 0, 0, time.UTC)

	streak, date := NextStreak(0, "", beforeMidnight)
	streak, _ = NextStreak(streak, date, afterMidnight)
	if streak != 2 {
		t.Errorf("streak across UTC midnight = %d, want 2", streak)
	}
}

func TestNextStreakNonUTCClock(t *testing.T) {
	// 2026-08-29 01:00 +05:00 is still 2026-08-28 in UTC.
	local := time.Date(2026, 8, 29, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	_, date := NextStreak(0, "", local)
	if date != "2026-08-28" {
		t.Errorf("stored date = %q, want the UTC calendar day", date)
	}
}
