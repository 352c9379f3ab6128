package leveling

import (
	"math"
	"testing"
)

func TestCalibrateDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		total    int
		want     float64
	}{
		{"cold start zero history", 0.0, 0, 0.3},
		{"cold start regardless of accuracy", 1.0, 4, 0.3},
		{"high accuracy ramps with volume", 0.9, 12, 0.65},
		{"high accuracy capped at 0.9", 0.95, 1000, 0.9},
		{"high accuracy exact cap point", 0.9, 42, 0.9},
		{"low accuracy eases down", 0.5, 25, 0.35},
		{"low accuracy floored at 0.2", 0.3, 1000, 0.2},
		{"middle band holds steady", 0.7, 100, 0.5},
		{"just above low boundary", 0.51, 100, 0.5},
		{"just below high boundary", 0.89, 100, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalibrateDifficulty(tt.accuracy, tt.total)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalibrateDifficulty(%v, %d) = %v, want %v", tt.accuracy, tt.total, got, tt.want)
			}
		})
	}
}

// Output stays within [0.2, 0.9] for every input once past cold start,
// and is exactly 0.3 for any accuracy below 5 attempts.
func TestCalibrateDifficultyBounds(t *testing.T) {
	for total := 0; total <= 600; total += 7 {
		for acc := -0.2; acc <= 1.2; acc += 0.05 {
			got := CalibrateDifficulty(acc, total)
			if total < 5 {
				if got != ColdStartDifficulty {
					t.Fatalf("CalibrateDifficulty(%v, %d) = %v, want cold-start %v", acc, total, got, ColdStartDifficulty)
				}
				continue
			}
			if got < MinDifficulty || got > MaxDifficulty {
				t.Fatalf("CalibrateDifficulty(%v, %d) = %v, outside [%v, %v]", acc, total, got, MinDifficulty, MaxDifficulty)
			}
		}
	}
}
