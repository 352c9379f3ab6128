package leveling

// Difficulty bounds for calibrated output.
const (
	MinDifficulty       = 0.2
	MaxDifficulty       = 0.9
	ColdStartDifficulty = 0.3
)

// CalibrateDifficulty maps current stats to a difficulty scalar in [0,1]
// for the next exercise.
//
// Below 5 attempts there is not enough signal, so the cold-start constant
// applies. High accuracy ramps difficulty up slowly with volume, capped at
// 0.9; low accuracy eases it down with volume, floored at 0.2; the middle
// band holds at 0.5. The steps at the 0.5 and 0.9 accuracy boundaries are
// intentional, not smoothed.
func CalibrateDifficulty(accuracy float64, totalExercises int) float64 {
	accuracy = clamp01(accuracy)
	if totalExercises < 0 {
		totalExercises = 0
	}

	switch {
	case totalExercises < 5:
		return ColdStartDifficulty
	case accuracy >= 0.9:
		return min(MaxDifficulty, 0.55+float64(totalExercises)/120.0)
	case accuracy <= 0.5:
		return max(MinDifficulty, 0.45-float64(totalExercises)/250.0)
	default:
		return 0.5
	}
}
