package leveling

// Level is a learner's proficiency tier, derived from accuracy and attempt
// volume. Levels are ordered: beginner < intermediate < advanced.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Rank returns the ordinal position of the level (beginner = 0).
// Unknown levels rank as beginner.
func (l Level) Rank() int {
	switch l {
	case Advanced:
		return 2
	case Intermediate:
		return 1
	default:
		return 0
	}
}

// Valid reports whether l is one of the three known tiers.
func (l Level) Valid() bool {
	return l == Beginner || l == Intermediate || l == Advanced
}

// Classify maps accuracy and attempt volume to a proficiency tier.
//
// Both the accuracy and the volume gate must pass: a highly accurate
// learner with few attempts stays at a lower tier. Fewer than 10 attempts
// is always beginner, regardless of accuracy. Thresholds are inclusive and
// advanced is checked before intermediate.
func Classify(accuracy float64, totalExercises int) Level {
	accuracy = clamp01(accuracy)
	if totalExercises < 0 {
		totalExercises = 0
	}

	switch {
	case totalExercises < 10:
		return Beginner
	case accuracy >= 0.85 && totalExercises >= 50:
		return Advanced
	case accuracy >= 0.70 && totalExercises >= 20:
		return Intermediate
	default:
		return Beginner
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
