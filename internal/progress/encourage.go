package progress

// Encouragement is a deterministic motivation band derived from streak and
// accuracy. The wording shown per band is a presentation concern.
type Encouragement string

const (
	EncourageStreakTwoWeeks  Encouragement = "streak-two-weeks"
	EncourageStreakWeek      Encouragement = "streak-week"
	EncourageStreakBuilding  Encouragement = "streak-building"
	EncourageAccuracyStellar Encouragement = "accuracy-stellar"
	EncourageAccuracySolid   Encouragement = "accuracy-solid"
	EncourageKeepGoing       Encouragement = "keep-going"
)

// Encourage picks the motivation band for the given stats. Streak
// milestones outrank accuracy ones.
func Encourage(streakDays int, accuracy float64) Encouragement {
	switch {
	case streakDays >= 14:
		return EncourageStreakTwoWeeks
	case streakDays >= 7:
		return EncourageStreakWeek
	case streakDays >= 3:
		return EncourageStreakBuilding
	case accuracy >= 0.9:
		return EncourageAccuracyStellar
	case accuracy >= 0.7:
		return EncourageAccuracySolid
	default:
		return EncourageKeepGoing
	}
}
