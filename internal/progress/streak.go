package progress

import "time"

// DateLayout is the stored format for exercise dates. Calendar days are
// taken in UTC so a streak does not depend on where the process runs.
const DateLayout = "2006-01-02"

// NextStreak computes the streak transition for an exercise recorded at
// now, given the current streak and the stored date of the last exercise.
// It returns the new streak and the date string to store.
//
// Same-day repeats leave the streak alone, an exercise exactly one day
// after the last extends it, and anything else (a gap, a future date, a
// date that fails to parse) starts over at 1.
func NextStreak(current int, lastDate string, now time.Time) (int, string) {
	today := now.UTC().Format(DateLayout)
	if lastDate == "" {
		return 1, today
	}

	last, err := time.Parse(DateLayout, lastDate)
	if err != nil {
		// Corrupt stored date. Recover by restarting the streak rather
		// than failing the whole update.
		return 1, today
	}

	yesterday := now.UTC().AddDate(0, 0, -1).Format(DateLayout)
	switch last.Format(DateLayout) {
	case today:
		return current, today
	case yesterday:
		return current + 1, today
	default:
		return 1, today
	}
}
