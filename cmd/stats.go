package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/lingua/internal/curriculum"
	"github.com/example/lingua/internal/progress"
	"github.com/example/lingua/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress and statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userKey, _ := cmd.Flags().GetInt64("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		prog, err := s.Learners().GetProgress(ctx, userKey)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if prog == nil {
			fmt.Printf("No progress recorded for user %d yet.\n", userKey)
			return nil
		}

		stats, err := s.Learners().AverageStats(ctx, userKey)
		if err != nil {
			return fmt.Errorf("aggregate history: %w", err)
		}

		fmt.Printf("User:            %d\n", prog.UserKey)
		if prog.Username != "" {
			fmt.Printf("Name:            %s\n", prog.Username)
		}
		fmt.Printf("Level:           %s\n", prog.Level)
		fmt.Printf("Exercises:       %d (%d correct)\n", prog.TotalExercises, prog.CorrectAnswers)
		fmt.Printf("Accuracy:        %.0f%%\n", prog.Accuracy*100)
		fmt.Printf("Streak:          %d day(s)\n", prog.StreakDays)
		if prog.LastExerciseDate != "" {
			fmt.Printf("Last exercise:   %s\n", prog.LastExerciseDate)
		}
		fmt.Printf("Avg difficulty:  %.2f\n", stats.AvgDifficulty)
		fmt.Printf("Avg time:        %.0fs\n", stats.AvgTimeSec)

		if len(prog.WeakTopics) > 0 {
			fmt.Printf("Weak topics:     %s\n", strings.Join(prog.WeakTopics, ", "))
		}

		recs := curriculum.Recommend(prog.Level, prog.WeakTopics)
		fmt.Printf("Next topics:     %s\n", strings.Join(recs, ", "))
		fmt.Println()
		fmt.Println(encourageText(progress.Encourage(prog.StreakDays, prog.Accuracy)))

		return nil
	},
}

// encourageText maps an encouragement band to display copy.
func encourageText(e progress.Encouragement) string {
	switch e {
	case progress.EncourageStreakTwoWeeks:
		return "Two weeks straight. Outstanding discipline!"
	case progress.EncourageStreakWeek:
		return "A full week of practice. Keep the momentum!"
	case progress.EncourageStreakBuilding:
		return "Your streak is building. Come back tomorrow!"
	case progress.EncourageAccuracyStellar:
		return "Stellar accuracy. Time for harder material."
	case progress.EncourageAccuracySolid:
		return "Solid accuracy. You are making real progress."
	default:
		return "Every exercise counts. Keep going!"
	}
}

func init() {
	statsCmd.Flags().Int64P("user", "u", 0, "Learner account id")
	_ = statsCmd.MarkFlagRequired("user")
}
