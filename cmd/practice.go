package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/lingua/internal/answers"
	"github.com/example/lingua/internal/curriculum"
	"github.com/example/lingua/internal/exercise"
	"github.com/example/lingua/internal/leveling"
	"github.com/example/lingua/internal/llm"
	"github.com/example/lingua/internal/progress"
	"github.com/example/lingua/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run a single practice exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		userKey, _ := cmd.Flags().GetInt64("user")
		username, _ := cmd.Flags().GetString("name")
		typeFlag, _ := cmd.Flags().GetString("type")

		exType := exercise.Type(typeFlag)
		if !exType.Valid() {
			return fmt.Errorf("unknown exercise type %q (grammar, vocab, translate)", typeFlag)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		gen := exercise.New(buildProvider(ctx, s), exercise.DefaultConfig())
		tracker := progress.NewTracker(s.Learners())

		prog, err := s.Learners().GetProgress(ctx, userKey)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if prog == nil {
			prog = progress.NewUserProgress(userKey)
		}

		difficulty := leveling.CalibrateDifficulty(prog.Accuracy, prog.TotalExercises)
		topics := curriculum.Recommend(prog.Level, prog.WeakTopics)

		ex, err := gen.Generate(ctx, exercise.GenerateInput{
			Type:       exType,
			Topic:      topics[0],
			Level:      prog.Level,
			Difficulty: difficulty,
			WeakTopics: prog.WeakTopics,
		})
		if err != nil {
			return fmt.Errorf("generate exercise: %w", err)
		}

		fmt.Printf("\n%s\n%s\n\n%s\n\n> ", ex.Title, ex.Instruction, ex.Question)

		start := time.Now()
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}
		answer = strings.TrimSpace(answer)
		elapsed := int(time.Since(start).Seconds())

		result := answers.New().Evaluate(answer, ex.Answer)
		switch result.Feedback {
		case answers.FeedbackCorrect:
			fmt.Println("\nCorrect!")
		case answers.FeedbackPartial:
			fmt.Printf("\nAlmost. The full answer is: %s\n", ex.Answer)
		default:
			fmt.Printf("\nNot quite. The answer is: %s\n", ex.Answer)
		}
		if ex.Explanation != "" {
			fmt.Println(ex.Explanation)
		}

		updated, err := tracker.Record(ctx, progress.RecordInput{
			UserKey:       userKey,
			Username:      username,
			ExerciseType:  string(ex.Type),
			Topic:         ex.Topic,
			Question:      ex.Question,
			UserAnswer:    answer,
			CorrectAnswer: ex.Answer,
			IsCorrect:     result.Correct,
			Difficulty:    difficulty,
			TimeSpentSec:  elapsed,
			NewLevel:      leveling.Classify(nextAccuracy(prog, result.Correct), prog.TotalExercises+1),
		})
		if err != nil {
			return fmt.Errorf("record result: %w", err)
		}

		fmt.Printf("\nAccuracy %.0f%%, streak %d day(s), level %s.\n",
			updated.Accuracy*100, updated.StreakDays, updated.Level)
		return nil
	},
}

// buildProvider wires the configured provider with event logging. When no
// provider is configured the session still works: generation falls back to
// canned exercises.
func buildProvider(ctx context.Context, s *store.Store) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "warning: no LLM provider configured, using built-in exercises")
			return llm.NewMockProvider()
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, s.Events())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM provider unavailable (%v), using built-in exercises\n", err)
		return llm.NewMockProvider()
	}
	return provider
}

// nextAccuracy projects the accuracy after this answer so the level
// classifier sees the post-exercise stats.
func nextAccuracy(prog *progress.UserProgress, correct bool) float64 {
	total := prog.TotalExercises + 1
	right := prog.CorrectAnswers
	if correct {
		right++
	}
	return float64(right) / float64(total)
}

func init() {
	practiceCmd.Flags().Int64P("user", "u", 0, "Learner account id")
	practiceCmd.Flags().String("name", "", "Learner display name (stored on first use)")
	practiceCmd.Flags().StringP("type", "t", "grammar", "Exercise type: grammar, vocab, translate")
	_ = practiceCmd.MarkFlagRequired("user")
}
