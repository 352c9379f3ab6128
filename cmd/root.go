package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/example/lingua/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "Adaptive English tutor engine",
	Long:  "Lingua — adaptive learner-progress and answer-evaluation engine for an English-tutoring assistant.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUA_DB env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGUA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
