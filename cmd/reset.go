package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/lingua/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's progress and exercise history",
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

		if err := s.Learners().Reset(context.Background(), userKey); err != nil {
			return fmt.Errorf("reset learner: %w", err)
		}

		fmt.Printf("Progress for user %d has been reset.\n", userKey)
		return nil
	},
}

func init() {
	resetCmd.Flags().Int64P("user", "u", 0, "Learner account id")
	_ = resetCmd.MarkFlagRequired("user")
}
