package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/lingua/internal/store"
	"github.com/example/lingua/internal/tutor"
)

var reviewCmd = &cobra.Command{
	Use:   "review [text]",
	Short: "Get feedback on a piece of English writing",
	Long: `Review a piece of English writing: score, corrections, an
improved version, and recommendations.

With arguments, reviews the given text. Without arguments, reads the
text from stdin until EOF.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if text == "" {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read text: %w", err)
			}
			text = strings.TrimSpace(string(raw))
		}
		if text == "" {
			return fmt.Errorf("nothing to review: pass text as arguments or on stdin")
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
		feedback, err := tutor.New(buildProvider(ctx, s)).ReviewWriting(ctx, text)
		if err != nil {
			return err
		}

		fmt.Println(feedback)
		return nil
	},
}
