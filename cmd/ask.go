package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/lingua/internal/store"
	"github.com/example/lingua/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tutor a question",
	Long: `Ask the tutor a free-form question about English.

With arguments, asks a single question and exits. Without arguments,
starts an interactive session where follow-up questions keep the
conversation context. End the session with Ctrl-D.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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
		tut := tutor.New(buildProvider(ctx, s))
		conv := tut.NewConversation()

		if len(args) > 0 {
			answer, err := tut.Ask(ctx, conv, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		}

		fmt.Println("Ask away. Ctrl-D ends the session.")
		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			if err != nil {
				return fmt.Errorf("read question: %w", err)
			}

			question := strings.TrimSpace(line)
			if question == "" {
				continue
			}

			answer, err := tut.Ask(ctx, conv, question)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Printf("\n%s\n\n", answer)
		}
	},
}
