package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prefrontal-labs/mindly-app/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase tutoring state and chat history",
	Long:  "Deletes the stored knowledge state and chat transcript for the current user. Flashcards, streaks, and LLM event logs are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("This erases your tutoring progress. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		profile, err := profileFromEnv()
		if err != nil {
			return err
		}

		ctx := context.Background()
		if err := s.SessionRepo().Delete(ctx, profile.UserID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if err := s.MessageRepo().Clear(ctx, profile.UserID); err != nil {
			return fmt.Errorf("clear transcript: %w", err)
		}

		fmt.Println("Tutoring state reset. Flashcards and streaks were kept.")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
