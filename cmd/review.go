package cmd

import (
	"fmt"

	"github.com/prefrontal-labs/mindly-app/internal/app"
	"github.com/prefrontal-labs/mindly-app/internal/store"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review due flashcards",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		profile, err := profileFromEnv()
		if err != nil {
			return err
		}

		// Flashcard review is fully offline; no provider or engine needed.
		svc := app.NewService(st, nil, nil, profile)
		return app.RunReview(svc)
	},
}
