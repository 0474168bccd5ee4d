package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prefrontal-labs/mindly-app/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		state, err := s.SessionRepo().Load(ctx, profile.UserID, profile.ExamDomain)
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}
		streak, err := s.StreakRepo().Get(ctx, profile.UserID)
		if err != nil {
			return fmt.Errorf("load streak: %w", err)
		}
		cardCounts, err := s.FlashcardRepo().CountByConcept(ctx, profile.UserID)
		if err != nil {
			return fmt.Errorf("count flashcards: %w", err)
		}

		fmt.Printf("Exam domain:  %s\n", state.ExamDomain)
		fmt.Printf("Sessions:     %d\n", state.SessionCount)
		fmt.Printf("Streak:       %d day(s), longest %d\n", streak.Current, streak.Longest)
		if state.ConfidenceCalibration != "" {
			fmt.Printf("Calibration:  %s\n", state.ConfidenceCalibration)
		}

		if len(state.ConceptMastery) == 0 {
			fmt.Println("\nNo concepts tracked yet. Start a session with `mindly`.")
			return nil
		}

		concepts := make([]string, 0, len(state.ConceptMastery))
		for c := range state.ConceptMastery {
			concepts = append(concepts, c)
		}
		sort.Strings(concepts)

		fmt.Println("\nConcept Mastery")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-30s  %-10s  %5s  %5s  %5s  %-12s\n",
			"Concept", "Level", "OK", "Miss", "Cards", "Last Tested")
		fmt.Println(strings.Repeat("─", 78))

		for _, c := range concepts {
			e := state.ConceptMastery[c]
			last := "never"
			if !e.LastTested.IsZero() {
				last = humanizeSince(time.Since(e.LastTested))
			}
			fmt.Printf("%-30s  %-10s  %5d  %5d  %5d  %-12s\n",
				truncate(c, 30), e.Level, e.SuccessCount, e.FailureCount, cardCounts[c], last)
		}

		if len(state.Misconceptions) > 0 {
			fmt.Println("\nLogged Misconceptions")
			fmt.Println(strings.Repeat("─", 78))
			for _, m := range state.Misconceptions {
				fmt.Printf("  [%s] %s (session %d)\n", m.Concept, m.Misconception, m.SessionNumber)
			}
		}

		return nil
	},
}

// humanizeSince renders an elapsed duration at day granularity.
func humanizeSince(d time.Duration) string {
	days := int(d.Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
