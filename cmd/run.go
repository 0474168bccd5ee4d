package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prefrontal-labs/mindly-app/internal/app"
	"github.com/prefrontal-labs/mindly-app/internal/llm"
	"github.com/prefrontal-labs/mindly-app/internal/store"
	"github.com/prefrontal-labs/mindly-app/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the tutoring service, and launches the
// chat TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY, or OPENROUTER_API_KEY and try again.")
		return err
	}

	profile, err := profileFromEnv()
	if err != nil {
		return err
	}

	engine := tutor.NewEngine(provider, tutor.DefaultCallConfig())
	svc := app.NewService(st, provider, engine, profile)
	return app.Run(svc)
}

// profileFromEnv assembles the student profile from MINDLY_* env vars.
// A stable anonymous user ID is generated on first run when MINDLY_USER
// is unset.
func profileFromEnv() (app.Profile, error) {
	p := app.Profile{
		UserID:      os.Getenv("MINDLY_USER"),
		StudentName: os.Getenv("MINDLY_NAME"),
		ExamDomain:  os.Getenv("MINDLY_EXAM"),
	}

	if p.UserID == "" {
		id, err := loadOrCreateUserID()
		if err != nil {
			return app.Profile{}, fmt.Errorf("resolve user ID: %w", err)
		}
		p.UserID = id
	}

	if raw := os.Getenv("MINDLY_EXAM_DATE"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return app.Profile{}, fmt.Errorf("MINDLY_EXAM_DATE must be YYYY-MM-DD: %w", err)
		}
		p.ExamDate = &t
	}

	return p, nil
}

// loadOrCreateUserID reads the persisted anonymous user ID, generating
// and storing one next to the database on first use.
func loadOrCreateUserID() (string, error) {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return "", err
	}
	idPath := filepath.Join(filepath.Dir(dbPath), "user_id")

	if b, err := os.ReadFile(idPath); err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			return id, nil
		}
	}

	id := uuid.NewString()
	if err := os.WriteFile(idPath, []byte(id+"\n"), 0o644); err != nil {
		return "", err
	}
	return id, nil
}
