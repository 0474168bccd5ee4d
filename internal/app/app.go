package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
)

// Run starts the chat interface.
func Run(svc *Service) error {
	p := tea.NewProgram(NewChatModel(svc))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// RunReview starts the flashcard review interface.
func RunReview(svc *Service) error {
	p := tea.NewProgram(NewReviewModel(svc))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
