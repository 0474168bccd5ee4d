package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prefrontal-labs/mindly-app/internal/spacedrep"
	"github.com/prefrontal-labs/mindly-app/internal/store"
	"github.com/prefrontal-labs/mindly-app/internal/ui/components"
	"github.com/prefrontal-labs/mindly-app/internal/ui/layout"
	"github.com/prefrontal-labs/mindly-app/internal/ui/theme"
)

const reviewBatchSize = 20

// DueCards returns the cards currently due for review.
func (s *Service) DueCards(ctx context.Context, limit int) ([]store.Flashcard, error) {
	return s.flashcards.Due(ctx, s.profile.UserID, s.now(), limit)
}

// ReviewCard applies one SM-2 review to a card and persists the new
// schedule.
func (s *Service) ReviewCard(ctx context.Context, card store.Flashcard, rating spacedrep.Rating) error {
	now := s.now()
	next := spacedrep.Review(spacedrep.Card{
		EaseFactor:   card.EaseFactor,
		IntervalDays: card.IntervalDays,
		Repetitions:  card.Repetitions,
		DueAt:        card.DueAt,
	}, rating, now)

	card.EaseFactor = next.EaseFactor
	card.IntervalDays = next.IntervalDays
	card.Repetitions = next.Repetitions
	card.DueAt = next.DueAt
	card.LastReviewedAt = &now

	if err := s.flashcards.UpdateSchedule(ctx, card); err != nil {
		return err
	}

	streak, err := s.streaks.Get(ctx, s.profile.UserID)
	if err == nil {
		s.advanceStreak(*streak)
	}
	return nil
}

// cardsLoadedMsg is sent when the due cards have been loaded.
type cardsLoadedMsg struct {
	Cards []store.Flashcard
	Err   error
}

// cardReviewedMsg is sent when a review has been persisted.
type cardReviewedMsg struct {
	Err error
}

var ratingOptions = []string{
	"Again (forgot it)",
	"Hard (barely)",
	"Good (got it)",
	"Easy (instant)",
}

// ReviewModel drives one flashcard review session.
type ReviewModel struct {
	svc *Service

	cards    []store.Flashcard
	index    int
	revealed bool
	rating   components.Choice
	done     bool

	errMsg string
	width  int
	height int
	ready  bool
}

// NewReviewModel creates the review model for the given service.
func NewReviewModel(svc *Service) *ReviewModel {
	return &ReviewModel{
		svc:    svc,
		rating: components.NewChoice("How well did you know it?", ratingOptions),
	}
}

func (m *ReviewModel) Init() tea.Cmd {
	return m.loadCards()
}

func (m *ReviewModel) loadCards() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cards, err := m.svc.DueCards(ctx, reviewBatchSize)
		return cardsLoadedMsg{Cards: cards, Err: err}
	}
}

func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case cardsLoadedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.cards = msg.Cards
		m.done = len(m.cards) == 0
		return m, nil

	case cardReviewedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.index++
		m.revealed = false
		m.rating = components.NewChoice("How well did you know it?", ratingOptions)
		if m.index >= len(m.cards) {
			m.done = true
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ReviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	if m.done {
		return m, tea.Quit
	}

	if !m.revealed {
		if msg.String() == "enter" || msg.String() == "space" {
			m.revealed = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.rating, cmd = m.rating.Update(msg)
	if m.rating.Submitted {
		card := m.cards[m.index]
		rating := spacedrep.Rating(m.rating.Value() + 1)
		return m, m.reviewCard(card, rating)
	}
	return m, cmd
}

func (m *ReviewModel) reviewCard(card store.Flashcard, rating spacedrep.Rating) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return cardReviewedMsg{Err: m.svc.ReviewCard(ctx, card, rating)}
	}
}

func (m *ReviewModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if !m.ready {
		return v
	}

	header := layout.RenderHeader("Review", "", 0, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	var content string
	switch {
	case m.errMsg != "":
		content = theme.Incorrect.Render("error: " + m.errMsg)
	case m.done:
		content = m.renderDone()
	case len(m.cards) == 0:
		content = theme.Hint.Render("\n  Loading cards...")
	default:
		content = m.renderCard()
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m *ReviewModel) renderCard() string {
	card := m.cards[m.index]

	bar := components.NewProgressBar(
		fmt.Sprintf("Card %d/%d", m.index+1, len(m.cards)),
		float64(m.index)/float64(len(m.cards)),
		false,
		m.width-8,
	)

	s := "\n  " + bar.View() + "\n\n"
	s += "  " + theme.Subtitle.Render(card.Concept) + "\n\n"
	s += theme.Card.Width(m.width - 8).Render(card.Front) + "\n\n"

	if m.revealed {
		s += theme.Card.Width(m.width-8).BorderForeground(theme.Secondary).Render(card.Back) + "\n\n"
		s += m.rating.View()
	} else {
		s += "  " + theme.Hint.Render("Press Enter to reveal")
	}

	return s
}

func (m *ReviewModel) renderDone() string {
	if len(m.cards) == 0 {
		return "\n  " + theme.Body.Render("No cards due. Nice work staying ahead!")
	}
	return "\n  " + theme.Correct.Render(fmt.Sprintf("Reviewed %d cards.", len(m.cards))) +
		"\n\n  " + theme.Hint.Render("Press any key to exit")
}

func (m *ReviewModel) keyHints() []layout.KeyHint {
	if m.done {
		return []layout.KeyHint{{Key: "any key", Description: "Exit"}}
	}
	if !m.revealed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reveal"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Rate"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}
