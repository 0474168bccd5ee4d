package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prefrontal-labs/mindly-app/ent"
	"github.com/prefrontal-labs/mindly-app/ent/flashcard"
)

// flashcardRepo implements FlashcardRepo backed by ent.
type flashcardRepo struct {
	client *ent.Client
}

func (r *flashcardRepo) Create(ctx context.Context, card Flashcard) (*Flashcard, error) {
	builder := r.client.Flashcard.Create().
		SetUserID(card.UserID).
		SetConcept(card.Concept).
		SetFront(card.Front).
		SetBack(card.Back)
	if card.EaseFactor > 0 {
		builder.SetEaseFactor(card.EaseFactor)
	}
	if !card.DueAt.IsZero() {
		builder.SetDueAt(card.DueAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}
	return fromEntFlashcard(row), nil
}

func (r *flashcardRepo) Due(ctx context.Context, userID string, now time.Time, limit int) ([]Flashcard, error) {
	q := r.client.Flashcard.Query().
		Where(
			flashcard.UserID(userID),
			flashcard.DueAtLTE(now),
		).
		Order(ent.Asc(flashcard.FieldDueAt))
	if limit > 0 {
		q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due flashcards: %w", err)
	}

	out := make([]Flashcard, len(rows))
	for i, row := range rows {
		out[i] = *fromEntFlashcard(row)
	}
	return out, nil
}

func (r *flashcardRepo) UpdateSchedule(ctx context.Context, card Flashcard) error {
	builder := r.client.Flashcard.UpdateOneID(card.ID).
		SetEaseFactor(card.EaseFactor).
		SetIntervalDays(card.IntervalDays).
		SetRepetitions(card.Repetitions).
		SetDueAt(card.DueAt)
	if card.LastReviewedAt != nil {
		builder.SetLastReviewedAt(*card.LastReviewedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update flashcard schedule: %w", err)
	}
	return nil
}

func (r *flashcardRepo) CountByConcept(ctx context.Context, userID string) (map[string]int, error) {
	rows, err := r.client.Flashcard.Query().
		Where(flashcard.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query flashcards: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Concept]++
	}
	return counts, nil
}

func fromEntFlashcard(row *ent.Flashcard) *Flashcard {
	return &Flashcard{
		ID:             row.ID,
		UserID:         row.UserID,
		Concept:        row.Concept,
		Front:          row.Front,
		Back:           row.Back,
		EaseFactor:     row.EaseFactor,
		IntervalDays:   row.IntervalDays,
		Repetitions:    row.Repetitions,
		DueAt:          row.DueAt,
		LastReviewedAt: row.LastReviewedAt,
	}
}
