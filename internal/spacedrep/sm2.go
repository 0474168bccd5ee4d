// Package spacedrep implements SM-2 scheduling for flashcard review.
package spacedrep

import (
	"math"
	"time"
)

// Rating grades a single review.
type Rating int

const (
	RatingAgain Rating = 1 // complete failure, start over
	RatingHard  Rating = 2 // recalled with serious difficulty
	RatingGood  Rating = 3 // recalled with some effort
	RatingEasy  Rating = 4 // perfect recall
)

// InitialEaseFactor is the ease assigned to new cards.
const InitialEaseFactor = 2.5

// MinEaseFactor is the floor below which ease never drops.
const MinEaseFactor = 1.3

// Card holds the scheduling state the algorithm operates on.
type Card struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	DueAt        time.Time
}

// NewCard returns a card due immediately.
func NewCard(now time.Time) Card {
	return Card{
		EaseFactor: InitialEaseFactor,
		DueAt:      now,
	}
}

// Review applies one SM-2 review and returns the updated card.
// Ratings below Good reset the repetition chain; the ease factor is
// adjusted on every review and never drops below MinEaseFactor.
func Review(c Card, r Rating, now time.Time) Card {
	if r < RatingAgain {
		r = RatingAgain
	}
	if r > RatingEasy {
		r = RatingEasy
	}

	q := float64(r)
	ease := c.EaseFactor + (0.1 - (4-q)*(0.08+(4-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	var interval, reps int
	if r < RatingGood {
		interval = 1
		reps = 0
	} else {
		reps = c.Repetitions + 1
		switch reps {
		case 1:
			interval = 1
		case 2:
			interval = 6
		default:
			interval = int(math.Round(float64(c.IntervalDays) * ease))
		}
	}

	return Card{
		EaseFactor:   ease,
		IntervalDays: interval,
		Repetitions:  reps,
		DueAt:        now.AddDate(0, 0, interval),
	}
}

// IsDue reports whether the card is due for review.
func (c Card) IsDue(now time.Time) bool {
	return !now.Before(c.DueAt)
}
