package spacedrep

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewCard_DueImmediately(t *testing.T) {
	c := NewCard(testNow)
	if !c.IsDue(testNow) {
		t.Error("expected new card to be due immediately")
	}
	if c.EaseFactor != InitialEaseFactor {
		t.Errorf("ease = %v, want %v", c.EaseFactor, InitialEaseFactor)
	}
}

func TestReview_FirstGoodReview(t *testing.T) {
	c := Review(NewCard(testNow), RatingGood, testNow)
	if c.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", c.IntervalDays)
	}
	if c.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", c.Repetitions)
	}
	if got := c.DueAt; !got.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("due = %v, want %v", got, testNow.AddDate(0, 0, 1))
	}
}

func TestReview_SecondGoodReview(t *testing.T) {
	c := Review(NewCard(testNow), RatingGood, testNow)
	c = Review(c, RatingGood, testNow)
	if c.IntervalDays != 6 {
		t.Errorf("interval = %d, want 6", c.IntervalDays)
	}
	if c.Repetitions != 2 {
		t.Errorf("repetitions = %d, want 2", c.Repetitions)
	}
}

func TestReview_ThirdReviewMultipliesByEase(t *testing.T) {
	c := Review(NewCard(testNow), RatingGood, testNow)
	c = Review(c, RatingGood, testNow)
	ease := c.EaseFactor
	c = Review(c, RatingGood, testNow)

	// Ease shifts before the interval multiplication.
	wantEase := ease + (0.1 - 1*(0.08+1*0.02))
	if math.Abs(c.EaseFactor-wantEase) > 1e-9 {
		t.Errorf("ease = %v, want %v", c.EaseFactor, wantEase)
	}
	want := int(math.Round(6 * c.EaseFactor))
	if c.IntervalDays != want {
		t.Errorf("interval = %d, want %d", c.IntervalDays, want)
	}
	if c.Repetitions != 3 {
		t.Errorf("repetitions = %d, want 3", c.Repetitions)
	}
}

func TestReview_EasyRaisesEase(t *testing.T) {
	c := Review(NewCard(testNow), RatingEasy, testNow)
	want := InitialEaseFactor + 0.1
	if math.Abs(c.EaseFactor-want) > 1e-9 {
		t.Errorf("ease = %v, want %v", c.EaseFactor, want)
	}
}

func TestReview_AgainResetsChain(t *testing.T) {
	c := Review(NewCard(testNow), RatingGood, testNow)
	c = Review(c, RatingGood, testNow)
	c = Review(c, RatingAgain, testNow)
	if c.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1 after failure", c.IntervalDays)
	}
	if c.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0 after failure", c.Repetitions)
	}
}

func TestReview_HardResetsButKeepsEasePenalty(t *testing.T) {
	start := NewCard(testNow)
	c := Review(start, RatingHard, testNow)
	if c.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", c.Repetitions)
	}
	want := InitialEaseFactor + (0.1 - 2*(0.08+2*0.02))
	if math.Abs(c.EaseFactor-want) > 1e-9 {
		t.Errorf("ease = %v, want %v", c.EaseFactor, want)
	}
}

func TestReview_EaseNeverBelowFloor(t *testing.T) {
	c := NewCard(testNow)
	for range 20 {
		c = Review(c, RatingAgain, testNow)
	}
	if c.EaseFactor != MinEaseFactor {
		t.Errorf("ease = %v, want floor %v", c.EaseFactor, MinEaseFactor)
	}
}

func TestReview_RatingClamped(t *testing.T) {
	low := Review(NewCard(testNow), Rating(0), testNow)
	if low.IntervalDays != 1 || low.Repetitions != 0 {
		t.Errorf("rating 0 should behave as Again, got %+v", low)
	}

	high := Review(NewCard(testNow), Rating(9), testNow)
	want := Review(NewCard(testNow), RatingEasy, testNow)
	if high.EaseFactor != want.EaseFactor || high.IntervalDays != want.IntervalDays {
		t.Errorf("rating 9 should behave as Easy, got %+v want %+v", high, want)
	}
}

func TestIsDue(t *testing.T) {
	c := Card{DueAt: testNow}
	if !c.IsDue(testNow) {
		t.Error("expected due at exact time")
	}
	if c.IsDue(testNow.Add(-time.Minute)) {
		t.Error("expected not due before due time")
	}
	if !c.IsDue(testNow.Add(time.Hour)) {
		t.Error("expected due after due time")
	}
}
