package progress

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 15, 30, 0, 0, time.UTC)
}

func TestAdvance_FirstActivity(t *testing.T) {
	s := Advance(Streak{}, day(1))
	if s.Current != 1 {
		t.Errorf("current = %d, want 1", s.Current)
	}
	if s.Longest != 1 {
		t.Errorf("longest = %d, want 1", s.Longest)
	}
	if s.LastActiveDate != "2026-03-01" {
		t.Errorf("last active = %q, want 2026-03-01", s.LastActiveDate)
	}
}

func TestAdvance_SameDayIsNoOp(t *testing.T) {
	s := Advance(Streak{}, day(1))
	s2 := Advance(s, day(1).Add(4*time.Hour))
	if s2 != s {
		t.Errorf("same-day advance changed streak: %+v -> %+v", s, s2)
	}
}

func TestAdvance_ConsecutiveDaysExtend(t *testing.T) {
	s := Advance(Streak{}, day(1))
	s = Advance(s, day(2))
	s = Advance(s, day(3))
	if s.Current != 3 {
		t.Errorf("current = %d, want 3", s.Current)
	}
	if s.Longest != 3 {
		t.Errorf("longest = %d, want 3", s.Longest)
	}
}

func TestAdvance_GapResets(t *testing.T) {
	s := Advance(Streak{}, day(1))
	s = Advance(s, day(2))
	s = Advance(s, day(5))
	if s.Current != 1 {
		t.Errorf("current = %d, want 1 after gap", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("longest = %d, want 2 preserved", s.Longest)
	}
}

func TestAdvance_LongestSurvivesReset(t *testing.T) {
	s := Streak{Current: 5, Longest: 5, LastActiveDate: "2026-02-20"}
	s = Advance(s, day(1))
	if s.Current != 1 {
		t.Errorf("current = %d, want 1", s.Current)
	}
	if s.Longest != 5 {
		t.Errorf("longest = %d, want 5", s.Longest)
	}
}

func TestAdvance_AcrossMonthBoundary(t *testing.T) {
	s := Streak{Current: 1, Longest: 1, LastActiveDate: "2026-02-28"}
	s = Advance(s, day(1))
	if s.Current != 2 {
		t.Errorf("current = %d, want 2 across month boundary", s.Current)
	}
}
