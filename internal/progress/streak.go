// Package progress tracks daily study streaks.
package progress

import "time"

// DateLayout is the calendar-date format stored for streaks.
const DateLayout = "2006-01-02"

// Streak is the daily-activity counter for one user.
type Streak struct {
	Current        int
	Longest        int
	LastActiveDate string // YYYY-MM-DD, "" if never active
}

// Advance records activity on the given day and returns the updated
// streak. A second visit on the same day is a no-op; activity on the
// day after the last active date extends the streak; any larger gap
// resets it to 1.
func Advance(s Streak, now time.Time) Streak {
	today := now.Format(DateLayout)
	if s.LastActiveDate == today {
		return s
	}

	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if s.LastActiveDate == yesterday {
		s.Current++
	} else {
		s.Current = 1
	}

	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastActiveDate = today
	return s
}
