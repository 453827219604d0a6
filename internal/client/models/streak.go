package models

import (
	"fmt"
	"slices"
	"time"
)

// dayLayout is the calendar-day format used throughout ("2024-01-31").
const dayLayout = "2006-01-02"

// StreakRecord tracks practice continuity. PracticeDates is always sorted
// ascending and duplicate-free; current/longest streaks are derived from
// consecutive-day gaps as dates are added.
type StreakRecord struct {
	CurrentStreak      int      `json:"currentStreak"`
	LongestStreak      int      `json:"longestStreak"`
	TotalDaysPracticed int      `json:"totalDaysPracticed"`
	PracticeDates      []string `json:"practiceDates"`
	LastPracticeDate   string   `json:"lastPracticeDate"`
	MilestonesAchieved []string `json:"milestonesAchieved"`
}

// Normalize replaces nil array fields with empty slices. Server responses
// may omit them, and downstream recompute code assumes non-nil.
func (s *StreakRecord) Normalize() {
	if s.PracticeDates == nil {
		s.PracticeDates = []string{}
	}
	if s.MilestonesAchieved == nil {
		s.MilestonesAchieved = []string{}
	}
}

// UpdateStreak records a completed practice for newDate (YYYY-MM-DD).
//
// A date already present is a no-op. Otherwise the date is appended,
// TotalDaysPracticed incremented, LastPracticeDate set and PracticeDates
// re-sorted. Streak recompute looks only at the whole-day gap from the
// previous LastPracticeDate: the first date ever sets both streaks to 1, a
// gap of one day extends the current streak, a larger gap resets it to 1,
// and a zero or negative gap leaves both streaks unchanged. The arithmetic
// assumes dates arrive in chronological order; backfilling an older date is
// stored and counted but does not rebuild streaks from history.
func (s *StreakRecord) UpdateStreak(newDate string) error {
	day, err := time.Parse(dayLayout, newDate)
	if err != nil {
		return fmt.Errorf("invalid practice date %q: %w", newDate, err)
	}

	if slices.Contains(s.PracticeDates, newDate) {
		return nil
	}

	prev := s.LastPracticeDate

	s.PracticeDates = append(s.PracticeDates, newDate)
	slices.Sort(s.PracticeDates)
	s.TotalDaysPracticed++
	s.LastPracticeDate = newDate

	if prev == "" {
		s.CurrentStreak = 1
		s.LongestStreak = 1
		return nil
	}

	prevDay, err := time.Parse(dayLayout, prev)
	if err != nil {
		return fmt.Errorf("invalid stored practice date %q: %w", prev, err)
	}

	gap := int(day.Sub(prevDay) / (24 * time.Hour))
	switch {
	case gap == 1:
		s.CurrentStreak++
		s.LongestStreak = max(s.LongestStreak, s.CurrentStreak)
	case gap > 1:
		s.CurrentStreak = 1
	}
	// gap <= 0: same day or out-of-order backfill, streaks untouched.

	return nil
}
