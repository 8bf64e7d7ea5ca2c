package streak

import (
	"slices"
	"time"

	"github.com/mfriesen/tend/internal/habit"
)

// Run is a longest streak together with its bounding periods.
// Start and End are nil when Length is 0 (no completions at all).
type Run struct {
	Length int
	Start  *PeriodKey
	End    *PeriodKey
}

// Ongoing returns the current streak length anchored at now.
//
// The current period gets a grace period: if it hasn't been completed yet,
// the streak counts from the previous period instead — not doing it *yet*
// isn't a break. Only the single period at the head of the walk is forgiven;
// any older gap ends the streak.
func Ongoing(completions []habit.Completion, p habit.Periodicity, now time.Time) (int, error) {
	keys, err := keySet(completions, p)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	check, err := NewPeriodKey(now, p)
	if err != nil {
		return 0, err
	}
	if _, ok := keys[check]; !ok {
		check = check.Prev()
		if _, ok := keys[check]; !ok {
			return 0, nil
		}
	}

	streak := 0
	for {
		if _, ok := keys[check]; !ok {
			break
		}
		streak++
		check = check.Prev()
	}
	return streak, nil
}

// Longest returns the longest streak ever observed, with its start and end
// periods. Unlike Ongoing it is not anchored at now — a streak broken long
// ago still counts. Ties keep the earliest streak.
func Longest(completions []habit.Completion, p habit.Periodicity) (Run, error) {
	keys, err := keySet(completions, p)
	if err != nil {
		return Run{}, err
	}
	if len(keys) == 0 {
		return Run{}, nil
	}

	sorted := make([]PeriodKey, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	slices.SortFunc(sorted, func(a, b PeriodKey) int {
		return a.Start().Compare(b.Start())
	})

	var best Run
	runStart := sorted[0]
	runLen := 1

	// closeOut ends the running streak at end and keeps it if strictly better.
	closeOut := func(end PeriodKey) {
		if runLen > best.Length {
			s, e := runStart, end
			best = Run{Length: runLen, Start: &s, End: &e}
		}
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Follows(sorted[i-1]) {
			runLen++
			continue
		}
		closeOut(sorted[i-1])
		runStart = sorted[i]
		runLen = 1
	}
	// The terminal run isn't closed by the loop.
	closeOut(sorted[len(sorted)-1])

	return best, nil
}

// ForHabit returns the ongoing streak for one habit, filtering completions
// to that habit first.
func ForHabit(h habit.Habit, completions []habit.Completion, now time.Time) (int, error) {
	return Ongoing(filterByHabit(completions, h.ID), h.Periodicity, now)
}

// LongestForHabit returns the all-time longest streak for one habit.
func LongestForHabit(h habit.Habit, completions []habit.Completion) (Run, error) {
	return Longest(filterByHabit(completions, h.ID), h.Periodicity)
}

// MaxAcrossHabits returns the best ongoing streak over all habits.
// Returns 0 for an empty habit list.
func MaxAcrossHabits(habits []habit.Habit, completions []habit.Completion, now time.Time) (int, error) {
	maxStreak := 0
	for _, h := range habits {
		s, err := ForHabit(h, completions, now)
		if err != nil {
			return 0, err
		}
		if s > maxStreak {
			maxStreak = s
		}
	}
	return maxStreak, nil
}

// keySet dedups completions into the set of period keys they cover.
// All streak math runs on this set — never on raw timestamps or counts.
func keySet(completions []habit.Completion, p habit.Periodicity) (map[PeriodKey]struct{}, error) {
	keys := make(map[PeriodKey]struct{}, len(completions))
	for _, c := range completions {
		k, err := NewPeriodKey(c.CompletedAt, p)
		if err != nil {
			return nil, err
		}
		keys[k] = struct{}{}
	}
	return keys, nil
}

// filterByHabit returns only the completions belonging to habitID.
func filterByHabit(completions []habit.Completion, habitID int) []habit.Completion {
	var out []habit.Completion
	for _, c := range completions {
		if c.HabitID == habitID {
			out = append(out, c)
		}
	}
	return out
}
