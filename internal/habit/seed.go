package habit

import (
	"fmt"
	"math/rand"
	"time"
)

// seedHabits are the predefined habits created by Seed.
var seedHabits = []struct {
	name        string
	periodicity Periodicity
}{
	{"Exercise", Daily},
	{"Code for 30 Mins", Daily},
	{"Read a Book", Daily},
	{"Go for a Run", Weekly},
	{"Clean Apartment", Weekly},
	{"Review Budget", Monthly},
}

// seedDays is how far back Seed generates completions: 4 weeks + 1 day.
const seedDays = 29

// Seed populates an empty store with predefined habits and four weeks of
// randomized completion history. It is a no-op when habits already exist.
// The rand source and reference time are injected so tests stay deterministic.
func Seed(s *Store, now time.Time, r *rand.Rand) (int, error) {
	existing, err := s.List()
	if err != nil {
		return 0, fmt.Errorf("checking existing habits: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	start := now.AddDate(0, 0, -(seedDays - 1))
	created := 0

	for _, sh := range seedHabits {
		id, err := s.Add(sh.name, sh.periodicity, now)
		if err != nil {
			return created, err
		}
		created++

		// Roll a completion chance for every day in the window. The odds
		// mirror how often each kind of habit realistically gets done:
		// daily 70%, weekly 20%, monthly 10% per day.
		var chance float64
		switch sh.periodicity {
		case Daily:
			chance = 0.7
		case Weekly:
			chance = 0.2
		case Monthly:
			chance = 0.1
		}

		for offset := 0; offset < seedDays; offset++ {
			if r.Float64() < chance {
				day := start.AddDate(0, 0, offset)
				if _, err := s.AddCompletion(id, day); err != nil {
					return created, err
				}
			}
		}
	}

	return created, nil
}
