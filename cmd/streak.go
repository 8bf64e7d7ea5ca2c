package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/store"
	"github.com/mfriesen/tend/internal/streak"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak [name]",
	Short: "Show current and all-time streaks",
	Long: `Show streak statistics. With a habit name, its current streak and the
all-time best run with start and end periods. With no name, a summary
across every habit plus the overall best.

The current period gets a grace period: a daily habit not yet done today
keeps yesterday's streak alive until midnight.`,
	RunE: runStreak,
}

func runStreak(_ *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	hs := habit.NewStore(db.Conn())
	now := time.Now()

	if len(args) > 0 {
		h, err := hs.GetByName(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return showHabitStreak(hs, h, now)
	}
	return showAllStreaks(hs, now)
}

// showHabitStreak prints one habit's current streak and all-time best run.
func showHabitStreak(hs *habit.Store, h *habit.Habit, now time.Time) error {
	completions, err := hs.Completions(h.ID)
	if err != nil {
		return err
	}

	current, err := streak.Ongoing(completions, h.Periodicity, now)
	if err != nil {
		return err
	}
	best, err := streak.Longest(completions, h.Periodicity)
	if err != nil {
		return err
	}

	ui.Header(ui.IconStreak + " " + h.Name)
	ui.Kv("Period", h.Periodicity.Label())
	ui.Kv("Current", formatStreakCount(current))
	ui.Kv("All-time best", formatRun(best))
	fmt.Println()
	return nil
}

// showAllStreaks prints a summary line per habit and the overall best.
func showAllStreaks(hs *habit.Store, now time.Time) error {
	habits, err := hs.List()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("  No habits yet. Plant one with `tend add`.")
		return nil
	}

	completions, err := hs.AllCompletions()
	if err != nil {
		return err
	}

	ui.Header(ui.IconStreak + " Streaks")
	bestOverall := 0
	var bestName string
	for _, h := range habits {
		current, err := streak.ForHabit(h, completions, now)
		if err != nil {
			return err
		}
		longest, err := streak.LongestForHabit(h, completions)
		if err != nil {
			return err
		}
		if current > bestOverall {
			bestOverall = current
			bestName = h.Name
		}

		marker := "  "
		if current > 0 {
			marker = ui.IconStreak
		}
		fmt.Printf("  %s %-28s %s %s\n",
			marker,
			ui.Truncate(h.Name, 28),
			ui.Accent.Render(fmt.Sprintf("%3d", current)),
			ui.Muted.Render(fmt.Sprintf("(best %s, %s)", formatRun(longest), h.Periodicity.Label())),
		)
	}

	fmt.Println()
	if bestOverall > 0 {
		fmt.Printf("  %s Best ongoing: %s — %s\n",
			ui.IconBest, ui.Accent.Render(formatStreakCount(bestOverall)), bestName)
	} else {
		fmt.Println("  " + ui.Muted.Render("No ongoing streaks — today is a good day to start one."))
	}
	fmt.Println()
	return nil
}

// formatRun renders a longest-streak result, with bounds when it exists:
// "3 (2024-01-01 → 2024-01-03)" or "none yet".
func formatRun(r streak.Run) string {
	if r.Length == 0 {
		return "none yet"
	}
	if r.Start != nil && r.End != nil {
		if *r.Start == *r.End {
			return fmt.Sprintf("%d (%s)", r.Length, r.Start)
		}
		return fmt.Sprintf("%d (%s %s %s)", r.Length, r.Start, ui.IconArrow, r.End)
	}
	return fmt.Sprintf("%d", r.Length)
}
