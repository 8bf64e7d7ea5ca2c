package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/store"
	"github.com/mfriesen/tend/internal/streak"
	"github.com/mfriesen/tend/internal/tui"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [name]",
	Short: "Check off a habit as completed",
	Long: `Record a completion for a habit, timestamped now. With no name, opens
an interactive picker over your habits (requires a terminal).

Completing a habit twice in the same period is fine — streaks count
periods, not completions.`,
	RunE: runDone,
}

func runDone(_ *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	hs := habit.NewStore(db.Conn())

	var h *habit.Habit
	if len(args) > 0 {
		h, err = hs.GetByName(strings.Join(args, " "))
		if err != nil {
			return err
		}
	} else {
		h, err = pickHabit(hs, "Which habit did you complete?")
		if err != nil {
			return err
		}
		if h == nil {
			return nil // canceled
		}
	}

	now := time.Now()
	if _, err := hs.AddCompletion(h.ID, now); err != nil {
		return err
	}

	completions, err := hs.Completions(h.ID)
	if err != nil {
		return err
	}
	current, err := streak.Ongoing(completions, h.Periodicity, now)
	if err != nil {
		return err
	}

	fmt.Printf("  %s %s checked off\n", ui.Success.Render("✓"), h.Name)
	fmt.Printf("    %s %s\n", ui.IconStreak, ui.Accent.Render(formatStreakCount(current)))
	fmt.Println()
	return nil
}

// pickHabit opens the interactive picker over all habits. Falls back to an
// error when stdin isn't a terminal (scripts must pass a name).
func pickHabit(hs *habit.Store, title string) (*habit.Habit, error) {
	habits, err := hs.List()
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return nil, fmt.Errorf("no habits yet — create one with %s", "`tend add`")
	}
	if !tui.IsTTY() {
		return nil, fmt.Errorf("no habit named — pass a name when not running interactively")
	}
	return tui.PickHabit(title, habits)
}
