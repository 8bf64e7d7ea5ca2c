package cmd

import (
	"fmt"
	"strings"

	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/store"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show the completion log",
	Long:  `List recorded completions, most recent first. With a name, only that habit's.`,
	RunE:  runHistory,
}

func runHistory(_ *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	hs := habit.NewStore(db.Conn())

	// Habit names for display, keyed by ID.
	habits, err := hs.List()
	if err != nil {
		return err
	}
	names := make(map[int]string, len(habits))
	for _, h := range habits {
		names[h.ID] = h.Name
	}

	var completions []habit.Completion
	var title string
	if len(args) > 0 {
		h, err := hs.GetByName(strings.Join(args, " "))
		if err != nil {
			return err
		}
		completions, err = hs.Completions(h.ID)
		if err != nil {
			return err
		}
		title = h.Name
	} else {
		completions, err = hs.AllCompletions()
		if err != nil {
			return err
		}
		title = "All habits"
	}

	if len(completions) == 0 {
		fmt.Println("  Nothing checked off yet.")
		return nil
	}

	ui.Header(ui.IconDone + " History — " + title)
	for _, c := range completions {
		name := names[c.HabitID]
		if name == "" {
			name = fmt.Sprintf("habit #%d", c.HabitID)
		}
		fmt.Printf("  %s  %s\n",
			ui.Muted.Render(c.CompletedAt.Format("2006-01-02 15:04")),
			name,
		)
	}
	fmt.Println()
	return nil
}
