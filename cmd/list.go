package cmd

import (
	"fmt"

	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/store"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var listPeriod string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show tracked habits",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listPeriod, "period", "p", "", "Only habits with this periodicity")
}

func runList(_ *cobra.Command, _ []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	hs := habit.NewStore(db.Conn())

	var habits []habit.Habit
	if listPeriod != "" {
		p, err := habit.ParsePeriodicity(listPeriod)
		if err != nil {
			return err
		}
		habits, err = hs.ListByPeriodicity(p)
		if err != nil {
			return err
		}
	} else {
		habits, err = hs.List()
		if err != nil {
			return err
		}
	}

	if len(habits) == 0 {
		if listPeriod != "" {
			fmt.Printf("  No %s habits.\n", listPeriod)
		} else {
			fmt.Println("  No habits yet. Plant one with `tend add`.")
		}
		return nil
	}

	ui.Header(ui.IconHabit + " Habits")
	nameWidth := ui.Width() - 30
	if nameWidth < 12 {
		nameWidth = 12
	}
	for _, h := range habits {
		name := ui.Truncate(h.Name, nameWidth)
		fmt.Printf("  %s %-*s %s %s\n",
			ui.Muted.Render(fmt.Sprintf("#%-3d", h.ID)),
			nameWidth, name,
			ui.Subtitle.Render(fmt.Sprintf("%-8s", h.Periodicity.Label())),
			ui.Muted.Render("since "+h.CreatedAt.Format("Jan 2, 2006")),
		)
	}
	fmt.Println()
	return nil
}
