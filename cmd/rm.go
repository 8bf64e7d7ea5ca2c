package cmd

import (
	"fmt"
	"strings"

	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/store"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm [name]",
	Aliases: []string{"delete"},
	Short:   "Stop tracking a habit",
	Long:    `Delete a habit and its entire completion history. With no name, opens the picker.`,
	RunE:    runRm,
}

func runRm(_ *cobra.Command, args []string) error {
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
		h, err = pickHabit(hs, "Which habit should go?")
		if err != nil {
			return err
		}
		if h == nil {
			return nil // canceled
		}
	}

	if err := hs.Delete(h.ID); err != nil {
		return err
	}

	fmt.Printf("  %s %s and its history removed\n", ui.Success.Render("✓"), h.Name)
	fmt.Println()
	return nil
}
