package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/mfriesen/tend/internal/config"
	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/store"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var addPeriod string

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Start tracking a new habit",
	Long: `Create a habit to track. The period controls how often it's due:
daily, weekly (ISO weeks, Monday–Sunday), or monthly.

Examples:
  tend add "Exercise"
  tend add "Go for a Run" --period weekly
  tend add "Review Budget" -p m`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addPeriod, "period", "p", "", "How often: daily (d), weekly (w), monthly (m)")
}

func runAdd(_ *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	periodStr := addPeriod
	if periodStr == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		periodStr = cfg.Defaults.Period
	}
	p, err := habit.ParsePeriodicity(periodStr)
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	hs := habit.NewStore(db.Conn())
	id, err := hs.Add(name, p, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("  %s Habit planted %s\n", ui.Success.Render("✓"), ui.Accent.Render(fmt.Sprintf("#%d", id)))
	fmt.Printf("    %s %s\n", name, ui.Muted.Render("("+p.Label()+")"))
	fmt.Println()
	return nil
}
