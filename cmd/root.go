package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mfriesen/tend/internal/analytics"
	"github.com/mfriesen/tend/internal/config"
	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/store"
	"github.com/mfriesen/tend/internal/streak"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tend",
	Short: "Grow habits, keep streaks",
	Long:  `tend — a small, local habit tracker. Check habits off, watch streaks grow.`,
	RunE:  runDashboard,
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		fireAnalytics(topLevelCommand(cmd))
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// fireAnalytics sends an anonymous analytics ping in the background.
// It's a no-op if analytics are disabled or the store can't be opened.
func fireAnalytics(command string) {
	cfg, err := config.Load()
	if err != nil {
		return
	}
	if !cfg.Analytics.IsEnabled() {
		return
	}

	db, err := store.Open()
	if err != nil {
		return
	}

	endpoint := os.Getenv("TEND_ANALYTICS_ENDPOINT")
	if endpoint == "" {
		endpoint = analytics.DefaultEndpoint
	}

	// One-time privacy notice (stderr to avoid contaminating stdout)
	if analytics.ShouldShowNotice(db.Conn()) {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, ui.Muted.Render("  tend sends anonymous usage stats (command names, version, OS) to help"))
		fmt.Fprintln(os.Stderr, ui.Muted.Render("  improve the tool. No personal data — not even habit names — is collected."))
		fmt.Fprintf(os.Stderr, "  Opt out anytime: %s\n", ui.Accent.Render("tend config set analytics false"))
		fmt.Fprintln(os.Stderr)
		analytics.MarkNoticeShown(db.Conn())
	}

	// Fire-and-forget: the goroutine outlives this function but is bounded by
	// the HTTP client timeout (2s). The main process exits normally.
	go func() {
		defer db.Close()
		analytics.Ping(db.Conn(), command, cfg.Analytics.IsEnabled(), endpoint)
	}()
}

// topLevelCommand extracts the top-level command name from a Cobra command.
// For example, "tend streak habit" returns "streak", and "tend" returns "tend".
func topLevelCommand(cmd *cobra.Command) string {
	parts := strings.Fields(cmd.CommandPath())
	if len(parts) >= 2 {
		return parts[1] // First word after "tend"
	}
	return parts[0] // Root command itself
}

// runDashboard shows the at-a-glance status when you just type `tend`.
func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println(ui.Greet(cfg.User.Name))
	fmt.Println()

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	hs := habit.NewStore(db.Conn())
	habits, err := hs.List()
	if err != nil {
		return fmt.Errorf("listing habits: %w", err)
	}

	if len(habits) == 0 {
		fmt.Println("  No habits yet. Plant one!")
		fmt.Println()
		fmt.Printf("  Try %s, or %s for sample data.\n",
			ui.Accent.Render(`tend add "Exercise" --period daily`),
			ui.Accent.Render("tend seed"))
		fmt.Println()
		return nil
	}

	now := time.Now()

	// Today's check-offs for daily habits.
	var dailyTotal, dailyDone int
	for _, h := range habits {
		if h.Periodicity != habit.Daily {
			continue
		}
		dailyTotal++
		done, err := hs.CompletedOn(h.ID, now)
		if err != nil {
			return fmt.Errorf("checking today's completions: %w", err)
		}
		if done {
			dailyDone++
		}
	}

	completions, err := hs.AllCompletions()
	if err != nil {
		return fmt.Errorf("loading completions: %w", err)
	}
	best, err := streak.MaxAcrossHabits(habits, completions, now)
	if err != nil {
		return fmt.Errorf("computing best streak: %w", err)
	}

	ui.Kv(ui.IconHabit+" Habits", fmt.Sprintf("%d tracked", len(habits)))
	if dailyTotal > 0 {
		ui.Kv(ui.IconDone+" Today", fmt.Sprintf("%d of %d daily done", dailyDone, dailyTotal))
	}
	ui.Kv(ui.IconStreak+" Best streak", formatStreakCount(best))
	ui.Kv("  📅 Date", now.Format("Monday, January 2"))

	if dailyTotal > 0 && dailyDone < dailyTotal {
		ui.Tip("`tend done` to check something off.")
	} else {
		ui.Tip("`tend streak` to see how your habits are growing.")
	}

	fmt.Println()
	return nil
}

// formatStreakCount renders a streak length with its period word, e.g. "5 periods".
func formatStreakCount(n int) string {
	if n == 1 {
		return "1 period"
	}
	return fmt.Sprintf("%d periods", n)
}
