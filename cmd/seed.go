package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/store"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty database with sample habits",
	Long: `Create six predefined habits with four weeks of randomized completion
history — handy for trying tend out. Does nothing if habits already exist.`,
	RunE: runSeed,
}

func runSeed(_ *cobra.Command, _ []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	hs := habit.NewStore(db.Conn())
	created, err := habit.Seed(hs, time.Now(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return fmt.Errorf("seeding: %w", err)
	}

	if created == 0 {
		fmt.Println("  Database already has habits — nothing seeded.")
		return nil
	}

	fmt.Printf("  %s Seeded %d habits with 4 weeks of history\n", ui.Success.Render("✓"), created)
	ui.Tip("`tend streak` to see what grew.")
	fmt.Println()
	return nil
}
