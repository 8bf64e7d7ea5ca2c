package cmd

import (
	"fmt"

	"github.com/mfriesen/tend/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tend's version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("tend " + version.Full())
	},
}
