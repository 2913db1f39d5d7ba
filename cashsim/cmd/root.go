// Package cmd provides the command-line interface for cashsim.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "cashsim",
	Short: "Cashsim watches a simulated network of cash machines, pacing " +
		"the replay of the event feed.",
	Long: `Cashsim connects to a cash machine simulation server, starts a ` +
		`simulation from its default configuration, and paces the replay of ` +
		`the delivered event batches. A small monitoring server exposes ` +
		`playback control and the projected machine state.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env file is fine.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
