package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/cashsim/feed"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Fetch and print the server's default configuration document.",
	RunE: func(_ *cobra.Command, _ []string) error {
		api := feed.NewAPI("http://" + serverAddr())

		cfg, err := api.FetchDefaultConfig(context.Background())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, string(out))

		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&playServerAddr, "server", "",
		"simulation server address (default $CASHSIM_SERVER or localhost:8080)")

	rootCmd.AddCommand(configCmd)
}
