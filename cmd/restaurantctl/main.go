package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "restaurantctl",
		Short: "Operator tasks for the restaurant API.",
		Long: `restaurantctl runs maintenance against the same MongoDB the API uses:
reseeding the menu, creating indexes and provisioning staff accounts.
Connection settings come from the environment or a .env file.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newIndexesCmd())
	rootCmd.AddCommand(newAccountCmd())

	return rootCmd
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
