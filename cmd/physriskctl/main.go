// physriskctl is a small operator CLI for the physrisk API: mint a session
// token, run data queries from JSON files and fetch rendered tiles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL   string
	accessToken string
)

func main() {
	root := &cobra.Command{
		Use:          "physriskctl",
		Short:        "Operator CLI for the physrisk API",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8081", "base URL of the API server")
	root.PersistentFlags().StringVar(&accessToken, "token", os.Getenv("PHYSRISK_TOKEN"), "session token (defaults to PHYSRISK_TOKEN)")

	root.AddCommand(newTokenCmd())
	root.AddCommand(newHazardsCmd())
	root.AddCommand(newAssetsCmd())
	root.AddCommand(newTilesCmd())
	root.AddCommand(newResetCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
