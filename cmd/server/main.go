// Package main is the entry point for the economy server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-economy/cmd/server/client"
)

// version is set at build time
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "rpg-economy",
	Short: "RPG economy gRPC server",
	Long:  `rpg-economy runs the character, reward, governance and staking ledgers behind a gRPC API.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
