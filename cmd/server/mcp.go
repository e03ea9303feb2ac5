package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-economy/internal/handlers/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve read-only economy tools over MCP stdio",
	Long: `Open the configured journal, rebuild the economy and expose read-only
query tools over the Model Context Protocol on stdin/stdout. Logs go to stderr.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer rt.Close()

	server, err := mcp.NewServer(&mcp.Config{EconomyService: rt.service, Version: version})
	if err != nil {
		return err
	}
	return mcp.ServeStdio(ctx, server)
}
