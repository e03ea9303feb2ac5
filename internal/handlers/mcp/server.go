package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy"
)

// Config holds dependencies for the MCP server
type Config struct {
	EconomyService economy.Service
	Version        string
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil || c.EconomyService == nil {
		return errors.InvalidArgument("economy service is required")
	}
	return nil
}

// NewServer builds an MCP server with every economy tool registered
func NewServer(cfg *Config) (*mcp.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	mcp.AddTool(server, GetCharacterTool(), GetCharacterHandler(cfg.EconomyService))
	mcp.AddTool(server, GetBalancesTool(), GetBalancesHandler(cfg.EconomyService))
	mcp.AddTool(server, GetStakeTool(), GetStakeHandler(cfg.EconomyService))
	mcp.AddTool(server, GetParamsTool(), GetParamsHandler(cfg.EconomyService))
	return server, nil
}

// ServeStdio runs the server over stdin/stdout until ctx ends
func ServeStdio(ctx context.Context, server *mcp.Server) error {
	log.Info().Msg("MCP server listening on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "mcp server stopped")
	}
	return nil
}
