// Package client provides commands that call a running economy server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/pkg/idgen"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	principal  string

	requestIDs = idgen.NewUUID("cli")
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running economy server",
	Long:  `Client commands make real gRPC requests; mutating commands act as --principal.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&principal, "principal", "", "Caller identity sent as "+economyv1alpha1.PrincipalHeader)

	// Player commands
	ClientCmd.AddCommand(mintCmd)
	ClientCmd.AddCommand(transferCmd)
	ClientCmd.AddCommand(evolveCmd)
	ClientCmd.AddCommand(dungeonCmd)
	ClientCmd.AddCommand(stakeCmd)
	ClientCmd.AddCommand(unstakeCmd)

	// Owner commands
	ClientCmd.AddCommand(setEvolutionCostCmd)
	ClientCmd.AddCommand(setDungeonRewardCmd)
	ClientCmd.AddCommand(grantCmd)

	// Queries
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(balanceCmd)
	ClientCmd.AddCommand(stakeInfoCmd)
	ClientCmd.AddCommand(paramsCmd)
}

// createClient creates an economy service client
func createClient() (economyv1alpha1.EconomyServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return economyv1alpha1.NewEconomyServiceClient(conn), cleanup, nil
}

// call runs fn with a timeout, attaching the principal when one is set
func call(fn func(ctx context.Context, client economyv1alpha1.EconomyServiceClient) (any, error)) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if principal != "" {
		ctx = economyv1alpha1.WithPrincipal(ctx, principal)
	}
	ctx = metadata.AppendToOutgoingContext(ctx, economyv1alpha1.RequestIDHeader, requestIDs.Generate())

	resp, err := fn(ctx, client)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func requirePrincipal(*cobra.Command, []string) error {
	if principal == "" {
		return fmt.Errorf("--principal is required")
	}
	return nil
}

func parseUint(name, raw string) (uint64, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer: %q", name, raw)
	}
	return v, nil
}
