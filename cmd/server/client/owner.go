package client

import (
	"context"

	"github.com/spf13/cobra"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
)

var setEvolutionCostCmd = &cobra.Command{
	Use:     "set-evolution-cost [value]",
	Short:   "Set the evolution cost (owner only)",
	Args:    cobra.ExactArgs(1),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		value, err := parseUint("value", args[0])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.SetEvolutionCost(ctx, &economyv1alpha1.SetEvolutionCostRequest{Value: value})
		})
	},
}

var setDungeonRewardCmd = &cobra.Command{
	Use:     "set-dungeon-reward [value]",
	Short:   "Set the dungeon reward (owner only)",
	Args:    cobra.ExactArgs(1),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		value, err := parseUint("value", args[0])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.SetDungeonReward(ctx, &economyv1alpha1.SetDungeonRewardRequest{Value: value})
		})
	},
}

var grantCmd = &cobra.Command{
	Use:     "grant [recipient] [amount]",
	Short:   "Credit reward tokens to an account (owner only)",
	Args:    cobra.ExactArgs(2),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseUint("amount", args[1])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.GrantTokens(ctx, &economyv1alpha1.GrantTokensRequest{Recipient: args[0], Amount: amount})
		})
	},
}
