package client

import (
	"context"

	"github.com/spf13/cobra"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
)

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Show a character with its metadata and owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseUint("character-id", args[0])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			char, err := c.GetCharacter(ctx, &economyv1alpha1.GetCharacterRequest{CharacterID: id})
			if err != nil {
				return nil, err
			}
			md, err := c.GetCharacterMetadata(ctx, &economyv1alpha1.GetCharacterMetadataRequest{CharacterID: id})
			if err != nil {
				return nil, err
			}
			return map[string]any{"character": char.Character, "metadata": md.Metadata}, nil
		})
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [account]",
	Short: "Show reward and governance balances",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			resp, err := c.GetBalances(ctx, &economyv1alpha1.GetBalanceRequest{Account: args[0]})
			if err != nil {
				return nil, err
			}
			return map[string]any{"account": args[0], "reward": resp.Reward, "governance": resp.Governance}, nil
		})
	},
}

var stakeInfoCmd = &cobra.Command{
	Use:   "stake-info [character-id]",
	Short: "Show the active stake on a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseUint("character-id", args[0])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.GetStakedInfo(ctx, &economyv1alpha1.GetStakedInfoRequest{CharacterID: id})
		})
	},
}

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Show the owner, tunables and next character id",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			params, err := c.GetParams(ctx, &economyv1alpha1.GetParamsRequest{})
			if err != nil {
				return nil, err
			}
			last, err := c.GetLastTokenID(ctx, &economyv1alpha1.GetLastTokenIDRequest{})
			if err != nil {
				return nil, err
			}
			return map[string]any{"owner": params.Owner, "params": params.Params, "next_id": last.NextID}, nil
		})
	},
}
