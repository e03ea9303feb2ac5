package client

import (
	"context"

	"github.com/spf13/cobra"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
)

var mintCmd = &cobra.Command{
	Use:     "mint [name] [dna-hash]",
	Short:   "Mint a character owned by the principal",
	Args:    cobra.ExactArgs(2),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.MintCharacter(ctx, &economyv1alpha1.MintCharacterRequest{Name: args[0], DNAHash: args[1]})
		})
	},
}

var transferCmd = &cobra.Command{
	Use:     "transfer [character-id] [recipient]",
	Short:   "Transfer a character",
	Args:    cobra.ExactArgs(2),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseUint("character-id", args[0])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.TransferCharacter(ctx, &economyv1alpha1.TransferCharacterRequest{CharacterID: id, Recipient: args[1]})
		})
	},
}

var evolveCmd = &cobra.Command{
	Use:   "evolve [character-id] [stat]",
	Short: "Pay the evolution cost to raise a stat",
	Long: `Raise strength, agility or intelligence by 5 and the level by 1.
Any other stat name still levels the character up.`,
	Args:    cobra.ExactArgs(2),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseUint("character-id", args[0])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.EvolveCharacter(ctx, &economyv1alpha1.EvolveCharacterRequest{CharacterID: id, Stat: args[1]})
		})
	},
}

var dungeonCmd = &cobra.Command{
	Use:     "complete-dungeon [character-id]",
	Short:   "Record a dungeon run and collect the reward",
	Args:    cobra.ExactArgs(1),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseUint("character-id", args[0])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.CompleteDungeon(ctx, &economyv1alpha1.CompleteDungeonRequest{CharacterID: id})
		})
	},
}

var stakeCmd = &cobra.Command{
	Use:     "stake [character-id] [amount]",
	Short:   "Escrow reward tokens against a character",
	Args:    cobra.ExactArgs(2),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseUint("character-id", args[0])
		if err != nil {
			return err
		}
		amount, err := parseUint("amount", args[1])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.StakeCharacter(ctx, &economyv1alpha1.StakeCharacterRequest{CharacterID: id, Amount: amount})
		})
	},
}

var unstakeCmd = &cobra.Command{
	Use:     "unstake [character-id]",
	Short:   "Close a stake and collect principal plus reward",
	Args:    cobra.ExactArgs(1),
	PreRunE: requirePrincipal,
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseUint("character-id", args[0])
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, c economyv1alpha1.EconomyServiceClient) (any, error) {
			return c.UnstakeCharacter(ctx, &economyv1alpha1.UnstakeCharacterRequest{CharacterID: id})
		})
	},
}
