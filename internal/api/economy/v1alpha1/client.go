package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// EconomyServiceClient is the client API for EconomyService
type EconomyServiceClient interface {
	MintCharacter(ctx context.Context, in *MintCharacterRequest, opts ...grpc.CallOption) (*MintCharacterResponse, error)
	TransferCharacter(ctx context.Context, in *TransferCharacterRequest, opts ...grpc.CallOption) (*TransferCharacterResponse, error)
	EvolveCharacter(ctx context.Context, in *EvolveCharacterRequest, opts ...grpc.CallOption) (*EvolveCharacterResponse, error)
	CompleteDungeon(ctx context.Context, in *CompleteDungeonRequest, opts ...grpc.CallOption) (*CompleteDungeonResponse, error)
	StakeCharacter(ctx context.Context, in *StakeCharacterRequest, opts ...grpc.CallOption) (*StakeCharacterResponse, error)
	UnstakeCharacter(ctx context.Context, in *UnstakeCharacterRequest, opts ...grpc.CallOption) (*UnstakeCharacterResponse, error)
	SetEvolutionCost(ctx context.Context, in *SetEvolutionCostRequest, opts ...grpc.CallOption) (*SetEvolutionCostResponse, error)
	SetDungeonReward(ctx context.Context, in *SetDungeonRewardRequest, opts ...grpc.CallOption) (*SetDungeonRewardResponse, error)
	GrantTokens(ctx context.Context, in *GrantTokensRequest, opts ...grpc.CallOption) (*GrantTokensResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	GetCharacterMetadata(ctx context.Context, in *GetCharacterMetadataRequest, opts ...grpc.CallOption) (*GetCharacterMetadataResponse, error)
	GetCharacterOwner(ctx context.Context, in *GetCharacterOwnerRequest, opts ...grpc.CallOption) (*GetCharacterOwnerResponse, error)
	GetUserBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	GetGovernanceBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	GetBalances(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalancesResponse, error)
	GetStakedInfo(ctx context.Context, in *GetStakedInfoRequest, opts ...grpc.CallOption) (*GetStakedInfoResponse, error)
	GetLastTokenID(ctx context.Context, in *GetLastTokenIDRequest, opts ...grpc.CallOption) (*GetLastTokenIDResponse, error)
	GetParams(ctx context.Context, in *GetParamsRequest, opts ...grpc.CallOption) (*GetParamsResponse, error)
}

type economyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEconomyServiceClient wraps cc. Every call uses the JSON codec.
func NewEconomyServiceClient(cc grpc.ClientConnInterface) EconomyServiceClient {
	return &economyServiceClient{cc: cc}
}

func (c *economyServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *economyServiceClient) MintCharacter(ctx context.Context, in *MintCharacterRequest, opts ...grpc.CallOption) (*MintCharacterResponse, error) {
	out := new(MintCharacterResponse)
	if err := c.invoke(ctx, "MintCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) TransferCharacter(ctx context.Context, in *TransferCharacterRequest, opts ...grpc.CallOption) (*TransferCharacterResponse, error) {
	out := new(TransferCharacterResponse)
	if err := c.invoke(ctx, "TransferCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) EvolveCharacter(ctx context.Context, in *EvolveCharacterRequest, opts ...grpc.CallOption) (*EvolveCharacterResponse, error) {
	out := new(EvolveCharacterResponse)
	if err := c.invoke(ctx, "EvolveCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) CompleteDungeon(ctx context.Context, in *CompleteDungeonRequest, opts ...grpc.CallOption) (*CompleteDungeonResponse, error) {
	out := new(CompleteDungeonResponse)
	if err := c.invoke(ctx, "CompleteDungeon", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) StakeCharacter(ctx context.Context, in *StakeCharacterRequest, opts ...grpc.CallOption) (*StakeCharacterResponse, error) {
	out := new(StakeCharacterResponse)
	if err := c.invoke(ctx, "StakeCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) UnstakeCharacter(ctx context.Context, in *UnstakeCharacterRequest, opts ...grpc.CallOption) (*UnstakeCharacterResponse, error) {
	out := new(UnstakeCharacterResponse)
	if err := c.invoke(ctx, "UnstakeCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) SetEvolutionCost(ctx context.Context, in *SetEvolutionCostRequest, opts ...grpc.CallOption) (*SetEvolutionCostResponse, error) {
	out := new(SetEvolutionCostResponse)
	if err := c.invoke(ctx, "SetEvolutionCost", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) SetDungeonReward(ctx context.Context, in *SetDungeonRewardRequest, opts ...grpc.CallOption) (*SetDungeonRewardResponse, error) {
	out := new(SetDungeonRewardResponse)
	if err := c.invoke(ctx, "SetDungeonReward", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GrantTokens(ctx context.Context, in *GrantTokensRequest, opts ...grpc.CallOption) (*GrantTokensResponse, error) {
	out := new(GrantTokensResponse)
	if err := c.invoke(ctx, "GrantTokens", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	out := new(GetCharacterResponse)
	if err := c.invoke(ctx, "GetCharacter", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetCharacterMetadata(ctx context.Context, in *GetCharacterMetadataRequest, opts ...grpc.CallOption) (*GetCharacterMetadataResponse, error) {
	out := new(GetCharacterMetadataResponse)
	if err := c.invoke(ctx, "GetCharacterMetadata", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetCharacterOwner(ctx context.Context, in *GetCharacterOwnerRequest, opts ...grpc.CallOption) (*GetCharacterOwnerResponse, error) {
	out := new(GetCharacterOwnerResponse)
	if err := c.invoke(ctx, "GetCharacterOwner", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetUserBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	out := new(GetBalanceResponse)
	if err := c.invoke(ctx, "GetUserBalance", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetGovernanceBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	out := new(GetBalanceResponse)
	if err := c.invoke(ctx, "GetGovernanceBalance", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetBalances(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalancesResponse, error) {
	out := new(GetBalancesResponse)
	if err := c.invoke(ctx, "GetBalances", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetStakedInfo(ctx context.Context, in *GetStakedInfoRequest, opts ...grpc.CallOption) (*GetStakedInfoResponse, error) {
	out := new(GetStakedInfoResponse)
	if err := c.invoke(ctx, "GetStakedInfo", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetLastTokenID(ctx context.Context, in *GetLastTokenIDRequest, opts ...grpc.CallOption) (*GetLastTokenIDResponse, error) {
	out := new(GetLastTokenIDResponse)
	if err := c.invoke(ctx, "GetLastTokenID", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *economyServiceClient) GetParams(ctx context.Context, in *GetParamsRequest, opts ...grpc.CallOption) (*GetParamsResponse, error) {
	out := new(GetParamsResponse)
	if err := c.invoke(ctx, "GetParams", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
