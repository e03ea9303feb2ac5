package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "economy.v1alpha1.EconomyService"

// FullMethod returns the gRPC path for method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// EconomyServiceServer is the server API for EconomyService
type EconomyServiceServer interface {
	MintCharacter(context.Context, *MintCharacterRequest) (*MintCharacterResponse, error)
	TransferCharacter(context.Context, *TransferCharacterRequest) (*TransferCharacterResponse, error)
	EvolveCharacter(context.Context, *EvolveCharacterRequest) (*EvolveCharacterResponse, error)
	CompleteDungeon(context.Context, *CompleteDungeonRequest) (*CompleteDungeonResponse, error)
	StakeCharacter(context.Context, *StakeCharacterRequest) (*StakeCharacterResponse, error)
	UnstakeCharacter(context.Context, *UnstakeCharacterRequest) (*UnstakeCharacterResponse, error)
	SetEvolutionCost(context.Context, *SetEvolutionCostRequest) (*SetEvolutionCostResponse, error)
	SetDungeonReward(context.Context, *SetDungeonRewardRequest) (*SetDungeonRewardResponse, error)
	GrantTokens(context.Context, *GrantTokensRequest) (*GrantTokensResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	GetCharacterMetadata(context.Context, *GetCharacterMetadataRequest) (*GetCharacterMetadataResponse, error)
	GetCharacterOwner(context.Context, *GetCharacterOwnerRequest) (*GetCharacterOwnerResponse, error)
	GetUserBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	GetGovernanceBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	GetBalances(context.Context, *GetBalanceRequest) (*GetBalancesResponse, error)
	GetStakedInfo(context.Context, *GetStakedInfoRequest) (*GetStakedInfoResponse, error)
	GetLastTokenID(context.Context, *GetLastTokenIDRequest) (*GetLastTokenIDResponse, error)
	GetParams(context.Context, *GetParamsRequest) (*GetParamsResponse, error)
}

// UnimplementedEconomyServiceServer returns Unimplemented for every method.
// Embed it to stay forward compatible.
type UnimplementedEconomyServiceServer struct{}

func (UnimplementedEconomyServiceServer) MintCharacter(context.Context, *MintCharacterRequest) (*MintCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MintCharacter not implemented")
}

func (UnimplementedEconomyServiceServer) TransferCharacter(context.Context, *TransferCharacterRequest) (*TransferCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TransferCharacter not implemented")
}

func (UnimplementedEconomyServiceServer) EvolveCharacter(context.Context, *EvolveCharacterRequest) (*EvolveCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EvolveCharacter not implemented")
}

func (UnimplementedEconomyServiceServer) CompleteDungeon(context.Context, *CompleteDungeonRequest) (*CompleteDungeonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteDungeon not implemented")
}

func (UnimplementedEconomyServiceServer) StakeCharacter(context.Context, *StakeCharacterRequest) (*StakeCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StakeCharacter not implemented")
}

func (UnimplementedEconomyServiceServer) UnstakeCharacter(context.Context, *UnstakeCharacterRequest) (*UnstakeCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UnstakeCharacter not implemented")
}

func (UnimplementedEconomyServiceServer) SetEvolutionCost(context.Context, *SetEvolutionCostRequest) (*SetEvolutionCostResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetEvolutionCost not implemented")
}

func (UnimplementedEconomyServiceServer) SetDungeonReward(context.Context, *SetDungeonRewardRequest) (*SetDungeonRewardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetDungeonReward not implemented")
}

func (UnimplementedEconomyServiceServer) GrantTokens(context.Context, *GrantTokensRequest) (*GrantTokensResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GrantTokens not implemented")
}

func (UnimplementedEconomyServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}

func (UnimplementedEconomyServiceServer) GetCharacterMetadata(context.Context, *GetCharacterMetadataRequest) (*GetCharacterMetadataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacterMetadata not implemented")
}

func (UnimplementedEconomyServiceServer) GetCharacterOwner(context.Context, *GetCharacterOwnerRequest) (*GetCharacterOwnerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacterOwner not implemented")
}

func (UnimplementedEconomyServiceServer) GetUserBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserBalance not implemented")
}

func (UnimplementedEconomyServiceServer) GetGovernanceBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetGovernanceBalance not implemented")
}

func (UnimplementedEconomyServiceServer) GetBalances(context.Context, *GetBalanceRequest) (*GetBalancesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBalances not implemented")
}

func (UnimplementedEconomyServiceServer) GetStakedInfo(context.Context, *GetStakedInfoRequest) (*GetStakedInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStakedInfo not implemented")
}

func (UnimplementedEconomyServiceServer) GetLastTokenID(context.Context, *GetLastTokenIDRequest) (*GetLastTokenIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLastTokenID not implemented")
}

func (UnimplementedEconomyServiceServer) GetParams(context.Context, *GetParamsRequest) (*GetParamsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetParams not implemented")
}

// RegisterEconomyServiceServer registers srv on s
func RegisterEconomyServiceServer(s grpc.ServiceRegistrar, srv EconomyServiceServer) {
	s.RegisterService(&EconomyService_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodDesc
func unary[Req, Resp any](
	method string,
	call func(EconomyServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(EconomyServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(EconomyServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// EconomyService_ServiceDesc is the grpc.ServiceDesc for EconomyService
//
//nolint:revive,stylecheck // matches protoc-gen-go-grpc naming
var EconomyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EconomyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("MintCharacter", EconomyServiceServer.MintCharacter),
		unary("TransferCharacter", EconomyServiceServer.TransferCharacter),
		unary("EvolveCharacter", EconomyServiceServer.EvolveCharacter),
		unary("CompleteDungeon", EconomyServiceServer.CompleteDungeon),
		unary("StakeCharacter", EconomyServiceServer.StakeCharacter),
		unary("UnstakeCharacter", EconomyServiceServer.UnstakeCharacter),
		unary("SetEvolutionCost", EconomyServiceServer.SetEvolutionCost),
		unary("SetDungeonReward", EconomyServiceServer.SetDungeonReward),
		unary("GrantTokens", EconomyServiceServer.GrantTokens),
		unary("GetCharacter", EconomyServiceServer.GetCharacter),
		unary("GetCharacterMetadata", EconomyServiceServer.GetCharacterMetadata),
		unary("GetCharacterOwner", EconomyServiceServer.GetCharacterOwner),
		unary("GetUserBalance", EconomyServiceServer.GetUserBalance),
		unary("GetGovernanceBalance", EconomyServiceServer.GetGovernanceBalance),
		unary("GetBalances", EconomyServiceServer.GetBalances),
		unary("GetStakedInfo", EconomyServiceServer.GetStakedInfo),
		unary("GetLastTokenID", EconomyServiceServer.GetLastTokenID),
		unary("GetParams", EconomyServiceServer.GetParams),
	},
	Streams: []grpc.StreamDesc{},
}
