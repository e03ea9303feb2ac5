package v1alpha1

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// PrincipalHeader carries the authenticated caller identity. The platform
// in front of the service sets it; the service trusts it as given.
const PrincipalHeader = "x-principal"

// RequestIDHeader correlates a client call with the server request log
const RequestIDHeader = "x-request-id"

// WithPrincipal attaches the caller identity to outgoing calls
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, PrincipalHeader, principal)
}

// PrincipalFromIncoming returns the caller identity of an incoming call
func PrincipalFromIncoming(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(PrincipalHeader)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}
