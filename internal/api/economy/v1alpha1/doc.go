// Package v1alpha1 defines the economy.v1alpha1.EconomyService gRPC API.
//
// Messages are plain Go structs carried by the JSON codec registered under
// the "json" content subtype. Clients built with NewEconomyServiceClient
// select the codec on every call; other clients must send
// content-type application/grpc+json.
package v1alpha1
