package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/handlers/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/handlers/rest"
	"github.com/KirkDiggler/rpg-economy/internal/logging"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the economy gRPC server and the read-only HTTP API.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer rt.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{EconomyService: rt.service})
	if err != nil {
		return err
	}

	grpcLogger := logging.GRPCLogger(log.Logger)
	requestFields := grpc_logging.WithFieldsFromContext(logging.MetadataFields(
		economyv1alpha1.RequestIDHeader,
		economyv1alpha1.PrincipalHeader,
	))
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger, requestFields),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger, requestFields),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
	economyv1alpha1.RegisterEconomyServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(economyv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	router, err := rest.NewRouter(&rest.Config{Economy: handler, LogOutput: os.Stdout})
	if err != nil {
		return err
	}
	httpServer := &http.Server{Addr: rt.server.HTTPAddr, Handler: router}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", rt.server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 2)
	go func() {
		log.Info().Int("port", rt.server.GRPCPort).Msg("gRPC server starting")
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		log.Info().Str("addr", rt.server.HTTPAddr).Msg("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down servers...")
	case err := <-errChan:
		srv.Stop()
		_ = httpServer.Close()
		return err
	}

	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), rt.server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP shutdown")
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		log.Warn().Msg("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		log.Info().Msg("Server stopped gracefully")
	}

	return nil
}
