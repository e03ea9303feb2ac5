package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-economy/internal/config"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

type BootstrapTestSuite struct {
	suite.Suite
	spans      *tracetest.SpanRecorder
	shutdowns  int
	prevSetup  func(context.Context, config.TelemetryConfig) (func(context.Context) error, error)
	prevTracer trace.TracerProvider
}

func (s *BootstrapTestSuite) SetupTest() {
	s.T().Setenv("STORE_DRIVER", "memory")
	s.T().Setenv("ECONOMY_OWNER", "owner")
	s.T().Setenv("GENESIS_PATH", "")
	s.T().Setenv("OTEL_EXPORTER_ENDPOINT", "")

	s.spans = tracetest.NewSpanRecorder()
	s.shutdowns = 0
	s.prevSetup = setupTracing
	s.prevTracer = otel.GetTracerProvider()

	setupTracing = func(context.Context, config.TelemetryConfig) (func(context.Context) error, error) {
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans))
		otel.SetTracerProvider(tp)
		return func(ctx context.Context) error {
			s.shutdowns++
			return tp.Shutdown(ctx)
		}, nil
	}
}

func (s *BootstrapTestSuite) TearDownTest() {
	setupTracing = s.prevSetup
	otel.SetTracerProvider(s.prevTracer)
}

func (s *BootstrapTestSuite) TestRestoreIsTraced() {
	rt, err := bootstrap(context.Background(), io.Discard)
	s.Require().NoError(err)
	s.Equal(uint64(0), rt.restored.Seq)

	var names []string
	for _, span := range s.spans.Ended() {
		names = append(names, span.Name())
	}
	s.Contains(names, "economy.Restore")

	rt.Close()
	s.Equal(1, s.shutdowns)
}

func (s *BootstrapTestSuite) TestTracingFailureStopsStartup() {
	setupTracing = func(context.Context, config.TelemetryConfig) (func(context.Context) error, error) {
		return nil, errors.Unavailable("collector unreachable")
	}

	rt, err := bootstrap(context.Background(), io.Discard)
	s.True(errors.IsUnavailable(err))
	s.Nil(rt)
}

func (s *BootstrapTestSuite) TestTracingFlushedWhenJournalFails() {
	s.T().Setenv("STORE_DRIVER", "sqlite")
	s.T().Setenv("SQLITE_PATH", filepath.Join(s.T().TempDir(), "missing", "economy.db"))

	rt, err := bootstrap(context.Background(), io.Discard)
	s.Error(err)
	s.Nil(rt)
	s.Equal(1, s.shutdowns)
}

func TestBootstrapTestSuite(t *testing.T) {
	suite.Run(t, new(BootstrapTestSuite))
}
