// Package logging configures the global zerolog logger and adapts it for
// the gRPC middleware.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/rpg-economy/internal/config"
)

// Init replaces the global logger. Unknown levels fall back to info.
func Init(cfg config.LogConfig, out io.Writer) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(out).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: cfg.SampleEvery})
	}
	log.Logger = logger
}

// GRPCLogger routes go-grpc-middleware logging through l
func GRPCLogger(l zerolog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(_ context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		var event *zerolog.Event
		switch lvl {
		case grpc_logging.LevelDebug:
			event = l.Debug()
		case grpc_logging.LevelInfo:
			event = l.Info()
		case grpc_logging.LevelWarn:
			event = l.Warn()
		case grpc_logging.LevelError:
			event = l.Error()
		default:
			event = l.Info()
		}

		for i := 0; i+1 < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				key = fmt.Sprint(fields[i])
			}
			event = event.Interface(key, fields[i+1])
		}
		event.Msg(msg)
	})
}

// MetadataFields copies the named incoming metadata keys into the gRPC
// request log. Absent keys are skipped.
func MetadataFields(keys ...string) func(context.Context) grpc_logging.Fields {
	return func(ctx context.Context) grpc_logging.Fields {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil
		}
		var fields grpc_logging.Fields
		for _, key := range keys {
			if values := md.Get(key); len(values) > 0 {
				fields = append(fields, key, values[0])
			}
		}
		return fields
	}
}
