// Package rest exposes the read-only economy queries over HTTP/JSON
package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// Config holds dependencies for the router
type Config struct {
	// Economy is the gRPC-facing handler; HTTP reuses its conversions
	Economy economyv1alpha1.EconomyServiceServer
	// LogOutput receives one JSON line per request; nil disables access logs
	LogOutput io.Writer
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil || c.Economy == nil {
		return errors.InvalidArgument("economy handler is required")
	}
	return nil
}

type router struct {
	economy economyv1alpha1.EconomyServiceServer
}

// NewRouter builds the HTTP routes
func NewRouter(cfg *Config) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rt := &router{economy: cfg.Economy}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	if cfg.LogOutput != nil {
		r.Use(requestLogger(cfg.LogOutput))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1alpha1", func(r chi.Router) {
		r.Get("/params", rt.getParams)
		r.Get("/accounts/{account}/balances", rt.getBalances)
		r.Route("/characters/{id}", func(r chi.Router) {
			r.Get("/", rt.getCharacter)
			r.Get("/metadata", rt.getMetadata)
			r.Get("/owner", rt.getOwner)
			r.Get("/stake", rt.getStake)
		})
	})

	return r, nil
}

func requestLogger(out io.Writer) func(http.Handler) http.Handler {
	return httplog.RequestLogger(
		slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{})),
		&httplog.Options{
			Level:              slog.LevelInfo,
			Schema:             httplog.Schema{ResponseStatus: "status", ResponseDuration: "duration_ms"},
			LogRequestBody:     func(*http.Request) bool { return false },
			LogResponseBody:    func(*http.Request) bool { return false },
			LogRequestHeaders:  []string{},
			LogResponseHeaders: []string{},
			LogExtraAttrs: func(req *http.Request, _ string, _ int) []slog.Attr {
				route := req.URL.Path
				if rc := chi.RouteContext(req.Context()); rc != nil && rc.RoutePattern() != "" {
					route = rc.RoutePattern()
				}
				return []slog.Attr{
					slog.String("request_id", chimw.GetReqID(req.Context())),
					slog.String("route", route),
				}
			},
		},
	)
}

func characterID(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("character id %q is not a number", raw)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError accepts both gRPC status errors and domain errors
func writeError(w http.ResponseWriter, err error) {
	err = errors.FromGRPCError(err)
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), map[string]any{
		"error":   string(code),
		"message": errors.GetMessage(err),
	})
}
