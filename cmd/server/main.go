package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"profitswitch/internal/config"
	"profitswitch/internal/httpx"
	"profitswitch/internal/logx"
	"profitswitch/internal/nicehash"
	"profitswitch/internal/profit"
	"profitswitch/internal/ratelimit"
)

// bestSelector is the part of *profit.Selector the handlers use.
type bestSelector interface {
	Select(ctx context.Context, algos []profit.Algorithm) (profit.Result, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	logger, err := logx.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		slog.Error("logger", "err", err)
		os.Exit(1)
	}
	if len(cfg.Algorithms) == 0 {
		logger.Warn("no default algorithms configured; requests must pass ?algos=")
	}

	httpClient := httpx.New(time.Duration(cfg.NiceHash.RequestTimeoutSec) * time.Second)
	httpClient.UserAgent = cfg.NiceHash.UserAgent

	client := nicehash.NewClient(
		nicehash.WithBaseURL(strings.TrimRight(cfg.NiceHash.Endpoint, "/")),
		nicehash.WithHTTPClient(httpClient),
		nicehash.WithMaxBodyBytes(cfg.NiceHash.MaxBodyBytes),
	)
	// Every request triggers a fetch, so the limiter is what keeps a busy
	// server inside the upstream budget.
	fetcher := ratelimit.Wrap(client,
		cfg.NiceHash.MaxRequestsPerMinute,
		cfg.NiceHash.Burst,
		time.Duration(cfg.NiceHash.MinRequestIntervalSec)*time.Second,
	)
	selector := profit.NewSelector(fetcher, profit.WithLogger(logger))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/best", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}
		handleGetBest(w, r, selector, cfg.Algorithms)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           withJSONHeaders(recoverPanic(logger, mux)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      time.Duration(cfg.NiceHash.RequestTimeoutSec+5) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// handleGetBest serves GET /api/best?algos=name:factor,... falling back to
// the configured algorithms when the parameter is absent.
func handleGetBest(w http.ResponseWriter, r *http.Request, selector bestSelector, defaults []profit.Algorithm) {
	algos := defaults
	if q := r.URL.Query().Get("algos"); strings.TrimSpace(q) != "" {
		parsed, err := config.ParseAlgorithms(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		algos = parsed
	}
	if len(algos) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing algos query param"})
		return
	}
	if len(algos) > 256 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "too many algorithms (max 256)"})
		return
	}

	res, err := selector.Select(r.Context(), algos)
	switch {
	case err == nil, errors.Is(err, profit.ErrNoMatch):
		writeJSON(w, http.StatusOK, res.Describe(algos))
	case errors.Is(err, profit.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func withJSONHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverPanic protects handlers from panics.
func recoverPanic(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("handler panic", "path", r.URL.Path, "panic", rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
