// Package httpapi exposes balancing over HTTP:
//
//	POST /v1/balance  {"reaction": "H2 + O2 -> H2O"}
//	GET  /healthz
//	GET  /metrics
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/katalvlaran/stoich/internal/service"
)

// RequestIDHeader carries the request id on requests and responses.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// Balancer is the part of *service.Service the handler needs.
type Balancer interface {
	Balance(ctx context.Context, surface, input string) (service.Result, error)
}

// BalanceRequest is the POST /v1/balance body.
type BalanceRequest struct {
	Reaction string `json:"reaction"`
}

// ErrorResponse is returned for 4xx outcomes.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type api struct {
	svc    Balancer
	logger *slog.Logger
}

// NewHandler builds the router. metricsHandler may be nil to omit /metrics.
func NewHandler(svc Balancer, metricsHandler http.Handler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &api{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}
	r.Post("/v1/balance", a.balance)

	return r
}

// requestID echoes a client-supplied X-Request-ID or mints a uuid.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

type requestIDKey struct{}

// RequestID returns the id stored by the middleware, "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

func (a *api) balance(w http.ResponseWriter, r *http.Request) {
	var req BalanceRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		a.logger.Warn("balance: invalid request body", "request_id", RequestID(r.Context()), "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Reaction == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: `missing "reaction"`})
		return
	}

	res, err := a.svc.Balance(r.Context(), service.SurfaceHTTP, req.Reaction)
	if err != nil {
		a.logger.Info("balance: rejected", "request_id", RequestID(r.Context()), "kind", res.Kind)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: res.Error, Kind: res.Kind})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully,
// waiting at most timeout for in-flight requests.
func Serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown incomplete", "timeout", timeout, "error", err)
			return srv.Close()
		}
		logger.Info("http server stopped")

		return nil
	}
}
