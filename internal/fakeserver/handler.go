package fakeserver

import (
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/garrettladley/dino/internal/apperr"
	"github.com/garrettladley/dino/internal/xhttp"
	"github.com/garrettladley/dino/internal/xhttp/middleware"
	"github.com/garrettladley/dino/internal/xslog"
)

const pathPatientID = "patientID"

type Handler struct {
	store     *Store
	failEvery int64
	requests  atomic.Int64
}

type Option func(*Handler)

// WithFailEvery answers every n-th status request with 503 so clients can
// be exercised against an unreliable service. n <= 0 never fails.
func WithFailEvery(n int) Option {
	return func(h *Handler) {
		h.failEvery = int64(n)
	}
}

func NewHandler(store *Store, opts ...Option) *Handler {
	h := &Handler{store: store}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if err := h.status(w, r); err != nil {
		if appErr := apperr.AsError(err); appErr == nil || appErr.StatusCode >= http.StatusInternalServerError {
			xslog.FromContext(r.Context()).ErrorContext(r.Context(), "status request failed", xslog.Error(err))
		}
		apperr.WriteError(w, err)
	}
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) error {
	n := h.requests.Add(1)
	if h.failEvery > 0 && n%h.failEvery == 0 {
		return apperr.ServiceUnavailable("unavailable", "injected fault")
	}

	patientID := r.PathValue(pathPatientID)
	status, err := h.store.Get(patientID)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("not_found", "no character for patient")
	}
	if err != nil {
		return apperr.Internal("internal_error", "failed to load status", err)
	}

	xhttp.WriteOK(w, status)
	return nil
}

func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, map[string]string{"status": "ok"})
}

// Routes returns the fake service wrapped in the standard middleware chain.
func Routes(store *Store, logger *slog.Logger, opts ...Option) http.Handler {
	h := NewHandler(store, opts...)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /character-status/{"+pathPatientID+"}", h.HandleStatus)
	mux.HandleFunc("GET /health", HandleHealth)

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Logging,
		middleware.Recovery,
		middleware.SecurityHeaders,
	)
}
