package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a FleetUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc          port.FleetUseCase
	logger       *slog.Logger
	router       chi.Router
	maxBodyBytes int64
}

// NewHandler creates a handler with all routes configured. metrics, when
// not nil, is mounted on /metrics.
func NewHandler(svc port.FleetUseCase, logger *slog.Logger, metrics http.Handler, maxBodyBytes int64) *Handler {
	h := &Handler{svc: svc, logger: logger, maxBodyBytes: maxBodyBytes}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/reports", h.handleReport)
		r.Post("/campaigns", h.handleSaveCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/ledger/campaigns/{id}", h.handleCampaignLedger)
		r.Get("/ledger/units/{unitID}", h.handleUnitLedger)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps domain errors onto status codes. Unknown and store
// errors are logged and answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		precondition *domain.PreconditionError
		decode       *domain.DecodeError
	)
	switch {
	case errors.As(err, &precondition), errors.As(err, &decode), errors.Is(err, domain.ErrInvalidCampaign):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.NotFound(w, r)
	default:
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("request_id", middleware.GetReqID(r.Context())))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
