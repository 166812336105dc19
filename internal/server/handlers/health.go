package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	pinger  Pinger
	version string
	responder
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *zap.Logger, pinger Pinger, version string) *HealthHandler {
	return &HealthHandler{
		responder: newResponder(logger),
		pinger:    pinger,
		version:   version,
	}
}

// Health обрабатывает GET /api/v1/health
// Health check endpoint для мониторинга и для проверки связи клиентом
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Error("storage ping failed", zap.Error(err))
			h.writeJSON(w, http.StatusServiceUnavailable, api.HealthResponse{Status: "unavailable", Version: h.version})
			return
		}
	}

	h.writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Version: h.version})
}
