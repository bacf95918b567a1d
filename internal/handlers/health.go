package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sanctuary-tracker/api/internal/database"
	logpkg "github.com/sanctuary-tracker/api/internal/logger"
)

// Pinger checks liveness of an external dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service and dependency health
type HealthHandler struct {
	db      *database.DB
	redis   Pinger
	version string
	logger  *zap.Logger
}

// NewHealthHandler creates a new health handler. redis may be nil when rate
// limiting is disabled.
func NewHealthHandler(db *database.DB, redis Pinger, version string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, version: version, logger: logger}
}

type healthStatus struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}

// Health handles GET /health, a liveness probe with no dependency checks
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Healthz handles GET /healthz, a readiness probe that checks the database
// and Redis.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := healthStatus{
		Status:       "ok",
		Version:      h.version,
		Dependencies: map[string]string{},
	}
	httpStatus := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("health_db_unreachable", zap.String("error", logpkg.SanitizeError(err)))
		status.Dependencies["database"] = "unreachable"
		status.Status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	} else {
		status.Dependencies["database"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			h.logger.Error("health_redis_unreachable", zap.String("error", logpkg.SanitizeError(err)))
			status.Dependencies["redis"] = "unreachable"
			status.Status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		} else {
			status.Dependencies["redis"] = "ok"
		}
	}

	respondJSON(w, httpStatus, status, h.logger)
}

// Version handles GET /version
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"version": h.version}, h.logger)
}
