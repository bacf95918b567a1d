package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sanctuary-tracker/api/internal/database"
	logpkg "github.com/sanctuary-tracker/api/internal/logger"
)

// ActivityHandler serves the activity catalog
type ActivityHandler struct {
	activities database.ActivityRepositoryInterface
	logger     *zap.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activities database.ActivityRepositoryInterface, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activities: activities, logger: logger}
}

// GetActivities handles GET /api/v1/activities
func (h *ActivityHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed_to_list_activities", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, activities, h.logger)
}

// GetActivity handles GET /api/v1/activities/{id}
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	activity, err := h.activities.GetByID(r.Context(), id)
	if err != nil {
		respondNotFoundOrError(w, err, "Activity", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, activity, h.logger)
}
