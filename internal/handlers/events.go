package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sanctuary-tracker/api/internal/database"
	"github.com/sanctuary-tracker/api/internal/gametime"
	logpkg "github.com/sanctuary-tracker/api/internal/logger"
	"github.com/sanctuary-tracker/api/internal/schedule"
)

// EventHandler serves the scheduled event catalog and its live countdown view
type EventHandler struct {
	events database.EventRepositoryInterface
	clock  gametime.Clock
	logger *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(events database.EventRepositoryInterface, clock gametime.Clock, logger *zap.Logger) *EventHandler {
	return &EventHandler{events: events, clock: clock, logger: logger}
}

// upcomingResponse wraps the countdown entries with the game-time reference
// they were computed against, so clients can render a matching clock.
type upcomingResponse struct {
	GameTime     string                        `json:"game_time"`
	GameDate     string                        `json:"game_date"`
	UntilResetMs int64                         `json:"until_reset_ms"`
	Events       []schedule.UpcomingOccurrence `json:"events"`
}

// GetEvents handles GET /api/v1/events
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed_to_list_events", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, events, h.logger)
}

// GetEvent handles GET /api/v1/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	event, err := h.events.GetByID(r.Context(), id)
	if err != nil {
		respondNotFoundOrError(w, err, "Event", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, event, h.logger)
}

// GetUpcoming handles GET /api/v1/events/upcoming. Countdowns are computed
// against game time, not wall-clock time. An optional limit query parameter
// caps the number of entries (default 10).
func (h *EventHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	limit := schedule.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			respondError(w, http.StatusBadRequest, "Validation Error", "limit must be an integer between 1 and 100", h.logger)
			return
		}
		limit = parsed
	}

	events, err := h.events.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed_to_list_events", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}

	gameNow := h.clock.Now()
	upcoming, err := schedule.Upcoming(events, gametime.MinuteOfDay(gameNow), limit)
	if err != nil {
		// A malformed time in the catalog is a data defect, not a client error
		h.logger.Error("countdown_failed", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}

	respondJSON(w, http.StatusOK, upcomingResponse{
		GameTime:     gameNow.Format("15:04"),
		GameDate:     gametime.FormatDate(gameNow),
		UntilResetMs: gametime.UntilReset(gameNow).Milliseconds(),
		Events:       upcoming,
	}, h.logger)
}
