package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sanctuary-tracker/api/internal/database"
	logpkg "github.com/sanctuary-tracker/api/internal/logger"
)

// RewardHandler serves the reward catalog and reverse lookups
type RewardHandler struct {
	rewards database.RewardRepositoryInterface
	logger  *zap.Logger
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewards database.RewardRepositoryInterface, logger *zap.Logger) *RewardHandler {
	return &RewardHandler{rewards: rewards, logger: logger}
}

// GetRewards handles GET /api/v1/rewards
func (h *RewardHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewards.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed_to_list_rewards", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, rewards, h.logger)
}

// GetActivitiesByReward handles GET /api/v1/rewards/{id}/activities
func (h *RewardHandler) GetActivitiesByReward(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	activities, err := h.rewards.GetActivitiesByReward(r.Context(), id)
	if err != nil {
		h.logger.Error("failed_to_list_activities_by_reward",
			zap.String("reward_id", id),
			zap.String("error", logpkg.SanitizeError(err)),
		)
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, activities, h.logger)
}

// GetEventsByReward handles GET /api/v1/rewards/{id}/events
func (h *RewardHandler) GetEventsByReward(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	events, err := h.rewards.GetEventsByReward(r.Context(), id)
	if err != nil {
		h.logger.Error("failed_to_list_events_by_reward",
			zap.String("reward_id", id),
			zap.String("error", logpkg.SanitizeError(err)),
		)
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, events, h.logger)
}
