package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sanctuary-tracker/api/internal/database"
	logpkg "github.com/sanctuary-tracker/api/internal/logger"
	"github.com/sanctuary-tracker/api/internal/models"
	"github.com/sanctuary-tracker/api/internal/progress"
	"github.com/sanctuary-tracker/api/internal/request"
	"github.com/sanctuary-tracker/api/internal/validation"
)

// ProgressHandler serves per-user completion records
type ProgressHandler struct {
	progress   database.ProgressRepositoryInterface
	activities database.ActivityRepositoryInterface
	logger     *zap.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressRepo database.ProgressRepositoryInterface, activities database.ActivityRepositoryInterface, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progressRepo, activities: activities, logger: logger}
}

// ToggleRequest carries a completion toggle for one activity
type ToggleRequest struct {
	Date      string `json:"date" validate:"required,calendar_date"`
	Completed bool   `json:"completed"`
}

// GetProgress handles GET /api/v1/progress
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required", h.logger)
		return
	}

	records, err := h.progress.GetByUser(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed_to_list_progress",
			zap.String("user_id", logpkg.SanitizeUserID(user.ID.String())),
			zap.String("error", logpkg.SanitizeError(err)),
		)
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, records, h.logger)
}

// GetProgressByDate handles GET /api/v1/progress/date/{date}
func (h *ProgressHandler) GetProgressByDate(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required", h.logger)
		return
	}

	date := mux.Vars(r)["date"]
	if _, err := validation.ParseDate(date); err != nil {
		respondError(w, http.StatusBadRequest, "Validation Error", "Date must be YYYY-MM-DD", h.logger)
		return
	}

	records, err := h.progress.GetByUserAndDate(r.Context(), user.ID, date)
	if err != nil {
		h.logger.Error("failed_to_list_progress_by_date",
			zap.String("user_id", logpkg.SanitizeUserID(user.ID.String())),
			zap.String("error", logpkg.SanitizeError(err)),
		)
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}
	respondJSON(w, http.StatusOK, records, h.logger)
}

// ToggleProgress handles PUT /api/v1/progress/{activityId}. Weekly activities
// marked complete cascade across their whole Monday-to-Sunday week and return
// a cascade summary; every other toggle writes and returns a single record.
func (h *ProgressHandler) ToggleProgress(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required", h.logger)
		return
	}

	var req ToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body", h.logger)
		return
	}
	if err := validation.Validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation Error", "Date must be YYYY-MM-DD", h.logger)
		return
	}

	activityID := mux.Vars(r)["activityId"]
	activity, err := h.activities.GetByID(r.Context(), activityID)
	if err != nil {
		respondNotFoundOrError(w, err, "Activity", h.logger)
		return
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Validation Error", "Date must be YYYY-MM-DD", h.logger)
		return
	}

	plan := progress.PlanToggle(activity.Type, date, req.Completed)

	if !plan.Cascade {
		rec := &models.ProgressRecord{
			UserID:        user.ID,
			ActivityID:    activity.ID,
			CompletedDate: req.Date,
			IsCompleted:   req.Completed,
		}
		if err := h.progress.Upsert(r.Context(), rec); err != nil {
			h.logger.Error("failed_to_toggle_progress",
				zap.String("user_id", logpkg.SanitizeUserID(user.ID.String())),
				zap.String("activity_id", activity.ID),
				zap.String("error", logpkg.SanitizeError(err)),
			)
			respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
			return
		}
		respondJSON(w, http.StatusOK, rec, h.logger)
		return
	}

	dates := make([]string, len(plan.Dates))
	for i, d := range plan.Dates {
		dates[i] = d.Format(models.DateFormat)
	}

	if _, err := h.progress.UpsertDates(r.Context(), user.ID, activity.ID, dates, req.Completed); err != nil {
		h.logger.Error("failed_to_cascade_progress",
			zap.String("user_id", logpkg.SanitizeUserID(user.ID.String())),
			zap.String("activity_id", activity.ID),
			zap.String("error", logpkg.SanitizeError(err)),
		)
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", h.logger)
		return
	}

	h.logger.Info("weekly_cascade_written",
		zap.String("user_id", logpkg.SanitizeUserID(user.ID.String())),
		zap.String("activity_id", activity.ID),
		zap.String("week_start", dates[0]),
	)
	respondJSON(w, http.StatusOK, models.CascadeSummary{
		ActivityID: activity.ID,
		Completed:  req.Completed,
		WeekStart:  dates[0],
		WeekEnd:    dates[len(dates)-1],
	}, h.logger)
}
