package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sanctuary-tracker/api/internal/models"
)

// ActivityRepository handles activity catalog database operations
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// activityColumns aggregates each activity's rewards into a JSON array so a
// single query returns the embedded reward list.
const activityColumns = `
	a.id, a.name, a.type, a.priority, a.time_estimate, a.rewards_note,
	a.benefit, a.detail, a.mode, a.preference, a.created_at, a.updated_at,
	COALESCE(
		json_agg(
			json_build_object(
				'id', r.id,
				'name', r.name,
				'description', r.description,
				'quantity', ar.quantity
			) ORDER BY r.name
		) FILTER (WHERE r.id IS NOT NULL),
		'[]'::json
	) AS rewards
`

// GetAll retrieves the full activity catalog with embedded rewards, ordered
// by type (daily, weekly, seasonal) and then by priority tier.
func (r *ActivityRepository) GetAll(ctx context.Context) ([]*models.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities a
		LEFT JOIN activity_rewards ar ON a.id = ar.activity_id
		LEFT JOIN rewards r ON ar.reward_id = r.id
		GROUP BY a.id
		ORDER BY
			CASE a.type WHEN 'daily' THEN 1 WHEN 'weekly' THEN 2 WHEN 'seasonal' THEN 3 END,
			CASE a.priority
				WHEN 'S+' THEN 1
				WHEN 'S' THEN 2
				WHEN 'A+' THEN 3
				WHEN 'A' THEN 4
				WHEN 'B+' THEN 5
				WHEN 'B' THEN 6
				WHEN 'C' THEN 7
			END
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}

// GetByID retrieves one activity with embedded rewards
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities a
		LEFT JOIN activity_rewards ar ON a.id = ar.activity_id
		LEFT JOIN rewards r ON ar.reward_id = r.id
		WHERE a.id = $1
		GROUP BY a.id
	`

	row := r.db.QueryRowContext(ctx, query, id)
	activity, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("activity not found: %w", err)
	}
	if err != nil {
		return nil, err
	}

	return activity, nil
}

// Create inserts a catalog activity, ignoring duplicates. Used by seeding.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activities (id, name, type, priority, time_estimate, rewards_note, benefit, detail, mode, preference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		activity.ID,
		activity.Name,
		activity.Type,
		activity.Priority,
		activity.TimeEstimate,
		activity.RewardsNote,
		activity.Benefit,
		activity.Detail,
		activity.Mode,
		activity.Preference,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(s scanner) (*models.Activity, error) {
	activity := &models.Activity{}
	var timeEstimate, rewardsNote, benefit, detail sql.NullString
	var preference sql.NullString
	var rewardsJSON []byte

	err := s.Scan(
		&activity.ID,
		&activity.Name,
		&activity.Type,
		&activity.Priority,
		&timeEstimate,
		&rewardsNote,
		&benefit,
		&detail,
		&activity.Mode,
		&preference,
		&activity.CreatedAt,
		&activity.UpdatedAt,
		&rewardsJSON,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan activity: %w", err)
	}

	activity.TimeEstimate = timeEstimate.String
	activity.RewardsNote = rewardsNote.String
	activity.Benefit = benefit.String
	activity.Detail = detail.String
	if preference.Valid {
		p := models.ActivityMode(preference.String)
		activity.Preference = &p
	}

	if err := json.Unmarshal(rewardsJSON, &activity.Rewards); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activity rewards: %w", err)
	}

	return activity, nil
}
