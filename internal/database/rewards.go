package database

import (
	"context"
	"fmt"

	"github.com/sanctuary-tracker/api/internal/models"
)

// RewardRepository handles reward catalog database operations
type RewardRepository struct {
	db *DB
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// GetAll retrieves the reward catalog ordered by name
func (r *RewardRepository) GetAll(ctx context.Context) ([]*models.Reward, error) {
	query := `
		SELECT id, name, COALESCE(description, '')
		FROM rewards
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards: %w", err)
	}
	defer rows.Close()

	var rewards []*models.Reward
	for rows.Next() {
		reward := &models.Reward{}
		if err := rows.Scan(&reward.ID, &reward.Name, &reward.Description); err != nil {
			return nil, fmt.Errorf("failed to scan reward: %w", err)
		}
		rewards = append(rewards, reward)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rewards: %w", err)
	}

	return rewards, nil
}

// GetActivitiesByReward retrieves every activity granting the given reward,
// with each activity's full embedded reward list.
func (r *RewardRepository) GetActivitiesByReward(ctx context.Context, rewardID string) ([]*models.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities a
		INNER JOIN activity_rewards arf ON a.id = arf.activity_id AND arf.reward_id = $1
		LEFT JOIN activity_rewards ar ON a.id = ar.activity_id
		LEFT JOIN rewards r ON ar.reward_id = r.id
		GROUP BY a.id
		ORDER BY
			CASE a.priority
				WHEN 'S+' THEN 1
				WHEN 'S' THEN 2
				WHEN 'A+' THEN 3
				WHEN 'A' THEN 4
				WHEN 'B+' THEN 5
				WHEN 'B' THEN 6
				WHEN 'C' THEN 7
			END,
			a.name
	`

	rows, err := r.db.QueryContext(ctx, query, rewardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities by reward: %w", err)
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
		return nil, fmt.Errorf("error iterating activities by reward: %w", err)
	}

	return activities, nil
}

// GetEventsByReward retrieves every scheduled event granting the given reward
func (r *RewardRepository) GetEventsByReward(ctx context.Context, rewardID string) ([]*models.ScheduledEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM scheduled_events e
		INNER JOIN event_rewards erf ON e.id = erf.event_id AND erf.reward_id = $1
		LEFT JOIN event_rewards er ON e.id = er.event_id
		LEFT JOIN rewards r ON er.reward_id = r.id
		GROUP BY e.id
		ORDER BY e.name
	`

	rows, err := r.db.QueryContext(ctx, query, rewardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by reward: %w", err)
	}
	defer rows.Close()

	var events []*models.ScheduledEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events by reward: %w", err)
	}

	return events, nil
}
