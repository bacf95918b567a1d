package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/sanctuary-tracker/api/internal/models"
)

// EventRepository handles scheduled event catalog database operations
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `
	e.id, e.name, e.times, e.duration_minutes, e.description, e.category,
	e.created_at, e.updated_at,
	COALESCE(
		json_agg(
			json_build_object(
				'id', r.id,
				'name', r.name,
				'description', r.description,
				'quantity', er.quantity
			) ORDER BY r.name
		) FILTER (WHERE r.id IS NOT NULL),
		'[]'::json
	) AS rewards
`

// GetAll retrieves the full scheduled event catalog with embedded rewards
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.ScheduledEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM scheduled_events e
		LEFT JOIN event_rewards er ON e.id = er.event_id
		LEFT JOIN rewards r ON er.reward_id = r.id
		GROUP BY e.id
		ORDER BY e.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled events: %w", err)
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
		return nil, fmt.Errorf("error iterating scheduled events: %w", err)
	}

	return events, nil
}

// GetByID retrieves one scheduled event with embedded rewards
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.ScheduledEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM scheduled_events e
		LEFT JOIN event_rewards er ON e.id = er.event_id
		LEFT JOIN rewards r ON er.reward_id = r.id
		WHERE e.id = $1
		GROUP BY e.id
	`

	row := r.db.QueryRowContext(ctx, query, id)
	event, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scheduled event not found: %w", err)
	}
	if err != nil {
		return nil, err
	}

	return event, nil
}

// Create inserts a catalog event, ignoring duplicates. Used by seeding.
func (r *EventRepository) Create(ctx context.Context, event *models.ScheduledEvent) error {
	query := `
		INSERT INTO scheduled_events (id, name, times, duration_minutes, description, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Name,
		pq.Array(event.Times),
		event.DurationMinutes,
		event.Description,
		event.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduled event: %w", err)
	}

	return nil
}

func scanEvent(s scanner) (*models.ScheduledEvent, error) {
	event := &models.ScheduledEvent{}
	var description sql.NullString
	var rewardsJSON []byte

	err := s.Scan(
		&event.ID,
		&event.Name,
		pq.Array(&event.Times),
		&event.DurationMinutes,
		&description,
		&event.Category,
		&event.CreatedAt,
		&event.UpdatedAt,
		&rewardsJSON,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan scheduled event: %w", err)
	}

	event.Description = description.String

	if err := json.Unmarshal(rewardsJSON, &event.Rewards); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event rewards: %w", err)
	}

	return event, nil
}
