package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sanctuary-tracker/api/internal/models"
)

// ProgressRepository handles per-user completion record operations
type ProgressRepository struct {
	db *DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// upsertQuery relies on the (user_id, activity_id, completed_date) unique
// constraint: the first toggle inserts, later toggles update in place.
const upsertQuery = `
	INSERT INTO user_progress (user_id, activity_id, completed_date, is_completed, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $5)
	ON CONFLICT (user_id, activity_id, completed_date)
	DO UPDATE SET is_completed = EXCLUDED.is_completed, updated_at = EXCLUDED.updated_at
	RETURNING id, created_at, updated_at
`

// GetByUser retrieves all completion records for a user, joined with the
// activity display fields, newest date first.
func (r *ProgressRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*models.ProgressRecord, error) {
	query := `
		SELECT up.id, up.user_id, up.activity_id, up.completed_date, up.is_completed,
		       up.created_at, up.updated_at, a.name, a.type, a.priority
		FROM user_progress up
		JOIN activities a ON up.activity_id = a.id
		WHERE up.user_id = $1
		ORDER BY up.completed_date DESC
	`

	return r.queryRecords(ctx, query, userID)
}

// GetByUserAndDate retrieves a user's completion records for one calendar date
func (r *ProgressRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date string) ([]*models.ProgressRecord, error) {
	query := `
		SELECT up.id, up.user_id, up.activity_id, up.completed_date, up.is_completed,
		       up.created_at, up.updated_at, a.name, a.type, a.priority
		FROM user_progress up
		JOIN activities a ON up.activity_id = a.id
		WHERE up.user_id = $1 AND up.completed_date = $2
	`

	return r.queryRecords(ctx, query, userID, date)
}

// Find retrieves one completion record by its unique key
func (r *ProgressRepository) Find(ctx context.Context, userID uuid.UUID, activityID, date string) (*models.ProgressRecord, error) {
	rec := &models.ProgressRecord{}
	var completedDate time.Time

	query := `
		SELECT id, user_id, activity_id, completed_date, is_completed, created_at, updated_at
		FROM user_progress
		WHERE user_id = $1 AND activity_id = $2 AND completed_date = $3
	`

	err := r.db.QueryRowContext(ctx, query, userID, activityID, date).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.ActivityID,
		&completedDate,
		&rec.IsCompleted,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("progress record not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress record: %w", err)
	}

	rec.CompletedDate = completedDate.Format(models.DateFormat)
	return rec, nil
}

// Upsert writes one completion record, inserting or updating by unique key
func (r *ProgressRepository) Upsert(ctx context.Context, rec *models.ProgressRecord) error {
	now := time.Now()
	err := r.db.QueryRowContext(ctx, upsertQuery,
		rec.UserID,
		rec.ActivityID,
		rec.CompletedDate,
		rec.IsCompleted,
		now,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert progress record: %w", err)
	}

	return nil
}

// UpsertDates writes one completion record per date inside a single
// transaction, so a weekly cascade either lands in full or not at all.
func (r *ProgressRepository) UpsertDates(ctx context.Context, userID uuid.UUID, activityID string, dates []string, completed bool) ([]*models.ProgressRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin cascade transaction: %w", err)
	}
	defer func() {
		// No-op after a successful Commit
		_ = tx.Rollback()
	}()

	now := time.Now()
	records := make([]*models.ProgressRecord, 0, len(dates))
	for _, date := range dates {
		rec := &models.ProgressRecord{
			UserID:        userID,
			ActivityID:    activityID,
			CompletedDate: date,
			IsCompleted:   completed,
		}
		err := tx.QueryRowContext(ctx, upsertQuery,
			rec.UserID,
			rec.ActivityID,
			rec.CompletedDate,
			rec.IsCompleted,
			now,
		).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert progress record for %s: %w", date, err)
		}
		records = append(records, rec)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cascade transaction: %w", err)
	}

	return records, nil
}

func (r *ProgressRepository) queryRecords(ctx context.Context, query string, args ...any) ([]*models.ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress records: %w", err)
	}
	defer rows.Close()

	var records []*models.ProgressRecord
	for rows.Next() {
		rec := &models.ProgressRecord{}
		var completedDate time.Time

		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.ActivityID,
			&completedDate,
			&rec.IsCompleted,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.ActivityName,
			&rec.ActivityType,
			&rec.ActivityPriority,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress record: %w", err)
		}

		rec.CompletedDate = completedDate.Format(models.DateFormat)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress records: %w", err)
	}

	return records, nil
}
