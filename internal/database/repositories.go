package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/sanctuary-tracker/api/internal/models"
)

// These interfaces describe the repository operations consumed by the HTTP
// handlers, enabling mock implementations in tests.

// ActivityRepositoryInterface defines activity catalog read operations
type ActivityRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*models.Activity, error)
	GetByID(ctx context.Context, id string) (*models.Activity, error)
}

// EventRepositoryInterface defines scheduled event catalog read operations
type EventRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*models.ScheduledEvent, error)
	GetByID(ctx context.Context, id string) (*models.ScheduledEvent, error)
}

// RewardRepositoryInterface defines reward catalog read operations
type RewardRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*models.Reward, error)
	GetActivitiesByReward(ctx context.Context, rewardID string) ([]*models.Activity, error)
	GetEventsByReward(ctx context.Context, rewardID string) ([]*models.ScheduledEvent, error)
}

// ProgressRepositoryInterface defines completion record operations
type ProgressRepositoryInterface interface {
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*models.ProgressRecord, error)
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date string) ([]*models.ProgressRecord, error)
	Upsert(ctx context.Context, rec *models.ProgressRecord) error
	UpsertDates(ctx context.Context, userID uuid.UUID, activityID string, dates []string, completed bool) ([]*models.ProgressRecord, error)
}

// UserRepositoryInterface defines the user operations consumed by auth
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	Exists(ctx context.Context, email, username string) (bool, error)
}

// Ensure concrete types implement the interfaces
var (
	_ ActivityRepositoryInterface = (*ActivityRepository)(nil)
	_ EventRepositoryInterface    = (*EventRepository)(nil)
	_ RewardRepositoryInterface   = (*RewardRepository)(nil)
	_ ProgressRepositoryInterface = (*ProgressRepository)(nil)
	_ UserRepositoryInterface     = (*UserRepository)(nil)
)
