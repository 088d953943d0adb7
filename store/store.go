package store

import (
	"context"
	"errors"

	"lifetrack/model"
)

// Table names in the hosted store.
const (
	TableTasks         = "tasks"
	TableGoals         = "goals"
	TableProfiles      = "profiles"
	TableUsers         = "users"
	TableRefreshTokens = "refresh_tokens"
)

// ErrNoRow is returned by single-row fetches when no matching row
// exists. Callers that treat absence as "no record yet" check for it
// with errors.Is; every other error is a remote failure.
var ErrNoRow = errors.New("store: no matching row")

type TaskStore interface {
	// ListTasksByUser returns the user's tasks ordered by creation
	// time, newest first.
	ListTasksByUser(ctx context.Context, userID string) ([]model.Task, error)
	GetTask(ctx context.Context, taskID string) (*model.Task, error)
	// CreateTask inserts the task, assigning a fresh id when none is
	// set.
	CreateTask(ctx context.Context, t *model.Task) error
	// UpdateTask applies a partial row keyed by column name to an
	// existing task.
	UpdateTask(ctx context.Context, taskID string, patch map[string]interface{}) error
	DeleteTask(ctx context.Context, taskID string) error
}

type GoalStore interface {
	GetGoalByUser(ctx context.Context, userID string) (*model.Goal, error)
	CreateGoal(ctx context.Context, g *model.Goal) error
	UpdateGoal(ctx context.Context, goalID string, g *model.Goal) error
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	UpsertProfile(ctx context.Context, p *model.Profile) error
}

type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) error
}

type TokenStore interface {
	SaveRefreshToken(ctx context.Context, rec *model.RefreshTokenRecord) error
	GetRefreshToken(ctx context.Context, userID string) (*model.RefreshTokenRecord, error)
	RevokeRefreshToken(ctx context.Context, userID string) error
}

// Store is the full remote-table surface the server wires up.
type Store interface {
	TaskStore
	GoalStore
	ProfileStore
	UserStore
	TokenStore
}
