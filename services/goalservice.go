package services

import (
	"context"
	"errors"
	"sync"

	"lifetrack/model"
	"lifetrack/store"
)

// ErrGoalNotFound covers both an unknown goal id and an id that belongs
// to another owner; the caller cannot tell the two apart.
var ErrGoalNotFound = errors.New("services: goal not found")

// GoalService owns the single per-owner goal record. A missing remote
// row is not an error: it yields a default record carrying only the
// owner id, and the first save turns into an insert.
type GoalService struct {
	store store.GoalStore

	mu        sync.RWMutex
	snapshots map[string]model.Goal
}

func NewGoalService(st store.GoalStore) *GoalService {
	return &GoalService{
		store:     st,
		snapshots: make(map[string]model.Goal),
	}
}

// Load fetches the owner's goal record. On remote failure the prior
// snapshot is kept and the error is returned.
func (s *GoalService) Load(ctx context.Context, ownerID string) (model.Goal, error) {
	if ownerID == "" {
		return model.Goal{}, ErrNoOwner
	}
	g, err := s.store.GetGoalByUser(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNoRow) {
			empty := model.Goal{UserID: ownerID}
			s.setSnapshot(ownerID, empty)
			return empty, nil
		}
		return model.Goal{}, err
	}
	s.setSnapshot(ownerID, *g)
	return *g, nil
}

// Snapshot returns the last successfully loaded record for the owner.
func (s *GoalService) Snapshot(ownerID string) model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.snapshots[ownerID]
	if !ok {
		return model.Goal{UserID: ownerID}
	}
	return g
}

// Save inserts the record when it has no id yet and updates it in place
// otherwise, then reloads so the caller sees the assigned id. A failed
// save leaves the snapshot alone, so in-flight edits survive for a
// retry.
func (s *GoalService) Save(ctx context.Context, ownerID string, g model.Goal) (model.Goal, error) {
	if ownerID == "" {
		return model.Goal{}, ErrNoOwner
	}
	g.UserID = ownerID

	if g.GoalID == "" {
		if err := s.store.CreateGoal(ctx, &g); err != nil {
			return model.Goal{}, err
		}
	} else {
		// The id must name the owner's own record; a foreign or
		// unknown id reads as absent.
		current, err := s.store.GetGoalByUser(ctx, ownerID)
		if err != nil {
			if errors.Is(err, store.ErrNoRow) {
				return model.Goal{}, ErrGoalNotFound
			}
			return model.Goal{}, err
		}
		if current.GoalID != g.GoalID {
			return model.Goal{}, ErrGoalNotFound
		}
		if err := s.store.UpdateGoal(ctx, g.GoalID, &g); err != nil {
			if errors.Is(err, store.ErrNoRow) {
				return model.Goal{}, ErrGoalNotFound
			}
			return model.Goal{}, err
		}
	}
	return s.Load(ctx, ownerID)
}

func (s *GoalService) setSnapshot(ownerID string, g model.Goal) {
	s.mu.Lock()
	s.snapshots[ownerID] = g
	s.mu.Unlock()
}
