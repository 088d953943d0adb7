package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"lifetrack/model"
	"lifetrack/store"
)

// ErrNoOwner is returned when an operation is invoked without an
// authenticated owner identifier. Callers are expected to guard, so
// hitting this is a programming error on their side.
var ErrNoOwner = errors.New("services: missing owner identifier")

// ErrTaskNotFound covers both a genuinely absent row and a row owned by
// someone else; the caller cannot tell the two apart.
var ErrTaskNotFound = errors.New("services: task not found")

// TaskForm carries the user-editable fields of a task.
type TaskForm struct {
	Title            string
	Description      string
	Responsibilities string
	Results          string
	Tags             []model.LifeArea
}

// TaskService owns the per-owner in-memory task list and keeps it
// consistent with the remote store: every successful mutation ends with
// an unconditional full reload, and a failed operation leaves the last
// known-good list untouched.
type TaskService struct {
	store store.TaskStore

	mu        sync.RWMutex
	snapshots map[string][]model.Task

	ownerMu sync.Mutex
	owners  map[string]*sync.Mutex
}

func NewTaskService(st store.TaskStore) *TaskService {
	return &TaskService{
		store:     st,
		snapshots: make(map[string][]model.Task),
		owners:    make(map[string]*sync.Mutex),
	}
}

// ownerLock serializes mutations per owner so two racing toggles cannot
// interleave with each other's reloads.
func (s *TaskService) ownerLock(ownerID string) *sync.Mutex {
	s.ownerMu.Lock()
	defer s.ownerMu.Unlock()
	m, ok := s.owners[ownerID]
	if !ok {
		m = &sync.Mutex{}
		s.owners[ownerID] = m
	}
	return m
}

// List reloads the owner's tasks, newest first. On failure the previous
// snapshot is kept and the error is returned.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	tasks, err := s.store.ListTasksByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.snapshots[ownerID] = tasks
	s.mu.Unlock()
	return tasks, nil
}

// Snapshot returns the last successfully loaded list for the owner
// without touching the store.
func (s *TaskService) Snapshot(ownerID string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots[ownerID]
}

// Create inserts a new task for the owner and reloads the list. Both
// completion flags start false; empty responsibilities and results are
// stored as absent, never as empty strings.
func (s *TaskService) Create(ctx context.Context, ownerID string, form TaskForm) ([]model.Task, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	lock := s.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	t := &model.Task{
		Title:            form.Title,
		Description:      optional(form.Description),
		Responsibilities: optional(form.Responsibilities),
		Results:          optional(form.Results),
		UserID:           ownerID,
		Tags:             form.Tags,
		UpdatedAt:        &now,
	}
	if err := s.store.CreateTask(ctx, t); err != nil {
		return nil, err
	}
	return s.List(ctx, ownerID)
}

// Update replaces the mutable fields of an owned task and reloads.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, form TaskForm) ([]model.Task, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	lock := s.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.ownedTask(ctx, ownerID, taskID); err != nil {
		return nil, err
	}
	patch := map[string]interface{}{
		"title":            form.Title,
		"description":      optional(form.Description),
		"responsibilities": optional(form.Responsibilities),
		"results":          optional(form.Results),
		"tags":             form.Tags,
		"updated_at":       time.Now(),
	}
	if err := s.store.UpdateTask(ctx, taskID, patch); err != nil {
		return nil, err
	}
	return s.List(ctx, ownerID)
}

// Delete removes an owned task and reloads.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) ([]model.Task, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	lock := s.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.ownedTask(ctx, ownerID, taskID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.List(ctx, ownerID)
}

// ToggleSubtask flips exactly one of the two completion flags to the
// complement of its current in-memory value and reloads. The other flag
// and all remaining fields are untouched.
func (s *TaskService) ToggleSubtask(ctx context.Context, ownerID, taskID string, which model.Subtask) ([]model.Task, error) {
	if ownerID == "" {
		return nil, ErrNoOwner
	}
	lock := s.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	t, err := s.ownedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	var column string
	var next bool
	switch which {
	case model.SubtaskResponsibilities:
		column, next = "responsibilities_completed", !t.ResponsibilitiesCompleted
	case model.SubtaskResults:
		column, next = "results_completed", !t.ResultsCompleted
	default:
		return nil, fmt.Errorf("services: unknown subtask %q", which)
	}

	patch := map[string]interface{}{
		column:       next,
		"updated_at": time.Now(),
	}
	if err := s.store.UpdateTask(ctx, taskID, patch); err != nil {
		return nil, err
	}
	return s.List(ctx, ownerID)
}

// ownedTask resolves the task from the snapshot when possible, falling
// back to a store read, and hides rows that belong to another owner.
func (s *TaskService) ownedTask(ctx context.Context, ownerID, taskID string) (*model.Task, error) {
	s.mu.RLock()
	for _, t := range s.snapshots[ownerID] {
		if t.TaskID == taskID {
			s.mu.RUnlock()
			task := t
			return &task, nil
		}
	}
	s.mu.RUnlock()

	t, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNoRow) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if t.UserID != ownerID {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

// optional normalizes an empty form field to an absent value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
