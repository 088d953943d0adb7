package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"lifetrack/model"
)

type memTask struct {
	task model.Task
	seq  int64
}

// MemoryStore is an in-process Store used by tests and by
// credential-less local runs. Ordering follows insertion order, which
// matches created_at descending because creation stamps are assigned
// here.
type MemoryStore struct {
	mu       sync.RWMutex
	seq      int64
	tasks    map[string]memTask
	goals    map[string]model.Goal
	profiles map[string]model.Profile
	users    map[string]model.User
	tokens   map[string]model.RefreshTokenRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks:    make(map[string]memTask),
		goals:    make(map[string]model.Goal),
		profiles: make(map[string]model.Profile),
		users:    make(map[string]model.User),
		tokens:   make(map[string]model.RefreshTokenRecord),
	}
}

func (s *MemoryStore) ListTasksByUser(ctx context.Context, userID string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []memTask
	for _, row := range s.tasks {
		if row.task.UserID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].seq > rows[j].seq
	})

	var tasks []model.Task
	for _, row := range rows {
		tasks = append(tasks, row.task)
	}
	return tasks, nil
}

func (s *MemoryStore) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.tasks[taskID]
	if !ok {
		return nil, ErrNoRow
	}
	t := row.task
	return &t, nil
}

func (s *MemoryStore) CreateTask(ctx context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.TaskID == "" {
		t.TaskID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	s.seq++
	s.tasks[t.TaskID] = memTask{task: *t, seq: s.seq}
	return nil
}

func (s *MemoryStore) UpdateTask(ctx context.Context, taskID string, patch map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tasks[taskID]
	if !ok {
		return ErrNoRow
	}
	applyTaskPatch(&row.task, patch)
	s.tasks[taskID] = row
	return nil
}

func (s *MemoryStore) DeleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks, taskID)
	return nil
}

func applyTaskPatch(t *model.Task, patch map[string]interface{}) {
	for column, value := range patch {
		switch column {
		case "title":
			if v, ok := value.(string); ok {
				t.Title = v
			}
		case "description":
			t.Description = asStringPtr(value)
		case "responsibilities":
			t.Responsibilities = asStringPtr(value)
		case "results":
			t.Results = asStringPtr(value)
		case "tags":
			if v, ok := value.([]model.LifeArea); ok {
				t.Tags = v
			}
		case "responsibilities_completed":
			if v, ok := value.(bool); ok {
				t.ResponsibilitiesCompleted = v
			}
		case "results_completed":
			if v, ok := value.(bool); ok {
				t.ResultsCompleted = v
			}
		case "updated_at":
			if v, ok := value.(time.Time); ok {
				t.UpdatedAt = &v
			}
		}
	}
}

func asStringPtr(value interface{}) *string {
	switch v := value.(type) {
	case *string:
		return v
	case string:
		return &v
	}
	return nil
}

func (s *MemoryStore) GetGoalByUser(ctx context.Context, userID string) (*model.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.goals {
		if g.UserID == userID {
			goal := g
			return &goal, nil
		}
	}
	return nil, ErrNoRow
}

func (s *MemoryStore) CreateGoal(ctx context.Context, g *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.GoalID == "" {
		g.GoalID = uuid.New().String()
	}
	s.goals[g.GoalID] = *g
	return nil
}

func (s *MemoryStore) UpdateGoal(ctx context.Context, goalID string, g *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[goalID]; !ok {
		return ErrNoRow
	}
	updated := *g
	updated.GoalID = goalID
	s.goals[goalID] = updated
	return nil
}

func (s *MemoryStore) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNoRow
	}
	return &p, nil
}

func (s *MemoryStore) UpsertProfile(ctx context.Context, p *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *p
	if existing, ok := s.profiles[p.UserID]; ok && !existing.CreatedAt.IsZero() {
		row.CreatedAt = existing.CreatedAt
	} else if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	s.profiles[p.UserID] = row
	return nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNoRow
}

func (s *MemoryStore) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrNoRow
	}
	return &u, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.UserID == "" {
		u.UserID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.UserID] = *u
	return nil
}

func (s *MemoryStore) SaveRefreshToken(ctx context.Context, rec *model.RefreshTokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[rec.UserID] = *rec
	return nil
}

func (s *MemoryStore) GetRefreshToken(ctx context.Context, userID string) (*model.RefreshTokenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tokens[userID]
	if !ok {
		return nil, ErrNoRow
	}
	return &rec, nil
}

func (s *MemoryStore) RevokeRefreshToken(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tokens[userID]
	if !ok {
		return ErrNoRow
	}
	rec.Revoked = true
	s.tokens[userID] = rec
	return nil
}
