package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifetrack/model"
)

func TestMemoryTaskOrdering(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		if err := s.CreateTask(ctx, &model.Task{Title: title, UserID: "u1"}); err != nil {
			t.Fatalf("CreateTask %q: %v", title, err)
		}
	}
	if err := s.CreateTask(ctx, &model.Task{Title: "other", UserID: "u2"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	tasks, err := s.ListTasksByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListTasksByUser: %v", err)
	}
	want := []string{"c", "b", "a"}
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(want))
	}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestMemoryTaskPatch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	task := &model.Task{Title: "before", UserID: "u1"}
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	now := time.Now()
	text := "notes"
	patch := map[string]interface{}{
		"title":             "after",
		"results":           &text,
		"responsibilities":  (*string)(nil),
		"results_completed": true,
		"updated_at":        now,
	}
	if err := s.UpdateTask(ctx, task.TaskID, patch); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	got, err := s.GetTask(ctx, task.TaskID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "after" {
		t.Errorf("title = %q, want %q", got.Title, "after")
	}
	if got.Results == nil || *got.Results != "notes" {
		t.Errorf("results = %v, want notes", got.Results)
	}
	if got.Responsibilities != nil {
		t.Errorf("responsibilities = %q, want absent", *got.Responsibilities)
	}
	if !got.ResultsCompleted {
		t.Errorf("results_completed not applied")
	}
	if got.ResponsibilitiesCompleted {
		t.Errorf("responsibilities_completed changed by unrelated patch")
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(now) {
		t.Errorf("updated_at = %v, want %v", got.UpdatedAt, now)
	}
}

func TestMemoryTaskPatchUnknownRow(t *testing.T) {
	s := NewMemoryStore()

	err := s.UpdateTask(context.Background(), "nope", map[string]interface{}{"title": "x"})
	if !errors.Is(err, ErrNoRow) {
		t.Fatalf("UpdateTask on missing row = %v, want ErrNoRow", err)
	}
}

func TestMemoryGoalUpdateKeepsSingleRow(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	text := "original"
	g := &model.Goal{UserID: "u1", Faith: &text}
	if err := s.CreateGoal(ctx, g); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if g.GoalID == "" {
		t.Fatalf("CreateGoal did not assign an id")
	}

	edited := "edited"
	update := &model.Goal{UserID: "u1", Faith: &edited}
	if err := s.UpdateGoal(ctx, g.GoalID, update); err != nil {
		t.Fatalf("UpdateGoal: %v", err)
	}

	if len(s.goals) != 1 {
		t.Fatalf("store holds %d goal rows for one owner, want 1", len(s.goals))
	}
	got, err := s.GetGoalByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetGoalByUser: %v", err)
	}
	if got.GoalID != g.GoalID {
		t.Errorf("id changed across update: %q -> %q", g.GoalID, got.GoalID)
	}
	if got.Faith == nil || *got.Faith != "edited" {
		t.Errorf("faith = %v, want edited", got.Faith)
	}
}

func TestMemorySingleRowFetchesReportNoRow(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.GetGoalByUser(ctx, "u1"); !errors.Is(err, ErrNoRow) {
		t.Errorf("GetGoalByUser = %v, want ErrNoRow", err)
	}
	if _, err := s.GetProfile(ctx, "u1"); !errors.Is(err, ErrNoRow) {
		t.Errorf("GetProfile = %v, want ErrNoRow", err)
	}
	if _, err := s.GetUserByEmail(ctx, "a@b.c"); !errors.Is(err, ErrNoRow) {
		t.Errorf("GetUserByEmail = %v, want ErrNoRow", err)
	}
	if _, err := s.GetRefreshToken(ctx, "u1"); !errors.Is(err, ErrNoRow) {
		t.Errorf("GetRefreshToken = %v, want ErrNoRow", err)
	}
}

func TestMemoryProfileUpsertKeepsCreatedAt(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	name := "First"
	if err := s.UpsertProfile(ctx, &model.Profile{UserID: "u1", FullName: &name}); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	first, err := s.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}

	renamed := "Second"
	if err := s.UpsertProfile(ctx, &model.Profile{UserID: "u1", FullName: &renamed}); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	second, err := s.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("upsert rewrote created_at: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if second.FullName == nil || *second.FullName != "Second" {
		t.Errorf("full_name = %v, want Second", second.FullName)
	}
}

func TestMemoryRevokeRefreshToken(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	rec := &model.RefreshTokenRecord{UserID: "u1", TokenHash: "h", CreatedAt: time.Now().Unix(), ExpiresIn: 60}
	if err := s.SaveRefreshToken(ctx, rec); err != nil {
		t.Fatalf("SaveRefreshToken: %v", err)
	}
	if err := s.RevokeRefreshToken(ctx, "u1"); err != nil {
		t.Fatalf("RevokeRefreshToken: %v", err)
	}
	got, err := s.GetRefreshToken(ctx, "u1")
	if err != nil {
		t.Fatalf("GetRefreshToken: %v", err)
	}
	if !got.Revoked {
		t.Errorf("token not marked revoked")
	}
}
