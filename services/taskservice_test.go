package services

import (
	"context"
	"errors"
	"testing"

	"lifetrack/model"
	"lifetrack/store"
)

var errRemote = errors.New("remote store unavailable")

// flakyTaskStore fails every call while fail is set, passing through to
// the memory store otherwise.
type flakyTaskStore struct {
	*store.MemoryStore
	fail bool
}

func (s *flakyTaskStore) ListTasksByUser(ctx context.Context, userID string) ([]model.Task, error) {
	if s.fail {
		return nil, errRemote
	}
	return s.MemoryStore.ListTasksByUser(ctx, userID)
}

func (s *flakyTaskStore) CreateTask(ctx context.Context, t *model.Task) error {
	if s.fail {
		return errRemote
	}
	return s.MemoryStore.CreateTask(ctx, t)
}

func (s *flakyTaskStore) UpdateTask(ctx context.Context, taskID string, patch map[string]interface{}) error {
	if s.fail {
		return errRemote
	}
	return s.MemoryStore.UpdateTask(ctx, taskID, patch)
}

func TestCreateThenList(t *testing.T) {
	svc := NewTaskService(store.NewMemoryStore())
	ctx := context.Background()

	list, err := svc.Create(ctx, "u1", TaskForm{
		Title: "Pay bills",
		Tags:  []model.LifeArea{model.AreaFinances},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d tasks, want 1", len(list))
	}

	got := list[0]
	if got.Title != "Pay bills" {
		t.Errorf("title = %q, want %q", got.Title, "Pay bills")
	}
	if got.ResponsibilitiesCompleted || got.ResultsCompleted {
		t.Errorf("completion flags = %v/%v, want false/false",
			got.ResponsibilitiesCompleted, got.ResultsCompleted)
	}
	if len(got.Tags) != 1 || got.Tags[0] != model.AreaFinances {
		t.Errorf("tags = %v, want [Finances]", got.Tags)
	}
	if got.UserID != "u1" {
		t.Errorf("owner = %q, want u1", got.UserID)
	}

	again, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(again) != 1 || again[0].TaskID != got.TaskID {
		t.Errorf("List after Create does not contain the new task")
	}
}

func TestCreateNormalizesEmptyFields(t *testing.T) {
	svc := NewTaskService(store.NewMemoryStore())
	ctx := context.Background()

	list, err := svc.Create(ctx, "u1", TaskForm{
		Title:            "Plan week",
		Responsibilities: "",
		Results:          "write summary",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got := list[0]
	if got.Responsibilities != nil {
		t.Errorf("empty responsibilities stored as %q, want absent", *got.Responsibilities)
	}
	if got.Results == nil || *got.Results != "write summary" {
		t.Errorf("results not round-tripped: %v", got.Results)
	}
}

func TestUpdateNormalizesEmptyFields(t *testing.T) {
	svc := NewTaskService(store.NewMemoryStore())
	ctx := context.Background()

	list, err := svc.Create(ctx, "u1", TaskForm{Title: "Plan week", Results: "summary"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	taskID := list[0].TaskID

	list, err = svc.Update(ctx, "u1", taskID, TaskForm{Title: "Plan week", Results: ""})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if list[0].Results != nil {
		t.Errorf("empty results stored as %q, want absent", *list[0].Results)
	}
	if list[0].UpdatedAt == nil {
		t.Errorf("update timestamp not stamped")
	}
}

func TestToggleSubtaskTwiceRestores(t *testing.T) {
	svc := NewTaskService(store.NewMemoryStore())
	ctx := context.Background()

	list, err := svc.Create(ctx, "u1", TaskForm{Title: "Pay bills"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	taskID := list[0].TaskID

	list, err = svc.ToggleSubtask(ctx, "u1", taskID, model.SubtaskResults)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !list[0].ResultsCompleted {
		t.Errorf("results_completed = false after toggle, want true")
	}
	if list[0].ResponsibilitiesCompleted {
		t.Errorf("responsibilities_completed flipped by a results toggle")
	}

	list, err = svc.ToggleSubtask(ctx, "u1", taskID, model.SubtaskResults)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if list[0].ResultsCompleted {
		t.Errorf("results_completed = true after double toggle, want false")
	}
	if list[0].ResponsibilitiesCompleted {
		t.Errorf("responsibilities_completed changed by results toggles")
	}
}

func TestDeleteRemovesTask(t *testing.T) {
	svc := NewTaskService(store.NewMemoryStore())
	ctx := context.Background()

	list, err := svc.Create(ctx, "u1", TaskForm{Title: "Pay bills"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	taskID := list[0].TaskID

	list, err = svc.Delete(ctx, "u1", taskID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("got %d tasks after delete, want 0", len(list))
	}

	list, err = svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, task := range list {
		if task.TaskID == taskID {
			t.Fatalf("deleted task still listed")
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := NewTaskService(store.NewMemoryStore())
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(ctx, "u1", TaskForm{Title: title}); err != nil {
			t.Fatalf("Create %q: %v", title, err)
		}
	}

	list, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"third", "second", "first"}
	for i, title := range want {
		if list[i].Title != title {
			t.Errorf("list[%d].Title = %q, want %q", i, list[i].Title, title)
		}
	}
}

func TestListRequiresOwner(t *testing.T) {
	svc := NewTaskService(store.NewMemoryStore())

	if _, err := svc.List(context.Background(), ""); !errors.Is(err, ErrNoOwner) {
		t.Fatalf("List with empty owner = %v, want ErrNoOwner", err)
	}
}

func TestMutationsHideForeignTasks(t *testing.T) {
	svc := NewTaskService(store.NewMemoryStore())
	ctx := context.Background()

	list, err := svc.Create(ctx, "u1", TaskForm{Title: "mine"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	taskID := list[0].TaskID

	if _, err := svc.Update(ctx, "u2", taskID, TaskForm{Title: "stolen"}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Update of foreign task = %v, want ErrTaskNotFound", err)
	}
	if _, err := svc.Delete(ctx, "u2", taskID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Delete of foreign task = %v, want ErrTaskNotFound", err)
	}
	if _, err := svc.ToggleSubtask(ctx, "u2", taskID, model.SubtaskResults); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Toggle of foreign task = %v, want ErrTaskNotFound", err)
	}
}

func TestFailureKeepsLastKnownGoodList(t *testing.T) {
	flaky := &flakyTaskStore{MemoryStore: store.NewMemoryStore()}
	svc := NewTaskService(flaky)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "u1", TaskForm{Title: "one"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	flaky.fail = true
	if _, err := svc.List(ctx, "u1"); err == nil {
		t.Fatalf("List succeeded against a failing store")
	}
	snap := svc.Snapshot("u1")
	if len(snap) != 1 || snap[0].Title != "one" {
		t.Fatalf("snapshot lost after failed reload: %v", snap)
	}

	if _, err := svc.Create(ctx, "u1", TaskForm{Title: "two"}); err == nil {
		t.Fatalf("Create succeeded against a failing store")
	}

	flaky.fail = false
	list, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("failed Create left %d tasks, want 1", len(list))
	}
}
