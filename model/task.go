package model

import (
	"time"
)

// Task is a single row of the tasks table. The row id is the document
// id, not a stored field. The two completion flags are independent: one
// never implies the other.
type Task struct {
	TaskID                    string     `firestore:"-" json:"id"`
	Title                     string     `firestore:"title" json:"title"`
	Description               *string    `firestore:"description" json:"description,omitempty"`
	Responsibilities          *string    `firestore:"responsibilities" json:"responsibilities,omitempty"`
	Results                   *string    `firestore:"results" json:"results,omitempty"`
	UserID                    string     `firestore:"user_id" json:"user_id"`
	ResponsibilitiesCompleted bool       `firestore:"responsibilities_completed" json:"responsibilities_completed"`
	ResultsCompleted          bool       `firestore:"results_completed" json:"results_completed"`
	Tags                      []LifeArea `firestore:"tags" json:"tags"`
	CreatedAt                 time.Time  `firestore:"created_at,serverTimestamp" json:"created_at"`
	UpdatedAt                 *time.Time `firestore:"updated_at" json:"updated_at,omitempty"`
}

// Subtask identifies one of the two completion phases of a task.
type Subtask string

const (
	SubtaskResponsibilities Subtask = "responsibilities"
	SubtaskResults          Subtask = "results"
)

func ParseSubtask(s string) (Subtask, bool) {
	switch Subtask(s) {
	case SubtaskResponsibilities:
		return SubtaskResponsibilities, true
	case SubtaskResults:
		return SubtaskResults, true
	}
	return "", false
}
