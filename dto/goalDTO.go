package dto

// GoalSaveRequest carries the whole goal record: the id from the last
// load (absent before the first save) and the per-area text keyed by
// the lowercase area name.
type GoalSaveRequest struct {
	ID    string            `json:"id"`
	Areas map[string]string `json:"areas"`
}
