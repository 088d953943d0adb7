package dto

type TaskRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	Responsibilities string   `json:"responsibilities"`
	Results          string   `json:"results"`
	Tags             []string `json:"tags"`
}

type ToggleRequest struct {
	Field string `json:"field" binding:"required"`
}
