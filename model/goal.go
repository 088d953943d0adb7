package model

// Goal is the single per-user goal record: one optional free-text field
// per life area, keyed by the lowercase area name. The id is absent
// until the first save assigns one.
type Goal struct {
	GoalID       string  `firestore:"-" json:"id,omitempty"`
	UserID       string  `firestore:"user_id" json:"user_id"`
	Family       *string `firestore:"family" json:"family,omitempty"`
	Finances     *string `firestore:"finances" json:"finances,omitempty"`
	Relationship *string `firestore:"relationship" json:"relationship,omitempty"`
	Faith        *string `firestore:"faith" json:"faith,omitempty"`
	Health       *string `firestore:"health" json:"health,omitempty"`
	Purpose      *string `firestore:"purpose" json:"purpose,omitempty"`
}

func (g *Goal) field(area LifeArea) **string {
	switch area {
	case AreaFamily:
		return &g.Family
	case AreaFinances:
		return &g.Finances
	case AreaRelationship:
		return &g.Relationship
	case AreaFaith:
		return &g.Faith
	case AreaHealth:
		return &g.Health
	case AreaPurpose:
		return &g.Purpose
	}
	return nil
}

// Area returns the goal text for the area, or false when none is set.
func (g *Goal) Area(area LifeArea) (string, bool) {
	f := g.field(area)
	if f == nil || *f == nil {
		return "", false
	}
	return **f, true
}

// SetArea replaces the goal text for the area. Empty text clears the
// field so it is stored as absent, never as an empty string.
func (g *Goal) SetArea(area LifeArea, text string) {
	f := g.field(area)
	if f == nil {
		return
	}
	if text == "" {
		*f = nil
		return
	}
	*f = &text
}
