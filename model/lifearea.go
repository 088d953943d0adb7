package model

import "strings"

// LifeArea is one of the six fixed categories used to tag tasks and to
// key the per-area goal text.
type LifeArea string

const (
	AreaFamily       LifeArea = "Family"
	AreaFinances     LifeArea = "Finances"
	AreaRelationship LifeArea = "Relationship"
	AreaFaith        LifeArea = "Faith"
	AreaHealth       LifeArea = "Health"
	AreaPurpose      LifeArea = "Purpose"
)

// LifeAreas lists every area in display order.
var LifeAreas = []LifeArea{
	AreaFamily,
	AreaFinances,
	AreaRelationship,
	AreaFaith,
	AreaHealth,
	AreaPurpose,
}

// ParseLifeArea resolves a case-insensitive area name against the fixed
// enumeration.
func ParseLifeArea(s string) (LifeArea, bool) {
	for _, area := range LifeAreas {
		if strings.EqualFold(s, string(area)) {
			return area, true
		}
	}
	return "", false
}

// Key is the lowercase column name holding the area's goal text.
func (a LifeArea) Key() string {
	return strings.ToLower(string(a))
}
