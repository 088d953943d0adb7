package model

import "testing"

func TestGoalAreaRoundTrip(t *testing.T) {
	var g Goal

	for _, area := range LifeAreas {
		if text, ok := g.Area(area); ok {
			t.Fatalf("fresh record has %s = %q", area, text)
		}
	}

	g.SetArea(AreaHealth, "Sleep eight hours")
	if text, ok := g.Area(AreaHealth); !ok || text != "Sleep eight hours" {
		t.Errorf("health = %q (%v)", text, ok)
	}
	if _, ok := g.Area(AreaFamily); ok {
		t.Errorf("setting health leaked into family")
	}
}

func TestGoalSetAreaEmptyClears(t *testing.T) {
	var g Goal
	g.SetArea(AreaPurpose, "Ship the thing")
	g.SetArea(AreaPurpose, "")

	if _, ok := g.Area(AreaPurpose); ok {
		t.Errorf("empty text did not clear the field")
	}
	if g.Purpose != nil {
		t.Errorf("purpose stored as %q, want absent", *g.Purpose)
	}
}
