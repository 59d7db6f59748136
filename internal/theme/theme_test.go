package theme

import "testing"

func TestBorderPrecedence(t *testing.T) {
	s := Default()
	if s.Border(true, true) != s.ActiveBorder {
		t.Fatalf("expected active border to win")
	}
	if s.Border(false, true) != s.HoveredBorder {
		t.Fatalf("expected hovered border")
	}
	if s.Border(false, false) != s.IdleBorder {
		t.Fatalf("expected idle border")
	}
}
