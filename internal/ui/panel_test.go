package ui

import "testing"

func TestPanelDragClampsAndSettles(t *testing.T) {
	p := NewPanel()
	if p.HeightPct() != panelDefaultPct {
		t.Fatalf("default height = %d", p.HeightPct())
	}

	for i := 0; i < 10; i++ {
		p.Drag(panelStepPct)
	}
	p.Settle()
	if p.HeightPct() != panelMaxPct {
		t.Errorf("height not clamped at max: %d", p.HeightPct())
	}

	for i := 0; i < 10; i++ {
		p.Drag(-panelStepPct)
	}
	p.Settle()
	if p.HeightPct() != panelMinPct {
		t.Errorf("height not clamped at min: %d", p.HeightPct())
	}
}

// The sheet trails the pointer during a drag; settling is what actually
// finishes the motion, so it must change the observable height.
func TestPanelSettleCompletesDrag(t *testing.T) {
	p := NewPanel()
	p.Drag(2 * panelStepPct)

	target := panelDefaultPct + 2*panelStepPct
	if p.HeightPct() == target {
		t.Fatalf("sheet must lag the drag target, at %d", p.HeightPct())
	}

	p.Settle()
	if p.HeightPct() != target {
		t.Errorf("settle must land on the target: %d, want %d", p.HeightPct(), target)
	}

	// A settle with no drag pending is a no-op.
	p.Settle()
	if p.HeightPct() != target || p.settling {
		t.Error("idle settle must change nothing")
	}
}

func TestPanelRecentsRevealThreshold(t *testing.T) {
	p := NewPanel()
	if p.ShowRecents() {
		t.Error("collapsed panel must not reveal recents")
	}

	// Exactly half is not enough; the threshold is strictly above.
	p.Drag(recentsRevealPct - panelDefaultPct)
	p.Settle()
	if p.HeightPct() != recentsRevealPct {
		t.Fatalf("setup: height = %d", p.HeightPct())
	}
	if p.ShowRecents() {
		t.Error("recents revealed at exactly half height")
	}

	p.Drag(1)
	p.Settle()
	if !p.ShowRecents() {
		t.Error("recents not revealed just above half height")
	}

	p.Reset()
	if p.ShowRecents() || p.HeightPct() != panelDefaultPct {
		t.Error("reset did not collapse the panel")
	}
}
