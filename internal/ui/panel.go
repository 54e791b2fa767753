package ui

// Panel is the draggable pickup sheet shown on location-selection screens.
// Height is a percentage of the available area; past half height the panel
// reveals the recent-locations list. A drag does not snap immediately, the
// panel settles to its target a moment after input stops.
type Panel struct {
	heightPct int
	targetPct int
	settling  bool
}

const (
	panelMinPct      = 20
	panelMaxPct      = 90
	panelDefaultPct  = 35
	panelStepPct     = 15
	recentsRevealPct = 50
)

// NewPanel starts at the collapsed default height.
func NewPanel() Panel {
	return Panel{heightPct: panelDefaultPct, targetPct: panelDefaultPct}
}

func clampPct(pct int) int {
	if pct < panelMinPct {
		return panelMinPct
	}
	if pct > panelMaxPct {
		return panelMaxPct
	}
	return pct
}

// Drag moves the target height by delta percentage points. The visible
// height lags behind, covering only half the remaining distance per input,
// so the sheet trails the pointer; Settle snaps it to the target once the
// settle timer fires.
func (p *Panel) Drag(delta int) {
	p.targetPct = clampPct(p.targetPct + delta)
	p.heightPct += (p.targetPct - p.heightPct) / 2
	p.settling = true
}

// Settle completes a drag. A settle with no drag pending is a no-op.
func (p *Panel) Settle() {
	if !p.settling {
		return
	}
	p.heightPct = p.targetPct
	p.settling = false
}

// HeightPct returns the current height as a percentage, always within bounds.
func (p Panel) HeightPct() int {
	return p.heightPct
}

// ShowRecents reports whether the panel is tall enough to reveal the
// recent-locations list. The threshold is strictly above half height.
func (p Panel) ShowRecents() bool {
	return p.heightPct > recentsRevealPct
}

// Reset collapses the panel back to its default height, for screen changes.
func (p *Panel) Reset() {
	p.heightPct = panelDefaultPct
	p.targetPct = panelDefaultPct
	p.settling = false
}
