package nav

import (
	"log"

	"safar/internal/trip"
)

// Context is the side-channel bundle carried across a transition when the
// destination cannot derive what it needs from domain state alone.
//
// Previous is a single slot, not a stack: entering a second transient screen
// overwrites it. That matches the observed app behavior (repeated
// sos→message hops collapse to one slot) and is kept deliberately.
//
// PickupSuccess is a one-shot override for where a pickup-selection flow
// should land; it is cleared the moment it is consumed.
type Context struct {
	Previous      Screen
	PickupSuccess Screen
	Contact       trip.Contact
}

// Navigator owns the current screen identifier and the pending context. It
// performs no validation of source→destination legality; which transitions
// are reachable is decided by which callbacks the dispatcher hands each
// screen, never here.
type Navigator struct {
	current Screen
	ctx     Context
}

// New starts the navigator on the given screen.
func New(start Screen) *Navigator {
	return &Navigator{current: start}
}

// Current returns the screen that is on screen right now.
func (n *Navigator) Current() Screen {
	return n.current
}

// Context returns a copy of the pending navigation context.
func (n *Navigator) Context() Context {
	return n.ctx
}

// GoTo unconditionally replaces the current screen.
func (n *Navigator) GoTo(s Screen) {
	if s == n.current {
		return
	}
	log.Printf("nav: %s -> %s", n.current, s)
	n.current = s
}

// GoToWithContext merges the non-zero fields of patch into the pending
// context, then transitions. Zero-valued fields (ScreenNone, empty Contact)
// leave the existing context untouched.
func (n *Navigator) GoToWithContext(s Screen, patch Context) {
	if patch.Previous != ScreenNone {
		n.ctx.Previous = patch.Previous
	}
	if patch.PickupSuccess != ScreenNone {
		n.ctx.PickupSuccess = patch.PickupSuccess
	}
	if patch.Contact != (trip.Contact{}) {
		n.ctx.Contact = patch.Contact
	}
	n.GoTo(s)
}

// ReturnFromTransient goes back to the previous-screen slot. The slot is not
// cleared; it is overwritten by the next transient entry.
func (n *Navigator) ReturnFromTransient() {
	if n.ctx.Previous == ScreenNone {
		n.GoTo(ScreenHome)
		return
	}
	n.GoTo(n.ctx.Previous)
}

// ConsumePickupSuccess returns the one-shot pickup success target and clears
// it. The second return is false when no target was pending.
func (n *Navigator) ConsumePickupSuccess() (Screen, bool) {
	s := n.ctx.PickupSuccess
	if s == ScreenNone {
		return ScreenNone, false
	}
	n.ctx.PickupSuccess = ScreenNone
	return s, true
}
