// Package overlay tracks the modal surfaces that float above the active
// screen. Opening or closing an overlay never changes which screen is
// current; the one coupling (ride offers) lives in the dispatcher as two
// explicit sequential effects.
package overlay

import "log"

// Kind identifies one of the independently toggleable overlays.
type Kind int

const (
	QuickBook Kind = iota
	CancelConfirm
	FareDialog
	PaymentModal
	FareBreakdown
	RideOffers
	VoiceActivation

	kindCount
)

var kindNames = [kindCount]string{
	"quickBook",
	"cancelConfirm",
	"fareDialog",
	"paymentModal",
	"fareBreakdown",
	"rideOffers",
	"voiceActivation",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "invalid"
	}
	return kindNames[k]
}

// zOrder is the fixed render order, bottom first. Several overlays may be
// visible at once; cancel-confirm always paints above quick-book.
var zOrder = [kindCount]Kind{
	QuickBook,
	FareDialog,
	PaymentModal,
	FareBreakdown,
	RideOffers,
	VoiceActivation,
	CancelConfirm,
}

// Controller holds the seven visibility flags. It is owned by the
// composition root alongside the navigator and mutated only through
// dispatcher callbacks.
type Controller struct {
	visible [kindCount]bool
}

func NewController() *Controller {
	return &Controller{}
}

// Open shows an overlay. Idempotent.
func (c *Controller) Open(k Kind) {
	if !c.visible[k] {
		log.Printf("overlay: open %s", k)
	}
	c.visible[k] = true
}

// Close hides an overlay. Idempotent.
func (c *Controller) Close(k Kind) {
	if c.visible[k] {
		log.Printf("overlay: close %s", k)
	}
	c.visible[k] = false
}

// Visible reports whether an overlay is currently shown.
func (c *Controller) Visible(k Kind) bool {
	return c.visible[k]
}

// AnyVisible reports whether at least one overlay is shown.
func (c *Controller) AnyVisible() bool {
	for _, v := range c.visible {
		if v {
			return true
		}
	}
	return false
}

// Stacked returns the visible overlays in render order, bottom first.
func (c *Controller) Stacked() []Kind {
	var out []Kind
	for _, k := range zOrder {
		if c.visible[k] {
			out = append(out, k)
		}
	}
	return out
}

// Top returns the topmost visible overlay; ok is false when none is shown.
// Input routing goes to the top of the stack.
func (c *Controller) Top() (Kind, bool) {
	stack := c.Stacked()
	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}
