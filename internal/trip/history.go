package trip

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Booking is one completed trip/order in the in-memory history list.
// Nothing here is persisted; the list lives and dies with the process.
type Booking struct {
	ID          string
	Service     ServiceKind
	From        string
	To          string
	Fare        int
	Rating      int
	CompletedAt time.Time
}

// History is an append-only mock list, newest first.
type History struct {
	bookings []Booking
}

func NewHistory() *History {
	return &History{}
}

// Record appends a completed booking and returns its generated id.
func (h *History) Record(service ServiceKind, from, to string, fare, rating int) string {
	b := Booking{
		ID:          uuid.NewString(),
		Service:     service,
		From:        from,
		To:          to,
		Fare:        fare,
		Rating:      rating,
		CompletedAt: time.Now(),
	}
	h.bookings = append([]Booking{b}, h.bookings...)
	return b.ID
}

// All returns the bookings, newest first.
func (h *History) All() []Booking {
	return h.bookings
}

// Len reports how many bookings have been recorded.
func (h *History) Len() int {
	return len(h.bookings)
}

// Line renders a booking as a single history row.
func (b Booking) Line() string {
	return fmt.Sprintf("%s  %s → %s  Rs %d", b.Service, b.From, b.To, b.Fare)
}
