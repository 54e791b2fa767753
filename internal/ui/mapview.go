package ui

import (
	"fmt"
	"strings"

	"safar/internal/trip"
)

// MapView is the mock map used by the delivery destination screen. It is a
// character grid with a movable cursor; a click translates the cursor cell
// into coordinates and then into the nearest known location label, because
// the rest of the app deals in labels, never raw coordinates.
type MapView struct {
	cols, rows int
	curX, curY int
	dragging   bool
}

// Karachi-ish bounding box for the mock coordinate translation.
const (
	mapLatMin = 24.78
	mapLatMax = 24.95
	mapLngMin = 66.97
	mapLngMax = 67.18
)

func NewMapView() MapView {
	return MapView{cols: 24, rows: 10, curX: 12, curY: 5}
}

// Move shifts the cursor, clamped to the grid.
func (v *MapView) Move(dx, dy int) {
	v.curX += dx
	v.curY += dy
	if v.curX < 0 {
		v.curX = 0
	}
	if v.curX >= v.cols {
		v.curX = v.cols - 1
	}
	if v.curY < 0 {
		v.curY = 0
	}
	if v.curY >= v.rows {
		v.curY = v.rows - 1
	}
}

// DragStart begins a pan; subsequent Move calls pan instead of picking.
func (v *MapView) DragStart() { v.dragging = true }

// DragEnd finishes a pan without selecting anything.
func (v *MapView) DragEnd() { v.dragging = false }

// Dragging reports whether a pan is in progress.
func (v MapView) Dragging() bool { return v.dragging }

// Click translates the cursor cell to mock coordinates. Both axes are
// computed from the min side so the extremes land exactly on the bounding
// box instead of drifting past it in float arithmetic.
func (v MapView) Click() (lat, lng float64) {
	lat = mapLatMin + (mapLatMax-mapLatMin)*float64(v.rows-1-v.curY)/float64(v.rows-1)
	lng = mapLngMin + (mapLngMax-mapLngMin)*float64(v.curX)/float64(v.cols-1)
	return lat, lng
}

// ClickLabel translates the cursor into a location label. The grid is split
// into bands, one per known location, so every cell resolves to something
// selectable.
func (v MapView) ClickLabel() string {
	options := trip.LocationOptions()
	band := v.curY * len(options) / v.rows
	if band >= len(options) {
		band = len(options) - 1
	}
	return options[band]
}

// Render draws the grid with the cursor marked.
func (v MapView) Render() string {
	var b strings.Builder
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			if x == v.curX && y == v.curY {
				b.WriteString("✜")
				continue
			}
			b.WriteString("·")
		}
		if y < v.rows-1 {
			b.WriteString("\n")
		}
	}
	lat, lng := v.Click()
	return fmt.Sprintf("%s\n%.4f, %.4f → %s", b.String(), lat, lng, v.ClickLabel())
}
