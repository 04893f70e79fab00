// Package gesture turns raw pointer state into dial events.
//
// Backends report the pointer once per frame (or once per terminal mouse
// message). A Tracker emits DragStart when the button goes down over the
// dial, DragMove while it stays down and DragEnd when it is released.
package gesture

import (
	"math"

	"github.com/iburimskiy/weightdial/internal/dial"
)

// HitFunc reports whether a press at (x, y) may start a drag.
type HitFunc func(x, y float64) bool

// Tracker follows one pointer.
type Tracker struct {
	hit  HitFunc
	down bool
	// missed is set while a press that began off the dial is held.
	missed bool
}

// NewTracker returns a tracker that only starts drags where hit allows.
// A nil hit accepts every press.
func NewTracker(hit HitFunc) *Tracker {
	return &Tracker{hit: hit}
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool { return t.down }

// Frame feeds the pointer state and returns the event it implies, if any.
func (t *Tracker) Frame(pressed bool, x, y float64) (dial.Event, bool) {
	switch {
	case !pressed && t.missed:
		t.missed = false
	case t.missed:
		// wait for the release
	case pressed && !t.down:
		if t.hit != nil && !t.hit(x, y) {
			t.missed = true
			return dial.Event{}, false
		}
		t.down = true
		return dial.Event{Kind: dial.DragStart, X: x, Y: y}, true
	case pressed:
		return dial.Event{Kind: dial.DragMove, X: x, Y: y}, true
	case t.down:
		t.down = false
		return dial.Event{Kind: dial.DragEnd, X: x, Y: y}, true
	}
	return dial.Event{}, false
}

// Cancel ends a drag without an event, for example when the window loses
// the pointer.
func (t *Tracker) Cancel() { t.down, t.missed = false, false }

// Detent reports when a value moves into a different whole unit.
type Detent struct {
	unit float64
	set  bool
}

// Cross records v and reports whether its whole part differs from the last
// recorded value. The first call only records.
func (d *Detent) Cross(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	u := math.Floor(v)
	if !d.set {
		d.unit, d.set = u, true
		return false
	}
	if u == d.unit {
		return false
	}
	d.unit = u
	return true
}
