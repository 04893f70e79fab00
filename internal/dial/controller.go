package dial

import (
	"io"
	"log/slog"
	"math"

	"github.com/iburimskiy/weightdial/internal/radial"
)

// Phase is the controller's drag state.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// EventKind identifies a pointer event.
type EventKind int

const (
	DragStart EventKind = iota
	DragMove
	DragEnd
)

// Event is a pointer event in the same coordinate space as the dial center.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClamp keeps the rotation inside the range so the value never leaves
// [Min, Max]. Without it rotation is unbounded.
func WithClamp() Option {
	return func(c *Controller) { c.clamp = true }
}

// WithLogger sets the logger used for drag lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns the dial rotation and turns drag gestures into rotation.
// It is not safe for concurrent use; drive it from the UI loop.
type Controller struct {
	rng    Range
	center radial.Point
	clamp  bool
	log    *slog.Logger

	phase        Phase
	initialAngle float64 // pointer angle at drag start
	live         float64 // rotation shown on screen
	committed    float64 // rotation at the end of the last drag
}

// New returns an idle controller whose value equals initial.
func New(rng Range, center radial.Point, initial float64, opts ...Option) *Controller {
	c := &Controller{
		rng:    rng,
		center: center,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.seat(rng.RotationFor(initial))
	return c
}

// Dispatch advances the state machine by one event.
func (c *Controller) Dispatch(ev Event) {
	switch ev.Kind {
	case DragStart:
		if c.phase == Dragging {
			// A missed release; keep what is on screen.
			c.committed = c.live
		}
		c.phase = Dragging
		c.initialAngle = c.pointerAngle(ev.X, ev.Y)
		c.log.Debug("drag start", "angle", c.initialAngle, "rotation", c.committed)

	case DragMove:
		if c.phase != Dragging {
			return
		}
		delta := c.pointerAngle(ev.X, ev.Y) - c.initialAngle
		c.live = c.limit(delta + c.committed)

	case DragEnd:
		if c.phase != Dragging {
			return
		}
		c.committed = c.live
		c.phase = Idle
		c.log.Debug("drag end", "rotation", c.committed, "value", c.Value())
	}
}

// SetValue turns the dial so that it shows v and ends any drag in progress.
func (c *Controller) SetValue(v float64) {
	c.seat(c.rng.RotationFor(v))
	c.phase = Idle
	c.log.Debug("value set", "value", v, "rotation", c.live)
}

// SetCenter moves the dial center used for pointer angles.
func (c *Controller) SetCenter(p radial.Point) {
	c.center = p
}

// Center returns the dial center.
func (c *Controller) Center() radial.Point { return c.center }

// Range returns the value range.
func (c *Controller) Range() Range { return c.rng }

// Phase returns the drag state.
func (c *Controller) Phase() Phase { return c.phase }

// Rotation returns the live rotation in degrees.
func (c *Controller) Rotation() float64 { return c.live }

// Committed returns the rotation stored at the end of the last drag.
func (c *Controller) Committed() float64 { return c.committed }

// Value returns the selected value derived from the live rotation.
func (c *Controller) Value() float64 {
	return c.rng.ValueAt(c.live)
}

// Snapshot is a read-only copy of the controller for one render pass.
type Snapshot struct {
	Range    Range
	Center   radial.Point
	Phase    Phase
	Rotation float64
}

// Value derives the selected value from the snapshot's rotation.
func (s Snapshot) Value() float64 {
	return s.Range.ValueAt(s.Rotation)
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Range:    c.rng,
		Center:   c.center,
		Phase:    c.phase,
		Rotation: c.live,
	}
}

func (c *Controller) seat(theta float64) {
	theta = c.limit(theta)
	c.live = theta
	c.committed = theta
}

func (c *Controller) limit(theta float64) float64 {
	if !c.clamp {
		return theta
	}
	return c.rng.Clamp(theta)
}

// pointerAngle is the pointer's angle around the center in degrees.
func (c *Controller) pointerAngle(x, y float64) float64 {
	return PointerAngle(c.center, x, y)
}

// PointerAngle returns atan2(dy, dx) in degrees for a pointer at (x, y)
// relative to center.
func PointerAngle(center radial.Point, x, y float64) float64 {
	return math.Atan2(y-center.Y, x-center.X) * 180 / math.Pi
}
