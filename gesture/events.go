// Package gesture classifies raw pointer contacts into tap, pan and pinch
// gestures. It is driven entirely by the caller: pointer events and the
// current time are pushed in, typed events come out through handlers.
package gesture

import (
	"math"
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

// MouseID is the pointer id used for the left mouse button. Touch ids are
// non-negative.
const MouseID = -1

// PointerEvent is one raw start, move or end sample for a contact.
type PointerEvent struct {
	ID   int
	X, Y float64
	Time time.Time
}

// State is the classification of the current gesture session.
type State int

const (
	Idle State = iota
	TapCandidate
	Panning
	Pinching
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case TapCandidate:
		return "tap-candidate"
	case Panning:
		return "panning"
	case Pinching:
		return "pinching"
	}
	return "unknown"
}

// TapEvent is emitted when a single contact lifts without having moved.
type TapEvent struct {
	X, Y float64
}

// PanEvent carries the pixel delta since the previous event of the panning
// contact and the resulting velocity in pixels per second.
type PanEvent struct {
	DX, DY float64
	VX, VY float64
}

// PinchEvent describes a two-contact gesture. Scale is relative to the
// distance when the pinch started; DeltaXY and DeltaMidpoint are relative to
// the previously emitted pinch event.
type PinchEvent struct {
	Scale         float64
	Midpoint      dmath.Vec2
	DeltaXY       float64
	DeltaMidpoint dmath.Vec2
}

type contact struct {
	id        int
	start     dmath.Vec2
	current   dmath.Vec2
	previous  dmath.Vec2
	startTime time.Time
	time      time.Time
	prevTime  time.Time
}

func newContact(ev PointerEvent) *contact {
	p := dmath.Vec2{X: ev.X, Y: ev.Y}
	return &contact{
		id:        ev.ID,
		start:     p,
		current:   p,
		previous:  p,
		startTime: ev.Time,
		time:      ev.Time,
		prevTime:  ev.Time,
	}
}

func (c *contact) update(ev PointerEvent) {
	c.previous = c.current
	c.prevTime = c.time
	c.current = dmath.Vec2{X: ev.X, Y: ev.Y}
	c.time = ev.Time
}

// delta returns the motion since the contact's previous sample.
func (c *contact) delta() dmath.Vec2 {
	return sub(c.current, c.previous)
}

func velocity(d dmath.Vec2, elapsed time.Duration) dmath.Vec2 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: d.X / secs, Y: d.Y / secs}
}

func distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func midpoint(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}
