package gesture

import (
	"time"

	log "github.com/sirupsen/logrus"
	dmath "github.com/yohamta/donburi/features/math"
)

// Recognizer tracks active contacts and turns them into gestures. One
// contact is a tap candidate until it moves, then a pan. A second contact
// turns the session into a pinch. A third contact is tracked but adds no
// gesture.
//
// When any contact lifts the current gesture ends. A lone contact left over
// from a pinch is ignored until it lifts, so a pinch never degrades into a
// pan; a new contact that brings the count back to two starts a new pinch.
type Recognizer struct {
	contacts map[int]*contact
	order    []int
	state    State
	stale    bool

	pinchA, pinchB int
	pinchDist0     float64
	lastDist       float64
	lastMid        dmath.Vec2
	lastPan        PanEvent

	pinchDebounce *Debouncer[pinchSample]

	tap        []func(TapEvent)
	panStart   []func(PanEvent)
	pan        []func(PanEvent)
	panEnd     []func(PanEvent)
	pinchStart []func(PinchEvent)
	pinch      []func(PinchEvent)
	pinchEnd   []func(PinchEvent)
}

type pinchSample struct {
	event PinchEvent
	dist  float64
}

// NewRecognizer creates an idle recognizer. Pinch events are coalesced over
// the debounce delay.
func NewRecognizer(debounce time.Duration) *Recognizer {
	r := &Recognizer{
		contacts: make(map[int]*contact),
	}
	r.pinchDebounce = NewDebouncer(debounce, r.deliverPinch)
	return r
}

// Handlers run synchronously, in registration order.

func (r *Recognizer) OnTap(fn func(TapEvent))          { r.tap = append(r.tap, fn) }
func (r *Recognizer) OnPanStart(fn func(PanEvent))     { r.panStart = append(r.panStart, fn) }
func (r *Recognizer) OnPan(fn func(PanEvent))          { r.pan = append(r.pan, fn) }
func (r *Recognizer) OnPanEnd(fn func(PanEvent))       { r.panEnd = append(r.panEnd, fn) }
func (r *Recognizer) OnPinchStart(fn func(PinchEvent)) { r.pinchStart = append(r.pinchStart, fn) }
func (r *Recognizer) OnPinch(fn func(PinchEvent))      { r.pinch = append(r.pinch, fn) }
func (r *Recognizer) OnPinchEnd(fn func(PinchEvent))   { r.pinchEnd = append(r.pinchEnd, fn) }

// State returns the current classification.
func (r *Recognizer) State() State { return r.state }

// Contacts returns the number of contacts currently down.
func (r *Recognizer) Contacts() int { return len(r.contacts) }

// Start registers a new contact. A repeated id is ignored.
func (r *Recognizer) Start(ev PointerEvent) {
	if _, ok := r.contacts[ev.ID]; ok {
		return
	}
	r.contacts[ev.ID] = newContact(ev)
	r.order = append(r.order, ev.ID)

	if r.stale && len(r.contacts) != 2 {
		return
	}

	switch len(r.contacts) {
	case 1:
		r.state = TapCandidate
	case 2:
		if r.state == Panning {
			emit(r.panEnd, r.lastPan)
		}
		r.stale = false
		r.beginPinch()
	}
}

// Move updates a contact and emits pan or schedules pinch events.
func (r *Recognizer) Move(ev PointerEvent) {
	c, ok := r.contacts[ev.ID]
	if !ok {
		log.WithField("pointer", ev.ID).Debug("gesture: move for unknown pointer")
		return
	}
	c.update(ev)

	if r.stale {
		return
	}

	switch r.state {
	case TapCandidate:
		d := sub(c.current, c.start)
		v := velocity(d, c.time.Sub(c.startTime))
		r.state = Panning
		r.lastPan = PanEvent{DX: d.X, DY: d.Y, VX: v.X, VY: v.Y}
		emit(r.panStart, r.lastPan)
	case Panning:
		d := c.delta()
		v := velocity(d, c.time.Sub(c.prevTime))
		r.lastPan = PanEvent{DX: d.X, DY: d.Y, VX: v.X, VY: v.Y}
		emit(r.pan, r.lastPan)
	case Pinching:
		if ev.ID != r.pinchA && ev.ID != r.pinchB {
			return
		}
		r.pinchDebounce.Trigger(ev.Time, r.samplePinch())
	}
}

// End lifts a contact, finishing the current gesture.
func (r *Recognizer) End(ev PointerEvent) {
	if _, ok := r.contacts[ev.ID]; !ok {
		log.WithField("pointer", ev.ID).Debug("gesture: end for unknown pointer")
		return
	}

	if !r.stale {
		switch r.state {
		case TapCandidate:
			emit(r.tap, TapEvent{X: ev.X, Y: ev.Y})
		case Panning:
			emit(r.panEnd, r.releasePan(r.contacts[ev.ID], ev.Time))
		case Pinching:
			r.pinchDebounce.Flush()
			emit(r.pinchEnd, r.samplePinch().event)
		}
	}

	r.remove(ev.ID)
	r.pinchDebounce.Cancel()
	r.state = Idle
	r.lastPan = PanEvent{}
	r.stale = len(r.contacts) > 0
}

// Cancel is End for contacts that were interrupted rather than lifted.
func (r *Recognizer) Cancel(ev PointerEvent) {
	r.End(ev)
}

// Update delivers a coalesced pinch event once its delay has passed. Call it
// once per tick.
func (r *Recognizer) Update(now time.Time) {
	r.pinchDebounce.Poll(now)
}

// releasePan re-measures the last pan delta up to the release time, so a
// pointer held still before lifting reports a decayed velocity.
func (r *Recognizer) releasePan(c *contact, at time.Time) PanEvent {
	ev := r.lastPan
	v := velocity(dmath.Vec2{X: ev.DX, Y: ev.DY}, at.Sub(c.prevTime))
	ev.VX, ev.VY = v.X, v.Y
	return ev
}

func (r *Recognizer) beginPinch() {
	r.pinchA, r.pinchB = r.order[0], r.order[1]
	a, b := r.contacts[r.pinchA], r.contacts[r.pinchB]
	dist := distance(a.current, b.current)
	mid := midpoint(a.current, b.current)

	r.state = Pinching
	r.pinchDist0 = dist
	r.lastDist = dist
	r.lastMid = mid
	emit(r.pinchStart, PinchEvent{Scale: 1, Midpoint: mid})
}

// samplePinch measures the pinch pair against the last delivered event.
func (r *Recognizer) samplePinch() pinchSample {
	a, b := r.contacts[r.pinchA], r.contacts[r.pinchB]
	dist := distance(a.current, b.current)
	mid := midpoint(a.current, b.current)

	scale := 1.0
	if r.pinchDist0 > 0 {
		scale = dist / r.pinchDist0
	}
	return pinchSample{
		event: PinchEvent{
			Scale:         scale,
			Midpoint:      mid,
			DeltaXY:       dist - r.lastDist,
			DeltaMidpoint: sub(mid, r.lastMid),
		},
		dist: dist,
	}
}

func (r *Recognizer) deliverPinch(s pinchSample) {
	r.lastDist = s.dist
	r.lastMid = s.event.Midpoint
	emit(r.pinch, s.event)
}

func (r *Recognizer) remove(id int) {
	delete(r.contacts, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func emit[E any](handlers []func(E), ev E) {
	for _, fn := range handlers {
		fn(ev)
	}
}
