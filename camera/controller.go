package camera

import (
	"math"

	"github.com/automoto/wideworld/shared/gamemath"
)

// Controller turns user intents (drag deltas, pinch deltas, wheel notches,
// held keys) into Camera mutations, keeping zoom inside [MinZoom, MaxZoom].
type Controller struct {
	MinZoom float64
	MaxZoom float64
	// DPI scales pointer deltas (logical pixels) to surface pixels.
	DPI float64
	// ScrollSpeed is the keyboard pan speed in world units per second.
	ScrollSpeed float64
	// ZoomSpeed is the keyboard zoom change per second.
	ZoomSpeed float64
	// WheelZoomStep is the power-of-two exponent applied per wheel notch.
	WheelZoomStep float64
	// PinchZoomDivisor converts a pinch distance delta (pixels) to a
	// power-of-two exponent.
	PinchZoomDivisor float64
}

// Clamp limits zoom to the controller's range.
func (ctl *Controller) Clamp(zoom float64) float64 {
	return gamemath.ClampFloat(zoom, ctl.MinZoom, ctl.MaxZoom)
}

// Pan drags the map by a pointer delta: the world moves with the pointer, so
// the focus moves the opposite way, scaled by zoom.
func (ctl *Controller) Pan(c *Camera, dX, dY float64) {
	focus := c.Coord()
	c.MoveTo(
		focus.X-(dX*ctl.DPI)/c.Zoom(),
		focus.Y-(dY*ctl.DPI)/c.Zoom(),
	)
}

// Pinch zooms around the pinch midpoint by the change in finger distance.
func (ctl *Controller) Pinch(c *Camera, midX, midY, deltaXY float64) {
	divisor := ctl.PinchZoomDivisor
	if divisor == 0 {
		divisor = 100
	}
	zoom := ctl.Clamp(c.Zoom() * math.Pow(2, deltaXY/divisor))
	c.ZoomToScreenCoord(midX, midY, zoom)
}

// Wheel zooms around the cursor. Positive notches zoom in.
func (ctl *Controller) Wheel(c *Camera, sx, sy, notches float64) {
	if notches == 0 {
		return
	}
	zoom := ctl.Clamp(c.Zoom() * math.Pow(2, notches*ctl.WheelZoomStep))
	c.ZoomToScreenCoord(sx, sy, zoom)
}

// Scroll pans by keyboard direction (-1, 0 or 1 per axis) for dt seconds.
func (ctl *Controller) Scroll(c *Camera, dirX, dirY, dt float64) {
	if dirX == 0 && dirY == 0 {
		return
	}
	focus := c.Coord()
	c.MoveTo(
		focus.X+dirX*ctl.ScrollSpeed*dt,
		focus.Y+dirY*ctl.ScrollSpeed*dt,
	)
}

// ZoomStep zooms around the viewport center by keyboard direction for dt
// seconds.
func (ctl *Controller) ZoomStep(c *Camera, dir, dt float64) {
	if dir == 0 {
		return
	}
	c.ZoomToCenter(ctl.Clamp(c.Zoom() + dir*ctl.ZoomSpeed*dt))
}
