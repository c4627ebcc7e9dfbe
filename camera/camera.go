// Package camera implements the 2D view-projection camera used to look at the
// isometric map, including zoom anchored at an arbitrary screen point.
package camera

import (
	"github.com/automoto/wideworld/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is the on-screen rectangle the camera draws into, in the same
// coordinate space as pointer events.
type Rect struct {
	X, Y, W, H float64
}

// Camera keeps a world focus point, a zoom factor and the viewport size, and
// derives the view-projection matrix from them. The matrix is rebuilt from
// scratch on every mutation.
type Camera struct {
	focus    dmath.Vec2
	zoom     float64
	width    float64
	height   float64
	viewport Rect
	viewProj gamemath.Mat3
}

// New creates a camera with zoom 1 looking at focus. The viewport rectangle
// starts at the origin with the given pixel size.
func New(width, height int, focus dmath.Vec2) *Camera {
	c := &Camera{
		focus:    focus,
		zoom:     1,
		width:    float64(width),
		height:   float64(height),
		viewport: Rect{W: float64(width), H: float64(height)},
	}
	c.rebuild()
	return c
}

// Coord returns the world focus point.
func (c *Camera) Coord() dmath.Vec2 { return c.focus }

// Zoom returns the zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// Width returns the drawing surface width in pixels.
func (c *Camera) Width() float64 { return c.width }

// Height returns the drawing surface height in pixels.
func (c *Camera) Height() float64 { return c.height }

// Viewport returns the on-screen rectangle used for screen to clip
// conversion.
func (c *Camera) Viewport() Rect { return c.viewport }

// ViewProj returns a copy of the current view-projection matrix.
func (c *Camera) ViewProj() gamemath.Mat3 { return c.viewProj }

// MoveTo sets the focus point. No range clamping is applied.
func (c *Camera) MoveTo(x, y float64) {
	c.focus = dmath.Vec2{X: x, Y: y}
	c.rebuild()
}

// ZoomToCenter sets the zoom factor without moving the focus. Callers are
// expected to clamp zoom to a sane positive range.
func (c *Camera) ZoomToCenter(zoom float64) {
	c.zoom = zoom
	c.rebuild()
}

// ZoomToScreenCoord changes zoom while keeping the world point under the
// screen position (sx, sy) fixed on screen. On a zero-sized surface there is
// no point to anchor, so the zoom is applied around the focus.
func (c *Camera) ZoomToScreenCoord(sx, sy, zoom float64) {
	if c.viewport.W == 0 || c.viewport.H == 0 {
		c.ZoomToCenter(zoom)
		return
	}
	clip := c.ClipSpace(sx, sy)

	pre, ok := c.unprojectClip(clip)
	if !ok {
		c.ZoomToCenter(zoom)
		return
	}

	c.zoom = zoom
	c.rebuild()

	post, ok := c.unprojectClip(clip)
	if !ok {
		return
	}

	c.focus.X += pre.X - post.X
	c.focus.Y += pre.Y - post.Y
	c.rebuild()
}

// Resize updates the drawing surface size. The viewport rectangle follows
// the new size; focus and zoom are kept.
func (c *Camera) Resize(width, height int) {
	w, h := float64(width), float64(height)
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.viewport.W, c.viewport.H = w, h
	c.rebuild()
}

// SetViewport overrides the on-screen rectangle, e.g. when the drawing
// surface is scaled or offset inside a window.
func (c *Camera) SetViewport(r Rect) {
	c.viewport = r
}

// ClipSpace converts a screen position to normalized clip-space coordinates.
func (c *Camera) ClipSpace(sx, sy float64) dmath.Vec2 {
	nx := (sx - c.viewport.X) / c.viewport.W
	ny := (sy - c.viewport.Y) / c.viewport.H
	return dmath.Vec2{
		X: nx*2 - 1,
		Y: ny*-2 + 1,
	}
}

// Unproject returns the world point under the screen position (sx, sy).
// A zero-sized surface has no inverse; the focus is returned then.
func (c *Camera) Unproject(sx, sy float64) dmath.Vec2 {
	if c.viewport.W == 0 || c.viewport.H == 0 {
		return c.focus
	}
	if p, ok := c.unprojectClip(c.ClipSpace(sx, sy)); ok {
		return p
	}
	return c.focus
}

// Project returns the surface pixel position of a world point.
func (c *Camera) Project(world dmath.Vec2) dmath.Vec2 {
	clip := c.viewProj.TransformVec2(world)
	return dmath.Vec2{
		X: (clip.X + 1) / 2 * c.width,
		Y: (1 - clip.Y) / 2 * c.height,
	}
}

func (c *Camera) unprojectClip(clip dmath.Vec2) (dmath.Vec2, bool) {
	inv, ok := c.viewProj.Invert()
	if !ok {
		return dmath.Vec2{}, false
	}
	return inv.TransformVec2(clip), true
}

func (c *Camera) rebuild() {
	c.viewProj = ViewProjection(c.focus.X, c.focus.Y, c.zoom, c.width, c.height)
}

// ViewProjection builds projection * inverse(camera) where the camera matrix
// is translate(focus) * scale(1/zoom) * translate(-size/2).
func ViewProjection(x, y, zoom, width, height float64) gamemath.Mat3 {
	proj := gamemath.Projection(width, height)
	view, ok := cameraMatrix(x, y, zoom, width, height).Invert()
	if !ok {
		view = gamemath.Identity()
	}
	return proj.Multiply(view)
}

func cameraMatrix(x, y, zoom, width, height float64) gamemath.Mat3 {
	scale := 1 / zoom
	return gamemath.Identity().
		Translate(x, y).
		Scale(scale, scale).
		Translate(-width/2, -height/2)
}
