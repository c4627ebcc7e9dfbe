package camera

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

const eps = 1e-6

func closeTo(a, b dmath.Vec2) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestFocusProjectsToCenter(t *testing.T) {
	c := New(800, 600, dmath.Vec2{X: 120, Y: -40})
	got := c.Project(c.Coord())
	want := dmath.Vec2{X: 400, Y: 300}
	if !closeTo(got, want) {
		t.Errorf("Project(focus) = %v, want %v", got, want)
	}
	if w := c.Unproject(400, 300); !closeTo(w, c.Coord()) {
		t.Errorf("Unproject(center) = %v, want %v", w, c.Coord())
	}
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	c := New(1024, 768, dmath.Vec2{X: 10, Y: 20})
	c.ZoomToCenter(2.5)
	for _, s := range []dmath.Vec2{{X: 0, Y: 0}, {X: 1024, Y: 768}, {X: 17, Y: 600}} {
		w := c.Unproject(s.X, s.Y)
		if got := c.Project(w); !closeTo(got, s) {
			t.Errorf("Project(Unproject(%v)) = %v", s, got)
		}
	}
}

func TestZoomScalesAroundFocus(t *testing.T) {
	c := New(800, 600, dmath.Vec2{})
	c.ZoomToCenter(2)
	// A world point 100 units right of focus lands 200 pixels right of center.
	got := c.Project(dmath.Vec2{X: 100})
	if !closeTo(got, dmath.Vec2{X: 600, Y: 300}) {
		t.Errorf("Project at zoom 2 = %v, want (600, 300)", got)
	}
	if c.Coord() != (dmath.Vec2{}) {
		t.Errorf("ZoomToCenter moved focus to %v", c.Coord())
	}
}

func TestZoomToScreenCoordKeepsAnchor(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		focus    dmath.Vec2
		zoom     float64
		viewport *Rect
		sx, sy   float64
		newZoom  float64
	}{
		{"zoom in top-left", 800, 600, dmath.Vec2{X: 0, Y: 0}, 1, nil, 10, 20, 3},
		{"zoom out off-center", 1280, 720, dmath.Vec2{X: 2048, Y: 512}, 2, nil, 900, 100, 0.5},
		{"tiny zoom", 640, 360, dmath.Vec2{X: -300, Y: 77}, 0.25, nil, 639, 359, 0.1},
		{"offset viewport", 800, 600, dmath.Vec2{X: 5, Y: 5}, 1.5, &Rect{X: 40, Y: 30, W: 400, H: 300}, 200, 250, 4},
		{"center anchor", 800, 600, dmath.Vec2{X: 50, Y: 50}, 1, nil, 400, 300, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.w, tt.h, tt.focus)
			c.ZoomToCenter(tt.zoom)
			if tt.viewport != nil {
				c.SetViewport(*tt.viewport)
			}
			before := c.Unproject(tt.sx, tt.sy)
			c.ZoomToScreenCoord(tt.sx, tt.sy, tt.newZoom)
			after := c.Unproject(tt.sx, tt.sy)
			if !closeTo(before, after) {
				t.Errorf("anchor moved: before %v, after %v", before, after)
			}
			if c.Zoom() != tt.newZoom {
				t.Errorf("zoom = %v, want %v", c.Zoom(), tt.newZoom)
			}
		})
	}
}

func TestZoomAtCenterDoesNotMoveFocus(t *testing.T) {
	c := New(800, 600, dmath.Vec2{X: 30, Y: 40})
	c.ZoomToScreenCoord(400, 300, 3)
	if !closeTo(c.Coord(), dmath.Vec2{X: 30, Y: 40}) {
		t.Errorf("focus = %v, want unchanged", c.Coord())
	}
}

func TestMoveToRebuildsMatrix(t *testing.T) {
	c := New(800, 600, dmath.Vec2{})
	before := c.ViewProj()
	c.MoveTo(64, 32)
	if c.ViewProj() == before {
		t.Fatal("MoveTo did not rebuild the view-projection matrix")
	}
	if got := c.Project(dmath.Vec2{X: 64, Y: 32}); !closeTo(got, dmath.Vec2{X: 400, Y: 300}) {
		t.Errorf("new focus projects to %v", got)
	}
}

func TestResizeKeepsFocus(t *testing.T) {
	c := New(800, 600, dmath.Vec2{X: 1, Y: 2})
	c.ZoomToCenter(2)
	c.Resize(1920, 1080)
	if c.Width() != 1920 || c.Height() != 1080 {
		t.Fatalf("size = %vx%v", c.Width(), c.Height())
	}
	if vp := c.Viewport(); vp.W != 1920 || vp.H != 1080 {
		t.Errorf("viewport = %+v", vp)
	}
	if got := c.Project(c.Coord()); !closeTo(got, dmath.Vec2{X: 960, Y: 540}) {
		t.Errorf("focus projects to %v after resize", got)
	}
}

func TestClipSpace(t *testing.T) {
	c := New(200, 100, dmath.Vec2{})
	tests := []struct {
		sx, sy float64
		want   dmath.Vec2
	}{
		{0, 0, dmath.Vec2{X: -1, Y: 1}},
		{200, 100, dmath.Vec2{X: 1, Y: -1}},
		{100, 50, dmath.Vec2{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		if got := c.ClipSpace(tt.sx, tt.sy); !closeTo(got, tt.want) {
			t.Errorf("ClipSpace(%v, %v) = %v, want %v", tt.sx, tt.sy, got, tt.want)
		}
	}
}

func TestZeroSurfaceKeepsFocusFinite(t *testing.T) {
	focus := dmath.Vec2{X: 10, Y: 20}
	c := New(800, 600, focus)
	c.Resize(0, 0)

	c.ZoomToScreenCoord(5, 5, 2)
	if got := c.Coord(); got != focus {
		t.Fatalf("focus = %v after zoom on empty surface, want %v", got, focus)
	}
	if c.Zoom() != 2 {
		t.Errorf("zoom = %v, want 2", c.Zoom())
	}
	if got := c.Unproject(5, 5); got != focus {
		t.Errorf("Unproject on empty surface = %v, want focus", got)
	}

	c.Resize(800, 600)
	for i, v := range c.ViewProj() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("viewProj[%d] = %v after resize", i, v)
		}
	}
	if got := c.Project(focus); !closeTo(got, dmath.Vec2{X: 400, Y: 300}) {
		t.Errorf("focus projects to %v, want screen center", got)
	}
}
