package systems

import (
	"time"

	"github.com/automoto/wideworld/components"
	"github.com/automoto/wideworld/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer turns this tick's touches and left mouse button into pointer
// events for the recognizer, then lets it deliver any debounced pinch.
func UpdatePointer(ecs *ecs.ECS) {
	entry, ok := components.Gesture.First(ecs.World)
	if !ok {
		return
	}
	g := components.Gesture.Get(entry)
	now := time.Now()

	updateTouches(g, now)
	updateMouse(g, now)

	g.Recognizer.Update(now)
}

func updateTouches(g *components.GestureData, now time.Time) {
	g.Pressed = inpututil.AppendJustPressedTouchIDs(g.Pressed[:0])
	for _, id := range g.Pressed {
		x, y := ebiten.TouchPosition(id)
		g.LastTouch[id] = [2]int{x, y}
		g.Recognizer.Start(pointerEvent(int(id), x, y, now))
	}

	g.Touches = ebiten.AppendTouchIDs(g.Touches[:0])
	for _, id := range g.Touches {
		x, y := ebiten.TouchPosition(id)
		last, seen := g.LastTouch[id]
		if !seen || last == [2]int{x, y} {
			continue
		}
		g.LastTouch[id] = [2]int{x, y}
		g.Recognizer.Move(pointerEvent(int(id), x, y, now))
	}

	g.Released = inpututil.AppendJustReleasedTouchIDs(g.Released[:0])
	for _, id := range g.Released {
		// Released touches have no current position
		x, y := inpututil.TouchPositionInPreviousTick(id)
		delete(g.LastTouch, id)
		g.Recognizer.End(pointerEvent(int(id), x, y, now))
	}
}

func updateMouse(g *components.GestureData, now time.Time) {
	x, y := ebiten.CursorPosition()

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.MouseDown = true
		g.LastMouse = [2]int{x, y}
		g.Recognizer.Start(pointerEvent(gesture.MouseID, x, y, now))
	case g.MouseDown && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.MouseDown = false
		g.Recognizer.End(pointerEvent(gesture.MouseID, x, y, now))
	case g.MouseDown && g.LastMouse != [2]int{x, y}:
		g.LastMouse = [2]int{x, y}
		g.Recognizer.Move(pointerEvent(gesture.MouseID, x, y, now))
	}
}

func pointerEvent(id, x, y int, now time.Time) gesture.PointerEvent {
	return gesture.PointerEvent{ID: id, X: float64(x), Y: float64(y), Time: now}
}
