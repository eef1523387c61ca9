//go:build !android

package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"haircut/internal/game"
)

// Input tracks key edges for the driver's own controls (restart, quit).
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// forwardPointer routes glfw cursor and button callbacks into the match.
// Positions are window coordinates, so the window size (not the
// framebuffer size) is passed along.
func forwardPointer(window *glfw.Window, match *game.Match) {
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		winW, winH := w.GetSize()
		match.HandleEvent(game.Event{Type: game.EventPointerMove, X: x, Y: y}, winW, winH)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, _ glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		x, y := w.GetCursorPos()
		winW, winH := w.GetSize()
		match.HandleEvent(game.Event{Type: game.EventButtonDown, X: x, Y: y}, winW, winH)
	})
}
