//go:build !android

package app

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"haircut/internal/config"
	"haircut/internal/game"
	"haircut/internal/gfx"
)

// maxFrameDt caps the step after a stall (window drag, breakpoint).
const maxFrameDt = 0.1

// RunDesktop opens the window and runs input -> update -> draw once per
// frame until the window is closed.
func RunDesktop(s config.Settings, log zerolog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(s.WindowWidth, s.WindowHeight)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Msg("OpenGL initialized")

	rend, err := gfx.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	// Seed from config or clock.
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Uint32("lives", s.Tuning.Lives).Msg("match starting")

	match := game.NewMatch(s.Tuning, game.NewRand(seed))
	match.Bus = game.NewEventBus()
	match.Bus.SubscribeAll(logMatchEvent(log, match))

	forwardPointer(window, match)
	input := NewInput()

	// Reused between frames to avoid per-frame vertex allocations.
	var batch game.Batch

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > maxFrameDt {
			dt = maxFrameDt
		}

		// Input: cursor and button callbacks fire in here.
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) && match.Over() {
			match.Reset()
			log.Info().Msg("match restarted")
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		match.Update(float32(dt))

		rend.SetViewport(fbW, fbH)
		match.Draw(fbW, fbH, rend, &batch)

		window.SwapBuffers()
	}

	log.Info().Uint32("score", match.Score).Msg("window closed")
	return nil
}

// logMatchEvent reports match outcomes; routine ones at debug level.
func logMatchEvent(log zerolog.Logger, match *game.Match) game.EventHandler {
	return func(e game.Event) {
		var ev *zerolog.Event
		switch e.Type {
		case game.EventHeadKilled, game.EventHeadHappy, game.EventGameOver:
			ev = log.Info()
		default:
			ev = log.Debug()
		}
		if e.Slot >= 0 {
			ev = ev.Int("slot", e.Slot)
		}
		ev.Float64("x", e.X).
			Float64("y", e.Y).
			Uint32("lives", match.Lives).
			Uint32("score", match.Score).
			Msg(e.Type.String())
	}
}
