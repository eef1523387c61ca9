package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PixelToClip converts a window pixel (top-left origin, +y down) to clip
// space ([-1,1]x[-1,1], +y up), sampling at the pixel centre.
func PixelToClip(px, py float64, winW, winH int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32((px+0.5)/float64(winW)*2.0 - 1.0),
		float32((py+0.5)/float64(winH)*-2.0 + 1.0),
	}
}

// CursorCourtPos converts a window pixel to court coordinates using the
// transform of the last drawn frame.
func (m *Match) CursorCourtPos(px, py float64, winW, winH int) mgl32.Vec2 {
	clip := PixelToClip(px, py, winW, winH)
	return m.ClipToCourt.Mul3x1(clip.Vec3(1)).Vec2()
}

// HandleEvent aims the knife on pointer motion and throws it on a button
// press. Aim taken while the knife is in flight is held for the next throw.
// It never consumes the event.
func (m *Match) HandleEvent(evt Event, winW, winH int) bool {
	switch evt.Type {
	case EventPointerMove:
		if winW <= 0 || winH <= 0 {
			return false
		}
		p := m.CursorCourtPos(evt.X, evt.Y, winW, winH)
		k := &m.Knife
		angle := float32(math.Atan2(float64(p.Y()-k.Position.Y()), float64(p.X()-k.Position.X())))
		if !k.Thrown {
			k.Angle = angle
		} else {
			k.PendingAngle = angle
		}
	case EventButtonDown:
		if !m.Knife.Thrown {
			m.Knife.Thrown = true
			m.Knife.PendingAngle = m.Knife.Angle
			m.emit(EventKnifeThrown, m.Knife.Position, -1)
		}
	}
	return false
}
