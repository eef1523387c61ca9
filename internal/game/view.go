package game

import "github.com/go-gl/mathgl/mgl32"

// CourtView is the uniform scale + translate that fits the scene into clip
// space. X is additionally divided by the aspect ratio so the court stays square.
type CourtView struct {
	Scale  float32
	Aspect float32
	Center mgl32.Vec2
}

// SceneBounds returns the court-space region that must stay visible:
// the court, its walls, window padding and the icon row above the top wall.
func SceneBounds(court mgl32.Vec2) (lo, hi mgl32.Vec2) {
	lo = mgl32.Vec2{
		-court.X() - 2.0*WallRadius - Padding,
		-court.Y() - 2.0*WallRadius - Padding,
	}
	hi = mgl32.Vec2{
		court.X() + 2.0*WallRadius + Padding,
		court.Y() + 2.0*WallRadius + 3.0*LifeRadius + Padding,
	}
	return lo, hi
}

// FitCourt computes the view for a drawable of fbW x fbH pixels.
func FitCourt(court mgl32.Vec2, fbW, fbH int) CourtView {
	aspect := float32(1)
	if fbW > 0 && fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	lo, hi := SceneBounds(court)
	scale := minF(
		2.0*aspect/(hi.X()-lo.X()), // x must fit in [-aspect,aspect]
		2.0/(hi.Y()-lo.Y()),        // y must fit in [-1,1]
	)
	return CourtView{
		Scale:  scale,
		Aspect: aspect,
		Center: lo.Add(hi).Mul(0.5),
	}
}

// CourtToClip is the OBJECT_TO_CLIP matrix handed to the shader.
// mgl32 matrices are column-major like GLSL.
func (v CourtView) CourtToClip() mgl32.Mat4 {
	sx := v.Scale / v.Aspect
	sy := v.Scale
	return mgl32.Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		-v.Center.X() * sx, -v.Center.Y() * sy, 0, 1,
	}
}

// ClipToCourt is the inverse of CourtToClip restricted to the xy plane,
// as a 2D affine matrix applied to (x, y, 1).
func (v CourtView) ClipToCourt() mgl32.Mat3 {
	return mgl32.Mat3{
		v.Aspect / v.Scale, 0, 0,
		0, 1.0 / v.Scale, 0,
		v.Center.X(), v.Center.Y(), 1,
	}
}
