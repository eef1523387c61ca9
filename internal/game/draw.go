package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexSink is the GPU side of the scene renderer: it takes one vertex
// list per frame and draws it as independent triangles.
type VertexSink interface {
	Upload(vertices []Vertex)
	Draw(bg RGBA, courtToClip mgl32.Mat4)
}

// Frame is everything needed to present one frame.
type Frame struct {
	Clear       RGBA
	Vertices    []Vertex
	CourtToClip mgl32.Mat4
	View        CourtView
}

// Face layout, relative to the head centre.
var (
	eyeRadius     = mgl32.Vec2{0.1, 0.1}
	noseRadius    = mgl32.Vec2{0.05, 0.05}
	xRadius       = mgl32.Vec2{0.2, 0.05}
	noseOffset    = mgl32.Vec2{0.0, -0.05}
	leftEye       = mgl32.Vec2{-0.2, 0.1}
	rightEye      = mgl32.Vec2{0.2, 0.1}
	mouthOffset   = mgl32.Vec2{0.0, -0.25}
	leftEar       = mgl32.Vec2{-0.5, 0.0}
	rightEar      = mgl32.Vec2{0.5, 0.0}
	deadMouth     = mgl32.Vec2{0.45, 0.1}
	aliveMouth    = mgl32.Vec2{0.4, 0.05}
	hairCapRadius = float32(0.8)
	faceRadius    = float32(0.65)
	earRadius     = float32(0.25)
	xAngle        = float32(math.Pi / 4)
)

// BuildScene turns the match into a frame for a drawable of the given size
// and stores the inverse transform on the match for the next pointer event.
// The batch is reused between frames; pass nil to allocate.
func BuildScene(m *Match, fbW, fbH int, b *Batch) Frame {
	if b == nil {
		b = &Batch{}
	}
	b.Reset()
	t := m.Tuning

	bg := Palette.Background
	if m.Lives == 0 {
		bg = Palette.GameOver
	}

	for i := range m.Heads {
		h := &m.Heads[i]
		if !h.Visible() {
			continue
		}
		drawHead(b, h, t, h.Dead() || m.Lives == 0)
	}

	b.RectRot(m.Knife.Position, t.KnifeRadius, m.Knife.Angle, Palette.Foreground)

	court := t.CourtRadius
	life := mgl32.Vec2{LifeRadius, LifeRadius}
	iconY := court.Y() + 2.0*WallRadius + 2.0*LifeRadius
	for i := uint32(0); i < m.Lives; i++ {
		x := court.X() - (2.0+3.0*float32(i))*LifeRadius
		b.Rect(mgl32.Vec2{x, iconY}, life, Palette.Heart)
	}
	for i := uint32(0); i < m.Score; i++ {
		x := -court.X() + (2.0+3.0*float32(i))*LifeRadius
		b.Rect(mgl32.Vec2{x, iconY}, life, HeadColors[len(HeadColors)-1])
	}

	// Walls.
	b.Rect(mgl32.Vec2{-court.X() - WallRadius, 0}, mgl32.Vec2{WallRadius, court.Y() + 2.0*WallRadius}, Palette.Foreground)
	b.Rect(mgl32.Vec2{court.X() + WallRadius, 0}, mgl32.Vec2{WallRadius, court.Y() + 2.0*WallRadius}, Palette.Foreground)
	b.Rect(mgl32.Vec2{0, -court.Y() - WallRadius}, mgl32.Vec2{court.X(), WallRadius}, Palette.Foreground)
	b.Rect(mgl32.Vec2{0, court.Y() + WallRadius}, mgl32.Vec2{court.X(), WallRadius}, Palette.Foreground)

	view := FitCourt(court, fbW, fbH)
	m.ClipToCourt = view.ClipToCourt()

	return Frame{
		Clear:       bg,
		Vertices:    b.Vertices,
		CourtToClip: view.CourtToClip(),
		View:        view,
	}
}

func drawHead(b *Batch, h *Head, t Tuning, dead bool) {
	p := h.Position
	r := t.HeadRadius

	// Hair hangs below the head; the far edge tilts with the last cut.
	b.Quad(
		mgl32.Vec2{p.X() - r.X(), p.Y()},
		mgl32.Vec2{p.X() + r.X(), p.Y()},
		mgl32.Vec2{p.X() + r.X(), p.Y() - r.Y() - h.HairLength + r.X()*sinF(h.HairAngle)},
		mgl32.Vec2{p.X() - r.X(), p.Y() - r.Y() - h.HairLength},
		Palette.Hair,
	)
	b.Arc(p, hairCapRadius, 0, math.Pi, Palette.Hair)

	skin := Palette.Dead
	if !dead {
		skin = HeadColors[HeadColorIndex(h.Happiness)]
	}
	b.Circle(p, faceRadius, skin)
	b.Circle(p.Add(leftEar), earRadius, skin)
	b.Circle(p.Add(rightEar), earRadius, skin)

	ink := Palette.Hair
	if dead {
		for _, a := range []float32{xAngle, -xAngle} {
			b.RectRot(p.Add(leftEye), xRadius, a, ink)
			b.RectRot(p.Add(rightEye), xRadius, a, ink)
		}
		b.Rect(p.Add(noseOffset), noseRadius, ink)
		b.Rect(p.Add(mouthOffset), deadMouth, ink)
		return
	}

	b.Rect(p.Add(leftEye), eyeRadius, ink)
	b.Rect(p.Add(rightEye), eyeRadius, ink)
	b.Rect(p.Add(noseOffset), noseRadius, ink)
	mouth := p.Add(mouthOffset)
	b.Rect(mouth, aliveMouth, ink)
	// Mouth corners curl up when happy and down when not.
	corner := mgl32.Vec2{0.05, h.Happiness * 0.1}
	b.Rect(mouth.Add(mgl32.Vec2{0.4, h.Happiness * 0.05}), corner, ink)
	b.Rect(mouth.Add(mgl32.Vec2{-0.4, h.Happiness * 0.05}), corner, ink)
}

// Draw builds the scene and submits it to the sink.
func (m *Match) Draw(fbW, fbH int, sink VertexSink, b *Batch) Frame {
	f := BuildScene(m, fbW, fbH, b)
	sink.Upload(f.Vertices)
	sink.Draw(f.Clear, f.CourtToClip)
	return f
}
