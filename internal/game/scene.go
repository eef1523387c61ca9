package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex matches the GL attribute layout: position (3 floats), colour
// (4 normalized bytes), texture coordinate (2 floats). 24 bytes, packed.
type Vertex struct {
	Position mgl32.Vec3
	Color    RGBA
	TexCoord mgl32.Vec2
}

// VertexSize is the stride of one Vertex in the vertex buffer.
const VertexSize = 4*3 + 1*4 + 4*2

// whiteUV samples the centre of the 1x1 white texture.
var whiteUV = mgl32.Vec2{0.5, 0.5}

// Batch accumulates independent triangles in court space.
type Batch struct {
	Vertices []Vertex
}

// Reset empties the batch keeping its backing array.
func (b *Batch) Reset() {
	b.Vertices = b.Vertices[:0]
}

func (b *Batch) vertex(p mgl32.Vec2, col RGBA) {
	b.Vertices = append(b.Vertices, Vertex{Position: p.Vec3(0), Color: col, TexCoord: whiteUV})
}

// Quad draws p1..p4 as two CCW triangles (p1,p2,p3) and (p1,p3,p4).
func (b *Batch) Quad(p1, p2, p3, p4 mgl32.Vec2, col RGBA) {
	b.vertex(p1, col)
	b.vertex(p2, col)
	b.vertex(p3, col)

	b.vertex(p1, col)
	b.vertex(p3, col)
	b.vertex(p4, col)
}

// Rect draws an axis-aligned rectangle given its centre and half-extents.
func (b *Batch) Rect(center, radius mgl32.Vec2, col RGBA) {
	b.Quad(
		mgl32.Vec2{center.X() - radius.X(), center.Y() - radius.Y()},
		mgl32.Vec2{center.X() + radius.X(), center.Y() - radius.Y()},
		mgl32.Vec2{center.X() + radius.X(), center.Y() + radius.Y()},
		mgl32.Vec2{center.X() - radius.X(), center.Y() + radius.Y()},
		col,
	)
}

// RectRot draws a rectangle rotated by angle radians about its centre.
func (b *Batch) RectRot(center, radius mgl32.Vec2, angle float32, col RGBA) {
	rot := mgl32.Rotate2D(angle)
	corner := func(sx, sy float32) mgl32.Vec2 {
		return center.Add(rot.Mul2x1(mgl32.Vec2{sx * radius.X(), sy * radius.Y()}))
	}
	b.Quad(corner(-1, -1), corner(1, -1), corner(1, 1), corner(-1, 1), col)
}

// Arc draws a triangle fan of CircleSlices slices from start through
// start+span radians. A span of 2*pi gives a full circle.
func (b *Batch) Arc(center mgl32.Vec2, radius, start, span float32, col RGBA) {
	step := span / CircleSlices
	rim := func(i int) mgl32.Vec2 {
		a := float64(start + float32(i)*step)
		return mgl32.Vec2{
			center.X() + radius*float32(math.Cos(a)),
			center.Y() + radius*float32(math.Sin(a)),
		}
	}
	for i := 0; i < CircleSlices; i++ {
		b.vertex(center, col)
		b.vertex(rim(i), col)
		b.vertex(rim(i+1), col)
	}
}

// Circle draws a full disc.
func (b *Batch) Circle(center mgl32.Vec2, radius float32, col RGBA) {
	b.Arc(center, radius, 0, 2*math.Pi, col)
}
