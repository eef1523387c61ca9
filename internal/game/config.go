package game

import "github.com/go-gl/mathgl/mgl32"

// Head pool layout.
const (
	NumHeads = 4
	// MinHairLength is the floor a cut can shrink hair to.
	MinHairLength = 0.01
)

// Rendering.
const (
	CircleSlices = 20
	WallRadius   = 0.05
	Padding      = 0.14 // between outside of walls and edge of window
	LifeRadius   = 0.1
)

// SlotX holds the fixed horizontal position of each head slot.
var SlotX = [NumHeads]float32{-2.5, 0.0, 2.5, 5.0}

// Tuning holds every gameplay constant of a match.
// The zero value is not usable; start from DefaultTuning.
type Tuning struct {
	CourtRadius mgl32.Vec2

	KnifeStart  mgl32.Vec2
	KnifeRadius mgl32.Vec2
	KnifeSpeed  float32 // court units per second

	Lives uint32

	HeadRadius        mgl32.Vec2
	DefaultHairLength float32
	DisappearTime     float32
	ReappearTime      float32
	HappyThreshold    float32
	CutTime           float32
	MinHeadSpeed      float32
	MaxHeadSpeed      float32 // starting value; ramps with score
}

// DefaultTuning returns the stock arcade settings.
func DefaultTuning() Tuning {
	return Tuning{
		CourtRadius: mgl32.Vec2{7.0, 5.0},

		KnifeStart:  mgl32.Vec2{-6.5, 0.0},
		KnifeRadius: mgl32.Vec2{1.0, 0.05},
		KnifeSpeed:  60.0,

		Lives: 3,

		HeadRadius:        mgl32.Vec2{0.8, 0.8},
		DefaultHairLength: 2.0,
		DisappearTime:     1.0,
		ReappearTime:      1.5,
		HappyThreshold:    0.66,
		CutTime:           0.4,
		MinHeadSpeed:      0.5,
		MaxHeadSpeed:      2.0,
	}
}
