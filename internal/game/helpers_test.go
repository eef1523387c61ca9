package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// seqRand replays a fixed list of values, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

const down = float32(-math.Pi / 2)
const up = float32(math.Pi / 2)

// soloMatch returns a match where only slot is in play, parked at the
// origin with no velocity and its cut cooldown already expired.
func soloMatch(slot int) *Match {
	m := NewMatch(DefaultTuning(), &seqRand{vals: []float64{0.5}})
	for i := range m.Heads {
		m.Heads[i].State = HeadHidden
	}
	h := &m.Heads[slot]
	h.State = HeadAlive
	h.Position = mgl32.Vec2{SlotX[slot], 0}
	h.Velocity = mgl32.Vec2{}
	h.CutElapsed = 1
	m.NumVisible = 1
	return m
}

// aimAt parks the knife so its blade points along angle with the tip at tip.
func aimAt(m *Match, tip mgl32.Vec2, angle float32) {
	r := m.Tuning.KnifeRadius.X()
	m.Knife.Angle = angle
	m.Knife.Position = mgl32.Vec2{tip.X() - r*cosF(angle), tip.Y() - r*sinF(angle)}
}

func countVisible(m *Match) int {
	n := 0
	for i := range m.Heads {
		if m.Heads[i].Visible() {
			n++
		}
	}
	return n
}
