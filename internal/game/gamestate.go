package game

import "github.com/go-gl/mathgl/mgl32"

type GameState int

const (
	StatePlaying  GameState = iota // main gameplay
	StateGameOver                  // out of lives; world frozen, knife still flies
)

// HeadState is the tagged state of one slot in the head pool.
type HeadState int

const (
	HeadHidden  HeadState = iota // eligible for respawn
	HeadAlive                    // bouncing, can be cut
	HeadDying                    // knifed; fading out
	HeadExiting                  // happy with the haircut; fading out
)

func (s HeadState) String() string {
	switch s {
	case HeadHidden:
		return "hidden"
	case HeadAlive:
		return "alive"
	case HeadDying:
		return "dying"
	case HeadExiting:
		return "exiting"
	}
	return "unknown"
}

type Head struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2 // vertical only
	State    HeadState

	HairLength float32
	HairAngle  float32 // direction of the last cut
	Happiness  float32 // -1 (full hair) .. 1 (bald)

	VisElapsed float32 // fade-out countdown for Dying and Exiting
	CutElapsed float32 // cooldown between scoring collisions
}

func (h *Head) Visible() bool { return h.State != HeadHidden }
func (h *Head) Dead() bool    { return h.State == HeadDying }

type Knife struct {
	Position     mgl32.Vec2
	Angle        float32
	PendingAngle float32 // applied at the next reset
	Thrown       bool
}

// Tip is the leading point of the blade.
func (k *Knife) Tip(radius mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		k.Position.X() + radius.X()*cosF(k.Angle),
		k.Position.Y() + radius.X()*sinF(k.Angle),
	}
}

// Match is the whole mutable game state. It owns the knife and the fixed
// head pool; the input mapper, Update and the scene renderer all take it by
// reference once per frame.
type Match struct {
	Tuning Tuning

	State GameState
	Knife Knife
	Heads []Head

	Lives        uint32
	Score        uint32
	MaxHeadSpeed float32

	NumVisible    int
	PendingSpawns int
	spawnElapsed  float32

	// ClipToCourt maps clip space to court space. It is rebuilt by every
	// BuildScene so pointer events use the transform of the last drawn frame.
	ClipToCourt mgl32.Mat3

	Bus *EventBus
	rng RandomSource
}

// NewMatch sets up a fresh match. A nil rng gets a clock-independent default.
func NewMatch(t Tuning, rng RandomSource) *Match {
	if rng == nil {
		rng = NewRand(1)
	}
	m := &Match{
		Tuning: t,
		Heads:  make([]Head, NumHeads),
		rng:    rng,
	}
	m.Reset()
	return m
}

// Reset starts over with full lives and score 0. Slots 1 and 3 start in
// play moving in opposite directions; the rest wait hidden.
func (m *Match) Reset() {
	t := m.Tuning
	m.State = StatePlaying
	m.Lives = t.Lives
	m.Score = 0
	m.MaxHeadSpeed = t.MaxHeadSpeed
	m.PendingSpawns = 0
	m.spawnElapsed = 0
	m.Knife = Knife{Position: t.KnifeStart}
	m.ClipToCourt = mgl32.Ident3()

	for i := range m.Heads {
		m.Heads[i] = Head{
			Position:   mgl32.Vec2{SlotX[i], 0},
			State:      HeadHidden,
			HairLength: t.DefaultHairLength,
			Happiness:  -1,
		}
	}
	m.NumVisible = 0
	m.Heads[1].Velocity = mgl32.Vec2{0, m.MaxHeadSpeed}
	m.Heads[1].State = HeadAlive
	m.Heads[3].Velocity = mgl32.Vec2{0, -m.MaxHeadSpeed}
	m.Heads[3].State = HeadAlive
	m.NumVisible = 2
}

// Over reports whether the match has run out of lives.
func (m *Match) Over() bool {
	return m.Lives == 0
}

// SetRandom swaps the random source, mostly for tests.
func (m *Match) SetRandom(rng RandomSource) {
	m.rng = rng
}

func (m *Match) emit(t EventType, pos mgl32.Vec2, slot int) {
	m.Bus.Emit(Event{Type: t, X: float64(pos.X()), Y: float64(pos.Y()), Slot: slot})
}
