package game

import "github.com/go-gl/mathgl/mgl32"

// Update advances the match by elapsed seconds: knife flight, respawns,
// head movement, then knife/head collisions. Negative elapsed is treated
// as zero; large values are not clamped.
func (m *Match) Update(elapsed float32) {
	if elapsed < 0 {
		elapsed = 0
	}

	m.updateKnife(elapsed)

	// Game over freezes the heads but the knife above keeps flying.
	if m.Lives == 0 {
		return
	}

	m.updateSpawns(elapsed)
	for i := range m.Heads {
		m.updateHead(i, elapsed)
	}

	if m.Lives == 0 && m.State != StateGameOver {
		m.State = StateGameOver
		m.emit(EventGameOver, mgl32.Vec2{}, -1)
	}
}

func (m *Match) updateKnife(elapsed float32) {
	k := &m.Knife
	if !k.Thrown {
		return
	}
	t := m.Tuning
	dir := mgl32.Vec2{cosF(k.Angle), sinF(k.Angle)}
	k.Position = k.Position.Add(dir.Mul(t.KnifeSpeed * elapsed))

	// Reset once the whole blade has left the court.
	r, court := t.KnifeRadius, t.CourtRadius
	if k.Position.X()+r.X() < -court.X() ||
		k.Position.Y()+r.Y() < -court.Y() ||
		k.Position.X()-r.X() > court.X() ||
		k.Position.Y()-r.Y() > court.Y() {
		k.Thrown = false
		k.Angle = k.PendingAngle
		k.Position = t.KnifeStart
		m.emit(EventKnifeReset, k.Position, -1)
	}
}

func (m *Match) updateSpawns(elapsed float32) {
	if m.PendingSpawns <= 0 || m.NumVisible >= len(m.Heads) {
		return
	}
	m.spawnElapsed += elapsed
	if m.spawnElapsed <= m.Tuning.ReappearTime {
		return
	}

	hidden := len(m.Heads) - m.NumVisible
	pick := int(m.rng.Float64() * float64(hidden))
	for i := range m.Heads {
		h := &m.Heads[i]
		if h.Visible() {
			continue
		}
		if pick == 0 {
			m.spawnHead(i)
			return
		}
		pick--
	}
}

func (m *Match) spawnHead(i int) {
	t := m.Tuning
	h := &m.Heads[i]

	m.NumVisible++
	m.PendingSpawns--
	m.spawnElapsed = 0

	vy := m.MaxHeadSpeed
	if m.rng.Float64() < 0.5 {
		vy = -vy
	}
	*h = Head{
		Position:   mgl32.Vec2{h.Position.X(), t.CourtRadius.Y() - float32(m.rng.Float64())*t.CourtRadius.Y()*2},
		Velocity:   mgl32.Vec2{0, vy},
		State:      HeadAlive,
		HairLength: t.DefaultHairLength,
		Happiness:  -1,
	}
	m.emit(EventHeadSpawned, h.Position, i)
}

func (m *Match) updateHead(i int, elapsed float32) {
	t := m.Tuning
	h := &m.Heads[i]

	switch h.State {
	case HeadHidden:
		return
	case HeadDying, HeadExiting:
		h.VisElapsed += elapsed
		if h.VisElapsed > t.DisappearTime {
			h.State = HeadHidden
			m.NumVisible--
			m.emit(EventHeadGone, h.Position, i)
		}
		return
	}

	h.Position = h.Position.Add(h.Velocity.Mul(elapsed))

	// Bounce by forcing the sign of the vertical speed, not by reflecting it.
	if h.Position.Y()-t.HeadRadius.Y() < -t.CourtRadius.Y() {
		h.Velocity[1] = absF(h.Velocity.Y())
	}
	if h.Position.Y()+t.HeadRadius.Y() > t.CourtRadius.Y() {
		h.Velocity[1] = -absF(h.Velocity.Y())
	}

	h.CutElapsed += elapsed
	if h.CutElapsed <= t.CutTime {
		return
	}

	tip := m.Knife.Tip(t.KnifeRadius)
	if tip.X() <= h.Position.X()-t.HeadRadius.X() || tip.X() >= h.Position.X()+t.HeadRadius.X() {
		return
	}

	headTop := h.Position.Y() + t.HeadRadius.Y()
	headBottom := h.Position.Y() - t.HeadRadius.Y()
	switch {
	case tip.Y() >= headTop:
		// Above the head: a miss.
	case tip.Y() > headBottom:
		m.killHead(i)
	case tip.Y() > headBottom-h.HairLength:
		m.cutHair(i)
	}
}

func (m *Match) killHead(i int) {
	h := &m.Heads[i]
	h.State = HeadDying
	h.VisElapsed = 0
	h.Happiness = -1
	m.Lives--
	m.PendingSpawns++
	m.emit(EventHeadKilled, h.Position, i)
}

func (m *Match) cutHair(i int) {
	t := m.Tuning
	h := &m.Heads[i]
	k := &m.Knife

	// Cut at half the blade depth; hair only ever gets shorter.
	cutY := k.Position.Y() + 0.5*t.KnifeRadius.X()*sinF(k.Angle)
	length := maxF(MinHairLength, h.Position.Y()-t.HeadRadius.Y()-cutY)
	h.HairLength = minF(h.HairLength, length)
	h.HairAngle = k.Angle
	h.Happiness = HappinessForHair(h.HairLength, t.DefaultHairLength)
	h.CutElapsed = 0

	if h.Velocity.Y() > 0 {
		h.Velocity[1] = CutSpeed(h.Happiness, t.MinHeadSpeed, m.MaxHeadSpeed)
	}
	m.emit(EventHairCut, h.Position, i)

	if h.Happiness > t.HappyThreshold {
		h.State = HeadExiting
		h.VisElapsed = 0
		m.Score++
		m.MaxHeadSpeed = HeadSpeedForScore(m.Score)
		m.PendingSpawns++
		m.emit(EventHeadHappy, h.Position, i)
	}
}
