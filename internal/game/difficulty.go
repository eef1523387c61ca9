package game

// HeadSpeedForScore returns the spawn speed after a happy exit.
// The floor of 6 kicks in on the first haircut and only the
// score term can push past it (from score 21 on).
func HeadSpeedForScore(score uint32) float32 {
	return maxF(2.0+float32(score)/5.0, 6.0)
}

// CutSpeed is the downward speed of a head at the given happiness.
// Happier heads drift slower: max speed at -1, min speed at 1.
func CutSpeed(happiness, minSpeed, maxSpeed float32) float32 {
	return minSpeed + (maxSpeed-minSpeed)*(1.0-happiness)/2.0
}

// HappinessForHair maps remaining hair onto [-1,1]: full hair is -1, none is 1.
func HappinessForHair(length, defaultLength float32) float32 {
	return 1.0 - length/defaultLength*2.0
}
