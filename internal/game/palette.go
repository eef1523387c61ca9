package game

// RGBA is an 8-bit per channel colour, laid out the way the vertex buffer expects.
type RGBA struct {
	R, G, B, A uint8
}

// Hex unpacks 0xRRGGBBAA.
func Hex(hx uint32) RGBA {
	return RGBA{
		R: uint8(hx >> 24),
		G: uint8(hx >> 16),
		B: uint8(hx >> 8),
		A: uint8(hx),
	}
}

// Floats returns the colour as normalized components, for glClearColor.
func (c RGBA) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0
}

// HeadColors runs from furious (full hair) to delighted (no hair).
var HeadColors = [6]RGBA{
	Hex(0xff7777ff), Hex(0xeb7d34ff), Hex(0xebb434ff),
	Hex(0xf5e536ff), Hex(0xcff03eff), Hex(0x92f041ff),
}

var Palette = struct {
	Background RGBA
	GameOver   RGBA
	Foreground RGBA
	Heart      RGBA
	Hair       RGBA
	Dead       RGBA
}{
	Background: Hex(0x171714ff),
	GameOver:   Hex(0xaa3333ff),
	Foreground: Hex(0xffffaaff),
	Heart:      Hex(0xff7777ff),
	Hair:       Hex(0x604d29ff),
	Dead:       Hex(0x777777ff),
}

// HeadColorIndex maps happiness in [-1,1] onto HeadColors.
func HeadColorIndex(happiness float32) int {
	idx := int(float32(len(HeadColors)) * 0.5 * (happiness + 1.0))
	return clamp(idx, 0, len(HeadColors)-1)
}
