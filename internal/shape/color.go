package shape

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ansiIndex quantizes a color to the nearest entry of the ANSI 256 6x6x6
// color cube (indices 16..231), which every modern terminal renders.
func ansiIndex(c colorful.Color) uint8 {
	r, g, b := c.RGB255()
	return uint8(16 + 36*cube(r) + 6*cube(g) + cube(b))
}

func cube(v uint8) int {
	return int(math.Round(float64(v) / 255 * 5))
}

// tierColor produces the display color for one tier of a kind: each kind
// owns a base hue, and tiers brighten and desaturate as they grow so a
// freshly fused shape reads as a clear upgrade.
func tierColor(baseHue float64, tier, tierCount int) uint8 {
	t := float64(tier) / float64(tierCount-1)
	h := math.Mod(baseHue+t*40, 360)
	s := 0.9 - 0.35*t
	v := 0.55 + 0.4*t
	return ansiIndex(colorful.Hsv(h, s, v))
}
