// Package draw renders the game as colored half-block characters through
// ANSI escape sequences, with chunked output sized for SSH sessions.
package draw

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters used by the canvas renderer.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// GrayColor returns an ANSI 256 grayscale index for level 0 (near black)
// through 23 (near white).
func GrayColor(level int) uint8 {
	if level < 0 {
		level = 0
	}
	if level > 23 {
		level = 23
	}
	return uint8(232 + level)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
