// Package shape defines the shape kind and size tier taxonomy for the
// merge game: which kinds of shapes exist, how large each tier is, and
// what color it renders in. The catalog is pure data and immutable after
// construction.
package shape

// Kind identifies one of the fixed shape families.
type Kind int

const (
	KindCircle Kind = iota
	KindSquare
	KindTriangle
)

// String returns the kind name for logs and test output.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// SizeTier holds the geometry and display color for one size step of a kind.
type SizeTier struct {
	Size     float64 // Circle radius, square half-extent, triangle circumradius
	Rounding float64 // Corner rounding radius (ignored for circles)
	Color    uint8   // ANSI 256 palette index
}

// Tag is the immutable game metadata attached to a live physics body.
// Two instances fuse only when their tags are equal.
type Tag struct {
	Kind Kind
	Tier int
}
