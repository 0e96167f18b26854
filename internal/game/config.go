package game

// Game tuning constants.
// All values are in logical field units (field is 120x80) and seconds.

// Velocity governor
const (
	// MaxHorizontalSpeed caps |vx| of every dynamic body each physics step.
	MaxHorizontalSpeed = 40.0
)

// Shape factory
const (
	// NudgeForce is the small downward force applied to every freshly
	// created shape so perfectly stacked pairs do not rest in unstable
	// symmetry.
	NudgeForce = 30.0
)

// Active shape control
const (
	// LateralForce is the fixed-magnitude horizontal force one directional
	// input applies to the controlled shape.
	LateralForce = 900.0

	// RestSpeed is the scalar speed below which a shape counts as resting.
	RestSpeed = 2.0

	// ExitMargin is how far below the floor a shape must sink before it is
	// treated as having left the field.
	ExitMargin = 6.0
)

// Spawning
const (
	// SideMargin keeps spawn positions away from the walls so a fresh
	// shape never starts wedged.
	SideMargin = 10.0

	// SpawnHeight is how far above the visible field top new shapes appear.
	SpawnHeight = 12.0
)
