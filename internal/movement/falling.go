package movement

// FallingHeight selects one of the three preset bounce heights used when
// an entity falls onto the floor from a shelf or hole ledge (spec.md
// §4.D "Falling-on-floor movement").
type FallingHeight int

const (
	FallingLow FallingHeight = iota
	FallingMedium
	FallingHigh
)

// fallingTrajectory lists the scripted (dx, dy) pixel steps for each
// height, a short bounce that settles back to the origin column, matching
// the fixed three-variant animation Solarus ships for this movement.
var fallingTrajectories = map[FallingHeight][]Step{
	FallingLow:    {{0, -2}, {0, -1}, {0, 0}, {0, 1}, {0, 2}},
	FallingMedium: {{0, -4}, {0, -3}, {0, -1}, {0, 0}, {0, 2}, {0, 3}, {0, 4}},
	FallingHigh:   {{0, -6}, {0, -5}, {0, -3}, {0, -1}, {0, 0}, {0, 2}, {0, 4}, {0, 5}, {0, 6}},
}

// NewFallingMovement creates a short scripted bounce for the given
// height, built on top of PixelMovement's finite-trajectory replay.
func NewFallingMovement(target Target, height FallingHeight, delayMS int64) *PixelMovement {
	return NewPixelMovement(target, fallingTrajectories[height], delayMS)
}
