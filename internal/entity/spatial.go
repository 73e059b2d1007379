package entity

import "github.com/solarium-engine/solarium/internal/geometry"

// CollisionMode selects which overlap test a detector runs against a
// candidate entity (spec.md §4.F "detector dispatch").
type CollisionMode int

const (
	CollisionRectangle CollisionMode = iota
	CollisionOriginPoint
	CollisionFacingPoint
	CollisionSprite
	CollisionContaining
	CollisionCenter
	CollisionCustom
)

// Overlaps runs the overlap test named by mode between a detector and a
// candidate entity. CollisionCustom always reports false here; callers
// that register a custom test must check it themselves before/instead of
// calling Overlaps.
func Overlaps(mode CollisionMode, detector, candidate *Entity) bool {
	switch mode {
	case CollisionOriginPoint:
		ox, oy := candidate.OriginXY()
		return detector.Box.Contains(geometry.Point{X: ox, Y: oy})
	case CollisionFacingPoint:
		return detector.Box.Contains(candidate.FacingPoint())
	case CollisionContaining:
		return detector.Box.ContainsRectangle(candidate.Box)
	case CollisionCenter:
		return detector.Box.Contains(candidate.Box.Center())
	case CollisionSprite:
		// Without both sprites having pixel masks enabled, sprite mode
		// degrades to a plain AABB test (spec.md §4.E "used only when
		// both sprites have pixel masks enabled").
		if detector.PixelCollisionEnabled && candidate.PixelCollisionEnabled {
			return spritePixelsOverlap(detector, candidate)
		}
		return detector.Box.Overlaps(candidate.Box)
	case CollisionCustom:
		return false
	default:
		return detector.Box.Overlaps(candidate.Box)
	}
}

// spritePixelsOverlap tests every opaque pixel of the overlapping region
// between the detector's and candidate's current sprite frames.
func spritePixelsOverlap(detector, candidate *Entity) bool {
	overlap := detector.Box
	if !overlap.Overlaps(candidate.Box) {
		return false
	}
	left, top := maxInt(overlap.Left(), candidate.Box.Left()), maxInt(overlap.Top(), candidate.Box.Top())
	right, bottom := minInt(overlap.Right(), candidate.Box.Right()), minInt(overlap.Bottom(), candidate.Box.Bottom())

	for _, ds := range detector.sprites {
		for _, cs := range candidate.sprites {
			for y := top; y < bottom; y++ {
				for x := left; x < right; x++ {
					if ds.PixelOpaqueAt(geometry.Point{X: x - detector.Box.X, Y: y - detector.Box.Y}) &&
						cs.PixelOpaqueAt(geometry.Point{X: x - candidate.Box.X, Y: y - candidate.Box.Y}) {
						return true
					}
				}
			}
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
