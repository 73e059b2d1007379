// Package collision implements the tile-and-entity obstacle resolver and
// detector dispatch (spec.md §4.F). Resolver replaces the teacher's
// center-anchored BoundingBox/CollisionSystem pair with one built on the
// top-left-anchored geometry.Rectangle and entity.Entity types the rest
// of the engine shares (see DESIGN.md for the adaptation rationale).
package collision

import (
	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/geometry"
)

// Resolver answers obstacle queries against a map's tile grid and entity
// lists (spec.md §4.F).
type Resolver struct {
	grid    *geometry.Grid
	mapData *entity.MapEntities
}

// NewResolver creates a resolver over a map's obstacle grid and entities.
func NewResolver(grid *geometry.Grid, mapData *entity.MapEntities) *Resolver {
	return &Resolver{grid: grid, mapData: mapData}
}

// CanOccupy reports whether mover could occupy candidate on layer: the
// tile query runs first (map-border rejection falls out of Grid.At
// returning FULL for out-of-bounds cells), then the entity obstacle
// query. mover may be nil for a probe with no excluded entity.
func (r *Resolver) CanOccupy(layer geometry.Layer, candidate geometry.Rectangle, mover *entity.Entity) bool {
	if r.tileBlocks(layer, candidate) {
		return false
	}
	return !r.entityBlocks(layer, candidate, mover)
}

func (r *Resolver) tileBlocks(layer geometry.Layer, candidate geometry.Rectangle) bool {
	minCX, minCY, maxCX, maxCY := geometry.CellsOverlapping(candidate)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			o := r.grid.At(layer, cx, cy)
			if o == geometry.ObstacleFull {
				return true
			}
			if o.IsGround() || o == geometry.ObstacleNone || o == geometry.ObstacleEmpty {
				continue
			}
			if r.halfDiagonalBlocksCorner(layer, cx, cy, candidate) {
				return true
			}
		}
	}
	return false
}

// halfDiagonalBlocksCorner samples the candidate rectangle's corners
// clamped into cell (cx, cy) against the grid's exact-pixel classifier,
// approximating the "obstacle only for the matching triangular half"
// rule (spec.md §4.F) without needing a full polygon clip.
func (r *Resolver) halfDiagonalBlocksCorner(layer geometry.Layer, cx, cy int, candidate geometry.Rectangle) bool {
	cellLeft, cellTop := cx*geometry.CellSize, cy*geometry.CellSize
	cellRight, cellBottom := cellLeft+geometry.CellSize-1, cellTop+geometry.CellSize-1

	xs := []int{clampInt(candidate.Left(), cellLeft, cellRight), clampInt(candidate.Right()-1, cellLeft, cellRight)}
	ys := []int{clampInt(candidate.Top(), cellTop, cellBottom), clampInt(candidate.Bottom()-1, cellTop, cellBottom)}
	for _, px := range xs {
		for _, py := range ys {
			if r.grid.BlocksPoint(layer, px, py) {
				return true
			}
		}
	}
	return false
}

func (r *Resolver) entityBlocks(layer geometry.Layer, candidate geometry.Rectangle, mover *entity.Entity) bool {
	for _, e := range r.mapData.ObstacleEntities(layer) {
		if e == mover || e.BeingRemoved {
			continue
		}
		if !e.Box.Overlaps(candidate) {
			continue
		}
		if e.IsObstacleFor(mover) {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
