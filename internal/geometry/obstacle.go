package geometry

import "fmt"

// CellSize is the fixed size in pixels of one obstacle grid cell, matching
// spec.md §3 ("8x8 obstacle cells per layer").
const CellSize = 8

// Obstacle is the kind of ground/obstruction a tile grid cell carries.
// Half-diagonal kinds make the cell an obstacle only for the matching
// triangular half; water/hole/ladder/shallow-water kinds are "ground"
// rather than hard obstacles and are interpreted by the hero state (see
// internal/hero).
type Obstacle int

const (
	ObstacleNone Obstacle = iota
	ObstacleFull
	ObstacleTopRight
	ObstacleTopLeft
	ObstacleBottomLeft
	ObstacleBottomRight
	ObstacleTopRightWater
	ObstacleTopLeftWater
	ObstacleBottomLeftWater
	ObstacleBottomRightWater
	ObstacleShallowWater
	ObstacleDeepWater
	ObstacleHole
	ObstacleLadder
	ObstacleEmpty
)

// IsGround reports whether this obstacle kind is "ground" that a state
// interprets (blocks, hurts, drowns or passes through) rather than a hard
// wall-like obstacle.
func (o Obstacle) IsGround() bool {
	switch o {
	case ObstacleShallowWater, ObstacleDeepWater, ObstacleHole, ObstacleLadder:
		return true
	default:
		return false
	}
}

// blocksCorner reports whether the obstacle kind blocks the given corner
// of its cell, used by half-diagonal classification.
func (o Obstacle) blocksCorner(cx, cy int) bool {
	switch o {
	case ObstacleFull:
		return true
	case ObstacleTopRight, ObstacleTopRightWater:
		return cx >= cy
	case ObstacleTopLeft, ObstacleTopLeftWater:
		return cx <= cy
	case ObstacleBottomLeft, ObstacleBottomLeftWater:
		return cx <= (CellSize - 1 - cy)
	case ObstacleBottomRight, ObstacleBottomRightWater:
		return cx >= (CellSize - 1 - cy)
	default:
		return false
	}
}

// Grid is a per-layer array of Obstacle cells sized (mapWidth/8) x
// (mapHeight/8), populated at map load from static tiles and toggled at
// runtime by dynamic tiles (spec.md §3 invariant: mutated only between
// frames, never mid collision-query — enforced by callers, not the type).
type Grid struct {
	widthCells, heightCells int
	cells                   [LayerCount][]Obstacle
}

// NewGrid allocates a grid for a map of the given pixel dimensions, which
// must be multiples of CellSize.
func NewGrid(mapWidth, mapHeight int) (*Grid, error) {
	if mapWidth%CellSize != 0 || mapHeight%CellSize != 0 {
		return nil, fmt.Errorf("geometry: map size %dx%d is not a multiple of %d", mapWidth, mapHeight, CellSize)
	}
	wc, hc := mapWidth/CellSize, mapHeight/CellSize
	g := &Grid{widthCells: wc, heightCells: hc}
	for l := 0; l < LayerCount; l++ {
		g.cells[l] = make([]Obstacle, wc*hc)
	}
	return g, nil
}

func (g *Grid) index(cx, cy int) int { return cy*g.widthCells + cx }

// InBounds reports whether a cell coordinate is within the grid.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.widthCells && cy < g.heightCells
}

// WidthCells and HeightCells return the grid dimensions in cells.
func (g *Grid) WidthCells() int  { return g.widthCells }
func (g *Grid) HeightCells() int { return g.heightCells }

// At returns the obstacle kind at a cell coordinate on a layer. Out of
// bounds cells read as ObstacleFull, so map-border rejection (spec.md
// §4.F "obstacle on boundary") falls out of the normal tile query.
func (g *Grid) At(layer Layer, cx, cy int) Obstacle {
	if !g.InBounds(cx, cy) {
		return ObstacleFull
	}
	return g.cells[layer][g.index(cx, cy)]
}

// Set assigns the obstacle kind of a single cell, used by dynamic tiles.
func (g *Grid) Set(layer Layer, cx, cy int, o Obstacle) {
	if !g.InBounds(cx, cy) {
		return
	}
	g.cells[layer][g.index(cx, cy)] = o
}

// MergeFootprint OR-merges a tile pattern's obstacle kind into every cell
// of its footprint, refusing to weaken an existing FULL cell — spec.md §4.E
// invariant: "no later tile may weaken an existing FULL cell below it on
// the same layer".
func (g *Grid) MergeFootprint(layer Layer, originCX, originCY, widthCells, heightCells int, o Obstacle) {
	for dy := 0; dy < heightCells; dy++ {
		for dx := 0; dx < widthCells; dx++ {
			cx, cy := originCX+dx, originCY+dy
			if !g.InBounds(cx, cy) {
				continue
			}
			idx := g.index(cx, cy)
			if g.cells[layer][idx] == ObstacleFull {
				continue
			}
			g.cells[layer][idx] = o
		}
	}
}

// CellsOverlapping returns the inclusive range of cell coordinates a pixel
// rectangle overlaps, used to drive the tile-grid collision query.
func CellsOverlapping(r Rectangle) (minCX, minCY, maxCX, maxCY int) {
	minCX = floorDiv(r.Left(), CellSize)
	minCY = floorDiv(r.Top(), CellSize)
	maxCX = floorDiv(r.Right()-1, CellSize)
	maxCY = floorDiv(r.Bottom()-1, CellSize)
	return
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CornerInCell returns a point's position within its cell, for
// half-diagonal obstacle classification.
func CornerInCell(px, py int) (cx, cy int) {
	cx = ((px % CellSize) + CellSize) % CellSize
	cy = ((py % CellSize) + CellSize) % CellSize
	return
}

// BlocksPoint reports whether the obstacle at the cell containing (px, py)
// blocks that exact pixel, honoring half-diagonal cells.
func (g *Grid) BlocksPoint(layer Layer, px, py int) bool {
	cx, cy := floorDiv(px, CellSize), floorDiv(py, CellSize)
	o := g.At(layer, cx, cy)
	if o.IsGround() || o == ObstacleNone || o == ObstacleEmpty {
		return false
	}
	ix, iy := CornerInCell(px, py)
	return o.blocksCorner(ix, iy)
}
