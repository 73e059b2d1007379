package game

import (
	"errors"

	"github.com/solarium-engine/solarium/internal/collision"
	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/geometry"
	"github.com/solarium-engine/solarium/internal/script"
)

// ErrBadDestination is returned when a map transition names a destination
// point the target map does not have (spec.md §4.L "Fails with
// BadDestination if the destination point name is missing").
var ErrBadDestination = errors.New("game: destination point not found")

// Map owns one map's entities, obstacle grid, collision resolver and
// script, and is destroyed wholesale on map switch (spec.md §5
// "Shared-resource policy": "the current Map owns its entities, tileset
// reference, camera, and script; on map switch, the previous map is
// destroyed after the OUT transition finishes and before the IN
// transition starts").
type Map struct {
	ID       string
	MusicID  string
	TilesetID string

	WidthPx, HeightPx int

	Grid     *geometry.Grid
	Entities *entity.MapEntities
	Resolver *collision.Resolver
	Script   *script.Script

	destinations map[string]Destination
}

// Destination is a named arrival point a map transition can target:
// the pixel position plus the layer the hero lands on (spec.md §8
// testable property "the hero's layer equals the destination's layer").
type Destination struct {
	Point geometry.Point
	Layer geometry.Layer
}

// NewMap creates an empty map of the given pixel dimensions; grid cells
// default to ObstacleNone (open ground).
func NewMap(id string, widthPx, heightPx int, host script.Host) (*Map, error) {
	grid, err := geometry.NewGrid(widthPx, heightPx)
	if err != nil {
		return nil, err
	}
	entities := entity.NewMapEntities()
	m := &Map{
		ID: id, WidthPx: widthPx, HeightPx: heightPx,
		Grid: grid, Entities: entities,
		destinations: make(map[string]Destination),
	}
	m.Resolver = collision.NewResolver(grid, entities)
	m.Script = script.New(host)
	return m, nil
}

// AddDestination registers a named destination point, looked up by
// Destination when the hero arrives through a teletransporter or
// set_current_map (spec.md §4.L "places the hero at the named
// destination").
func (m *Map) AddDestination(name string, p geometry.Point, layer geometry.Layer) {
	m.destinations[name] = Destination{Point: p, Layer: layer}
}

// Destination resolves a destination point name, reporting false if it
// is missing; switchMap turns that into ErrBadDestination.
func (m *Map) Destination(name string) (Destination, bool) {
	d, ok := m.destinations[name]
	return d, ok
}

// Close tears down the map's script when the map is discarded.
func (m *Map) Close() {
	if m.Script != nil {
		m.Script.Close()
	}
}

// EntityChecker builds a movement.ObstacleChecker for mover on this map's
// layer, the adapter internal/collision already provides (spec.md §4.D/F
// boundary).
func (m *Map) EntityChecker(layer geometry.Layer, mover *entity.Entity) *collision.EntityChecker {
	return &collision.EntityChecker{Resolver: m.Resolver, Layer: layer, Mover: mover}
}
