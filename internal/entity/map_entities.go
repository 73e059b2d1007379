package entity

import (
	"sort"

	"github.com/solarium-engine/solarium/internal/geometry"
)

// MapEntities owns every entity of one map: static tiles per layer, the
// flat lifecycle list, the two per-layer display lists, the detectors
// list, the per-layer obstacle list, and the pending-removal queue
// (spec.md §4.E).
type MapEntities struct {
	tiles [geometry.LayerCount][]*Entity

	all []*Entity

	displayedFirst [geometry.LayerCount][]*Entity
	displayedYOrder [geometry.LayerCount][]*Entity

	detectors []*Entity

	obstacles [geometry.LayerCount][]*Entity

	named map[string]*Entity

	toRemove []*Entity

	hero *Entity

	bossActive     bool
	minibossActive bool
}

// NewMapEntities creates an empty container.
func NewMapEntities() *MapEntities {
	return &MapEntities{named: make(map[string]*Entity)}
}

// SetHero registers the hero entity: it is tracked in its own field and
// also added through AddEntity to the lifecycle, display, obstacle and
// detector lists like any other entity (spec.md §4.E). Its Y-order position is kept
// live the same way NPCs/enemies are: the caller must run
// NotifyEntityMoved(hero) after every hero movement tick.
func (m *MapEntities) SetHero(h *Entity) {
	m.hero = h
	m.AddEntity(h)
}

// Hero returns the tracked hero entity, or nil if none was set.
func (m *MapEntities) Hero() *Entity { return m.hero }

// AddTile registers a static tile and OR-merges its obstacle footprint
// into the layer's grid (spec.md §4.E invariant: "no later tile may
// weaken an existing FULL cell"). grid may be nil for callers that merge
// obstacle data separately.
func (m *MapEntities) AddTile(t *Entity, grid *geometry.Grid, obstacle geometry.Obstacle) {
	m.tiles[t.Layer] = append(m.tiles[t.Layer], t)
	if grid != nil {
		originCX := t.Box.X / geometry.CellSize
		originCY := t.Box.Y / geometry.CellSize
		widthCells := t.Box.Width / geometry.CellSize
		heightCells := t.Box.Height / geometry.CellSize
		grid.MergeFootprint(t.Layer, originCX, originCY, widthCells, heightCells, obstacle)
	}
	m.AddEntity(t)
}

// AddEntity registers an entity into the lifecycle list and every display
// /obstacle/detector list its feature tuple calls for.
func (m *MapEntities) AddEntity(e *Entity) {
	m.all = append(m.all, e)
	if e.Name != "" {
		m.named[e.Name] = e
	}

	f := e.Features()
	if f.CanBeDisplayed {
		if f.DisplayedInYOrder {
			m.displayedYOrder[e.Layer] = append(m.displayedYOrder[e.Layer], e)
			m.resortYOrder(e.Layer)
		} else {
			m.displayedFirst[e.Layer] = append(m.displayedFirst[e.Layer], e)
		}
	}
	if f.CanDetect {
		m.detectors = append(m.detectors, e)
	}
	if f.CanBeObstacle {
		m.obstacles[e.Layer] = append(m.obstacles[e.Layer], e)
	}
}

// resortYOrder stable-sorts a layer's Y-order display list by box bottom
// edge, ascending, preserving insertion order for ties (spec.md §4.E
// invariant).
func (m *MapEntities) resortYOrder(layer geometry.Layer) {
	list := m.displayedYOrder[layer]
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Box.Bottom() < list[j].Box.Bottom()
	})
}

// NotifyEntityMoved re-sorts the Y-order list containing e; callers
// invoke this after any movement that changes e's Y position or layer.
func (m *MapEntities) NotifyEntityMoved(e *Entity) {
	if e.Features().DisplayedInYOrder {
		m.resortYOrder(e.Layer)
	}
}

// SetEntityLayer moves e to a new layer, relocating it in every
// per-layer list it belongs to.
func (m *MapEntities) SetEntityLayer(e *Entity, layer geometry.Layer) {
	if e.Layer == layer {
		return
	}
	f := e.Features()
	if f.CanBeDisplayed {
		if f.DisplayedInYOrder {
			m.displayedYOrder[e.Layer] = removeEntity(m.displayedYOrder[e.Layer], e)
		} else {
			m.displayedFirst[e.Layer] = removeEntity(m.displayedFirst[e.Layer], e)
		}
	}
	if f.CanBeObstacle {
		m.obstacles[e.Layer] = removeEntity(m.obstacles[e.Layer], e)
	}
	e.Layer = layer
	if f.CanBeDisplayed {
		if f.DisplayedInYOrder {
			m.displayedYOrder[layer] = append(m.displayedYOrder[layer], e)
			m.resortYOrder(layer)
		} else {
			m.displayedFirst[layer] = append(m.displayedFirst[layer], e)
		}
	}
	if f.CanBeObstacle {
		m.obstacles[layer] = append(m.obstacles[layer], e)
	}
}

// BringToFront moves e to the end of its layer's normal-order display
// list, drawing it after everything else previously there.
func (m *MapEntities) BringToFront(e *Entity) {
	if e.Features().DisplayedInYOrder {
		return
	}
	list := m.displayedFirst[e.Layer]
	list = removeEntity(list, e)
	m.displayedFirst[e.Layer] = append(list, e)
}

// RemoveEntity marks e for removal; it is physically dropped from every
// list during the next Sweep call (spec.md §4.E invariant).
func (m *MapEntities) RemoveEntity(e *Entity) {
	if e == nil || e.BeingRemoved {
		return
	}
	e.BeingRemoved = true
	m.toRemove = append(m.toRemove, e)
}

// RemoveEntityByRef removes the named entity of the given kind, if found.
func (m *MapEntities) RemoveEntityByRef(kind Kind, name string) {
	if e, ok := m.named[name]; ok && e.Kind == kind {
		m.RemoveEntity(e)
	}
}

// GetEntity returns the named entity of the given kind, or nil.
func (m *MapEntities) GetEntity(kind Kind, name string) *Entity {
	if e, ok := m.named[name]; ok && e.Kind == kind && !e.BeingRemoved {
		return e
	}
	return nil
}

// GetEntities returns every non-removed entity of the given kind.
func (m *MapEntities) GetEntities(kind Kind) []*Entity {
	var result []*Entity
	for _, e := range m.all {
		if e.Kind == kind && !e.BeingRemoved {
			result = append(result, e)
		}
	}
	return result
}

// GetEntitiesWithPrefix returns every non-removed entity of the given
// kind whose name starts with prefix.
func (m *MapEntities) GetEntitiesWithPrefix(kind Kind, prefix string) []*Entity {
	var result []*Entity
	for _, e := range m.all {
		if e.Kind == kind && !e.BeingRemoved && len(e.Name) >= len(prefix) && e.Name[:len(prefix)] == prefix {
			result = append(result, e)
		}
	}
	return result
}

// Detectors returns the current detectors list, used by the collision
// resolver's detector dispatch (spec.md §4.F).
func (m *MapEntities) Detectors() []*Entity { return m.detectors }

// ObstacleEntities returns the obstacle-entities list for a layer, used
// by the collision resolver's entity query (spec.md §4.F).
func (m *MapEntities) ObstacleEntities(layer geometry.Layer) []*Entity {
	return m.obstacles[layer]
}

// DisplayedFirst returns a layer's normal-order display list.
func (m *MapEntities) DisplayedFirst(layer geometry.Layer) []*Entity {
	return m.displayedFirst[layer]
}

// DisplayedYOrder returns a layer's Y-ordered display list.
func (m *MapEntities) DisplayedYOrder(layer geometry.Layer) []*Entity {
	return m.displayedYOrder[layer]
}

// Tiles returns a layer's static tile list.
func (m *MapEntities) Tiles(layer geometry.Layer) []*Entity { return m.tiles[layer] }

// OverlapsRaisedBlocks reports whether box overlaps any non-removed
// CrystalSwitchBlock currently raised (blocking) on layer — used by the
// hero's can_avoid checks and by scripts deciding whether a path is
// currently open.
func (m *MapEntities) OverlapsRaisedBlocks(layer geometry.Layer, box geometry.Rectangle, raised func(*Entity) bool) bool {
	for _, e := range m.obstacles[layer] {
		if e.Kind != KindCrystalSwitchBlock || e.BeingRemoved {
			continue
		}
		if raised(e) && box.Overlaps(e.Box) {
			return true
		}
	}
	return false
}

// StartBossBattle / EndBossBattle / StartMinibossBattle / EndMinibossBattle
// manage the boss/miniboss enabled flag and leave music handling to the
// caller (the game orchestrator owns audio), per spec.md §4.E.
func (m *MapEntities) StartBossBattle()      { m.bossActive = true }
func (m *MapEntities) EndBossBattle()        { m.bossActive = false }
func (m *MapEntities) StartMinibossBattle()  { m.minibossActive = true }
func (m *MapEntities) EndMinibossBattle()    { m.minibossActive = false }
func (m *MapEntities) IsBossBattleActive() bool     { return m.bossActive }
func (m *MapEntities) IsMinibossBattleActive() bool { return m.minibossActive }

// NotifyMapStarted runs once after the map's entities finish loading,
// calling notify once for every entity in the lifecycle list.
func (m *MapEntities) NotifyMapStarted(notify func(*Entity)) {
	for _, e := range m.all {
		notify(e)
	}
}

// Sweep physically drops every entity marked for removal from every list
// it belongs to, and clears the pending queue (spec.md §4.E invariant:
// "physically dropped in the post-update sweep").
func (m *MapEntities) Sweep() {
	if len(m.toRemove) == 0 {
		return
	}
	for _, e := range m.toRemove {
		m.all = removeEntity(m.all, e)
		if e.Name != "" {
			delete(m.named, e.Name)
		}
		f := e.Features()
		if f.CanBeDisplayed {
			if f.DisplayedInYOrder {
				m.displayedYOrder[e.Layer] = removeEntity(m.displayedYOrder[e.Layer], e)
			} else {
				m.displayedFirst[e.Layer] = removeEntity(m.displayedFirst[e.Layer], e)
			}
		}
		if f.CanDetect {
			m.detectors = removeEntity(m.detectors, e)
		}
		if f.CanBeObstacle {
			m.obstacles[e.Layer] = removeEntity(m.obstacles[e.Layer], e)
		}
		if e == m.hero {
			m.hero = nil
		}
	}
	m.toRemove = m.toRemove[:0]
}

func removeEntity(list []*Entity, e *Entity) []*Entity {
	for i, cand := range list {
		if cand == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
