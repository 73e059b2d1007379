package entity

import (
	"testing"

	"github.com/solarium-engine/solarium/internal/geometry"
)

func TestYOrderSortsByBottomEdgeStably(t *testing.T) {
	m := NewMapEntities()
	a := New(KindNPC, geometry.LayerLow, geometry.NewRectangle(0, 10, 8, 8))
	b := New(KindNPC, geometry.LayerLow, geometry.NewRectangle(0, 5, 8, 8))
	c := New(KindNPC, geometry.LayerLow, geometry.NewRectangle(0, 10, 8, 8)) // ties with a

	m.AddEntity(a)
	m.AddEntity(b)
	m.AddEntity(c)

	order := m.DisplayedYOrder(geometry.LayerLow)
	if len(order) != 3 || order[0] != b || order[1] != a || order[2] != c {
		t.Fatalf("unexpected y-order: %v", order)
	}
}

func TestRemoveEntityIsDeferredUntilSweep(t *testing.T) {
	m := NewMapEntities()
	e := New(KindEnemy, geometry.LayerLow, geometry.NewRectangle(0, 0, 8, 8))
	e.Name = "slime"
	m.AddEntity(e)

	m.RemoveEntity(e)
	if !e.BeingRemoved {
		t.Fatal("expected entity marked for removal")
	}
	if m.GetEntity(KindEnemy, "slime") != nil {
		t.Fatal("removed entity should not be returned by queries before sweep")
	}
	if len(m.obstacles[geometry.LayerLow]) != 1 {
		t.Fatal("entity should still be physically present until sweep")
	}

	m.Sweep()
	if len(m.obstacles[geometry.LayerLow]) != 0 {
		t.Fatal("expected obstacle list cleared after sweep")
	}
	if len(m.all) != 0 {
		t.Fatal("expected lifecycle list cleared after sweep")
	}
}

func TestAddTileMergesObstacleFootprint(t *testing.T) {
	m := NewMapEntities()
	grid, err := geometry.NewGrid(16, 16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	tile := New(KindTile, geometry.LayerLow, geometry.NewRectangle(0, 0, 8, 8))

	m.AddTile(tile, grid, geometry.ObstacleFull)
	if grid.At(geometry.LayerLow, 0, 0) != geometry.ObstacleFull {
		t.Fatalf("expected merged obstacle FULL, got %v", grid.At(geometry.LayerLow, 0, 0))
	}
}

func TestBringToFrontReordersNormalDisplayList(t *testing.T) {
	m := NewMapEntities()
	a := New(KindTile, geometry.LayerLow, geometry.NewRectangle(0, 0, 8, 8))
	b := New(KindTile, geometry.LayerLow, geometry.NewRectangle(8, 0, 8, 8))
	m.AddEntity(a)
	m.AddEntity(b)

	m.BringToFront(a)
	list := m.DisplayedFirst(geometry.LayerLow)
	if list[len(list)-1] != a {
		t.Fatal("expected a moved to the front of the draw order")
	}
}

func TestSetEntityLayerRelocatesLists(t *testing.T) {
	m := NewMapEntities()
	e := New(KindBlock, geometry.LayerLow, geometry.NewRectangle(0, 0, 8, 8))
	m.AddEntity(e)

	m.SetEntityLayer(e, geometry.LayerHigh)
	if len(m.obstacles[geometry.LayerLow]) != 0 || len(m.obstacles[geometry.LayerHigh]) != 1 {
		t.Fatal("expected entity relocated to the new layer's obstacle list")
	}
}
