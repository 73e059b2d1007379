package collision

import (
	"testing"

	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/geometry"
)

func newGrid(t *testing.T) *geometry.Grid {
	t.Helper()
	g, err := geometry.NewGrid(32, 32)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestResolverBlocksOnFullTile(t *testing.T) {
	grid := newGrid(t)
	grid.Set(geometry.LayerLow, 1, 1, geometry.ObstacleFull)
	r := NewResolver(grid, entity.NewMapEntities())

	blocked := geometry.NewRectangle(8, 8, 8, 8)
	if r.CanOccupy(geometry.LayerLow, blocked, nil) {
		t.Fatal("expected FULL cell to block occupancy")
	}

	free := geometry.NewRectangle(16, 16, 8, 8)
	if !r.CanOccupy(geometry.LayerLow, free, nil) {
		t.Fatal("expected adjacent empty cell to be free")
	}
}

func TestResolverRejectsOutOfBounds(t *testing.T) {
	grid := newGrid(t)
	r := NewResolver(grid, entity.NewMapEntities())

	outOfBounds := geometry.NewRectangle(-8, 0, 8, 8)
	if r.CanOccupy(geometry.LayerLow, outOfBounds, nil) {
		t.Fatal("expected out-of-bounds candidate to be rejected")
	}
}

func TestResolverEntityObstacleBlocksAndExcludesMover(t *testing.T) {
	grid := newGrid(t)
	m := entity.NewMapEntities()
	block := entity.New(entity.KindBlock, geometry.LayerLow, geometry.NewRectangle(8, 8, 8, 8))
	m.AddEntity(block)
	r := NewResolver(grid, m)

	candidate := geometry.NewRectangle(8, 8, 8, 8)
	if r.CanOccupy(geometry.LayerLow, candidate, nil) {
		t.Fatal("expected block entity to obstruct")
	}
	if !r.CanOccupy(geometry.LayerLow, candidate, block) {
		t.Fatal("expected a mover excluded from its own obstacle test")
	}
}

func TestDispatchDetectorsNotifiesOnOverlap(t *testing.T) {
	grid := newGrid(t)
	m := entity.NewMapEntities()

	var notified *entity.Entity
	sensor := entity.New(entity.KindSensor, geometry.LayerLow, geometry.NewRectangle(0, 0, 16, 16))
	sensor.SetDetector(entity.CollisionRectangle, false, func(self, other *entity.Entity, mode entity.CollisionMode) {
		notified = other
	})
	m.AddEntity(sensor)

	hero := entity.New(entity.KindHero, geometry.LayerLow, geometry.NewRectangle(4, 4, 8, 8))
	m.AddEntity(hero)

	r := NewResolver(grid, m)
	r.DispatchDetectors(hero)

	if notified != hero {
		t.Fatal("expected sensor to be notified of hero overlap")
	}
}
