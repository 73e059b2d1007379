package entity

import (
	"testing"

	"github.com/solarium-engine/solarium/internal/geometry"
)

func TestFeaturesOfMatchesSpecTuples(t *testing.T) {
	cases := []struct {
		kind Kind
		want Features
	}{
		{KindSensor, Features{CanDetect: true}},
		{KindHero, Features{CanBeObstacle: true, CanDetect: true, CanBeDisplayed: true, DisplayedInYOrder: true}},
		{KindDestination, Features{}},
	}
	for _, c := range cases {
		if got := FeaturesOf(c.kind); got != c.want {
			t.Errorf("FeaturesOf(%v) = %+v, want %+v", c.kind, got, c.want)
		}
	}
}

func TestEntitySetSuspendedTogglesSuspendedFlag(t *testing.T) {
	e := New(KindEnemy, geometry.LayerLow, geometry.NewRectangle(0, 0, 16, 16))
	e.SetSuspended(true, 1000)
	if !e.Suspended {
		t.Fatal("expected entity to be suspended")
	}
	e.SetSuspended(false, 2000)
	if e.Suspended {
		t.Fatal("expected entity to resume")
	}
}

func TestIsObstacleForDefaultsToFeatureTuple(t *testing.T) {
	obstacle := New(KindBlock, geometry.LayerLow, geometry.NewRectangle(0, 0, 16, 16))
	nonObstacle := New(KindDestination, geometry.LayerLow, geometry.NewRectangle(0, 0, 16, 16))

	if !obstacle.IsObstacleFor(nil) {
		t.Fatal("block should be an obstacle by default")
	}
	if nonObstacle.IsObstacleFor(nil) {
		t.Fatal("destination should never be an obstacle")
	}
}

func TestIsObstacleForCustomOverride(t *testing.T) {
	mover := New(KindHero, geometry.LayerLow, geometry.NewRectangle(0, 0, 16, 16))
	block := New(KindBlock, geometry.LayerLow, geometry.NewRectangle(16, 0, 16, 16))
	block.SetCustomObstacleTest(obstacleTestFunc(func(candidate *Entity) bool {
		return candidate != mover
	}))

	if block.IsObstacleFor(mover) {
		t.Fatal("expected block to be transparent to the entity moving it")
	}
	other := New(KindEnemy, geometry.LayerLow, geometry.NewRectangle(0, 0, 16, 16))
	if !block.IsObstacleFor(other) {
		t.Fatal("expected block to still obstruct other entities")
	}
}

type obstacleTestFunc func(*Entity) bool

func (f obstacleTestFunc) IsObstacleFor(candidate *Entity) bool { return f(candidate) }
