package game

import (
	"testing"

	"github.com/solarium-engine/solarium/internal/config"
	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/geometry"
	"github.com/solarium-engine/solarium/internal/hero"
	"github.com/solarium-engine/solarium/internal/script"
)

func testConfig() *config.Config {
	return &config.Config{
		Display: config.DisplayConfig{ScreenWidth: 160, ScreenHeight: 144},
		Engine:  config.EngineConfig{TPS: 60},
		Hero:    config.HeroConfig{WidthPx: 16, HeightPx: 16, WalkSpeedPxPerS: 88},
		Transition: config.TransitionConfig{DefaultKind: "immediate", FadeDurationMS: 250},
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := testConfig()
	save := equipment.New("")
	defs := []equipment.ItemDefinition{
		{Name: "sword", Savable: true, InitialVariant: 1, MaxVariant: 4},
	}

	factory := func(id string, host script.Host) (*Map, error) {
		return NewMap(id, 320, 240, host)
	}

	g, err := NewGame(NewGameOptions{
		Config:      cfg,
		Savegame:    save,
		ItemDefs:    defs,
		DialogStore: nil,
		MapFactory:  factory,
		FirstMapID:  "start",
		RandSeed:    1,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameLoadsFirstMap(t *testing.T) {
	g := newTestGame(t)
	if g.mapState == nil {
		t.Fatal("expected a map to be loaded")
	}
	if g.mapState.ID != "start" {
		t.Errorf("mapState.ID = %q, want %q", g.mapState.ID, "start")
	}
}

func TestSwitchMapPlacesHeroAtDestination(t *testing.T) {
	g := newTestGame(t)
	factory := g.mapFactory
	g.mapFactory = func(id string, host script.Host) (*Map, error) {
		m, err := factory(id, host)
		if err == nil {
			m.AddDestination("door", geometry.Point{X: 100, Y: 80}, geometry.LayerHigh)
		}
		return m, err
	}

	if err := g.switchMap("start", "door", TransitionImmediate, 0); err != nil {
		t.Fatalf("switchMap: %v", err)
	}

	center := g.hero.Box.Center()
	if center.X != 100 || center.Y != 80 {
		t.Errorf("hero center = (%d,%d), want (100,80)", center.X, center.Y)
	}
	if g.hero.Layer != geometry.LayerHigh {
		t.Errorf("hero.Layer = %v, want %v", g.hero.Layer, geometry.LayerHigh)
	}
}

func TestSwitchMapUnknownDestinationFails(t *testing.T) {
	g := newTestGame(t)
	if err := g.switchMap("start", "nowhere", TransitionImmediate, 0); err == nil {
		t.Fatal("expected an error for an unknown destination")
	}
}

func TestClassifyGroundEntersPlungingOnDeepWater(t *testing.T) {
	g := newTestGame(t)
	cx, cy := g.hero.Box.Center().X/geometry.CellSize, g.hero.Box.Center().Y/geometry.CellSize
	g.mapState.Grid.Set(g.hero.Layer, cx, cy, geometry.ObstacleDeepWater)

	g.classifyGround(0)

	if _, ok := g.hero.State().(*hero.PlungingState); !ok {
		t.Fatalf("hero state = %T, want PlungingState", g.hero.State())
	}
}

func TestClassifyGroundTracksLastSolidGround(t *testing.T) {
	g := newTestGame(t)
	g.hero.SetXY(40, 40)
	before := g.hero.Box.Center()

	g.classifyGround(0)

	if g.hero.LastSolidGround != before {
		t.Errorf("LastSolidGround = %+v, want %+v", g.hero.LastSolidGround, before)
	}
}

func TestHurtHeroAppliesDamageAndKnockback(t *testing.T) {
	g := newTestGame(t)
	g.equipment.SetMaxAmount(equipment.AmountLife, 12)
	g.equipment.AddAmount(equipment.AmountLife, 12)

	attacker := entity.New(entity.KindEnemy, g.hero.Layer, geometry.NewRectangle(g.hero.Box.X+32, g.hero.Box.Y, 16, 16))

	g.HurtHero(attacker, 4, 0)

	if got := g.equipment.GetAmount(equipment.AmountLife); got != 8 {
		t.Errorf("life = %d, want 8 after 4 damage", got)
	}

	if _, ok := g.hero.State().(*hero.HurtState); !ok {
		t.Fatalf("hero state = %T, want HurtState", g.hero.State())
	}
	if g.hero.Movement == nil {
		t.Fatal("expected a knockback movement to be attached")
	}
}

func TestHurtHeroRespectsCanBeHurt(t *testing.T) {
	g := newTestGame(t)
	g.hero.SetState(&hero.HurtState{}, 0)
	beforeMovement := g.hero.Movement

	attacker := entity.New(entity.KindEnemy, g.hero.Layer, geometry.NewRectangle(g.hero.Box.X+32, g.hero.Box.Y, 16, 16))
	g.HurtHero(attacker, 4, 0)

	if g.hero.Movement != beforeMovement {
		t.Error("HurtHero should not touch movement when the hero cannot be hurt")
	}
}

func TestGiveTreasureStartsBrandishing(t *testing.T) {
	g := newTestGame(t)
	g.GiveTreasure("bow", 1, "")

	if _, ok := g.hero.State().(*hero.BrandishingTreasureState); !ok {
		t.Fatalf("hero state = %T, want BrandishingTreasureState", g.hero.State())
	}
	if g.hero.Treasure == nil || g.hero.Treasure.ItemName != "bow" {
		t.Fatalf("hero.Treasure = %+v, want ItemName=bow", g.hero.Treasure)
	}
}

func TestIsSuspendedDuringPause(t *testing.T) {
	g := newTestGame(t)
	if g.IsSuspended() {
		t.Fatal("fresh game should not be suspended")
	}
	g.pause.Open()
	if !g.IsSuspended() {
		t.Error("expected IsSuspended() once the pause menu is open")
	}
}

func TestUpdateAdvancesClockAndRunsATick(t *testing.T) {
	g := newTestGame(t)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.nowMS == 0 {
		t.Error("expected nowMS to advance past zero")
	}
}

func TestRequestExitStopsUpdate(t *testing.T) {
	g := newTestGame(t)
	g.RequestExit()
	if err := g.Update(); err != ErrExit {
		t.Fatalf("Update() after RequestExit = %v, want ErrExit", err)
	}
}
