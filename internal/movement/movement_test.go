package movement

import (
	"testing"

	"github.com/solarium-engine/solarium/internal/geometry"
)

// point is a minimal Target for tests.
type point struct{ x, y int }

func (p *point) XY() (int, int)   { return p.x, p.y }
func (p *point) SetXY(x, y int)   { p.x, p.y = x, y }

type noObstacles struct{}

func (noObstacles) CanOccupy(geometry.Rectangle) bool { return true }

type wallAt struct{ x int }

func (w wallAt) CanOccupy(r geometry.Rectangle) bool { return r.X < w.x }

func TestPixelMovementReplaysTrajectory(t *testing.T) {
	p := &point{}
	m := NewPixelMovement(p, []Step{{8, 0}, {0, 8}}, 100)

	m.Update(0) // starts the delay countdown
	if m.IsFinished() {
		t.Fatal("finished too early")
	}
	m.Update(100)
	if p.x != 8 || p.y != 0 {
		t.Fatalf("after step1: (%d,%d), want (8,0)", p.x, p.y)
	}
	m.Update(200)
	if p.x != 8 || p.y != 8 {
		t.Fatalf("after step2: (%d,%d), want (8,8)", p.x, p.y)
	}
	if !m.IsFinished() {
		t.Fatal("expected finished after consuming all steps")
	}
}

func TestPathMovementFollowsDigitString(t *testing.T) {
	p := &point{}
	m := NewPathMovement(p, "0", 80, false, 16, 16, noObstacles{})

	m.Update(0)
	m.Update(100) // 8px at 80px/s takes 100ms
	if p.x != 8 || p.y != 0 {
		t.Fatalf("position = (%d,%d), want (8,0)", p.x, p.y)
	}
	if !m.IsFinished() {
		t.Fatal("expected single-segment path to finish")
	}
}

func TestPathMovementStoppedByObstacle(t *testing.T) {
	p := &point{x: 0}
	m := NewPathMovement(p, "0", 80, false, 16, 16, wallAt{x: 4})

	m.Update(0)
	m.Update(200)
	if !m.StoppedByObstacle() {
		t.Fatal("expected movement to report stopped by obstacle")
	}
	if !m.IsFinished() {
		t.Fatal("expected movement to finish when blocked")
	}
}

func TestTargetMovementSeeksFixedPoint(t *testing.T) {
	p := &point{x: 0, y: 0}
	m := NewTargetMovement(p, 100, 0, 50, 8, 8, noObstacles{})

	m.Update(0)
	m.Update(1000) // 50px/s * 1s = 50px toward (100,0)
	if p.x != 50 || p.y != 0 {
		t.Fatalf("position = (%d,%d), want (50,0)", p.x, p.y)
	}
}

func TestTargetMovementStopDistanceFinishes(t *testing.T) {
	p := &point{x: 0, y: 0}
	m := NewTargetMovement(p, 10, 0, 50, 8, 8, noObstacles{})
	m.SetStopDistance(5)

	m.Update(0)
	m.Update(1000)
	if !m.IsFinished() {
		t.Fatal("expected movement to finish once within stop distance")
	}
}

type fakeDirectionSource struct{ degrees int }

func (f fakeDirectionSource) GetWantedDirection8() int { return f.degrees }

func TestPlayerMovementMovesInWantedDirection(t *testing.T) {
	p := &point{}
	src := &fakeDirectionSource{degrees: 0} // east
	m := NewPlayerMovement(p, src, 80, 16, 16, noObstacles{})

	m.Update(0)
	m.Update(500) // 40px east
	if p.x != 40 || p.y != 0 {
		t.Fatalf("position = (%d,%d), want (40,0)", p.x, p.y)
	}
	if !m.MoveTried() || !m.LastMoveSucceeded() {
		t.Fatal("expected move to be tried and to succeed")
	}
}

func TestPlayerMovementNoKeysHeldDoesNotMove(t *testing.T) {
	p := &point{}
	src := &fakeDirectionSource{degrees: -1}
	m := NewPlayerMovement(p, src, 80, 16, 16, noObstacles{})

	m.Update(0)
	m.Update(500)
	if p.x != 0 || p.y != 0 {
		t.Fatalf("position = (%d,%d), want (0,0)", p.x, p.y)
	}
	if m.MoveTried() {
		t.Fatal("expected no move attempt with no keys held")
	}
}

func TestPlayerMovementSlidesAlongObstacle(t *testing.T) {
	p := &point{x: 0, y: 0}
	src := &fakeDirectionSource{degrees: 45} // north-east: dx=1,dy=-1
	// blocks any x beyond 0 but not y movement
	checker := blockX{}
	m := NewPlayerMovement(p, src, 80, 8, 8, checker)

	m.Update(0)
	m.Update(500)
	if p.x != 0 {
		t.Fatalf("x should stay blocked, got %d", p.x)
	}
	if p.y >= 0 {
		t.Fatalf("expected to slide north (negative y), got y=%d", p.y)
	}
}

type blockX struct{}

func (blockX) CanOccupy(r geometry.Rectangle) bool { return r.X <= 0 }

func TestJumpMovementTravelsDistanceAndArcsHeight(t *testing.T) {
	p := &point{}
	m := NewJumpMovement(p, geometry.Direction8East, 40, 80, 8, 8, noObstacles{}, true)

	m.Update(0)
	m.Update(250) // halfway: 20px at 80px/s
	if m.Height() <= 0 {
		t.Fatal("expected nonzero height mid-jump")
	}
	m.Update(500)
	if p.x != 40 {
		t.Fatalf("x = %d, want 40 at jump end", p.x)
	}
	if m.Height() != 0 {
		t.Fatalf("expected height 0 at jump end, got %d", m.Height())
	}
	if !m.IsFinished() {
		t.Fatal("expected jump to finish after covering its distance")
	}
}

type fixedDirectionRandom struct{ d geometry.Direction4 }

func (f fixedDirectionRandom) Direction4() geometry.Direction4 { return f.d }

func TestRandomWalkMovementMovesInChosenDirection(t *testing.T) {
	p := &point{}
	m := NewRandomWalkMovement(p, fixedDirectionRandom{geometry.Direction4Right}, 80, 8, 8, noObstacles{}, 0)

	m.Update(0)
	m.Update(100) // 8px east
	if p.x != 8 || p.y != 0 {
		t.Fatalf("position = (%d,%d), want (8,0)", p.x, p.y)
	}
}

func TestRandomWalkMovementPausesAfterBlock(t *testing.T) {
	p := &point{}
	m := NewRandomWalkMovement(p, fixedDirectionRandom{geometry.Direction4Right}, 80, 8, 8, wallAt{x: 0}, 200)

	m.Update(0)
	m.Update(100)
	if p.x != 0 {
		t.Fatalf("expected no movement when blocked, got x=%d", p.x)
	}
}

func TestSmoothMovementGlidesAlongWall(t *testing.T) {
	p := &point{}
	m := NewSmoothMovement(p, 8, 8, blockX{})
	m.SetSpeed(80)
	m.SetAngle(45) // north-east

	m.Update(0)
	m.Update(500)
	if p.x != 0 {
		t.Fatalf("expected x blocked at 0, got %d", p.x)
	}
	if p.y >= 0 {
		t.Fatalf("expected sliding north (negative y), got %d", p.y)
	}
}

func TestFollowMovementTracksOffset(t *testing.T) {
	leader := &point{x: 100, y: 100}
	p := &point{}
	m := NewFollowMovement(p, leader, -16, 0)

	m.Update(0)
	if p.x != 84 || p.y != 100 {
		t.Fatalf("position = (%d,%d), want (84,100)", p.x, p.y)
	}

	leader.x = 120
	m.Update(16)
	if p.x != 104 {
		t.Fatalf("expected follower to track leader move, x=%d", p.x)
	}
}

func TestFallingMovementReachesGroundAndFinishes(t *testing.T) {
	p := &point{}
	m := NewFallingMovement(p, FallingLow, 50)

	steps := fallingTrajectories[FallingLow]
	now := int64(0)
	m.Update(now)
	for range steps {
		now += 50
		m.Update(now)
	}
	if !m.IsFinished() {
		t.Fatal("expected falling movement to finish after its trajectory")
	}
	if p.y != 0 {
		t.Fatalf("final y = %d, want 0 (bounce returns to the origin row)", p.y)
	}
}
