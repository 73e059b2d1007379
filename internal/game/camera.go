package game

import (
	"github.com/solarium-engine/solarium/internal/mathutil"
	"github.com/solarium-engine/solarium/internal/movement"
)

// cameraPoint is the minimal movement.Target the camera's own position is
// driven through, the same indirection internal/hud's Pause uses for its
// flying item icon (see internal/hud/pause.go flyingPoint).
type cameraPoint struct{ x, y int }

func (p *cameraPoint) XY() (int, int)  { return p.x, p.y }
func (p *cameraPoint) SetXY(x, y int) { p.x, p.y = x, y }

// heroProvider adapts the hero's box center into a movement.TargetProvider
// so the camera can follow it without importing internal/hero.
type heroProvider struct{ xy func() (int, int) }

func (h heroProvider) XY() (int, int) { return h.xy() }

// Camera centers the viewport on the hero by default, and supports a
// scripted detour to an arbitrary point with CameraMove/CameraRestore
// (spec.md §4.K "camera_move"/"camera_restore").
type Camera struct {
	point    cameraPoint
	provider heroProvider
	move     *movement.TargetMovement
	detached bool

	screenWidth, screenHeight int
	mapWidth, mapHeight       int
}

// NewCamera creates a camera following the given hero-center provider.
func NewCamera(screenWidth, screenHeight int, heroXY func() (int, int)) *Camera {
	return &Camera{provider: heroProvider{xy: heroXY}, screenWidth: screenWidth, screenHeight: screenHeight}
}

// SetMapBounds clamps the camera to a map of the given pixel size.
func (c *Camera) SetMapBounds(widthPx, heightPx int) { c.mapWidth, c.mapHeight = widthPx, heightPx }

// MoveTo detaches the camera from the hero and seeks (x,y) at the given
// speed.
func (c *Camera) MoveTo(x, y int, speedPxPerS float64, nowMS int64) {
	c.detached = true
	c.move = movement.NewTargetMovement(&c.point, x, y, speedPxPerS, 0, 0, nil)
}

// FollowHero reattaches the camera to the hero.
func (c *Camera) FollowHero() {
	c.detached = false
	c.move = nil
}

// Update advances a detached camera's seek movement.
func (c *Camera) Update(nowMS int64) {
	if c.detached && c.move != nil {
		c.move.Update(nowMS)
	}
}

// TopLeft returns the camera's current top-left corner in map pixels,
// clamped to the map bounds when they are known.
func (c *Camera) TopLeft() (int, int) {
	var cx, cy int
	if c.detached {
		cx, cy = c.point.XY()
	} else {
		cx, cy = c.provider.XY()
	}
	x := cx - c.screenWidth/2
	y := cy - c.screenHeight/2
	if c.mapWidth > 0 {
		x = clampInt(x, 0, mathutil.IntMax(0, c.mapWidth-c.screenWidth))
	}
	if c.mapHeight > 0 {
		y = clampInt(y, 0, mathutil.IntMax(0, c.mapHeight-c.screenHeight))
	}
	return x, y
}

func clampInt(v, lo, hi int) int {
	return mathutil.IntMax(lo, mathutil.IntMin(v, hi))
}
