// Package game implements the orchestrator (spec.md §4.L): the
// ebiten.Game implementation that drives the fixed-timestep loop, owns
// the current Map, and is the sole implementer of script.Host.
package game

import (
	"fmt"
	"image"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/solarium-engine/solarium/internal/audio"
	"github.com/solarium-engine/solarium/internal/config"
	"github.com/solarium-engine/solarium/internal/controls"
	"github.com/solarium-engine/solarium/internal/dialog"
	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/geometry"
	"github.com/solarium-engine/solarium/internal/graphics"
	"github.com/solarium-engine/solarium/internal/hero"
	"github.com/solarium-engine/solarium/internal/hud"
	"github.com/solarium-engine/solarium/internal/mathutil"
	"github.com/solarium-engine/solarium/internal/movement"
	"github.com/solarium-engine/solarium/internal/script"
)

// MapFactory builds or loads the map with the given id; supplied by the
// caller (e.g. a resource-file loader) so this package stays ignorant of
// on-disk map formats (spec.md §6 "format reported abstractly"). host is
// always the Game itself, passed explicitly rather than closed over so
// the factory can be constructed before the Game it will later load
// maps into exists.
type MapFactory func(id string, host script.Host) (*Map, error)

// mathRandSource adapts math/rand into movement.RandomSource.
type mathRandSource struct{ r *rand.Rand }

func (s mathRandSource) Direction4() geometry.Direction4 {
	return geometry.Direction4(s.r.Intn(4))
}

// Game is the engine's top-level orchestrator, implementing ebiten.Game
// and script.Host (spec.md §4.L).
type Game struct {
	config *config.Config

	controls *controls.Controls
	keys     *controls.KeysEffect
	equipment *equipment.Equipment
	savegame  *equipment.Savegame

	hero *hero.Hero

	mapState *Map
	mapFactory MapFactory

	dialogStore *dialog.Store
	dialogBox   *dialog.Box

	hudView *hud.Hud
	pause   *hud.Pause

	camera *Camera
	audio  audio.Player
	random mathRandSource
	images *graphics.ImageStore

	nowMS int64

	transition         *Transition
	pendingMapID       string
	pendingDestination string
	requestTransition  bool

	lightLevel int

	exitRequested bool
}

// ErrExit is returned by Update to request a clean shutdown, mirroring
// the teacher's own ebiten.RunGame(...) / errors.Is(err, game.ErrExit)
// exit convention.
var ErrExit = fmt.Errorf("game: exit requested")

// NewGameOptions bundles NewGame's construction-time collaborators.
type NewGameOptions struct {
	Config      *config.Config
	Savegame    *equipment.Savegame
	ItemDefs    []equipment.ItemDefinition
	DialogStore *dialog.Store
	MapFactory  MapFactory
	FirstMapID  string
	Destination string
	Audio       audio.Player
	RandSeed    int64
}

// NewGame builds the orchestrator, wires every override-function-variable
// seam the lower-level packages expose, and loads the first map.
func NewGame(opts NewGameOptions) (*Game, error) {
	cfg := opts.Config
	controlsInst := controls.New(opts.Savegame)
	keys := controls.NewKeysEffect()
	eq := equipment.NewEquipment(opts.Savegame, opts.ItemDefs)

	box := geometry.NewRectangle(0, 0, cfg.Hero.WidthPx, cfg.Hero.HeightPx)
	h := hero.New(box, controlsInst, eq)

	audioPlayer := opts.Audio
	if audioPlayer == nil {
		audioPlayer = &audio.NopPlayer{}
	}

	g := &Game{
		config: cfg, controls: controlsInst, keys: keys, equipment: eq,
		savegame: opts.Savegame, hero: h,
		mapFactory:  opts.MapFactory,
		dialogStore: opts.DialogStore,
		audio:       audioPlayer,
		random:      mathRandSource{r: rand.New(rand.NewSource(opts.RandSeed))},
		images:      graphics.NewImageStore(),
	}
	g.dialogBox = dialog.NewBox(opts.DialogStore, keys)
	g.dialogBox.SetOnFinished(g.onDialogFinished)
	g.pause = hud.NewPause(eq)
	g.camera = NewCamera(cfg.GetScreenWidth(), cfg.GetScreenHeight(), func() (int, int) {
		return h.Box.Center().X, h.Box.Center().Y
	})
	g.hudView = hud.New(eq, keys, nil)

	g.wireHeroSeams()

	if opts.FirstMapID != "" {
		if err := g.switchMap(opts.FirstMapID, opts.Destination, TransitionImmediate, 0); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// wireHeroSeams attaches Game's methods to every package-level
// override-function-variable the hero/dialog/hud packages expose, the
// established seam pattern avoiding import cycles back into this package.
func (g *Game) wireHeroSeams() {
	hero.IsGrabbable = func(e *entity.Entity) bool {
		return e != nil && (e.Kind == entity.KindDestructible || e.Kind == entity.KindBlock)
	}
	hero.IsLiftable = func(e *entity.Entity) bool {
		return e != nil && e.Kind == entity.KindDestructible
	}
	hero.AttachBlockMovement = func(h *hero.Hero, block *entity.Entity, dir geometry.Direction8) bool {
		return g.pushBlock(block, dir)
	}
	hero.TapSound = func(h *hero.Hero) { g.audio.PlaySound("sword_tapping") }
	hero.OnTreasureGranted = func(h *hero.Hero, t *hero.Treasure) {
		g.equipment.SetItemVariant(t.ItemName, t.Variant)
		if t.SavegameVariable != "" {
			g.savegame.SetCustomBool(0, true)
		}
	}
	hero.Blink = func(h *hero.Hero, nowMS, durationMS int64) {
		for _, s := range h.Sprites() {
			s.SetBlinking(nowMS, durationMS)
		}
	}
	hero.CurrentItemUpdate = func(h *hero.Hero, nowMS int64) bool { return true }
	hero.HasFairy = func(h *hero.Hero) bool { return g.equipment.HasItem("fairy") }
	hero.JumpMovementProvider = func() (*movement.JumpMovement, bool) {
		jm, ok := g.hero.Movement.(*movement.JumpMovement)
		return jm, ok
	}
	dialog.LetterSound = func() { g.audio.PlaySound("dialog_letter") }
	hud.SwitchSubmenuSound = func() { g.audio.PlaySound("menu_switch") }
}

func (g *Game) onDialogFinished(dialogID string, lastAnswer int) {
	g.hudView.SetDialogActive(false)
	if g.mapState != nil && g.mapState.Script != nil {
		_ = g.mapState.Script.EventDialogFinished(dialogID, lastAnswer)
	}
}

// IsSuspended reports whether the game is in one of the suspending states
// spec.md §4.L lists: pause, dialog, transition, game-over, treasure
// brandish.
func (g *Game) IsSuspended() bool {
	if g.pause.IsActive() || !g.dialogBox.IsOver() || g.transition != nil {
		return true
	}
	switch g.hero.State().(type) {
	case *hero.GameOverState, *hero.BrandishingTreasureState:
		return true
	default:
		return false
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// switchMap tears down the current map (if any), builds/loads the
// target one via mapFactory, and places the hero at its named
// destination (spec.md §4.L "Map transitions").
func (g *Game) switchMap(mapID, destination string, kind TransitionKind, nowMS int64) error {
	next, err := g.mapFactory(mapID, g)
	if err != nil {
		return err
	}
	dest, ok := next.Destination(destination)
	if destination != "" && !ok {
		return fmt.Errorf("game: switch to %q: %w: %q", mapID, ErrBadDestination, destination)
	}

	if g.mapState != nil {
		g.mapState.Close()
	}
	g.mapState = next
	g.mapState.Entities.SetHero(g.hero.Entity)
	g.camera.SetMapBounds(next.WidthPx, next.HeightPx)

	if ok {
		hw, hh := g.hero.Box.Width/2, g.hero.Box.Height/2
		g.hero.SetXY(dest.Point.X-hw, dest.Point.Y-hh)
		g.hero.Layer = dest.Layer
	}
	g.hero.LastSolidGround = g.hero.Box.Center()

	checker := g.mapState.EntityChecker(g.hero.Layer, g.hero.Entity)
	g.hero.Movement = movement.NewPlayerMovement(g.hero.Entity, g.controls, g.config.Hero.WalkSpeedPxPerS, g.hero.Box.Width, g.hero.Box.Height, checker)

	g.mapState.Entities.NotifyMapStarted(func(e *entity.Entity) {})
	g.audio.PlayMusic(g.mapState.MusicID)
	return g.mapState.Script.EventMapStarted(destination)
}

func (g *Game) beginTransitionOut(nowMS int64) {
	g.transition = NewTransition(TransitionFade, TransitionOut, g.config.Transition.FadeDurationMS, nowMS, nil)
	g.hero.SetSuspended(true, nowMS)
}

// updateTransition advances a map transition, performing the actual map
// swap once the OUT half finishes and clearing the transition once the
// IN half finishes.
func (g *Game) updateTransition(nowMS int64) error {
	if g.requestTransition && g.transition == nil {
		g.requestTransition = false
		g.beginTransitionOut(nowMS)
		return nil
	}
	if g.transition == nil {
		return nil
	}
	if !g.transition.IsFinished(nowMS) {
		return nil
	}
	if g.transition.Direction() == TransitionOut {
		if err := g.switchMap(g.pendingMapID, g.pendingDestination, g.transition.Kind(), nowMS); err != nil {
			g.transition = nil
			return err
		}
		g.transition = NewTransition(g.transition.Kind(), TransitionIn, g.config.Transition.FadeDurationMS, nowMS, nil)
		return nil
	}
	g.transition = nil
	g.hero.SetSuspended(false, nowMS)
	return nil
}

// pollInput drains ebiten's key state into Controls, producing at most
// one logical KeyEvent per low-level key per tick (spec.md §4.L phase 1).
func (g *Game) pollInput(nowMS int64) []controls.KeyEvent {
	var events []controls.KeyEvent
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if ev, ok := g.controls.OnKeyboardEvent(k, controls.KeyPressed); ok {
			events = append(events, ev)
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if ev, ok := g.controls.OnKeyboardEvent(k, controls.KeyReleased); ok {
			events = append(events, ev)
		}
	}
	return events
}

// routeKeyEvent implements spec.md §4.L phase 2: pause > dialog > hero.
func (g *Game) routeKeyEvent(ev controls.KeyEvent, nowMS int64) {
	if g.pause.IsActive() {
		g.routeKeyEventToPause(ev, nowMS)
		return
	}
	if !g.dialogBox.IsOver() {
		g.routeKeyEventToDialog(ev, nowMS)
		return
	}
	g.routeKeyEventToHero(ev, nowMS)
}

func (g *Game) routeKeyEventToPause(ev controls.KeyEvent, nowMS int64) {
	if ev.Kind != controls.KeyPressed {
		return
	}
	switch ev.Key {
	case controls.KeyLeft:
		g.pause.LeftPressed()
	case controls.KeyRight:
		g.pause.RightPressed()
	case controls.KeySword:
		g.pause.SwordPressed()
	case controls.KeyPause:
		g.pause.Close()
	}
}

func (g *Game) routeKeyEventToDialog(ev controls.KeyEvent, nowMS int64) {
	if ev.Kind != controls.KeyPressed {
		return
	}
	switch ev.Key {
	case controls.KeyAction:
		_ = g.dialogBox.ActionKeyPressed(nowMS)
	case controls.KeySword:
		g.dialogBox.SwordKeyPressed(nowMS)
	case controls.KeyUp:
		g.dialogBox.UpPressed()
	case controls.KeyDown:
		g.dialogBox.DownPressed()
	}
}

func (g *Game) routeKeyEventToHero(ev controls.KeyEvent, nowMS int64) {
	switch ev.Key {
	case controls.KeyAction:
		if ev.Kind == controls.KeyPressed {
			g.hero.OnActionPressed(nowMS)
		}
	case controls.KeySword:
		if ev.Kind == controls.KeyPressed {
			g.hero.OnSwordPressed(nowMS)
		} else {
			g.hero.OnSwordReleased(nowMS)
		}
	case controls.KeyPause:
		if ev.Kind == controls.KeyPressed && g.keys.IsPauseEnabled() {
			g.pause.Open()
		}
	}
}

// classifyGround drives the ground-kind hero state transitions spec.md
// §4.G specifies (deep water -> PLUNGING, hole-attraction -> FALLING),
// which the hero states deliberately leave to the orchestrator (see
// internal/hero/states_ground.go).
func (g *Game) classifyGround(nowMS int64) {
	if !g.hero.IsTouchingGround() {
		return
	}
	center := g.hero.Box.Center()
	cx, cy := center.X/geometry.CellSize, center.Y/geometry.CellSize
	o := g.mapState.Grid.At(g.hero.Layer, cx, cy)
	g.hero.GroundKind = o

	switch {
	case o == geometry.ObstacleDeepWater && !g.hero.CanAvoidDeepWater():
		g.hero.SetState(&hero.PlungingState{}, nowMS)
	case o == geometry.ObstacleHole && !g.hero.CanAvoidHole():
		g.attractTowardHole(nowMS)
	case !o.IsGround() && o != geometry.ObstacleFull:
		g.hero.LastSolidGround = g.hero.Box.Center()
	}

	if g.hero.OnConveyorBelt && !g.hero.CanAvoidConveyorBelt() {
		if _, already := g.hero.State().(*hero.ConveyorBeltState); !already {
			g.hero.SetState(&hero.ConveyorBeltState{}, nowMS)
		}
	}
}

// attractTowardHole pulls the hero towards the hole center at 2x normal
// speed while within 8px of last solid ground, and drops to FALLING once
// it drifts further (spec.md §4.G "On hole ground ... attract towards
// hole center at 2x speed; beyond 8 px -> FALLING").
func (g *Game) attractTowardHole(nowMS int64) {
	center := g.hero.Box.Center()
	lsg := g.hero.LastSolidGround
	dx, dy := center.X-lsg.X, center.Y-lsg.Y
	distSq := dx*dx + dy*dy
	if distSq > 64 {
		g.hero.SetState(&hero.FallingState{}, nowMS)
		return
	}
	holeCX := cellOf(center.X)*geometry.CellSize + geometry.CellSize/2
	holeCY := cellOf(center.Y)*geometry.CellSize + geometry.CellSize/2
	hw, hh := g.hero.Box.Width/2, g.hero.Box.Height/2
	g.hero.Movement = movement.NewTargetMovement(g.hero.Entity, holeCX-hw, holeCY-hh, g.config.Hero.WalkSpeedPxPerS*2, 0, 0, nil)
}

func cellOf(px int) int { return px / geometry.CellSize }

// HurtHero applies spec.md §4.G's HURT transition: life is lost, the
// hero is pushed opposite the attacker for 200ms while blinking.
func (g *Game) HurtHero(attacker *entity.Entity, damage int, nowMS int64) {
	if !g.hero.CanBeHurt() {
		return
	}
	g.equipment.AddAmount(equipment.AmountLife, -damage)

	hx, hy := g.hero.Box.Center().X, g.hero.Box.Center().Y
	ax, ay := attacker.Box.Center().X, attacker.Box.Center().Y
	dx, dy := hx-ax, hy-ay
	if dx == 0 && dy == 0 {
		dy = -1
	}
	step := movement.Step{DX: mathutil.IntSign(dx) * 4, DY: mathutil.IntSign(dy) * 4}
	steps := make([]movement.Step, 10)
	for i := range steps {
		steps[i] = step
	}
	g.hero.Movement = movement.NewPixelMovement(g.hero.Entity, steps, 20)
	g.hero.SetState(&hero.HurtState{}, nowMS)
}

// GiveTreasure hands a treasure item to the hero: BRANDISHING_TREASURE
// plays, then on completion the item is added to equipment and an
// optional dialog starts (spec.md §4.L "Treasure").
func (g *Game) GiveTreasure(itemName string, variant int, savegameVariable string) {
	g.hero.Treasure = &hero.Treasure{ItemName: itemName, Variant: variant, SavegameVariable: savegameVariable}
	g.hero.SetState(&hero.BrandishingTreasureState{}, g.nowMS)
}

func (g *Game) startHeroJump(direction, distance int) {
	checker := g.mapState.EntityChecker(g.hero.Layer, g.hero.Entity)
	g.hero.Movement = movement.NewJumpMovement(g.hero.Entity, geometry.Direction8(direction), distance, 80, g.hero.Box.Width, g.hero.Box.Height, checker, false)
	g.hero.SetState(&hero.JumpingState{}, g.nowMS)
}

// blockPushDistancePx is the fixed 16px (two 8px segments) a single push
// attempt moves a BLOCK, per spec.md §8 scenario 5.
const blockPushDistancePx = 2 * geometry.CellSize

// pushBlock attaches a blockPushDistancePx path movement to block in dir,
// consuming one of its remaining maximum_moves if the block's map data
// set a budget (spec.md §8 scenario 5: "block's moves counter becomes 0,
// the next push attempt ... does not move the block"). Returns false
// without attaching anything if block is nil, already moving, or its
// budget is exhausted.
func (g *Game) pushBlock(block *entity.Entity, dir geometry.Direction8) bool {
	if block == nil || block.Kind != entity.KindBlock {
		return false
	}
	if block.Movement != nil && !block.Movement.IsFinished() {
		return false
	}
	if remaining, limited := blockMovesRemaining(block); limited {
		if remaining <= 0 {
			return false
		}
		block.SetProperty("maximum_moves", remaining-1)
	}
	digit := byte('0' + int(dir))
	path := strings.Repeat(string(digit), blockPushDistancePx/geometry.CellSize)
	checker := g.mapState.EntityChecker(block.Layer, block)
	block.Movement = movement.NewPathMovement(block, path, g.config.Hero.WalkSpeedPxPerS, false, block.Box.Width, block.Box.Height, checker)
	block.SetProperty("moved", true)
	return true
}

// blockMovesRemaining reads a block's maximum_moves budget, reporting
// limited=false when the map data left it unset (an unlimited block).
func blockMovesRemaining(block *entity.Entity) (remaining int, limited bool) {
	v := block.GetProperty("maximum_moves")
	if v == nil {
		return 0, false
	}
	n, ok := v.(int)
	if !ok {
		return 0, false
	}
	return n, true
}

func (g *Game) startHeroVictory() { g.hero.SetState(&hero.VictoryState{}, g.nowMS) }
func (g *Game) startHeroBoomerang() { g.hero.SetState(&hero.BoomerangState{}, g.nowMS) }
func (g *Game) startHeroBow() { g.hero.SetState(&hero.BowState{}, g.nowMS) }
func (g *Game) startHeroRunning() { g.hero.SetState(&hero.RunningState{}, g.nowMS) }

// Update implements ebiten.Game (spec.md §4.L phases 1-4). Ebiten already
// runs this once per logical tick at the configured TPS and skips Draw
// when updates fall behind, so Update itself need not reimplement the
// "accumulate wall clock, run 0..N updates" loop.
func (g *Game) Update() error {
	if g.exitRequested {
		return ErrExit
	}
	g.nowMS += int64(1000 / g.config.GetTPS())
	nowMS := g.nowMS

	for _, ev := range g.pollInput(nowMS) {
		g.routeKeyEvent(ev, nowMS)
	}

	if err := g.updateTransition(nowMS); err != nil {
		return err
	}

	suspended := g.IsSuspended()
	if g.mapState != nil {
		g.hero.SetSuspended(suspended, nowMS)
		for _, e := range g.mapState.Entities.GetEntities(entity.KindNPC) {
			e.SetSuspended(suspended, nowMS)
		}
		for _, e := range g.mapState.Entities.GetEntities(entity.KindEnemy) {
			e.SetSuspended(suspended, nowMS)
		}

		if !suspended {
			g.classifyGround(nowMS)
		}
		g.hero.Update(nowMS)
		g.mapState.Entities.NotifyEntityMoved(g.hero.Entity)
		if g.mapState.Resolver != nil {
			g.mapState.Resolver.DispatchDetectors(g.hero.Entity)
		}
		for _, e := range g.mapState.Entities.GetEntities(entity.KindNPC) {
			e.Update(nowMS)
			g.mapState.Entities.NotifyEntityMoved(e)
			g.mapState.Resolver.DispatchDetectors(e)
		}
		for _, e := range g.mapState.Entities.GetEntities(entity.KindEnemy) {
			e.Update(nowMS)
			g.mapState.Entities.NotifyEntityMoved(e)
			g.mapState.Resolver.DispatchDetectors(e)
		}
		for _, e := range g.mapState.Entities.GetEntities(entity.KindBlock) {
			e.Update(nowMS)
			g.mapState.Entities.NotifyEntityMoved(e)
		}
		g.updateDoors(nowMS)

		g.mapState.Script.SetSuspended(suspended, nowMS)
		if err := g.mapState.Script.EventUpdate(nowMS); err != nil {
			return err
		}
		g.mapState.Entities.Sweep()
	}

	g.camera.Update(nowMS)
	if err := g.dialogBox.Update(nowMS); err != nil {
		return err
	}
	g.pause.Update(nowMS)
	heroScreenBox := g.heroScreenBox()
	g.hudView.Update(nowMS, heroScreenBox)
	if !g.dialogBox.IsOver() {
		g.hudView.SetDialogActive(true)
	}

	return nil
}

func (g *Game) heroScreenBox() geometry.Rectangle {
	camX, camY := g.camera.TopLeft()
	return g.hero.Box.AddXY(-camX, -camY)
}

// Draw implements ebiten.Game (spec.md §4.L phase 5: tiles bottom-up by
// layer, Y-ordered entities interleaved with the hero, overlays, blit).
func (g *Game) Draw(screen *ebiten.Image) {
	if g.mapState == nil {
		return
	}
	camX, camY := g.camera.TopLeft()

	for layer := geometry.Layer(0); layer < geometry.LayerCount; layer++ {
		for _, t := range g.mapState.Entities.Tiles(layer) {
			g.drawEntitySprites(screen, t, camX, camY)
		}
		for _, e := range g.mapState.Entities.DisplayedFirst(layer) {
			g.drawEntitySprites(screen, e, camX, camY)
		}
		for _, e := range g.mapState.Entities.DisplayedYOrder(layer) {
			g.drawEntitySprites(screen, e, camX, camY)
		}
	}

	g.hudView.Display(screen)
	g.drawDialog(screen)
	g.drawPause(screen)
}

// drawEntitySprites blits every visible sprite attached to e, looking up
// each one's source sheet through the image store by its AnimationSet id
// and windowing to the current Frame's rectangle (spec.md §4.B).
func (g *Game) drawEntitySprites(screen *ebiten.Image, e *entity.Entity, camX, camY int) {
	if e.BeingRemoved {
		return
	}
	if e.Kind == entity.KindHero && !g.hero.IsHeroVisible() {
		return
	}
	for _, s := range e.Sprites() {
		if !s.Visible() {
			continue
		}
		frame, err := s.CurrentFrame()
		if err != nil {
			continue
		}
		sheet := g.images.Get(s.AnimationSet().ID)
		sub, ok := sheet.SubImage(image.Rect(frame.X, frame.Y, frame.X+frame.Width, frame.Y+frame.Height)).(*ebiten.Image)
		if !ok {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		if alpha := s.Opacity(); alpha < 255 {
			op.ColorScale.ScaleAlpha(float32(alpha) / 255)
		}
		op.GeoM.Translate(float64(e.Box.X-camX), float64(e.Box.Y-camY))
		screen.DrawImage(sub, op)
	}
}

func (g *Game) drawDialog(screen *ebiten.Image) {
	if g.dialogBox.IsOver() {
		return
	}
	// Text layout (golang.org/x/image/font + basicfont glyph drawing) is
	// the dialog box's own rendering concern, wired once a font atlas is
	// loaded; Lines()/IconIndex() already expose everything it needs.
	_ = g.dialogBox.Lines()
}

func (g *Game) drawPause(screen *ebiten.Image) {
	if !g.pause.IsActive() {
		return
	}
	_ = g.pause.Submenu()
}

// RequestExit asks Update to return ErrExit on its next call.
func (g *Game) RequestExit() { g.exitRequested = true }

var _ script.Host = (*Game)(nil)
