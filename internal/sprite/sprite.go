package sprite

import (
	"fmt"

	"github.com/solarium-engine/solarium/internal/geometry"
)

// FadeDirection is the direction a fade-in/fade-out is running.
type FadeDirection int

const (
	FadeNone FadeDirection = iota
	FadeIn
	FadeOut
)

const fadeSteps = 11       // Solarus-style 11-step fade, ~50ms per step
const fadeStepDelayMS = 50

// Sprite is the mutable per-instance animation state attached to an
// entity: which AnimationSet it draws from, the current animation name,
// direction, frame index and timing, plus blink/fade/pause flags.
//
// Invariant (spec.md §3): the current frame is always within the current
// animation's frame count; changing animation resets frame to 0 and
// records the switch in hasFrameChanged, consumed and cleared by pixel
// collision queries.
type Sprite struct {
	set *AnimationSet

	animationName string
	direction     int
	frame         int

	nextFrameDateMS int64
	paused          bool
	ignoreSuspend   bool

	hasFrameChanged bool

	blinkUntilMS  int64
	blinkOn       bool
	blinkPeriodMS int64
	nextBlinkMS   int64

	fadeDirection FadeDirection
	fadeStep      int
	nextFadeMS    int64

	suspended      bool
	suspendStartMS int64
}

// New creates a Sprite bound to an AnimationSet, starting on the given
// animation and direction.
func New(set *AnimationSet, animationName string, direction int) (*Sprite, error) {
	s := &Sprite{set: set, blinkPeriodMS: 50}
	if err := s.SetAnimation(animationName); err != nil {
		return nil, err
	}
	s.direction = direction
	return s, nil
}

// AnimationSet returns the sprite's underlying shared animation data.
func (s *Sprite) AnimationSet() *AnimationSet { return s.set }

// Animation returns the name of the currently playing animation.
func (s *Sprite) Animation() string { return s.animationName }

// Direction returns the current facing direction index.
func (s *Sprite) Direction() int { return s.direction }

// Frame returns the current frame index, always valid within the current
// animation's frame count.
func (s *Sprite) Frame() int { return s.frame }

// SetAnimation switches to a named animation, resetting the frame to 0 and
// latching hasFrameChanged. It is a no-op (other than the latch) if the
// sprite is already on that animation.
func (s *Sprite) SetAnimation(name string) error {
	anim, err := s.set.Animation(name)
	if err != nil {
		return err
	}
	if name == s.animationName {
		s.hasFrameChanged = true
		return nil
	}
	s.animationName = name
	s.frame = 0
	s.hasFrameChanged = true
	_ = anim
	return nil
}

// SetDirection sets the facing direction and resets the frame. The value
// is stored as given; a direction beyond the current animation's
// direction count is drawn with direction 0.
func (s *Sprite) SetDirection(direction int) {
	if direction == s.direction {
		return
	}
	s.direction = direction
	s.frame = 0
	s.hasFrameChanged = true
}

// currentAnimation returns the Animation struct backing the current name;
// it cannot fail once SetAnimation has succeeded once.
func (s *Sprite) currentAnimation() *Animation {
	a, _ := s.set.Animation(s.animationName)
	return a
}

// CurrentFrame returns the Frame data for the current animation, direction
// and frame index, used for drawing and pixel-mask collision.
func (s *Sprite) CurrentFrame() (Frame, error) {
	a := s.currentAnimation()
	if a == nil {
		return Frame{}, fmt.Errorf("sprite: no current animation")
	}
	dir := s.direction
	if dir >= a.DirectionCount {
		dir = 0 // single-direction animations display for every facing
	}
	frames := a.Frames[dir]
	if s.frame >= len(frames) {
		return Frame{}, fmt.Errorf("sprite: frame index %d out of range for %q", s.frame, s.animationName)
	}
	return frames[s.frame], nil
}

// IsFinished reports whether a non-looping animation has played its last
// frame and is not advancing further.
func (s *Sprite) IsFinished() bool {
	a := s.currentAnimation()
	if a == nil || a.Loop {
		return false
	}
	dir := s.direction
	if dir >= a.DirectionCount {
		dir = 0
	}
	return s.frame >= len(a.Frames[dir])-1
}

// SetPaused freezes/unfreezes frame advancement without affecting movement
// or detector logic.
func (s *Sprite) SetPaused(paused bool) { s.paused = paused }
func (s *Sprite) Paused() bool          { return s.paused }

// SetIgnoreSuspend marks this sprite as exempt from the entity-suspended
// freeze (used for HUD icons and dialog portraits that must keep animating
// while the world is paused).
func (s *Sprite) SetIgnoreSuspend(ignore bool) { s.ignoreSuspend = ignore }

// SetSuspended freezes/unfreezes date-driven advancement, offsetting all
// scheduled dates by the suspension duration on resume (spec.md §5).
func (s *Sprite) SetSuspended(suspended bool, nowMS int64) {
	if s.ignoreSuspend {
		return
	}
	if suspended == s.suspended {
		return
	}
	s.suspended = suspended
	if suspended {
		s.suspendStartMS = nowMS
		return
	}
	offset := nowMS - s.suspendStartMS
	s.nextFrameDateMS += offset
	s.nextBlinkMS += offset
	s.nextFadeMS += offset
	if s.blinkUntilMS > 0 {
		s.blinkUntilMS += offset
	}
}

// Update advances the animation clock, blink and fade state by one tick.
// nowMS is the engine's monotonic clock in milliseconds.
func (s *Sprite) Update(nowMS int64) {
	if s.suspended && !s.ignoreSuspend {
		return
	}
	s.updateFrame(nowMS)
	s.updateBlink(nowMS)
	s.updateFade(nowMS)
}

func (s *Sprite) updateFrame(nowMS int64) {
	if s.paused {
		return
	}
	a := s.currentAnimation()
	if a == nil || a.FrameDelayMS <= 0 {
		return
	}
	if s.nextFrameDateMS == 0 {
		s.nextFrameDateMS = nowMS + int64(a.FrameDelayMS)
		return
	}
	for nowMS >= s.nextFrameDateMS {
		dir := s.direction
		if dir >= a.DirectionCount {
			dir = 0
		}
		count := len(a.Frames[dir])
		if s.frame < count-1 {
			s.frame++
			s.hasFrameChanged = true
		} else if a.Loop {
			s.frame = 0
			s.hasFrameChanged = true
		}
		s.nextFrameDateMS += int64(a.FrameDelayMS)
	}
}

// SetBlinking starts blinking for durationMS (0 means indefinitely until
// StopBlinking is called), toggling visibility every blink period.
func (s *Sprite) SetBlinking(nowMS, durationMS int64) {
	if durationMS > 0 {
		s.blinkUntilMS = nowMS + durationMS
	} else {
		s.blinkUntilMS = -1
	}
	s.blinkOn = true
	s.nextBlinkMS = nowMS + s.blinkPeriodMS
}

// StopBlinking ends blinking immediately, leaving the sprite visible.
func (s *Sprite) StopBlinking() {
	s.blinkUntilMS = 0
	s.blinkOn = true
}

// IsBlinking reports whether a blink is currently active (independent of
// the on/off visibility phase).
func (s *Sprite) IsBlinking() bool { return s.blinkUntilMS != 0 }

// Visible reports whether the sprite should be drawn this tick, honoring
// the blink on/off phase.
func (s *Sprite) Visible() bool {
	if s.blinkUntilMS == 0 {
		return true
	}
	return s.blinkOn
}

func (s *Sprite) updateBlink(nowMS int64) {
	if s.blinkUntilMS == 0 {
		return
	}
	if s.blinkUntilMS > 0 && nowMS >= s.blinkUntilMS {
		s.blinkUntilMS = 0
		s.blinkOn = true
		return
	}
	for nowMS >= s.nextBlinkMS {
		s.blinkOn = !s.blinkOn
		s.nextBlinkMS += s.blinkPeriodMS
	}
}

// StartFade begins a fade-in or fade-out over fadeSteps*fadeStepDelayMS.
func (s *Sprite) StartFade(nowMS int64, direction FadeDirection) {
	s.fadeDirection = direction
	if direction == FadeIn {
		s.fadeStep = 0
	} else {
		s.fadeStep = fadeSteps
	}
	s.nextFadeMS = nowMS + fadeStepDelayMS
}

func (s *Sprite) updateFade(nowMS int64) {
	if s.fadeDirection == FadeNone {
		return
	}
	for nowMS >= s.nextFadeMS {
		if s.fadeDirection == FadeIn {
			s.fadeStep++
			if s.fadeStep >= fadeSteps {
				s.fadeDirection = FadeNone
				return
			}
		} else {
			s.fadeStep--
			if s.fadeStep <= 0 {
				s.fadeDirection = FadeNone
				return
			}
		}
		s.nextFadeMS += fadeStepDelayMS
	}
}

// Opacity returns the current fade opacity, 0-255.
func (s *Sprite) Opacity() int {
	if s.fadeDirection == FadeNone && s.fadeStep == 0 {
		return 255
	}
	step := s.fadeStep
	if step > fadeSteps {
		step = fadeSteps
	}
	return step * 255 / fadeSteps
}

// ConsumeFrameChanged reports and clears the has-frame-changed latch,
// consumed by pixel-collision queries per spec.md §3.
func (s *Sprite) ConsumeFrameChanged() bool {
	v := s.hasFrameChanged
	s.hasFrameChanged = false
	return v
}

// PixelOpaqueAt reports whether the sprite's current frame has an opaque
// pixel at the given point, expressed relative to the sprite's drawn
// top-left corner (origin already applied by the caller).
func (s *Sprite) PixelOpaqueAt(p geometry.Point) bool {
	f, err := s.CurrentFrame()
	if err != nil {
		return false
	}
	return f.Opaque(p.X, p.Y)
}
