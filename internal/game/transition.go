package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionKind is the visual style of a map change (spec.md §4.L "Map
// transitions").
type TransitionKind int

const (
	TransitionImmediate TransitionKind = iota
	TransitionFade
	TransitionScrolling
)

// TransitionDirection is which half of the map-change a Transition plays.
type TransitionDirection int

const (
	TransitionOut TransitionDirection = iota
	TransitionIn
)

// Transition plays the out/in halves of a map change while the hero is
// suspended and invisible (spec.md §4.L "The hero is suspended and
// invisible while the transition is in the loading gap").
type Transition struct {
	kind      TransitionKind
	direction TransitionDirection
	durationMS int64
	startMS   int64

	// previousSurface is the captured screenshot of the map being left,
	// drawn fading/scrolling out underneath the new map (spec.md §4.L
	// "captures a copy of the previous map surface").
	previousSurface *ebiten.Image
}

// NewTransition starts a transition of the given kind/direction at nowMS.
// previousSurface may be nil for TransitionIn, which has nothing to fade
// from.
func NewTransition(kind TransitionKind, direction TransitionDirection, durationMS, nowMS int64, previousSurface *ebiten.Image) *Transition {
	if kind == TransitionImmediate {
		durationMS = 0
	}
	return &Transition{kind: kind, direction: direction, durationMS: durationMS, startMS: nowMS, previousSurface: previousSurface}
}

func (t *Transition) Kind() TransitionKind           { return t.kind }
func (t *Transition) Direction() TransitionDirection { return t.direction }

// IsFinished reports whether the transition's duration has elapsed.
func (t *Transition) IsFinished(nowMS int64) bool {
	return nowMS-t.startMS >= t.durationMS
}

// Progress returns how far through the transition nowMS is, in [0,1].
func (t *Transition) Progress(nowMS int64) float64 {
	if t.durationMS <= 0 {
		return 1
	}
	elapsed := float64(nowMS - t.startMS)
	p := elapsed / float64(t.durationMS)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p
}

// Alpha returns the previous surface's opacity for a FADE transition: it
// fades out to 0 during TransitionOut and the new map fades in from 0
// during TransitionIn.
func (t *Transition) Alpha(nowMS int64) float64 {
	p := t.Progress(nowMS)
	if t.direction == TransitionOut {
		return 1 - p
	}
	return p
}

// ScrollOffset returns the horizontal pixel offset to apply when drawing
// the previous map surface during a SCROLLING transition.
func (t *Transition) ScrollOffset(nowMS int64, screenWidth int) int {
	p := t.Progress(nowMS)
	if t.direction == TransitionOut {
		return -int(p * float64(screenWidth))
	}
	return int((1 - p) * float64(screenWidth))
}
