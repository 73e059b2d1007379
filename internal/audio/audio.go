// Package audio declares the engine's sound/music collaborator. Audio
// playback itself is out of scope (spec.md §1 Non-goals), but scripts and
// the orchestrator still call PlaySound/PlayMusic (spec.md §4.K), so the
// interface is modeled after ebiten/v2/audio.Player's shape (Play/Pause/
// IsPlaying) so a real backend drops in later without touching callers.
package audio

import "fmt"

// Player is the minimal sound-backend surface the engine depends on.
type Player interface {
	PlaySound(name string)
	PlayMusic(name string)
	StopMusic()
}

// NopPlayer plays nothing and records every call in Sounds/Music
// (StopMusic records ""); it is the engine's default until a real
// backend is wired, and is also what tests use to assert on call counts
// without needing actual decoded audio.
type NopPlayer struct {
	Sounds []string
	Music  []string
}

func (p *NopPlayer) PlaySound(name string) { p.Sounds = append(p.Sounds, name) }
func (p *NopPlayer) PlayMusic(name string) { p.Music = append(p.Music, name) }
func (p *NopPlayer) StopMusic()            { p.Music = append(p.Music, "") }

// DebugPlayer wraps another Player and prints every call when debug is
// enabled, following the teacher's fmt-based diagnostic logging behind an
// explicit Debug flag (see internal/config) rather than a logging library.
type DebugPlayer struct {
	Player
	Debug bool
}

func (p *DebugPlayer) PlaySound(name string) {
	if p.Debug {
		fmt.Printf("audio: play sound %q\n", name)
	}
	p.Player.PlaySound(name)
}

func (p *DebugPlayer) PlayMusic(name string) {
	if p.Debug {
		fmt.Printf("audio: play music %q\n", name)
	}
	p.Player.PlayMusic(name)
}

func (p *DebugPlayer) StopMusic() {
	if p.Debug {
		fmt.Printf("audio: stop music\n")
	}
	p.Player.StopMusic()
}
