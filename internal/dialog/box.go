package dialog

import (
	"fmt"
	"strconv"

	"github.com/solarium-engine/solarium/internal/controls"
)

// Box is the DialogBox: it owns the current Message, the dialog-to-dialog
// chain resolved via Definition.Next/Next2, per-dialog speed and skip
// mode, the question answer cursor, and the saved ACTION/SWORD key
// effects it restores once the whole chain closes (spec.md §4.I).
type Box struct {
	store *Store
	keys  *controls.KeysEffect

	message  *message
	dialogID string

	variables map[string]string

	speed    Speed
	skipMode SkipMode

	lastAnswer   int
	answerCursor int
	iconIndex    int

	// Frameless disables the per-character letter sound, matching a
	// dialog style drawn without the usual box frame (spec.md §4.I "unless
	// the dialog style is frameless").
	Frameless bool

	onFinished func(dialogID string, lastAnswer int)
}

// NewBox creates a Box bound to a dialog Store and the KeysEffect it will
// save/restore while showing.
func NewBox(store *Store, keys *controls.KeysEffect) *Box {
	return &Box{
		store:     store,
		keys:      keys,
		variables: make(map[string]string),
		speed:     SpeedFast,
		lastAnswer: -1,
	}
}

// SetOnFinished registers the callback invoked when the whole dialog
// chain closes, with the last shown dialog id and its last answer (-1 if
// the dialog was not a question). The script bridge (component K) wires
// this to notify both the issuer script and the map script.
func (b *Box) SetOnFinished(f func(dialogID string, lastAnswer int)) { b.onFinished = f }

// Start begins (or chains to) the dialog with the given id.
func (b *Box) Start(dialogID string, nowMS int64) error {
	def, ok := b.store.Get(dialogID)
	if !ok {
		return fmt.Errorf("dialog: unknown dialog id %q", dialogID)
	}
	wasShowing := b.message != nil
	b.dialogID = dialogID
	b.iconIndex = def.Icon
	if mode, explicit := def.skipMode(); explicit {
		b.skipMode = mode
	}
	b.message = newMessage(b, def, nowMS)
	b.answerCursor = 0
	if !wasShowing {
		b.keys.SaveActionAndSwordEffects()
		b.keys.SetActionEffect(controls.ActionNext)
		b.keys.SetSwordEffect(controls.SwordSkip)
	}
	return nil
}

// Update advances the current message's reveal.
func (b *Box) Update(nowMS int64) error {
	if b.message == nil {
		return nil
	}
	return b.message.Update(nowMS)
}

// IsOver reports whether the dialog chain has closed.
func (b *Box) IsOver() bool { return b.message == nil }

// IsMessageFinished reports whether the current message finished
// revealing (arrow cursor / question answer becomes available).
func (b *Box) IsMessageFinished() bool { return b.message != nil && b.message.IsFinished() }

// IsQuestion reports whether the current message is a question.
func (b *Box) IsQuestion() bool { return b.message != nil && b.message.def.Question }

// Lines returns the text revealed so far for display.
func (b *Box) Lines() [3]string {
	if b.message == nil {
		return [3]string{}
	}
	return b.message.Lines()
}

// IconIndex returns the HUD icon requested by the current dialog, copied
// from its Definition.Icon (0 when the definition sets none).
func (b *Box) IconIndex() int { return b.iconIndex }

// Speed/SetSpeed expose the current reveal speed.
func (b *Box) Speed() Speed     { return b.speed }
func (b *Box) SetSpeed(s Speed) { b.speed = s }

// SkipMode/SetSkipMode expose the current SWORD-key skip behavior.
func (b *Box) SkipMode() SkipMode     { return b.skipMode }
func (b *Box) SetSkipMode(m SkipMode) { b.skipMode = m }

// LastAnswer returns the last question's chosen answer (0 or 1), or -1 if
// the last message was not a question.
func (b *Box) LastAnswer() int { return b.lastAnswer }

// AnswerCursor returns the currently highlighted answer (0 or 1) while a
// finished question awaits a choice.
func (b *Box) AnswerCursor() int { return b.answerCursor }

// UpPressed/DownPressed move the answer cursor once the question has
// finished revealing (spec.md §4.I "an arrow cursor lets UP/DOWN toggle
// between answers 0 and 1").
func (b *Box) UpPressed() {
	if b.IsMessageFinished() && b.IsQuestion() {
		b.answerCursor = 0
	}
}

func (b *Box) DownPressed() {
	if b.IsMessageFinished() && b.IsQuestion() {
		b.answerCursor = 1
	}
}

// ActionKeyPressed advances the dialog: it shows the rest of the message
// immediately if still revealing, otherwise it records the answer (if a
// question) and either chains to the next message or closes the whole
// dialog.
func (b *Box) ActionKeyPressed(nowMS int64) error {
	if b.message == nil {
		return nil
	}
	if !b.message.IsFinished() {
		b.message.ShowAllNow(nowMS)
		return nil
	}
	if b.IsQuestion() {
		b.lastAnswer = b.answerCursor
	} else {
		b.lastAnswer = -1
	}
	next := b.message.NextMessageID(b.lastAnswer)
	if next == "" {
		b.finish()
		return nil
	}
	return b.Start(next, nowMS)
}

// SwordKeyPressed applies the current SkipMode.
func (b *Box) SwordKeyPressed(nowMS int64) {
	switch b.skipMode {
	case SkipCurrent:
		if b.message != nil && !b.message.IsFinished() {
			b.message.ShowAllNow(nowMS)
		}
	case SkipAll:
		b.finish()
	}
}

func (b *Box) finish() {
	id := b.dialogID
	answer := b.lastAnswer
	b.message = nil
	b.dialogID = ""
	b.keys.RestoreActionAndSwordEffects()
	if b.onFinished != nil {
		b.onFinished(id, answer)
	}
}

// variable resolves a $v substitution for the dialog currently showing.
func (b *Box) variable(dialogID string) (string, bool) {
	v, ok := b.variables[dialogID]
	return v, ok
}

// SetVariable registers the string substituted for $v in the given
// dialog id (spec.md §3 "variables map keyed by dialog id").
func (b *Box) SetVariable(dialogID, value string) { b.variables[dialogID] = value }

// SetVariableInt is a convenience wrapper for integer variables.
func (b *Box) SetVariableInt(dialogID string, value int) {
	b.variables[dialogID] = strconv.Itoa(value)
}
