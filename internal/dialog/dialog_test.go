package dialog

import (
	"testing"

	"github.com/solarium-engine/solarium/internal/controls"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	err := s.LoadLanguage("en", []byte(`
greeting:
  lines: ["Hello $v!", "", ""]
  next: farewell
farewell:
  lines: ["Bye.", "", ""]
question_dlg:
  lines: ["Continue?", "", ""]
  question: true
  next: yes_branch
  next2: no_branch
yes_branch:
  lines: ["You said yes.", "", ""]
no_branch:
  lines: ["You said no.", "", ""]
skip_all_dlg:
  lines: ["Skippable.", "", ""]
  skip: all
`))
	if err != nil {
		t.Fatalf("LoadLanguage: %v", err)
	}
	s.SetLanguage("en")
	return s
}

func testBox(t *testing.T) *Box {
	t.Helper()
	return NewBox(testStore(t), controls.NewKeysEffect())
}

func revealFully(t *testing.T, b *Box, nowMS int64) int64 {
	t.Helper()
	for i := 0; i < 10000 && !b.IsMessageFinished(); i++ {
		nowMS++
		if err := b.Update(nowMS); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if !b.IsMessageFinished() {
		t.Fatal("message never finished revealing")
	}
	return nowMS
}

func TestMissingVariableErrors(t *testing.T) {
	b := testBox(t)
	if err := b.Start("greeting", 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	var now int64
	for i := 0; i < 1000; i++ {
		now++
		if err := b.Update(now); err != nil {
			if _, ok := err.(*MissingVariableError); !ok {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
	}
	t.Fatal("expected a MissingVariableError, got none")
}

func TestVariableSubstitutionAndChaining(t *testing.T) {
	b := testBox(t)
	b.SetVariable("greeting", "Link")
	if err := b.Start("greeting", 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	now := revealFully(t, b, 0)

	if got := b.Lines()[0]; got != "Hello Link!" {
		t.Fatalf("revealed line = %q, want %q", got, "Hello Link!")
	}

	if err := b.ActionKeyPressed(now); err != nil {
		t.Fatalf("ActionKeyPressed: %v", err)
	}
	if b.IsOver() {
		t.Fatal("expected chain to farewell, dialog closed instead")
	}
	now = revealFully(t, b, now)
	if got := b.Lines()[0]; got != "Bye." {
		t.Fatalf("chained line = %q, want %q", got, "Bye.")
	}

	var finishedID string
	finishedAnswer := 99
	b.SetOnFinished(func(id string, answer int) {
		finishedID = id
		finishedAnswer = answer
	})
	if err := b.ActionKeyPressed(now); err != nil {
		t.Fatalf("ActionKeyPressed: %v", err)
	}
	if !b.IsOver() {
		t.Fatal("expected dialog to close after farewell's empty next")
	}
	if finishedID != "farewell" || finishedAnswer != -1 {
		t.Fatalf("onFinished(%q, %d), want (farewell, -1)", finishedID, finishedAnswer)
	}
}

func TestShowAllNowOnActionPress(t *testing.T) {
	b := testBox(t)
	b.SetVariable("greeting", "Link")
	if err := b.Start("greeting", 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if b.IsMessageFinished() {
		t.Fatal("message finished before any reveal time elapsed")
	}
	if err := b.ActionKeyPressed(0); err != nil {
		t.Fatalf("ActionKeyPressed: %v", err)
	}
	if !b.IsMessageFinished() {
		t.Fatal("expected ActionKeyPressed on an unfinished message to reveal it all")
	}
}

func TestQuestionAnswerSelectsBranch(t *testing.T) {
	b := testBox(t)
	if err := b.Start("question_dlg", 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	now := revealFully(t, b, 0)

	b.DownPressed()
	if b.AnswerCursor() != 1 {
		t.Fatalf("answer cursor = %d, want 1", b.AnswerCursor())
	}
	if err := b.ActionKeyPressed(now); err != nil {
		t.Fatalf("ActionKeyPressed: %v", err)
	}
	if b.LastAnswer() != 1 {
		t.Fatalf("last answer = %d, want 1", b.LastAnswer())
	}
	revealFully(t, b, now)
	if got := b.Lines()[0]; got != "You said no." {
		t.Fatalf("branch line = %q, want %q", got, "You said no.")
	}
}

func TestSwordKeySkipAllClosesImmediately(t *testing.T) {
	b := testBox(t)
	if err := b.Start("skip_all_dlg", 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if b.SkipMode() != SkipAll {
		t.Fatalf("skip mode = %v, want SkipAll", b.SkipMode())
	}
	b.SwordKeyPressed(0)
	if !b.IsOver() {
		t.Fatal("expected SkipAll to close the dialog on sword press")
	}
}

func TestSpeedEscapeSequenceChangesDelay(t *testing.T) {
	s := NewStore()
	if err := s.LoadLanguage("en", []byte(`
slow_then_fast:
  lines: ["$1slow$3fast", "", ""]
`)); err != nil {
		t.Fatalf("LoadLanguage: %v", err)
	}
	s.SetLanguage("en")
	b := NewBox(s, controls.NewKeysEffect())
	if err := b.Start("slow_then_fast", 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	revealFully(t, b, 0)
	if got := b.Lines()[0]; got != "slowfast" {
		t.Fatalf("revealed = %q, want %q", got, "slowfast")
	}
	if b.Speed() != SpeedFast {
		t.Fatalf("speed after $3 = %v, want SpeedFast", b.Speed())
	}
}

func TestMeasureLineAndGlyphAdvances(t *testing.T) {
	if w := MeasureLine("Hello"); w <= 0 {
		t.Fatalf("MeasureLine width = %d, want > 0", w)
	}
	advances := GlyphAdvances("Hi")
	if len(advances) != 2 {
		t.Fatalf("len(advances) = %d, want 2", len(advances))
	}
	if advances[1] <= advances[0] {
		t.Fatalf("advances not increasing: %v", advances)
	}
}
