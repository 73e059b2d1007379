package script

// timer is a single named, script-owned countdown (spec.md §4.K
// "Timers created by a script are owned by that script"). Suspension
// offsets its firing date by the suspended duration, the same
// date-offsetting pattern used throughout internal/movement.
type timer struct {
	name       string
	startMS    int64
	durationMS int64
	withSound  bool

	suspended        bool
	suspendedSinceMS int64
}

func newTimer(name string, nowMS, durationMS int64, withSound, suspended bool) *timer {
	t := &timer{name: name, startMS: nowMS, durationMS: durationMS, withSound: withSound}
	if suspended {
		t.suspended = true
		t.suspendedSinceMS = nowMS
	}
	return t
}

// SetSuspended freezes or resumes the timer, offsetting its start date by
// the elapsed suspension on resume so the remaining duration is
// unaffected (spec.md §5 "the engine ... offsets all scheduled dates by
// the suspension duration").
func (t *timer) SetSuspended(suspended bool, nowMS int64) {
	if suspended == t.suspended {
		return
	}
	if suspended {
		t.suspended = true
		t.suspendedSinceMS = nowMS
		return
	}
	t.suspended = false
	t.startMS += nowMS - t.suspendedSinceMS
}

// fired reports whether the timer's duration has elapsed; frozen timers
// never fire.
func (t *timer) fired(nowMS int64) bool {
	return !t.suspended && nowMS-t.startMS >= t.durationMS
}
