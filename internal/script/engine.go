// Package script implements the Lua sandbox each map (and each carried
// inventory item) scripts against: a restricted operation surface bound
// as globals, named engine events dispatched as Lua function calls when
// present, and a set of script-owned Timers (spec.md §4.K). Grounded on
// the gopher-lua usage pattern in the retrieval pack's standalone
// reference script engine (register/SetGlobal, Check*/Opt* argument
// extraction, DoString/DoFile) and on original_source/src/lua/*.cpp for
// the operation and event surface itself.
package script

import (
	lua "github.com/yuin/gopher-lua"
)

// Script wraps one *lua.LState sandboxing a single map or item script. It
// is not safe for concurrent use; the engine's single-threaded main loop
// (spec.md §5) only ever touches one Script at a time.
type Script struct {
	L    *lua.LState
	host Host

	timers    map[string]*timer
	nowMS     int64
	suspended bool
}

// New creates a Script bound to host, with the full operation surface
// registered as Lua globals. SkipOpenLibs is left false so scripts keep
// the standard Lua libraries (string, table, math, ...), matching the
// reference engine's lua.Options{SkipOpenLibs: false}.
func New(host Host) *Script {
	L := lua.NewState(lua.Options{SkipOpenLibs: false})
	s := &Script{L: L, host: host, timers: make(map[string]*timer)}
	registerOperations(L, host, s)
	return s
}

// Close tears down the Lua state and every timer the script owned
// (spec.md §4.K "destroyed with the script").
func (s *Script) Close() {
	for name := range s.timers {
		delete(s.timers, name)
	}
	s.L.Close()
}

// LoadString loads and runs source, defining whatever globals/functions
// it declares (event handlers, local state).
func (s *Script) LoadString(source string) error {
	return s.L.DoString(source)
}

// LoadFile loads and runs the script file at path.
func (s *Script) LoadFile(path string) error {
	return s.L.DoFile(path)
}

// SetSuspended freezes or resumes the script: while suspended, event_update
// is not dispatched and every owned timer stops counting down (spec.md
// §4.K "Timers freeze while the owning script is suspended", used for
// inventory-item scripts that start initially suspended).
func (s *Script) SetSuspended(suspended bool, nowMS int64) {
	s.nowMS = nowMS
	if suspended == s.suspended {
		return
	}
	s.suspended = suspended
	for _, t := range s.timers {
		t.SetSuspended(suspended, nowMS)
	}
}

func (s *Script) IsSuspended() bool { return s.suspended }

func (s *Script) startTimer(name string, durationMS int64, withSound bool) {
	if withSound {
		s.host.PlayTimerSound()
	}
	s.timers[name] = newTimer(name, s.nowMS, durationMS, withSound, s.suspended)
}

func (s *Script) stopTimer(name string) {
	delete(s.timers, name)
}

// call invokes the Lua global function named name if it exists, passing
// args; absent functions are silently skipped, since every event handler
// in a script is optional (spec.md §4.K "receives engine events").
func (s *Script) call(name string, args ...lua.LValue) error {
	fn := s.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil
	}
	return s.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
}
