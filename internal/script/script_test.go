package script

import "testing"

type fakeHost struct {
	calls      []string
	timerSounds int
}

func (h *fakeHost) SetCurrentMap(mapID, destinationName string) { h.calls = append(h.calls, "set_current_map:"+mapID) }
func (h *fakeHost) SetLight(level int)                          { h.calls = append(h.calls, "set_light") }
func (h *fakeHost) CameraMove(x, y int, speedPxPerS float64)     { h.calls = append(h.calls, "camera_move") }
func (h *fakeHost) CameraRestore()                               { h.calls = append(h.calls, "camera_restore") }
func (h *fakeHost) PlaySound(name string)                        { h.calls = append(h.calls, "play_sound:"+name) }
func (h *fakeHost) PlayMusic(name string)                        { h.calls = append(h.calls, "play_music:"+name) }

func (h *fakeHost) HeroFreeze()                  { h.calls = append(h.calls, "hero_freeze") }
func (h *fakeHost) HeroUnfreeze()                { h.calls = append(h.calls, "hero_unfreeze") }
func (h *fakeHost) HeroSetDirection(d int)       { h.calls = append(h.calls, "hero_set_direction") }
func (h *fakeHost) HeroSetPosition(x, y int)     { h.calls = append(h.calls, "hero_set_position") }
func (h *fakeHost) HeroAlignOnSensor(name string) { h.calls = append(h.calls, "hero_align_on_sensor:"+name) }
func (h *fakeHost) HeroStartJumping(d, dist int) { h.calls = append(h.calls, "hero_start_jumping") }
func (h *fakeHost) HeroStartVictory()            { h.calls = append(h.calls, "hero_start_victory") }
func (h *fakeHost) HeroStartBoomerang()          { h.calls = append(h.calls, "hero_start_boomerang") }
func (h *fakeHost) HeroStartBow()                { h.calls = append(h.calls, "hero_start_bow") }
func (h *fakeHost) HeroStartRunning()            { h.calls = append(h.calls, "hero_start_running") }

func (h *fakeHost) NPCWalk(name, path string, loop, ignoreObstacles bool) {
	h.calls = append(h.calls, "npc_walk:"+name)
}
func (h *fakeHost) NPCRandomWalk(name string)          { h.calls = append(h.calls, "npc_random_walk:"+name) }
func (h *fakeHost) NPCJump(name string, d, dist int)   { h.calls = append(h.calls, "npc_jump:"+name) }
func (h *fakeHost) NPCSetAnimation(name, animation string) {
	h.calls = append(h.calls, "npc_set_animation:"+name+":"+animation)
}
func (h *fakeHost) NPCSetDirection(name string, d int) { h.calls = append(h.calls, "npc_set_direction:"+name) }
func (h *fakeHost) NPCRemove(name string)              { h.calls = append(h.calls, "npc_remove:"+name) }

func (h *fakeHost) ChestSetOpen(name string, open bool)   { h.calls = append(h.calls, "chest_set_open:"+name) }
func (h *fakeHost) ChestSetHidden(name string, hidden bool) { h.calls = append(h.calls, "chest_set_hidden:"+name) }

func (h *fakeHost) DynamicTileSetEnabled(name string, enabled bool) {
	h.calls = append(h.calls, "dynamic_tile_set_enabled:"+name)
}
func (h *fakeHost) DynamicTileSetEnabledByPrefix(prefix string, enabled bool) {
	h.calls = append(h.calls, "dynamic_tile_set_group_enabled:"+prefix)
}

func (h *fakeHost) BlockReset(name string) { h.calls = append(h.calls, "block_reset:"+name) }
func (h *fakeHost) BlockResetAll()         { h.calls = append(h.calls, "block_reset_all") }

func (h *fakeHost) SwitchSetEnabled(name string, enabled bool) { h.calls = append(h.calls, "switch_set_enabled:"+name) }
func (h *fakeHost) SwitchSetLocked(name string, locked bool)   { h.calls = append(h.calls, "switch_set_locked:"+name) }

func (h *fakeHost) EnemySetEnabled(name string, enabled bool) { h.calls = append(h.calls, "enemy_set_enabled:"+name) }
func (h *fakeHost) EnemyStartBoss(name string)                { h.calls = append(h.calls, "enemy_start_boss:"+name) }
func (h *fakeHost) EnemyEndBoss()                             { h.calls = append(h.calls, "enemy_end_boss") }
func (h *fakeHost) EnemyStartMiniboss(name string)            { h.calls = append(h.calls, "enemy_start_miniboss:"+name) }
func (h *fakeHost) EnemyEndMiniboss()                         { h.calls = append(h.calls, "enemy_end_miniboss") }

func (h *fakeHost) DoorOpen(prefix string)              { h.calls = append(h.calls, "door_open:"+prefix) }
func (h *fakeHost) DoorClose(prefix string)             { h.calls = append(h.calls, "door_close:"+prefix) }
func (h *fakeHost) DoorSetOpen(prefix string, open bool) { h.calls = append(h.calls, "door_set_open:"+prefix) }

func (h *fakeHost) TreasureGive(itemName string, variant int, savegameVariable string) {
	h.calls = append(h.calls, "treasure_give:"+itemName)
}

func (h *fakeHost) NPCCreatePixelMovement(name, trajectory string, loop bool) {
	h.calls = append(h.calls, "npc_create_pixel_movement:"+name)
}
func (h *fakeHost) NPCCreateRandomMovement(name string, speedPxPerS float64) {
	h.calls = append(h.calls, "npc_create_random_movement:"+name)
}
func (h *fakeHost) NPCCreatePathMovement(name, path string, speedPxPerS float64, loop bool) {
	h.calls = append(h.calls, "npc_create_path_movement:"+name)
}

func (h *fakeHost) PlayTimerSound() { h.timerSounds++ }

func TestOperationsReachHost(t *testing.T) {
	h := &fakeHost{}
	s := New(h)
	defer s.Close()

	err := s.LoadString(`
		hero_freeze()
		npc_walk("guard", "2 4 6", true, false)
		treasure_give("bow", 1, "")
		door_open("dungeon_1_")
	`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	want := []string{"hero_freeze", "npc_walk:guard", "treasure_give:bow", "door_open:dungeon_1_"}
	if len(h.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
	for i, w := range want {
		if h.calls[i] != w {
			t.Fatalf("calls[%d] = %q, want %q", i, h.calls[i], w)
		}
	}
}

func TestEventDispatchCallsOptionalHandler(t *testing.T) {
	h := &fakeHost{}
	s := New(h)
	defer s.Close()

	if err := s.LoadString(`
		seen = false
		function event_map_started(destination)
			seen = destination
		end
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if err := s.EventMapStarted("save_point_1"); err != nil {
		t.Fatalf("EventMapStarted: %v", err)
	}
	got := s.L.GetGlobal("seen").String()
	if got != "save_point_1" {
		t.Fatalf("seen = %q, want save_point_1", got)
	}
}

func TestEventDispatchIgnoresMissingHandler(t *testing.T) {
	h := &fakeHost{}
	s := New(h)
	defer s.Close()

	if err := s.LoadString(``); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if err := s.EventDialogFinished("greeting", 0); err != nil {
		t.Fatalf("EventDialogFinished on script with no handler: %v", err)
	}
}

func TestTimerFiresNamedCallback(t *testing.T) {
	h := &fakeHost{}
	s := New(h)
	defer s.Close()

	if err := s.LoadString(`
		fired = false
		function my_timer()
			fired = true
		end
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if err := s.LoadString(`timer_start("my_timer", 1000, true)`); err != nil {
		t.Fatalf("timer_start: %v", err)
	}
	if h.timerSounds != 1 {
		t.Fatalf("timerSounds = %d, want 1", h.timerSounds)
	}

	if err := s.EventUpdate(500); err != nil {
		t.Fatalf("EventUpdate(500): %v", err)
	}
	if s.L.GetGlobal("fired").String() != "false" {
		t.Fatal("timer fired before its duration elapsed")
	}

	if err := s.EventUpdate(1500); err != nil {
		t.Fatalf("EventUpdate(1500): %v", err)
	}
	if s.L.GetGlobal("fired").String() != "true" {
		t.Fatal("expected timer to fire once its duration elapsed")
	}
	if _, ok := s.timers["my_timer"]; ok {
		t.Fatal("expected fired timer to be removed")
	}
}

func TestTimerStopCancelsBeforeFiring(t *testing.T) {
	h := &fakeHost{}
	s := New(h)
	defer s.Close()

	if err := s.LoadString(`
		fired = false
		function my_timer() fired = true end
		timer_start("my_timer", 1000, false)
		timer_stop("my_timer")
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if err := s.EventUpdate(5000); err != nil {
		t.Fatalf("EventUpdate: %v", err)
	}
	if s.L.GetGlobal("fired").String() != "false" {
		t.Fatal("expected stopped timer to never fire")
	}
}

func TestSuspendFreezesTimerAndSkipsEventUpdate(t *testing.T) {
	h := &fakeHost{}
	s := New(h)
	defer s.Close()

	if err := s.LoadString(`
		updates = 0
		fired = false
		function event_update() updates = updates + 1 end
		function my_timer() fired = true end
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if err := s.LoadString(`timer_start("my_timer", 1000, false)`); err != nil {
		t.Fatalf("timer_start: %v", err)
	}

	s.SetSuspended(true, 0)
	if err := s.EventUpdate(2000); err != nil {
		t.Fatalf("EventUpdate while suspended: %v", err)
	}
	if s.L.GetGlobal("updates").String() != "0" {
		t.Fatal("expected event_update skipped while suspended")
	}
	if s.L.GetGlobal("fired").String() != "false" {
		t.Fatal("expected timer frozen while suspended")
	}

	s.SetSuspended(false, 2000)
	if err := s.EventUpdate(3000); err != nil {
		t.Fatalf("EventUpdate after resume: %v", err)
	}
	if s.L.GetGlobal("fired").String() != "true" {
		t.Fatal("expected timer to resume counting down and fire")
	}
}
