package script

import (
	lua "github.com/yuin/gopher-lua"
)

// register exposes fn as a Lua global named name, the same helper shape
// the gopher-lua reference engine uses (L.SetGlobal(name,
// L.NewFunction(fn))).
func register(L *lua.LState, name string, fn lua.LGFunction) {
	L.SetGlobal(name, L.NewFunction(fn))
}

func optBool(L *lua.LState, n int, def bool) bool {
	if L.GetTop() < n {
		return def
	}
	v := L.Get(n)
	if v == lua.LNil {
		return def
	}
	return lua.LVAsBool(v)
}

func optInt(L *lua.LState, n int, def int) int {
	if L.GetTop() < n {
		return def
	}
	v := L.Get(n)
	if v == lua.LNil {
		return def
	}
	return int(lua.LVAsNumber(v))
}

func optString(L *lua.LState, n int, def string) string {
	if L.GetTop() < n {
		return def
	}
	v := L.Get(n)
	if v == lua.LNil {
		return def
	}
	return lua.LVAsString(v)
}

// registerOperations binds the Host's operation surface onto L as plain
// Lua global functions, following the gopher-lua reference engine's
// CheckString/CheckNumber/CheckTable argument-extraction style.
func registerOperations(L *lua.LState, host Host, s *Script) {
	// World
	register(L, "set_current_map", func(L *lua.LState) int {
		host.SetCurrentMap(L.CheckString(1), optString(L, 2, ""))
		return 0
	})
	register(L, "set_light", func(L *lua.LState) int {
		host.SetLight(int(L.CheckNumber(1)))
		return 0
	})
	register(L, "camera_move", func(L *lua.LState) int {
		host.CameraMove(int(L.CheckNumber(1)), int(L.CheckNumber(2)), float64(L.OptNumber(3, 120)))
		return 0
	})
	register(L, "camera_restore", func(L *lua.LState) int {
		host.CameraRestore()
		return 0
	})
	register(L, "play_sound", func(L *lua.LState) int {
		host.PlaySound(L.CheckString(1))
		return 0
	})
	register(L, "play_music", func(L *lua.LState) int {
		host.PlayMusic(L.CheckString(1))
		return 0
	})

	// Hero
	register(L, "hero_freeze", func(L *lua.LState) int { host.HeroFreeze(); return 0 })
	register(L, "hero_unfreeze", func(L *lua.LState) int { host.HeroUnfreeze(); return 0 })
	register(L, "hero_set_direction", func(L *lua.LState) int {
		host.HeroSetDirection(int(L.CheckNumber(1)))
		return 0
	})
	register(L, "hero_set_position", func(L *lua.LState) int {
		host.HeroSetPosition(int(L.CheckNumber(1)), int(L.CheckNumber(2)))
		return 0
	})
	register(L, "hero_align_on_sensor", func(L *lua.LState) int {
		host.HeroAlignOnSensor(L.CheckString(1))
		return 0
	})
	register(L, "hero_start_jumping", func(L *lua.LState) int {
		host.HeroStartJumping(int(L.CheckNumber(1)), int(L.CheckNumber(2)))
		return 0
	})
	register(L, "hero_start_victory", func(L *lua.LState) int { host.HeroStartVictory(); return 0 })
	register(L, "hero_start_boomerang", func(L *lua.LState) int { host.HeroStartBoomerang(); return 0 })
	register(L, "hero_start_bow", func(L *lua.LState) int { host.HeroStartBow(); return 0 })
	register(L, "hero_start_running", func(L *lua.LState) int { host.HeroStartRunning(); return 0 })

	// NPC / interactive entity
	register(L, "npc_walk", func(L *lua.LState) int {
		host.NPCWalk(L.CheckString(1), L.CheckString(2), optBool(L, 3, false), optBool(L, 4, false))
		return 0
	})
	register(L, "npc_random_walk", func(L *lua.LState) int {
		host.NPCRandomWalk(L.CheckString(1))
		return 0
	})
	register(L, "npc_jump", func(L *lua.LState) int {
		host.NPCJump(L.CheckString(1), int(L.CheckNumber(2)), int(L.CheckNumber(3)))
		return 0
	})
	register(L, "npc_set_animation", func(L *lua.LState) int {
		host.NPCSetAnimation(L.CheckString(1), L.CheckString(2))
		return 0
	})
	register(L, "npc_set_direction", func(L *lua.LState) int {
		host.NPCSetDirection(L.CheckString(1), int(L.CheckNumber(2)))
		return 0
	})
	register(L, "npc_remove", func(L *lua.LState) int {
		host.NPCRemove(L.CheckString(1))
		return 0
	})

	// Chest
	register(L, "chest_set_open", func(L *lua.LState) int {
		host.ChestSetOpen(L.CheckString(1), optBool(L, 2, true))
		return 0
	})
	register(L, "chest_set_hidden", func(L *lua.LState) int {
		host.ChestSetHidden(L.CheckString(1), optBool(L, 2, true))
		return 0
	})

	// Dynamic tile
	register(L, "dynamic_tile_set_enabled", func(L *lua.LState) int {
		host.DynamicTileSetEnabled(L.CheckString(1), optBool(L, 2, true))
		return 0
	})
	register(L, "dynamic_tile_set_group_enabled", func(L *lua.LState) int {
		host.DynamicTileSetEnabledByPrefix(L.CheckString(1), optBool(L, 2, true))
		return 0
	})

	// Block
	register(L, "block_reset", func(L *lua.LState) int {
		host.BlockReset(L.CheckString(1))
		return 0
	})
	register(L, "block_reset_all", func(L *lua.LState) int { host.BlockResetAll(); return 0 })

	// Switch
	register(L, "switch_set_enabled", func(L *lua.LState) int {
		host.SwitchSetEnabled(L.CheckString(1), optBool(L, 2, true))
		return 0
	})
	register(L, "switch_set_locked", func(L *lua.LState) int {
		host.SwitchSetLocked(L.CheckString(1), optBool(L, 2, true))
		return 0
	})

	// Enemy
	register(L, "enemy_set_enabled", func(L *lua.LState) int {
		host.EnemySetEnabled(L.CheckString(1), optBool(L, 2, true))
		return 0
	})
	register(L, "enemy_start_boss", func(L *lua.LState) int {
		host.EnemyStartBoss(L.CheckString(1))
		return 0
	})
	register(L, "enemy_end_boss", func(L *lua.LState) int { host.EnemyEndBoss(); return 0 })
	register(L, "enemy_start_miniboss", func(L *lua.LState) int {
		host.EnemyStartMiniboss(L.CheckString(1))
		return 0
	})
	register(L, "enemy_end_miniboss", func(L *lua.LState) int { host.EnemyEndMiniboss(); return 0 })

	// Door: prefix-wide, open/close play a one-shot sound only on an
	// actual state change (spec.md §4.K "Door: open/close ... with
	// one-shot sound").
	register(L, "door_open", func(L *lua.LState) int {
		host.DoorOpen(L.CheckString(1))
		return 0
	})
	register(L, "door_close", func(L *lua.LState) int {
		host.DoorClose(L.CheckString(1))
		return 0
	})
	register(L, "door_set_open", func(L *lua.LState) int {
		host.DoorSetOpen(L.CheckString(1), optBool(L, 2, true))
		return 0
	})

	// Treasure
	register(L, "treasure_give", func(L *lua.LState) int {
		host.TreasureGive(L.CheckString(1), optInt(L, 2, 1), optString(L, 3, ""))
		return 0
	})

	// Movement, attached to a named NPC
	register(L, "npc_create_pixel_movement", func(L *lua.LState) int {
		host.NPCCreatePixelMovement(L.CheckString(1), L.CheckString(2), optBool(L, 3, false))
		return 0
	})
	register(L, "npc_create_random_movement", func(L *lua.LState) int {
		host.NPCCreateRandomMovement(L.CheckString(1), float64(L.OptNumber(2, 40)))
		return 0
	})
	register(L, "npc_create_path_movement", func(L *lua.LState) int {
		host.NPCCreatePathMovement(L.CheckString(1), L.CheckString(2), float64(L.OptNumber(3, 40)), optBool(L, 4, false))
		return 0
	})

	// Timers are owned by the Script itself (see timer.go), not the host;
	// with_sound only reaches into the host for playback.
	register(L, "timer_start", func(L *lua.LState) int {
		name := L.CheckString(1)
		durationMS := int64(L.CheckNumber(2))
		withSound := optBool(L, 3, false)
		s.startTimer(name, durationMS, withSound)
		return 0
	})
	register(L, "timer_stop", func(L *lua.LState) int {
		s.stopTimer(L.CheckString(1))
		return 0
	})
}
