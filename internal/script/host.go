package script

// Host is the fixed operation surface a map (or item) script may invoke,
// grouped exactly as spec.md §4.K lists them. The game orchestrator
// (component L) implements Host; internal/script never imports the
// concrete world/hero/entity types, keeping the dependency arrow running
// orchestrator -> script rather than back into it.
type Host interface {
	// World
	SetCurrentMap(mapID, destinationName string)
	SetLight(level int)
	CameraMove(x, y int, speedPxPerS float64)
	CameraRestore()
	PlaySound(name string)
	PlayMusic(name string)

	// Hero
	HeroFreeze()
	HeroUnfreeze()
	HeroSetDirection(direction8 int)
	HeroSetPosition(x, y int)
	HeroAlignOnSensor(sensorName string)
	HeroStartJumping(direction8, distance int)
	HeroStartVictory()
	HeroStartBoomerang()
	HeroStartBow()
	HeroStartRunning()

	// NPC / interactive entity
	NPCWalk(name, path string, loop, ignoreObstacles bool)
	NPCRandomWalk(name string)
	NPCJump(name string, direction8, distance int)
	NPCSetAnimation(name, animation string)
	NPCSetDirection(name string, direction8 int)
	NPCRemove(name string)

	// Chest
	ChestSetOpen(name string, open bool)
	ChestSetHidden(name string, hidden bool)

	// Dynamic tile
	DynamicTileSetEnabled(name string, enabled bool)
	DynamicTileSetEnabledByPrefix(prefix string, enabled bool)

	// Block
	BlockReset(name string)
	BlockResetAll()

	// Switch
	SwitchSetEnabled(name string, enabled bool)
	SwitchSetLocked(name string, locked bool)

	// Enemy
	EnemySetEnabled(name string, enabled bool)
	EnemyStartBoss(name string)
	EnemyEndBoss()
	EnemyStartMiniboss(name string)
	EnemyEndMiniboss()

	// Door (prefix-wide, with a one-shot sound on state change)
	DoorOpen(prefix string)
	DoorClose(prefix string)
	DoorSetOpen(prefix string, open bool)

	// Treasure
	TreasureGive(itemName string, variant int, savegameVariable string)

	// Movement, attached to a named NPC
	NPCCreatePixelMovement(name, trajectory string, loop bool)
	NPCCreateRandomMovement(name string, speedPxPerS float64)
	NPCCreatePathMovement(name, path string, speedPxPerS float64, loop bool)

	// Timers: with_sound plays through the host's audio backend; the
	// timer itself is owned and ticked by the Script, not the host.
	PlayTimerSound()
}
