// Command solarium is the engine's entry point: load configuration and
// resources, build the orchestrator, and run ebiten's fixed-step loop.
package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/solarium-engine/solarium/internal/config"
	"github.com/solarium-engine/solarium/internal/dialog"
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/game"
	"github.com/solarium-engine/solarium/internal/script"
)

// itemDefinitions is the registry of equippable/collectible items spec.md
// §4.H's Equipment facade is built over. A real build loads this from a
// resource file (spec.md §6 reports the format abstractly); this engine
// ships the fixed starting set directly since no on-disk item format is
// in scope.
var itemDefinitions = []equipment.ItemDefinition{
	{Name: "sword", Savable: true, InitialVariant: 1, MaxVariant: 4},
	{Name: "shield", Savable: true, InitialVariant: 1, MaxVariant: 3},
	{Name: "tunic", Savable: true, InitialVariant: 1, MaxVariant: 3},
	{Name: "bow", Savable: true, InitialVariant: 0, MaxVariant: 1, Counter: "arrows"},
	{Name: "bombs", Savable: true, InitialVariant: 0, MaxVariant: 1, Counter: "bombs"},
	{Name: "boomerang", Savable: true, InitialVariant: 0, MaxVariant: 1},
	{Name: "fairy", Savable: false, InitialVariant: 0, MaxVariant: 1},
}

func main() {
	cfg := config.MustLoadConfig("config.yaml")

	dialogStore := dialog.NewStore()
	if data, err := os.ReadFile("assets/dialogs_en.yaml"); err == nil {
		if err := dialogStore.LoadLanguage("en", data); err != nil {
			log.Printf("warning: failed to load dialogs: %v", err)
		}
	}
	dialogStore.SetLanguage("en")

	save, err := equipment.Load("save1.yaml")
	if err != nil {
		log.Printf("no existing savegame, starting a new one: %v", err)
		save = equipment.New("save1.yaml")
	}

	mapFactory := func(id string, host script.Host) (*game.Map, error) {
		// Map loading from the map-file format spec.md §6 describes is
		// reported abstractly and not in scope here; this placeholder
		// builds an empty map of a fixed size so the orchestrator and
		// script bridge are exercised end to end.
		return game.NewMap(id, 320, 240, host)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Config:      cfg,
		Savegame:    save,
		ItemDefs:    itemDefinitions,
		DialogStore: dialogStore,
		MapFactory:  mapFactory,
		FirstMapID:  firstMapID(save),
		Audio:       nil,
		RandSeed:    time.Now().UnixNano(),
	})
	if err != nil {
		log.Fatalf("failed to start game: %v", err)
	}

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.GetTPS())

	if err := ebiten.RunGame(g); err != nil {
		if errors.Is(err, game.ErrExit) {
			return
		}
		log.Fatal(err)
	}
}

func firstMapID(save *equipment.Savegame) string {
	if id := save.GetString(equipment.IdxStartingMap); id != "" {
		return id
	}
	return "start"
}
