package main

import (
	"os"
	"ryulaunch/internal/fileutil"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
)

func cleanup(state *AppState) {
	logger := gaba.GetLogger()

	if game, ok := state.Navigator.Current(); ok {
		if err := state.History.SetLastSelected(game.FilePath); err != nil {
			state.Recorder.logHistoryError("Unable to store last selected game", err)
		}
	}

	if err := state.History.Close(); err != nil {
		logger.Error("Failed to close history database", "error", err)
	}

	if state.Joystick != nil {
		state.Joystick.Close()
	}

	if err := os.RemoveAll(fileutil.TempDir()); err != nil {
		logger.Error("Failed to clean .tmp directory", "error", err)
	}
	gaba.Close()
}

func main() {
	state := setup()
	defer cleanup(state)

	logger := gaba.GetLogger()
	logger.Debug("Starting Ryulaunch", "games", state.Games().Len(), "carousel", state.carouselEnabled())

	if err := runWithRouter(state); err != nil {
		logger.Error("Router error", "error", err)
	}
}
