package main

import (
	"errors"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"ryulaunch/catalog"
	"ryulaunch/history"
	"ryulaunch/input"
	"ryulaunch/internal"
	"ryulaunch/internal/environment"
	"ryulaunch/internal/fileutil"
	"ryulaunch/launcher"
	"ryulaunch/navigator"
	"ryulaunch/resources"
	"ryulaunch/ui"

	"github.com/0xcafed00d/joystick"
	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
)

func setup() *AppState {
	gaba.SetLogFilename("ryulaunch.log")

	gaba.Init(gaba.Options{
		WindowTitle:          "Ryulaunch",
		PrimaryThemeColorHex: 0x0AB9E6,
		ShowBackground:       true,
	})

	gaba.SetLogLevel(slog.LevelDebug)
	logger := gaba.GetLogger()

	localeFiles, err := resources.GetLocaleMessageFiles()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load locale files: %v", err)
	}
	if err := i18n.InitI18NFromBytes(localeFiles); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize i18n: %v", err)
	}

	configPath := internal.ConfigPath()
	config, err := internal.EnsureConfig(configPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load %s: %v", configPath, err)
	}

	if environment.IsDevelopment() {
		gaba.SetLogLevel(slog.LevelDebug)
	} else {
		gaba.SetRawLogLevel(string(config.LogLevel))
	}

	if err := i18n.SetWithCode(resources.MatchLanguage(config.Language)); err != nil {
		logger.Error("Failed to set language", "error", err, "language", config.Language)
	}

	logger.Debug("Configuration Loaded!", "config", config.ToLoggable())

	if err := config.Validate(); err != nil {
		logger.Error("Configuration incomplete", "error", err, "path", configPath)
		ui.ShowConfigError(configPath)
		gaba.Close()
		os.Exit(1)
	}

	if !internal.HasMediaImages(config.GamesPath) {
		logger.Warn("No cover art found", "path", filepath.Join(config.GamesPath, catalog.ImageKindCover.Subdir()))
		if ui.ShowMediaWarning() == ui.StartupActionQuit {
			gaba.Close()
			os.Exit(0)
		}
	}

	historyDB, err := history.Open(filepath.Join(environment.DataDir(), history.DBFilename), logger)
	if err != nil {
		logger.Error("Play history unavailable", "error", err)
	}

	state := &AppState{
		Config:     config,
		ConfigPath: configPath,
		History:    historyDB,
		Recorder:   newSessionRecorder(historyDB, logger),
		Mapping:    input.DefaultMapping(),
		ArtDir:     filepath.Join(fileutil.TempDir(), "art"),
	}

	state.Navigator = buildNavigator(state, scanLibrary(state))
	restoreSelection(state)
	state.Joystick = openJoystick(config, logger)

	return state
}

// scanLibrary builds the catalog behind a progress message. A broken
// games.json leaves the library empty.
func scanLibrary(state *AppState) catalog.Catalog {
	logger := gaba.GetLogger()
	config := state.Config
	lookupPath := config.ResolvedLookupPath()
	builder := catalog.NewBuilder(config.AssetsPath, logger)

	var games catalog.Catalog
	var buildErr error

	gaba.ProcessMessage(
		localize("library_scanning", "Scanning games..."),
		gaba.ProcessMessageOptions{ShowThemeBackground: true},
		func() (interface{}, error) {
			games, buildErr = builder.Build(config.GamesPath, lookupPath)
			return nil, nil
		},
	)

	if buildErr != nil {
		logger.Error("Unable to build library", "error", buildErr)
		var lookupErr *catalog.LookupLoadError
		if errors.As(buildErr, &lookupErr) {
			ui.ShowLookupError(lookupErr.Path)
		} else {
			ui.ShowLookupError(config.GamesPath)
		}
		return games
	}

	logger.Info("Library loaded", "games", games.Len())

	if config.WriteGamelist {
		if err := gamelistExport(config.GamesPath, games); err != nil {
			logger.Error("Unable to write gamelist", "error", err)
		}
	}

	prefetchArt(state.ArtDir, games)

	return games
}

func buildNavigator(state *AppState, games catalog.Catalog) *navigator.Navigator {
	logger := gaba.GetLogger()
	return navigator.New(games, navigator.Options{
		EmulatorPath: state.Config.RyujinxPath,
		EmulatorArgs: state.Config.EmulatorArgs,
		Spawner:      launcher.NewExecSpawner(logger),
		Listener:     state.Recorder,
		Logger:       logger,
	})
}

// restoreSelection moves to the game that was highlighted last time, or
// announces the first game when there is no record.
func restoreSelection(state *AppState) {
	index := 0
	if last, err := state.History.LastSelected(); err == nil && last != "" {
		if i := state.Games().IndexOf(last); i >= 0 {
			index = i
		}
	}
	state.Navigator.Select(index)
}

// openJoystick returns nil when the carousel should not be used.
func openJoystick(config *internal.Config, logger *slog.Logger) joystick.Joystick {
	if config.InputMode == internal.InputModeList {
		return nil
	}

	js, err := input.OpenFirst()
	if err != nil {
		if config.InputMode == internal.InputModeCarousel {
			logger.Error("Carousel requested but no joystick is available", "error", err)
		} else {
			logger.Debug("No joystick, using the library list", "error", err)
		}
		return nil
	}

	return js
}
