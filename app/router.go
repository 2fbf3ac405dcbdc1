package main

import (
	"ryulaunch/ui"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/router"
)

func runWithRouter(state *AppState) error {
	r := router.New()

	registerScreens(r)
	r.OnTransition(buildTransitionFunc(state))

	if state.carouselEnabled() {
		return r.Run(ScreenCarousel, carouselInput(state))
	}
	return r.Run(ScreenGameList, gameListInput(state))
}

func registerScreens(r *router.Router) {
	r.Register(ScreenCarousel, func(input any) (any, error) {
		screen := ui.NewCarouselScreen()
		return screen.Draw(input.(ui.CarouselInput))
	})

	r.Register(ScreenGameList, func(input any) (any, error) {
		screen := ui.NewGameListScreen()
		return screen.Draw(input.(ui.GameListInput))
	})

	r.Register(ScreenGameDetails, func(input any) (any, error) {
		screen := ui.NewGameDetailsScreen()
		return screen.Draw(input.(ui.GameDetailsInput))
	})

	r.Register(ScreenGameQR, func(input any) (any, error) {
		screen := ui.NewGameQRScreen()
		return screen.Draw(input.(ui.GameQRInput))
	})

	r.Register(ScreenLaunch, func(input any) (any, error) {
		screen := ui.NewLaunchScreen()
		return screen.Draw(input.(ui.LaunchInput))
	})

	r.Register(ScreenInfo, func(input any) (any, error) {
		screen := ui.NewInfoScreen()
		return screen.Draw(input.(ui.InfoInput))
	})
}

func carouselInput(state *AppState) ui.CarouselInput {
	game, _ := state.Navigator.Current()
	return ui.CarouselInput{
		Game:       game,
		Position:   state.Navigator.Index(),
		Total:      state.Games().Len(),
		Background: state.Recorder.Background(),
		ArtDir:     state.ArtDir,
		Joystick:   state.Joystick,
		Mapping:    state.Mapping,
	}
}

// gameListInput opens the list on the current selection. Without a joystick
// the list is the first screen, so backing out of it quits.
func gameListInput(state *AppState) ui.GameListInput {
	return ui.GameListInput{
		Games:             state.Games(),
		LastSelectedIndex: max(0, state.Navigator.Index()),
		QuitOnBack:        !state.carouselEnabled(),
	}
}

func gameDetailsInput(state *AppState) ui.GameDetailsInput {
	game, _ := state.Navigator.Current()

	playCount, err := state.History.PlayCount(game.FilePath)
	if err != nil {
		state.Recorder.logHistoryError("Unable to read play count", err)
	}

	return ui.GameDetailsInput{
		Game:      game,
		PlayCount: playCount,
		ArtDir:    state.ArtDir,
	}
}

func infoInput(state *AppState) ui.InfoInput {
	recent, err := state.History.RecentSessions(5)
	if err != nil {
		state.Recorder.logHistoryError("Unable to read recent sessions", err)
	}

	return ui.InfoInput{
		Config:      state.Config,
		CatalogSize: state.Games().Len(),
		Recent:      recent,
	}
}
