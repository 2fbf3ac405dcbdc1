package main

import (
	"ryulaunch/input"
	"ryulaunch/ui"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/router"
)

type transitionContext struct {
	state *AppState
	stack *router.Stack
}

func buildTransitionFunc(state *AppState) router.TransitionFunc {
	return func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		ctx := &transitionContext{
			state: state,
			stack: stack,
		}

		switch from {
		case ScreenCarousel:
			return transitionCarousel(ctx, result)
		case ScreenGameList:
			return transitionGameList(ctx, result)
		case ScreenGameDetails:
			return transitionGameDetails(ctx, result)
		case ScreenGameQR:
			return popOrExit(ctx)
		case ScreenLaunch:
			return popOrExit(ctx)
		case ScreenInfo:
			return transitionInfo(ctx, result)
		}

		return router.ScreenExit, nil
	}
}

func transitionCarousel(ctx *transitionContext, result any) (router.Screen, any) {
	r := result.(ui.ScreenResult[ui.CarouselOutput])
	nav := ctx.state.Navigator

	switch r.Value.Action {
	case ui.CarouselActionMove:
		switch r.Value.Command {
		case input.CommandLeft:
			nav.MoveLeft()
		case input.CommandRight:
			nav.MoveRight()
		}
		return ScreenCarousel, carouselInput(ctx.state)

	case ui.CarouselActionLaunch:
		return startLaunch(ctx, ScreenCarousel, carouselInput(ctx.state))

	case ui.CarouselActionLibrary:
		ctx.stack.Push(ScreenCarousel, carouselInput(ctx.state), nil)
		return ScreenGameList, gameListInput(ctx.state)

	case ui.CarouselActionInputLost:
		ui.ShowJoystickLost()
		ctx.state.Joystick.Close()
		ctx.state.Joystick = nil
		ctx.stack.Clear()
		return ScreenGameList, gameListInput(ctx.state)
	}

	return router.ScreenExit, nil
}

func transitionGameList(ctx *transitionContext, result any) (router.Screen, any) {
	r := result.(ui.ScreenResult[ui.GameListOutput])

	resume := gameListInput(ctx.state)
	resume.LastSelectedIndex = r.Value.LastSelectedIndex
	resume.LastSelectedPosition = r.Value.LastSelectedPosition

	switch r.Value.Action {
	case ui.GameListActionSelected:
		ctx.state.Navigator.Select(r.Value.SelectedIndex)
		ctx.stack.Push(ScreenGameList, resume, nil)
		return ScreenGameDetails, gameDetailsInput(ctx.state)

	case ui.GameListActionInfo:
		if ctx.state.Games().Len() > 0 {
			ctx.stack.Push(ScreenGameList, resume, nil)
		}
		return ScreenInfo, infoInput(ctx.state)
	}

	return popOrExit(ctx)
}

func transitionGameDetails(ctx *transitionContext, result any) (router.Screen, any) {
	r := result.(ui.ScreenResult[ui.GameDetailsOutput])

	switch r.Value.Action {
	case ui.GameDetailsActionLaunch:
		return startLaunch(ctx, ScreenGameDetails, gameDetailsInput(ctx.state))

	case ui.GameDetailsActionShowQR:
		ctx.stack.Push(ScreenGameDetails, gameDetailsInput(ctx.state), nil)
		return ScreenGameQR, ui.GameQRInput{Game: r.Value.Game}
	}

	return popOrExit(ctx)
}

func transitionInfo(ctx *transitionContext, result any) (router.Screen, any) {
	r := result.(ui.ScreenResult[ui.InfoOutput])

	if r.Value.Action == ui.InfoActionRescan {
		rescan(ctx.state)
		ctx.stack.Clear()
		if ctx.state.carouselEnabled() {
			return ScreenCarousel, carouselInput(ctx.state)
		}
		return ScreenGameList, gameListInput(ctx.state)
	}

	return popOrExit(ctx)
}

// startLaunch shows the launch screen when the navigator actually started
// the emulator. A launch already in flight keeps the current screen.
func startLaunch(ctx *transitionContext, from router.Screen, fromInput any) (router.Screen, any) {
	game, ok := ctx.state.Navigator.Current()
	if !ok || !ctx.state.Navigator.Launch() {
		return from, fromInput
	}

	ctx.stack.Push(from, fromInput, nil)
	return ScreenLaunch, ui.LaunchInput{
		Game:   game,
		ArtDir: ctx.state.ArtDir,
		Ended:  ctx.state.Recorder.ended,
	}
}

func rescan(state *AppState) {
	gaba.GetLogger().Info("Rescanning library", "path", state.Config.GamesPath)
	state.Navigator = buildNavigator(state, scanLibrary(state))
	restoreSelection(state)
}

// popOrExit returns to the previous screen, refreshing inputs that depend on
// the current selection.
func popOrExit(ctx *transitionContext) (router.Screen, any) {
	entry := ctx.stack.Pop()
	if entry == nil {
		return router.ScreenExit, nil
	}

	switch entry.Input.(type) {
	case ui.CarouselInput:
		return entry.Screen, carouselInput(ctx.state)
	case ui.GameDetailsInput:
		return entry.Screen, gameDetailsInput(ctx.state)
	}

	return entry.Screen, entry.Input
}
