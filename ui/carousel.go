package ui

import (
	"context"
	"errors"
	"fmt"
	"ryulaunch/catalog"
	"ryulaunch/input"
	"ryulaunch/internal/constants"
	"ryulaunch/internal/stringutil"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

type CarouselInput struct {
	Game       catalog.GameRecord
	Position   int
	Total      int
	Background string
	ArtDir     string
	Joystick   input.Reader
	Mapping    input.Mapping
}

type CarouselOutput struct {
	Action  CarouselAction
	Command input.Command
}

// CarouselScreen shows one game full screen and waits for a single joystick
// command. The router applies the command and draws the carousel again.
type CarouselScreen struct{}

func NewCarouselScreen() *CarouselScreen {
	return &CarouselScreen{}
}

func (s *CarouselScreen) Draw(in CarouselInput) (ScreenResult[CarouselOutput], error) {
	logger := gaba.GetLogger()
	output := CarouselOutput{}

	background := displayArt(in.Background, in.ArtDir, screenImageWidth, screenImageHeight)

	var command input.Command
	var pollErr error

	gaba.ProcessMessage(
		s.caption(in),
		gaba.ProcessMessageOptions{
			Image:       background,
			ImageWidth:  screenImageWidth,
			ImageHeight: screenImageHeight,
		},
		func() (interface{}, error) {
			command, pollErr = s.waitForCommand(in)
			return nil, pollErr
		},
	)

	if pollErr != nil {
		logger.Error("Joystick stopped responding", "error", pollErr)
		output.Action = CarouselActionInputLost
		return withCode(output, gaba.ExitCodeError), nil
	}

	output.Command = command
	switch command {
	case input.CommandLaunch:
		output.Action = CarouselActionLaunch
		return withCode(output, constants.ExitCodeLaunch), nil
	case input.CommandLibrary:
		output.Action = CarouselActionLibrary
		return withCode(output, constants.ExitCodeOpenLibrary), nil
	case input.CommandQuit:
		output.Action = CarouselActionQuit
		return back(output), nil
	default:
		output.Action = CarouselActionMove
	}

	return success(output), nil
}

func (s *CarouselScreen) caption(in CarouselInput) string {
	if in.Total == 0 {
		return i18n.Localize(&goi18n.Message{ID: "carousel_empty", Other: "No games found"}, nil)
	}
	return fmt.Sprintf("◀  %s  [%s]  ▶\n%d / %d",
		in.Game.Name,
		stringutil.ExtensionBadge(in.Game.Extension),
		in.Position+1,
		in.Total,
	)
}

// waitForCommand polls until the first command. The poller only lives for
// one screen so nothing queues up while other screens are showing.
func (s *CarouselScreen) waitForCommand(in CarouselInput) (input.Command, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commands := make(chan input.Command)
	done := make(chan error, 1)

	poller := input.NewPoller(in.Joystick, in.Mapping, gaba.GetLogger())
	go func() { done <- poller.Run(ctx, commands) }()

	select {
	case command := <-commands:
		return command, nil
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return 0, nil
		}
		return 0, err
	}
}
