package ui

import (
	"ryulaunch/catalog"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

type LaunchInput struct {
	Game   catalog.GameRecord
	ArtDir string
	// Ended delivers the emulator's exit code.
	Ended  <-chan int
}

type LaunchOutput struct {
	ExitCode int
}

// LaunchScreen blocks the launcher while the emulator runs.
type LaunchScreen struct{}

func NewLaunchScreen() *LaunchScreen {
	return &LaunchScreen{}
}

func (s *LaunchScreen) Draw(input LaunchInput) (LaunchOutput, error) {
	output := LaunchOutput{}

	background := displayArt(input.Game.BackgroundImagePath, input.ArtDir, screenImageWidth, screenImageHeight)

	gaba.ProcessMessage(
		i18n.Localize(&goi18n.Message{ID: "launch_running", Other: "Launching Ryujinx...\n{{.Name}}"}, map[string]interface{}{"Name": input.Game.Name}),
		gaba.ProcessMessageOptions{
			Image:       background,
			ImageWidth:  screenImageWidth,
			ImageHeight: screenImageHeight,
		},
		func() (interface{}, error) {
			output.ExitCode = <-input.Ended
			return nil, nil
		},
	)

	gaba.GetLogger().Debug("Emulator closed", "game", input.Game.Name, "exit_code", output.ExitCode)
	return output, nil
}
