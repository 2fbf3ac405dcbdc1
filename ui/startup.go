package ui

import (
	"errors"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// ShowConfigError explains that config.json still holds placeholder paths.
func ShowConfigError(configPath string) {
	gaba.ConfirmationMessage(
		i18n.Localize(&goi18n.Message{
			ID:    "startup_config_missing",
			Other: "Set ryujinx_path and games_path in {{.Path}} and start again.",
		}, map[string]interface{}{"Path": configPath}),
		[]gaba.FooterHelpItem{footerItem("A", "button_quit", "Quit")},
		gaba.MessageOptions{},
	)
}

// ShowMediaWarning asks whether to continue without artwork in media/.
func ShowMediaWarning() StartupAction {
	_, err := gaba.ConfirmationMessage(
		i18n.Localize(&goi18n.Message{
			ID:    "startup_media_missing",
			Other: "No .png artwork was found in the media folder. Games will use the default images.",
		}, nil),
		ContinueOrQuitFooter(),
		gaba.MessageOptions{},
	)
	if err != nil {
		if !errors.Is(err, gaba.ErrCancelled) {
			gaba.GetLogger().Error("Media warning error", "error", err)
		}
		return StartupActionQuit
	}
	return StartupActionContinue
}

// ShowLookupError reports that games.json could not be used.
func ShowLookupError(lookupPath string) {
	gaba.ConfirmationMessage(
		i18n.Localize(&goi18n.Message{
			ID:    "startup_lookup_failed",
			Other: "Could not read {{.Path}}. The library will be empty.",
		}, map[string]interface{}{"Path": lookupPath}),
		ContinueFooter(),
		gaba.MessageOptions{},
	)
}

// ShowJoystickLost tells the user the carousel closed because the gamepad
// stopped answering.
func ShowJoystickLost() {
	gaba.ConfirmationMessage(
		i18n.Localize(&goi18n.Message{
			ID:    "joystick_disconnected",
			Other: "Gamepad disconnected. Switching to the library list.",
		}, nil),
		ContinueFooter(),
		gaba.MessageOptions{},
	)
}
