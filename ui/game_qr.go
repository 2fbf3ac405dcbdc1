package ui

import (
	"errors"
	"ryulaunch/catalog"
	"ryulaunch/internal/imageutil"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/constants"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

type GameQRInput struct {
	Game catalog.GameRecord
}

type GameQROutput struct{}

// GameQRScreen renders the title ID as a QR code for looking the game up
// on another device.
type GameQRScreen struct{}

func NewGameQRScreen() *GameQRScreen {
	return &GameQRScreen{}
}

func (s *GameQRScreen) Draw(input GameQRInput) (GameQROutput, error) {
	output := GameQROutput{}
	logger := gaba.GetLogger()

	qrcode, err := imageutil.CreateTempQRCode(input.Game.ID, 256)
	if err != nil {
		logger.Error("Unable to generate QR code", "error", err)
		return output, err
	}

	sections := []gaba.Section{
		gaba.NewImageSection(
			i18n.Localize(&goi18n.Message{ID: "game_qr_title", Other: "Title ID {{.ID}}"}, map[string]interface{}{"ID": input.Game.ID}),
			qrcode,
			int32(256),
			int32(256),
			constants.TextAlignCenter,
		),
	}

	options := gaba.DefaultInfoScreenOptions()
	options.Sections = sections
	options.ShowThemeBackground = false
	options.ConfirmButton = constants.VirtualButtonUnassigned

	_, err = gaba.DetailScreen(input.Game.Name, options, []gaba.FooterHelpItem{FooterBack()})
	if err != nil && !errors.Is(err, gaba.ErrCancelled) {
		logger.Error("QR screen error", "error", err)
		return output, err
	}

	return output, nil
}
