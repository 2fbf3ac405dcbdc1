package ui

import (
	"errors"
	"path/filepath"
	"ryulaunch/catalog"
	"ryulaunch/internal/constants"
	"ryulaunch/internal/stringutil"
	"strconv"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	buttons "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/constants"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

type GameDetailsInput struct {
	Game      catalog.GameRecord
	PlayCount int
	ArtDir    string
}

type GameDetailsOutput struct {
	Action GameDetailsAction
	Game   catalog.GameRecord
}

type GameDetailsScreen struct{}

func NewGameDetailsScreen() *GameDetailsScreen {
	return &GameDetailsScreen{}
}

func (s *GameDetailsScreen) Draw(input GameDetailsInput) (ScreenResult[GameDetailsOutput], error) {
	logger := gaba.GetLogger()
	output := GameDetailsOutput{
		Action: GameDetailsActionBack,
		Game:   input.Game,
	}

	options := gaba.DefaultInfoScreenOptions()
	options.Sections = s.buildSections(input)
	options.ShowThemeBackground = true
	options.ShowScrollbar = true

	footer := []gaba.FooterHelpItem{FooterBack(), FooterLaunch()}
	if input.Game.HasID() {
		options.ActionButton = buttons.VirtualButtonX
		options.EnableAction = true
		footer = []gaba.FooterHelpItem{FooterBack(), FooterQR(), FooterLaunch()}
	}

	result, err := gaba.DetailScreen(input.Game.Name, options, footer)
	if err != nil {
		if errors.Is(err, gaba.ErrCancelled) {
			return back(output), nil
		}
		logger.Error("Detail screen error", "error", err)
		return withCode(output, gaba.ExitCodeError), err
	}

	switch result.Action {
	case gaba.DetailActionConfirmed:
		output.Action = GameDetailsActionLaunch
		return withCode(output, constants.ExitCodeLaunch), nil
	case gaba.DetailActionTriggered:
		output.Action = GameDetailsActionShowQR
		return withCode(output, constants.ExitCodeShowQR), nil
	}

	return back(output), nil
}

func (s *GameDetailsScreen) buildSections(input GameDetailsInput) []gaba.Section {
	game := input.Game
	sections := make([]gaba.Section, 0, 3)

	cover := displayArt(game.CoverImagePath, input.ArtDir, detailImageWidth, detailImageHeight)
	if cover != "" {
		sections = append(sections, gaba.NewImageSection("", cover, detailImageWidth, detailImageHeight, buttons.TextAlignCenter))
	}

	titleID := game.ID
	if !game.HasID() {
		titleID = i18n.Localize(&goi18n.Message{ID: "game_details_unknown_id", Other: "Unknown"}, nil)
	}

	metadata := []gaba.MetadataItem{
		{
			Label: i18n.Localize(&goi18n.Message{ID: "game_details_title_id", Other: "Title ID"}, nil),
			Value: titleID,
		},
		{
			Label: i18n.Localize(&goi18n.Message{ID: "game_details_format", Other: "Format"}, nil),
			Value: stringutil.ExtensionBadge(game.Extension),
		},
		{
			Label: i18n.Localize(&goi18n.Message{ID: "game_details_file", Other: "File"}, nil),
			Value: filepath.Base(game.FilePath),
		},
		{
			Label: i18n.Localize(&goi18n.Message{ID: "game_details_play_count", Other: "Times Played"}, nil),
			Value: strconv.Itoa(input.PlayCount),
		},
	}
	sections = append(sections, gaba.NewInfoSection(
		i18n.Localize(&goi18n.Message{ID: "game_details_info", Other: "Game Info"}, nil),
		metadata,
	))

	screenshot := displayArt(game.ScreenshotImagePath, input.ArtDir, detailImageWidth, detailImageHeight)
	if screenshot != "" {
		sections = append(sections, gaba.NewImageSection(
			i18n.Localize(&goi18n.Message{ID: "game_details_screenshot", Other: "Screenshot"}, nil),
			screenshot,
			detailImageWidth,
			detailImageHeight,
			buttons.TextAlignCenter,
		))
	}

	return sections
}
