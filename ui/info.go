package ui

import (
	"errors"
	"ryulaunch/history"
	"ryulaunch/internal"
	"ryulaunch/internal/constants"
	"ryulaunch/version"
	"strconv"
	"time"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	buttons "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/constants"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

type InfoInput struct {
	Config      *internal.Config
	CatalogSize int
	Recent      []history.Session
}

type InfoOutput struct {
	Action InfoAction
}

type InfoScreen struct{}

func NewInfoScreen() *InfoScreen {
	return &InfoScreen{}
}

func (s *InfoScreen) Draw(input InfoInput) (ScreenResult[InfoOutput], error) {
	output := InfoOutput{Action: InfoActionBack}

	options := gaba.DefaultInfoScreenOptions()
	options.Sections = s.buildSections(input)
	options.ShowThemeBackground = false
	options.ShowScrollbar = true
	options.ActionButton = buttons.VirtualButtonX
	options.EnableAction = true

	result, err := gaba.DetailScreen("", options, []gaba.FooterHelpItem{FooterBack(), FooterRescan()})
	if err != nil {
		if errors.Is(err, gaba.ErrCancelled) {
			return back(output), nil
		}
		gaba.GetLogger().Error("Info screen error", "error", err)
		return withCode(output, gaba.ExitCodeError), err
	}

	if result.Action == gaba.DetailActionTriggered {
		output.Action = InfoActionRescan
		return withCode(output, constants.ExitCodeReload), nil
	}

	return back(output), nil
}

func (s *InfoScreen) buildSections(input InfoInput) []gaba.Section {
	sections := make([]gaba.Section, 0, 3)

	versionInfo := version.Get()
	versionMetadata := []gaba.MetadataItem{
		{Label: i18n.Localize(&goi18n.Message{ID: "info_version", Other: "Version"}, nil), Value: versionInfo.Version},
		{Label: i18n.Localize(&goi18n.Message{ID: "info_commit", Other: "Commit"}, nil), Value: versionInfo.GitCommit},
		{Label: i18n.Localize(&goi18n.Message{ID: "info_build_date", Other: "Build Date"}, nil), Value: versionInfo.BuildDate},
		{Label: i18n.Localize(&goi18n.Message{ID: "info_go_version", Other: "Go"}, nil), Value: versionInfo.GoVersion},
	}
	sections = append(sections, gaba.NewInfoSection("Ryulaunch", versionMetadata))

	if input.Config != nil {
		sections = append(sections, gaba.NewInfoSection(
			i18n.Localize(&goi18n.Message{ID: "info_library", Other: "Library"}, nil),
			[]gaba.MetadataItem{
				{Label: i18n.Localize(&goi18n.Message{ID: "info_ryujinx_path", Other: "Ryujinx"}, nil), Value: input.Config.RyujinxPath},
				{Label: i18n.Localize(&goi18n.Message{ID: "info_games_path", Other: "Games"}, nil), Value: input.Config.GamesPath},
				{Label: i18n.Localize(&goi18n.Message{ID: "info_games_count", Other: "Games Found"}, nil), Value: strconv.Itoa(input.CatalogSize)},
			},
		))
	}

	if len(input.Recent) > 0 {
		recent := make([]gaba.MetadataItem, 0, len(input.Recent))
		for _, session := range input.Recent {
			recent = append(recent, gaba.MetadataItem{
				Label: session.GameName,
				Value: sessionSummary(session),
			})
		}
		sections = append(sections, gaba.NewInfoSection(
			i18n.Localize(&goi18n.Message{ID: "info_recent", Other: "Recently Played"}, nil),
			recent,
		))
	}

	return sections
}

func sessionSummary(session history.Session) string {
	started := session.StartedAt.Local().Format("2006-01-02 15:04")
	if session.Running() {
		return started
	}
	return started + " (" + session.Duration().Round(time.Minute).String() + ")"
}
