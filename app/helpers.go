package main

import (
	"ryulaunch/catalog"
	"ryulaunch/internal/gamelist"
	"ryulaunch/internal/imageutil"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	uatomic "go.uber.org/atomic"
)

const (
	artWidth  = 768
	artHeight = 540
)

func localize(id, fallback string) string {
	return i18n.Localize(&goi18n.Message{ID: id, Other: fallback}, nil)
}

func gamelistExport(gamesPath string, games catalog.Catalog) error {
	return gamelist.WriteCatalog(gamesPath, games, gaba.GetLogger())
}

// prefetchArt scales every background up front so the carousel does not
// stall on large images while browsing.
func prefetchArt(artDir string, games catalog.Catalog) {
	if games.Len() == 0 {
		return
	}

	logger := gaba.GetLogger()
	progress := uatomic.NewFloat64(0)

	gaba.ProcessMessage(
		localize("library_preparing_art", "Preparing artwork..."),
		gaba.ProcessMessageOptions{
			ShowThemeBackground: true,
			ShowProgressBar:     true,
			Progress:            progress,
		},
		func() (interface{}, error) {
			for i, game := range games {
				if _, err := imageutil.FitImage(game.BackgroundImagePath, artDir, artWidth, artHeight); err != nil {
					logger.Warn("Unable to prepare background", "game", game.Name, "error", err)
				}
				progress.Store(float64(i+1) / float64(games.Len()))
			}
			return nil, nil
		},
	)
}
