package ui

import (
	"ryulaunch/internal/imageutil"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
)

const (
	screenImageWidth  = 768
	screenImageHeight = 540
	detailImageWidth  = 640
	detailImageHeight = 480
)

// displayArt returns a copy of path scaled into the box, or path itself when
// scaling fails or artDir is unset.
func displayArt(path, artDir string, maxWidth, maxHeight int) string {
	if path == "" || artDir == "" {
		return path
	}
	fitted, err := imageutil.FitImage(path, artDir, maxWidth, maxHeight)
	if err != nil {
		gaba.GetLogger().Warn("Unable to scale artwork", "path", path, "error", err)
		return path
	}
	return fitted
}
