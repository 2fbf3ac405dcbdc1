package gamelist

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"ryulaunch/catalog"
	"ryulaunch/internal/fileutil"
	"strings"
)

// BackupSuffix names the copy of the previous gamelist kept next to it.
const BackupSuffix = ".bak"

// relativePath renders target the way EmulationStation expects, "./file".
func relativePath(gamesPath, target string) string {
	rel, err := filepath.Rel(gamesPath, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return target
	}
	return "./" + filepath.ToSlash(rel)
}

func gameFields(gamesPath string, game catalog.GameRecord) []Field {
	fields := []Field{
		{PathElement, relativePath(gamesPath, game.FilePath)},
		{NameElement, game.Name},
		{ImageElement, relativePath(gamesPath, game.CoverImagePath)},
		{ThumbnailElement, relativePath(gamesPath, game.ScreenshotImagePath)},
		{FanartElement, relativePath(gamesPath, game.BackgroundImagePath)},
	}
	if game.HasID() {
		fields = append(fields, Field{TitleIDElement, game.ID})
	}
	return fields
}

// WriteCatalog merges games into gamesPath/gamelist.xml, creating it if needed.
func WriteCatalog(gamesPath string, games catalog.Catalog, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	gamelistPath := filepath.Join(gamesPath, Filename)
	gl := New()

	if fileutil.FileExists(gamelistPath) {
		data, err := os.ReadFile(gamelistPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", gamelistPath, err)
		}
		if len(data) > 0 {
			if err := gl.Parse(data); err != nil {
				logger.Error("gamelist can't be parsed, leaving it untouched", "path", gamelistPath, "error", err)
				return fmt.Errorf("parsing %s: %w", gamelistPath, err)
			}
			if err := fileutil.CopyFile(gamelistPath, gamelistPath+BackupSuffix); err != nil {
				logger.Warn("Unable to back up gamelist", "path", gamelistPath, "error", err)
			}
		}
	}

	for _, game := range games {
		fields := gameFields(gamesPath, game)
		gl.AddOrUpdateEntry(fields[0].Value, fields)
	}

	if err := gl.Save(gamelistPath); err != nil {
		logger.Error("Unable to save gamelist file", "error", err, "path", gamelistPath)
		return err
	}

	logger.Debug("Successfully saved gamelist file", "path", gamelistPath, "games", len(games))
	return nil
}
