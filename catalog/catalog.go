package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"ryulaunch/internal/fileutil"
	"ryulaunch/internal/stringutil"
	"strings"
)

var GameExtensions = []string{".xci", ".nsp"}

// mediaEntry is the art folder that sits next to the games.
const mediaEntry = "media"

type GameRecord struct {
	Name                string
	ID                  string
	Extension           string
	CoverImagePath      string
	ScreenshotImagePath string
	BackgroundImagePath string
	FilePath            string
}

func (g GameRecord) HasID() bool {
	return g.ID != ""
}

// Catalog is ordered by directory listing. Records are never mutated after a
// scan; a reload builds a new Catalog.
type Catalog []GameRecord

func (c Catalog) Len() int {
	return len(c)
}

// IndexOf returns the position of the record backed by filePath, or -1.
func (c Catalog) IndexOf(filePath string) int {
	for i, game := range c {
		if game.FilePath == filePath {
			return i
		}
	}
	return -1
}

type Builder struct {
	Defaults Defaults
	Logger   *slog.Logger
}

func NewBuilder(assetsPath string, logger *slog.Logger) *Builder {
	if assetsPath == "" {
		assetsPath = DefaultAssetsPath
	}
	return &Builder{
		Defaults: DefaultsIn(assetsPath),
		Logger:   logger,
	}
}

// Build scans gamesPath with the default assets and logger.
func Build(gamesPath, lookupPath string) (Catalog, error) {
	return NewBuilder(DefaultAssetsPath, nil).Build(gamesPath, lookupPath)
}

// Build loads the lookup table and scans gamesPath. When the lookup cannot be
// loaded no game is usable, so the catalog is empty and a *LookupLoadError is
// returned.
func (b *Builder) Build(gamesPath, lookupPath string) (Catalog, error) {
	logger := b.logger()

	lookup, err := loadLookup(lookupPath, logger)
	if err != nil {
		logger.Error("Unable to load game lookup", "path", lookupPath, "error", err)
		return Catalog{}, err
	}

	entries, err := os.ReadDir(gamesPath)
	if err != nil {
		logger.Error("Unable to read games directory", "path", gamesPath, "error", err)
		return Catalog{}, fmt.Errorf("%w: %w", ErrGamesDirUnreadable, err)
	}

	games := make(Catalog, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isGameFile(name) {
			continue
		}

		gameName := stringutil.CleanGameName(name)
		games = append(games, GameRecord{
			Name:                gameName,
			ID:                  lookup.IDFor(gameName),
			Extension:           strings.ToLower(filepath.Ext(name)),
			CoverImagePath:      b.resolveImage(gamesPath, gameName, ImageKindCover),
			ScreenshotImagePath: b.resolveImage(gamesPath, gameName, ImageKindScreenshot),
			BackgroundImagePath: b.resolveImage(gamesPath, gameName, ImageKindBackground),
			FilePath:            filepath.Join(gamesPath, name),
		})
	}

	logger.Debug("Catalog built", "path", gamesPath, "games", len(games))

	return games, nil
}

func isGameFile(name string) bool {
	return fileutil.HasExtension(name, GameExtensions...) && !stringutil.EqualFold(name, mediaEntry)
}
