package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"ryulaunch/internal/fileutil"
	"ryulaunch/internal/stringutil"
)

type ImageKind string

const (
	ImageKindCover      ImageKind = "cover"
	ImageKindScreenshot ImageKind = "screenshot"
	ImageKindBackground ImageKind = "background"
)

const DefaultAssetsPath = "contents"

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// Subdir is the folder under the games directory holding art of this kind.
func (k ImageKind) Subdir() string {
	switch k {
	case ImageKindScreenshot:
		return filepath.Join("media", "screenshottitle")
	case ImageKindBackground:
		return filepath.Join("media", "background")
	default:
		return "media"
	}
}

// Defaults are the placeholder assets used when no art matches a game.
type Defaults struct {
	Cover      string
	Screenshot string
	Background string
}

func DefaultsIn(assetsPath string) Defaults {
	return Defaults{
		Cover:      filepath.Join(assetsPath, "default_card.png"),
		Screenshot: filepath.Join(assetsPath, "default_screenshot.png"),
		Background: filepath.Join(assetsPath, "default_background.jpg"),
	}
}

func (d Defaults) For(kind ImageKind) string {
	switch kind {
	case ImageKindScreenshot:
		return d.Screenshot
	case ImageKindBackground:
		return d.Background
	default:
		return d.Cover
	}
}

// findImage returns the first image in dir, in listing order, whose name
// starts with gameName ignoring case.
func findImage(dir, gameName string) (string, bool, error) {
	if !fileutil.DirExists(dir) {
		return "", false, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, fmt.Errorf("listing %s: %w", dir, err)
	}

	for _, entry := range fileutil.FilterVisibleFiles(entries) {
		name := entry.Name()
		if stringutil.HasPrefixFold(name, gameName) && fileutil.HasExtension(name, imageExtensions...) {
			return filepath.Join(dir, name), true, nil
		}
	}

	return "", false, nil
}

func (b *Builder) resolveImage(gamesPath, gameName string, kind ImageKind) string {
	dir := filepath.Join(gamesPath, kind.Subdir())

	path, found, err := findImage(dir, gameName)
	if err != nil {
		b.logger().Error("Unable to resolve game image", "kind", kind, "game", gameName, "error", err)
	}
	if !found {
		return b.Defaults.For(kind)
	}

	return path
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}
