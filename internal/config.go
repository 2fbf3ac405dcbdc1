package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"ryulaunch/catalog"
	"ryulaunch/internal/fileutil"

	"golang.org/x/text/language"
)

// Unset is the placeholder written for paths the user still has to fill in.
const Unset = "none"

const DefaultConfigFilename = "config.json"

var ErrPathsNotSet = errors.New("ryujinx_path and games_path must be set in config.json")

type Config struct {
	RyujinxPath   string    `json:"ryujinx_path"`
	GamesPath     string    `json:"games_path"`
	LookupPath    string    `json:"lookup_path,omitempty"`
	AssetsPath    string    `json:"assets_path,omitempty"`
	EmulatorArgs  []string  `json:"emulator_args,omitempty"`
	LogLevel      LogLevel  `json:"log_level,omitempty"`
	Language      string    `json:"language,omitempty"`
	InputMode     InputMode `json:"input_mode,omitempty"`
	WriteGamelist bool      `json:"write_gamelist,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		RyujinxPath: Unset,
		GamesPath:   Unset,
	}
}

func (c Config) ToLoggable() any {
	return map[string]any{
		"ryujinx_path":   c.RyujinxPath,
		"games_path":     c.GamesPath,
		"lookup_path":    c.ResolvedLookupPath(),
		"assets_path":    c.AssetsPath,
		"emulator_args":  c.EmulatorArgs,
		"log_level":      c.LogLevel,
		"language":       c.Language,
		"input_mode":     c.InputMode,
		"write_gamelist": c.WriteGamelist,
	}
}

// ConfigPath is config.json in the working directory unless RYULAUNCH_CONFIG
// points elsewhere.
func ConfigPath() string {
	if override := os.Getenv("RYULAUNCH_CONFIG"); override != "" {
		return override
	}
	return DefaultConfigFilename
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	config.applyDefaults()

	return config, nil
}

// EnsureConfig loads the config at path, writing the default document first
// when the file does not exist yet.
func EnsureConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		config := DefaultConfig()
		if err := SaveConfig(path, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	return LoadConfig(path)
}

func SaveConfig(path string, config *Config) error {
	config.applyDefaults()

	pretty, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, pretty, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.RyujinxPath == "" {
		c.RyujinxPath = Unset
	}

	if c.GamesPath == "" {
		c.GamesPath = Unset
	}

	if c.LogLevel == "" {
		c.LogLevel = LogLevelError
	}

	if c.Language == "" {
		c.Language = "en"
	} else if _, err := language.Parse(c.Language); err != nil {
		c.Language = "en"
	}

	if !c.InputMode.Valid() {
		c.InputMode = InputModeAuto
	}

	if c.AssetsPath == "" {
		c.AssetsPath = catalog.DefaultAssetsPath
	}
}

func (c Config) Validate() error {
	if c.RyujinxPath == Unset || c.RyujinxPath == "" || c.GamesPath == Unset || c.GamesPath == "" {
		return ErrPathsNotSet
	}
	return nil
}

// ResolvedLookupPath defaults to games.json inside the games directory.
func (c Config) ResolvedLookupPath() string {
	if c.LookupPath != "" {
		return c.LookupPath
	}
	return filepath.Join(c.GamesPath, catalog.LookupFilename)
}

// HasMediaImages reports whether the cover folder exists and holds at least
// one PNG. Without it every game shows the placeholder card.
func HasMediaImages(gamesPath string) bool {
	mediaPath := filepath.Join(gamesPath, catalog.ImageKindCover.Subdir())
	if !fileutil.DirExists(mediaPath) {
		return false
	}

	entries, err := os.ReadDir(mediaPath)
	if err != nil {
		return false
	}

	for _, entry := range fileutil.FilterVisibleFiles(entries) {
		if filepath.Ext(entry.Name()) == ".png" {
			return true
		}
	}

	return false
}
