package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func writeLookup(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, LookupFilename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildWithoutMedia(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "A.nsp", "B[v2].xci")
	lookup := writeLookup(t, root, `{"Unrelated": {"id": "0100000000010000"}}`)

	builder := NewBuilder("assets", nil)
	games, err := builder.Build(root, lookup)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("Build() returned %d games, want 2", len(games))
	}

	defaults := DefaultsIn("assets")
	wantNames := map[string]string{"A": ".nsp", "B": ".xci"}
	for _, game := range games {
		ext, ok := wantNames[game.Name]
		if !ok {
			t.Errorf("unexpected game %q", game.Name)
			continue
		}
		if game.Extension != ext {
			t.Errorf("%s extension = %q, want %q", game.Name, game.Extension, ext)
		}
		if game.HasID() {
			t.Errorf("%s has id %q, want none", game.Name, game.ID)
		}
		if game.CoverImagePath != defaults.Cover {
			t.Errorf("%s cover = %q, want %q", game.Name, game.CoverImagePath, defaults.Cover)
		}
		if game.ScreenshotImagePath != defaults.Screenshot {
			t.Errorf("%s screenshot = %q, want %q", game.Name, game.ScreenshotImagePath, defaults.Screenshot)
		}
		if game.BackgroundImagePath != defaults.Background {
			t.Errorf("%s background = %q, want %q", game.Name, game.BackgroundImagePath, defaults.Background)
		}
	}
}

func TestBuildFiltersEntries(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"One.nsp",
		"Two.XCI",
		"Three (USA).Nsp",
		"readme.txt",
		"archive.zip",
		"media/cover.png",
	)
	if err := os.Mkdir(filepath.Join(root, "folder.nsp"), 0755); err != nil {
		t.Fatal(err)
	}
	lookup := writeLookup(t, root, `{}`)

	games, err := Build(root, lookup)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(games) != 3 {
		t.Fatalf("Build() returned %d games, want 3: %+v", len(games), games)
	}

	for _, game := range games {
		if game.CoverImagePath == "" || game.ScreenshotImagePath == "" || game.BackgroundImagePath == "" {
			t.Errorf("%s has an empty image path", game.Name)
		}
		if filepath.Dir(game.FilePath) != root {
			t.Errorf("%s file path = %q, want it inside %q", game.Name, game.FilePath, root)
		}
	}

	if idx := games.IndexOf(filepath.Join(root, "Two.XCI")); idx < 0 {
		t.Error("IndexOf(Two.XCI) = -1, want a match")
	}
}

func TestBuildResolvesArtAndIDs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"Game Title [1.0.0](USA).nsp",
		"Other Game.xci",
		"media/game title.PNG",
		"media/game title.txt",
		"media/screenshottitle/Game Title - title.jpeg",
		"media/background/Game Title.jpg",
		"media/background/Other Game.gif",
	)
	lookup := writeLookup(t, root, `{"Game Title": {"id": "0100ABCD00000000"}}`)

	defaults := DefaultsIn("assets")
	builder := &Builder{Defaults: defaults}

	games, err := builder.Build(root, lookup)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("Build() returned %d games, want 2", len(games))
	}

	idx := games.IndexOf(filepath.Join(root, "Game Title [1.0.0](USA).nsp"))
	if idx < 0 {
		t.Fatal("Game Title not found in catalog")
	}
	game := games[idx]

	if game.Name != "Game Title" {
		t.Errorf("Name = %q, want %q", game.Name, "Game Title")
	}
	if game.ID != "0100ABCD00000000" {
		t.Errorf("ID = %q, want 0100ABCD00000000", game.ID)
	}
	if want := filepath.Join(root, "media", "game title.PNG"); game.CoverImagePath != want {
		t.Errorf("cover = %q, want %q", game.CoverImagePath, want)
	}
	if want := filepath.Join(root, "media", "screenshottitle", "Game Title - title.jpeg"); game.ScreenshotImagePath != want {
		t.Errorf("screenshot = %q, want %q", game.ScreenshotImagePath, want)
	}
	if want := filepath.Join(root, "media", "background", "Game Title.jpg"); game.BackgroundImagePath != want {
		t.Errorf("background = %q, want %q", game.BackgroundImagePath, want)
	}

	other := games[games.IndexOf(filepath.Join(root, "Other Game.xci"))]
	if other.CoverImagePath != defaults.Cover {
		t.Errorf("other cover = %q, want default %q", other.CoverImagePath, defaults.Cover)
	}
	if other.BackgroundImagePath != defaults.Background {
		t.Errorf("other background = %q, want default %q", other.BackgroundImagePath, defaults.Background)
	}
}

func TestBuildFirstMatchWins(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"Mario.nsp",
		"media/Mario Kart.png",
		"media/Mario.png",
	)
	lookup := writeLookup(t, root, `{}`)

	games, err := Build(root, lookup)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if want := filepath.Join(root, "media", "Mario Kart.png"); games[0].CoverImagePath != want {
		t.Errorf("cover = %q, want first listed match %q", games[0].CoverImagePath, want)
	}
}

func TestBuildLookupFailures(t *testing.T) {
	tests := []struct {
		name    string
		lookup  string
		wantErr error
	}{
		{"malformed", `{"Game": {"id": `, ErrLookupMalformed},
		{"not an object", `["Game"]`, ErrLookupMalformed},
		{"missing", "", ErrLookupMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, "Game.nsp")

			lookupPath := filepath.Join(root, LookupFilename)
			if tt.lookup != "" {
				lookupPath = writeLookup(t, root, tt.lookup)
			}

			games, err := Build(root, lookupPath)
			if len(games) != 0 {
				t.Errorf("Build() returned %d games, want empty catalog", len(games))
			}

			var loadErr *LookupLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Build() error = %v, want *LookupLoadError", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildSkipsUnusableLookupEntries(t *testing.T) {
	tests := []struct {
		name   string
		lookup string
		wantID string
	}{
		{"numeric id", `{"Game": {"id": 123}}`, ""},
		{"string entry beside a good one", `{"Other": "x", "Game": {"id": "0100"}}`, "0100"},
		{"null id", `{"Game": {"id": null}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, "Game.nsp")
			lookup := writeLookup(t, root, tt.lookup)

			games, err := Build(root, lookup)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if len(games) != 1 {
				t.Fatalf("Build() returned %d games, want 1", len(games))
			}
			if games[0].ID != tt.wantID {
				t.Errorf("ID = %q, want %q", games[0].ID, tt.wantID)
			}
		})
	}
}

func TestBuildImageKindsResolveIndependently(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	writeFiles(t, root,
		"Game.nsp",
		"media/Game.png",
		"media/screenshottitle/Game.png",
		"media/background/Game.jpg",
	)
	lookup := writeLookup(t, root, `{}`)

	locked := filepath.Join(root, "media", "screenshottitle")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	builder := NewBuilder("assets", nil)
	games, err := builder.Build(root, lookup)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("Build() returned %d games, want 1", len(games))
	}

	game := games[0]
	if game.ScreenshotImagePath != builder.Defaults.Screenshot {
		t.Errorf("ScreenshotImagePath = %q, want default %q", game.ScreenshotImagePath, builder.Defaults.Screenshot)
	}
	if want := filepath.Join(root, "media", "Game.png"); game.CoverImagePath != want {
		t.Errorf("CoverImagePath = %q, want %q", game.CoverImagePath, want)
	}
	if want := filepath.Join(root, "media", "background", "Game.jpg"); game.BackgroundImagePath != want {
		t.Errorf("BackgroundImagePath = %q, want %q", game.BackgroundImagePath, want)
	}
}

func TestBuildUnreadableGamesDir(t *testing.T) {
	root := t.TempDir()
	lookup := writeLookup(t, root, `{}`)

	games, err := Build(filepath.Join(root, "missing"), lookup)
	if !errors.Is(err, ErrGamesDirUnreadable) {
		t.Errorf("Build() error = %v, want ErrGamesDirUnreadable", err)
	}
	if len(games) != 0 {
		t.Errorf("Build() returned %d games, want 0", len(games))
	}
}

func TestImageKindSubdir(t *testing.T) {
	tests := []struct {
		kind     ImageKind
		expected string
	}{
		{ImageKindCover, "media"},
		{ImageKindScreenshot, filepath.Join("media", "screenshottitle")},
		{ImageKindBackground, filepath.Join("media", "background")},
	}

	for _, tt := range tests {
		if got := tt.kind.Subdir(); got != tt.expected {
			t.Errorf("%s.Subdir() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
