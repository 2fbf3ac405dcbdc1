package gamelist

import (
	"os"
	"path/filepath"
	"ryulaunch/catalog"
	"strings"
	"testing"
)

func TestAddOrUpdateEntry(t *testing.T) {
	gl := New()
	gl.AddOrUpdateEntry("./A.nsp", []Field{{PathElement, "./A.nsp"}, {NameElement, "A"}})
	gl.AddOrUpdateEntry("./A.nsp", []Field{{PathElement, "./A.nsp"}, {NameElement, "A Renamed"}, {TitleIDElement, "0100"}})
	gl.AddOrUpdateEntry("./B.xci", []Field{{PathElement, "./B.xci"}, {NameElement, "B"}})

	if gl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", gl.Len())
	}
	if name, _ := gl.Value("./A.nsp", NameElement); name != "A Renamed" {
		t.Errorf("name = %q, want %q", name, "A Renamed")
	}
	if id, ok := gl.Value("./A.nsp", TitleIDElement); !ok || id != "0100" {
		t.Errorf("titleid = %q, %v", id, ok)
	}
	if !gl.Contains(NameElement, "B") {
		t.Error("Contains(name, B) = false")
	}
}

func TestWriteCatalogMergesExisting(t *testing.T) {
	root := t.TempDir()
	existing := `<?xml version="1.0" encoding="UTF-8"?>
<gameList>
    <game>
        <path>./A.nsp</path>
        <name>Old Name</name>
        <desc>Scraped description</desc>
    </game>
</gameList>`
	if err := os.WriteFile(filepath.Join(root, Filename), []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	games := catalog.Catalog{
		{
			Name:                "A",
			ID:                  "0100ABCD00000000",
			FilePath:            filepath.Join(root, "A.nsp"),
			CoverImagePath:      filepath.Join(root, "media", "A.png"),
			ScreenshotImagePath: filepath.Join(root, "media", "screenshottitle", "A.png"),
			BackgroundImagePath: "contents/default_background.jpg",
		},
		{
			Name:     "B",
			FilePath: filepath.Join(root, "B.xci"),
		},
	}

	if err := WriteCatalog(root, games, nil); err != nil {
		t.Fatalf("WriteCatalog() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, Filename))
	if err != nil {
		t.Fatal(err)
	}

	gl := New()
	if err := gl.Parse(data); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if gl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", gl.Len())
	}

	tests := []struct {
		path, element, expected string
	}{
		{"./A.nsp", NameElement, "A"},
		{"./A.nsp", "desc", "Scraped description"},
		{"./A.nsp", ImageElement, "./media/A.png"},
		{"./A.nsp", ThumbnailElement, "./media/screenshottitle/A.png"},
		{"./A.nsp", FanartElement, "contents/default_background.jpg"},
		{"./A.nsp", TitleIDElement, "0100ABCD00000000"},
		{"./B.xci", NameElement, "B"},
	}

	for _, tt := range tests {
		got, ok := gl.Value(tt.path, tt.element)
		if !ok || got != tt.expected {
			t.Errorf("%s %s = %q (%v), want %q", tt.path, tt.element, got, ok, tt.expected)
		}
	}

	if _, ok := gl.Value("./B.xci", TitleIDElement); ok {
		t.Error("B has a titleid element, want none")
	}

	backup, err := os.ReadFile(filepath.Join(root, Filename+BackupSuffix))
	if err != nil || string(backup) != existing {
		t.Errorf("backup = %q, %v, want the previous gamelist", backup, err)
	}
}

func TestWriteCatalogRejectsBrokenFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, Filename)
	if err := os.WriteFile(path, []byte("<gameList><game>"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteCatalog(root, catalog.Catalog{{Name: "A", FilePath: filepath.Join(root, "A.nsp")}}, nil); err == nil {
		t.Fatal("WriteCatalog() error = nil, want parse error")
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "<gameList><game>") {
		t.Error("broken gamelist was overwritten")
	}
}
