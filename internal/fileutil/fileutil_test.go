package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasExtension(t *testing.T) {
	tests := []struct {
		name     string
		exts     []string
		expected bool
	}{
		{"game.nsp", []string{".xci", ".nsp"}, true},
		{"GAME.XCI", []string{".xci", ".nsp"}, true},
		{"game.zip", []string{".xci", ".nsp"}, false},
		{"media", []string{".xci", ".nsp"}, false},
		{"cover.JPEG", []string{".jpg", ".jpeg", ".png"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasExtension(tt.name, tt.exts...); got != tt.expected {
				t.Errorf("HasExtension(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestFilterVisibleFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.nsp", ".hidden.nsp"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "media"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	visible := FilterVisibleFiles(entries)
	if len(visible) != 1 || visible[0].Name() != "a.nsp" {
		t.Errorf("FilterVisibleFiles = %v, want only a.nsp", visible)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dest := filepath.Join(dir, "nested", "dest.png")

	if err := os.WriteFile(src, []byte("art"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CopyFile(src, dest); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "art" {
		t.Errorf("copied content = %q, %v", data, err)
	}
	if !FileExists(dest) || !DirExists(filepath.Dir(dest)) {
		t.Error("expected destination file and directory to exist")
	}
}
