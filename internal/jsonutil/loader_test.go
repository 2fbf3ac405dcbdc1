package jsonutil

import (
	"os"
	"path/filepath"
	"testing"
)

type entry struct {
	ID string `json:"id"`
}

func TestLoadJSONMap(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	if err := os.WriteFile(valid, []byte(`{"Game": {"id": "0100"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"Game": `), 0644); err != nil {
		t.Fatal(err)
	}
	null := filepath.Join(dir, "null.json")
	if err := os.WriteFile(null, []byte(`null`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantLen int
		wantErr bool
	}{
		{"valid", valid, 1, false},
		{"malformed", broken, 0, true},
		{"missing", filepath.Join(dir, "missing.json"), 0, true},
		{"null document", null, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadJSONMap[string, entry](tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadJSONMap() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("LoadJSONMap() len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}
