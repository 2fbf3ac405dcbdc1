package history

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := Open(filepath.Join(t.TempDir(), "data", DBFilename), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestSessions(t *testing.T) {
	m := openTestManager(t)

	first, err := m.StartSession("/games/A.nsp", "A", "0100")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if err := m.EndSession(first, 0); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}

	second, err := m.StartSession("/games/B.xci", "B", "")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	sessions, err := m.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() error = %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("RecentSessions() len = %d, want 2", len(sessions))
	}

	if sessions[0].ID != second || !sessions[0].Running() {
		t.Errorf("newest session = %+v, want running session %d", sessions[0], second)
	}
	if sessions[1].ExitCode == nil || *sessions[1].ExitCode != 0 || sessions[1].Running() {
		t.Errorf("finished session = %+v, want exit code 0", sessions[1])
	}
	if sessions[0].Duration() != 0 || sessions[1].Duration() < 0 {
		t.Errorf("durations = %v, %v", sessions[0].Duration(), sessions[1].Duration())
	}
	if sessions[1].TitleID != "0100" {
		t.Errorf("TitleID = %q, want 0100", sessions[1].TitleID)
	}

	if err := m.EndSession(first, 1); !errors.Is(err, ErrNoSession) {
		t.Errorf("ending a finished session: error = %v, want ErrNoSession", err)
	}

	limited, err := m.RecentSessions(1)
	if err != nil || len(limited) != 1 {
		t.Errorf("RecentSessions(1) = %d sessions, %v", len(limited), err)
	}
}

func TestPlayCount(t *testing.T) {
	m := openTestManager(t)

	for i := 0; i < 3; i++ {
		if _, err := m.StartSession("/games/A.nsp", "A", ""); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		path     string
		expected int
	}{
		{"/games/A.nsp", 3},
		{"/games/missing.nsp", 0},
	}

	for _, tt := range tests {
		got, err := m.PlayCount(tt.path)
		if err != nil {
			t.Fatalf("PlayCount(%q) error = %v", tt.path, err)
		}
		if got != tt.expected {
			t.Errorf("PlayCount(%q) = %d, want %d", tt.path, got, tt.expected)
		}
	}
}

func TestLastSelected(t *testing.T) {
	m := openTestManager(t)

	got, err := m.LastSelected()
	if err != nil || got != "" {
		t.Fatalf("LastSelected() on a fresh database = %q, %v", got, err)
	}

	if err := m.SetLastSelected("/games/A.nsp"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetLastSelected("/games/B.xci"); err != nil {
		t.Fatal(err)
	}

	got, err = m.LastSelected()
	if err != nil || got != "/games/B.xci" {
		t.Errorf("LastSelected() = %q, %v, want /games/B.xci", got, err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFilename)

	m, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetLastSelected("/games/A.nsp"); err != nil {
		t.Fatal(err)
	}
	m.Close()

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if got, _ := reopened.LastSelected(); got != "/games/A.nsp" {
		t.Errorf("LastSelected() after reopen = %q", got)
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager

	if _, err := m.StartSession("a", "a", ""); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("StartSession() error = %v, want ErrNotInitialized", err)
	}
	if _, err := m.LastSelected(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("LastSelected() error = %v, want ErrNotInitialized", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() on nil manager = %v", err)
	}
}
