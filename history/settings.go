package history

import (
	"database/sql"
	"errors"
)

const lastSelectedKey = "last_selected_path"

func (m *Manager) SetLastSelected(gamePath string) error {
	return m.setSetting(lastSelectedKey, gamePath)
}

// LastSelected returns the file path of the game highlighted when the launcher
// last closed, or "" if none was recorded.
func (m *Manager) LastSelected() (string, error) {
	return m.getSetting(lastSelectedKey)
}

func (m *Manager) setSetting(key, value string) error {
	if !m.ready() {
		return ErrNotInitialized
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.db.Exec(`
		INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, ?)
	`, key, value, nowUTC())
	if err != nil {
		return newHistoryError("setting", "settings", err)
	}

	return nil
}

func (m *Manager) getSetting(key string) (string, error) {
	if !m.ready() {
		return "", ErrNotInitialized
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var value string
	err := m.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", newHistoryError("setting", "settings", err)
	}

	return value, nil
}
