package history

import (
	"database/sql"
	"errors"
	"time"
)

type Session struct {
	ID        int64
	GamePath  string
	GameName  string
	TitleID   string
	StartedAt time.Time
	EndedAt   *time.Time
	ExitCode  *int
}

func (s Session) Running() bool {
	return s.EndedAt == nil
}

// Duration is zero while the session is still running.
func (s Session) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

func (m *Manager) StartSession(gamePath, gameName, titleID string) (int64, error) {
	if !m.ready() {
		return 0, ErrNotInitialized
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.db.Exec(`
		INSERT INTO sessions (game_path, game_name, title_id, started_at) VALUES (?, ?, ?, ?)
	`, gamePath, gameName, titleID, nowUTC())
	if err != nil {
		return 0, newHistoryError("start", "sessions", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, newHistoryError("start", "sessions", err)
	}

	m.logger.Debug("Session started", "id", id, "game", gameName)
	return id, nil
}

func (m *Manager) EndSession(id int64, exitCode int) error {
	if !m.ready() {
		return ErrNotInitialized
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.db.Exec(`
		UPDATE sessions SET ended_at = ?, exit_code = ? WHERE id = ? AND ended_at IS NULL
	`, nowUTC(), exitCode, id)
	if err != nil {
		return newHistoryError("end", "sessions", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return newHistoryError("end", "sessions", err)
	}
	if affected == 0 {
		return newHistoryError("end", "sessions", ErrNoSession)
	}

	return nil
}

// RecentSessions returns the newest sessions first.
func (m *Manager) RecentSessions(limit int) ([]Session, error) {
	if !m.ready() {
		return nil, ErrNotInitialized
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, err := m.db.Query(`
		SELECT id, game_path, game_name, title_id, started_at, ended_at, exit_code
		FROM sessions ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, newHistoryError("query", "sessions", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			s         Session
			startedAt string
			endedAt   sql.NullString
			exitCode  sql.NullInt64
		)
		if err := rows.Scan(&s.ID, &s.GamePath, &s.GameName, &s.TitleID, &startedAt, &endedAt, &exitCode); err != nil {
			return nil, newHistoryError("query", "sessions", err)
		}

		s.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		if endedAt.Valid {
			if t, err := time.Parse(time.RFC3339, endedAt.String); err == nil {
				s.EndedAt = &t
			}
		}
		if exitCode.Valid {
			code := int(exitCode.Int64)
			s.ExitCode = &code
		}

		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, newHistoryError("query", "sessions", err)
	}

	return sessions, nil
}

func (m *Manager) PlayCount(gamePath string) (int, error) {
	if !m.ready() {
		return 0, ErrNotInitialized
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int
	err := m.db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE game_path = ?`, gamePath).Scan(&count)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, newHistoryError("query", "sessions", err)
	}

	return count, nil
}
