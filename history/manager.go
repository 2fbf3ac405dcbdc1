package history

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const DBFilename = "ryulaunch.db"

// Manager records play sessions and launcher state in a local sqlite file.
// A nil *Manager is valid and turns every call into ErrNotInitialized, so the
// launcher keeps working when the database cannot be opened.
type Manager struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
	logger *slog.Logger
}

func Open(dbPath string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, newHistoryError("open", "", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, newHistoryError("open", "", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, newHistoryError("open", "", err)
	}

	logger.Debug("History database opened", "path", dbPath)

	return &Manager{
		db:     db,
		dbPath: dbPath,
		logger: logger,
	}, nil
}

func (m *Manager) Path() string {
	if m == nil {
		return ""
	}
	return m.dbPath
}

func (m *Manager) Close() error {
	if m == nil || m.db == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.db.Close()
	m.db = nil
	return err
}

func (m *Manager) ready() bool {
	return m != nil && m.db != nil
}
