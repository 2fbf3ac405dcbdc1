package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"ryulaunch/internal/jsonutil"
)

const LookupFilename = "games.json"

type LookupEntry struct {
	ID string `json:"id"`
}

// LookupTable maps a cleaned game name to its title identifier.
type LookupTable map[string]LookupEntry

// LoadLookup reads games.json. A missing file and a document that is not a
// JSON object are reported as distinct wrapped errors inside a
// *LookupLoadError. Entries that are not {"id": string} are skipped.
func LoadLookup(path string) (LookupTable, error) {
	return loadLookup(path, slog.Default())
}

func loadLookup(path string, logger *slog.Logger) (LookupTable, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LookupLoadError{Path: path, Err: ErrLookupMissing}
		}
		return nil, &LookupLoadError{Path: path, Err: err}
	}

	raw, err := jsonutil.LoadJSONMap[string, json.RawMessage](path)
	if err != nil {
		return nil, &LookupLoadError{Path: path, Err: errors.Join(ErrLookupMalformed, err)}
	}

	table := make(LookupTable, len(raw))
	for name, data := range raw {
		var entry LookupEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			logger.Warn("Skipping unusable lookup entry", "path", path, "game", name, "error", err)
			continue
		}
		table[name] = entry
	}

	return table, nil
}

// IDFor returns the identifier for a cleaned name, or "" when there is none.
func (t LookupTable) IDFor(name string) string {
	if t == nil {
		return ""
	}
	return t[name].ID
}
