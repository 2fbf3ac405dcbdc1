package jsonutil

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSONMap reads a JSON object from disk into a map.
func LoadJSONMap[K comparable, V any](path string) (map[K]V, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return parseJSONMap[K, V](path, data)
}

func parseJSONMap[K comparable, V any](path string, data []byte) (map[K]V, error) {
	var result map[K]V
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if result == nil {
		result = make(map[K]V)
	}

	return result, nil
}
