package environment

import (
	"os"
	"strings"
)

// IsDevelopment is switched on with ENVIRONMENT=DEV.
func IsDevelopment() bool {
	return strings.EqualFold(os.Getenv("ENVIRONMENT"), "DEV")
}

// DataDir holds the history database. RYULAUNCH_DATA_DIR overrides the
// working directory.
func DataDir() string {
	if dir := os.Getenv("RYULAUNCH_DATA_DIR"); dir != "" {
		return dir
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
