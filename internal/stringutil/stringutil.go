package stringutil

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	BracketTagRegex     = regexp.MustCompile(`\[.*?\]`)
	ParenthesisTagRegex = regexp.MustCompile(`\(.*?\)`)
)

// StripExtension removes the file extension from a filename.
func StripExtension(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// CleanGameName drops the extension and every [...] and (...) tag group.
// "Game Title [1.0.0](USA).nsp" becomes "Game Title".
func CleanGameName(filename string) string {
	cleaned := StripExtension(filename)
	cleaned = BracketTagRegex.ReplaceAllString(cleaned, "")
	cleaned = ParenthesisTagRegex.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// HasPrefixFold reports whether s begins with prefix, ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(fold(s), fold(prefix))
}

// EqualFold compares two strings using full Unicode case folding.
func EqualFold(a, b string) bool {
	return fold(a) == fold(b)
}

// ExtensionBadge returns the upper-cased extension shown next to a title, e.g. "NSP".
func ExtensionBadge(ext string) string {
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

// Casers keep state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
