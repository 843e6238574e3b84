// internal/util/util.go
package util

import (
	"os"
	"unicode/utf8"
)

// WriteFile replaces the contents of path with data. Existing files keep
// their permissions; new files are created with 0o644.
func WriteFile(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}
