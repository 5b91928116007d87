package utils

import (
	"path/filepath"
	"strings"
)

// SecureFilename reduces an uploaded filename to a safe form: the base
// name only, spaces collapsed to underscores, anything outside
// [A-Za-z0-9._-] dropped, leading dots stripped. May return "" when
// nothing survives; callers must handle that.
func SecureFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	return strings.TrimLeft(b.String(), ".")
}

// HasAllowedExtension reports whether the filename carries one of the
// allowed extensions (compared case-insensitively, dot excluded).
func HasAllowedExtension(filename string, allowed []string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
