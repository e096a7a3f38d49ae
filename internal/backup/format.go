package backup

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Format is a backup file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown backup format %q: must be json or yaml", s)
	}
}

// FormatFromPath picks the format from a file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FileName returns the conventional backup name for the calendar date of now,
// e.g. smartstock-backup-2026-10-15.json.
func FileName(now time.Time, format Format) string {
	return fmt.Sprintf("smartstock-backup-%s.%s", now.Format(time.DateOnly), format)
}
