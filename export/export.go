// Package export names and creates the files frames are exported to.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StampLayout is the timestamp prefix of every exported file name.
const StampLayout = "20060102_150405"

// Path returns dir/<stamp>_<label>.<ext> for the given time, with the label
// sanitized for use in a file name.
func Path(dir, label, ext string, now time.Time) string {
	name := fmt.Sprintf("%s_%s.%s", now.Format(StampLayout), SanitizeLabel(label), strings.TrimPrefix(ext, "."))
	return filepath.Join(dir, name)
}

// Create makes dir if needed and creates the export file for label. The
// caller closes the returned file.
func Create(dir, label, ext string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	path := Path(dir, label, ext, now)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: create %s: %w", path, err)
	}
	return f, nil
}

// SanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
