package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"simple", "simple"},
		{"with spaces", "with_spaces"},
		{"path/to/file", "path_to_file"},
		{"special!@#$%", "special_____"},
		{"ok-name.v2", "ok-name.v2"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MiXeD_123", "MiXeD_123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeLabel(tt.in), "SanitizeLabel(%q)", tt.in)
	}
}

func TestPath(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, filepath.Join("out", "20260304_050607_arm_up.svg"), Path("out", "arm up", "svg", now))
	assert.Equal(t, filepath.Join("out", "20260304_050607_unlabeled.png"), Path("out", "", ".png", now))
}

func TestCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	f, err := Create(dir, "frame", "svg", now)
	require.NoError(t, err)
	_, err = f.WriteString("<svg/>")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(Path(dir, "frame", "svg", now))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}
