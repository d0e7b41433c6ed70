package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, false, "info")
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown", zap.Int("n", 3))
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, float64(3), entry["n"])
}

func TestNewDevMode(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, true, "debug")
	require.NoError(t, err)

	l.Debug("details")
	require.NoError(t, l.Sync())
	assert.Contains(t, buf.String(), "details")
	assert.False(t, strings.HasPrefix(buf.String(), "{"), "console encoding")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, false, "loud")
	assert.Error(t, err)
}

func TestContextCarriesLogger(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, rootLogger, From(ctx))

	l := zap.NewExample()
	ctx = Context(ctx, l)
	assert.Same(t, l, From(ctx))

	sub, subCtx := SubFrom(ctx, "editor")
	assert.Same(t, sub, From(subCtx))
	assert.NotSame(t, l, sub)

	withFields, fieldsCtx := FromWithFields(subCtx, zap.String("k", "v"))
	assert.Same(t, withFields, From(fieldsCtx))

	assert.Same(t, rootLogger, From(Context(context.Background(), nil)))
}
