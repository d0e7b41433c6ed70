package scenegraph

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. The default discards everything.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used for debug-mode diagnostics. Pass nil to
// restore the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l.Named("scenegraph"))
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}

// debugLog reports per-frame traversal stats.
func (s *Scene) debugLog(stats FrameStats, d time.Duration) {
	Logger().Debug("frame",
		zap.Duration("traverse", d),
		zap.Int("visited", stats.Visited),
		zap.Int("drawCalls", stats.DrawCalls),
		zap.Int("maxDepth", stats.MaxDepth))
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("node", n.name))
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("child count exceeds threshold",
			zap.String("node", n.name),
			zap.Int("children", len(n.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}
