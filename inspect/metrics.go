package inspect

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phanxgames/scenegraph"
)

// Metrics collects frame and edit counters on a registry of its own, so
// several editors in one process (or one test binary) never collide.
//
// Metrics implements scenegraph.Observer: attach it next to the outline to
// count tree writes. The edit counter counts writes, not user actions: an
// eased edit writes the node once per frame until it settles.
type Metrics struct {
	registry *prometheus.Registry

	frames    prometheus.Counter
	drawCalls prometheus.Counter
	visited   prometheus.Gauge
	depth     prometheus.Gauge
	traverse  prometheus.Histogram
	edits     *prometheus.CounterVec
}

var _ scenegraph.Observer = (*Metrics)(nil)

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scenegraph_frames_total",
			Help: "Number of frames drawn",
		}),
		drawCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scenegraph_draw_calls_total",
			Help: "Number of geometry draws issued by traversal",
		}),
		visited: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scenegraph_nodes_visited",
			Help: "Nodes visited by the last traversal",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scenegraph_tree_depth",
			Help: "Deepest level reached by the last traversal",
		}),
		traverse: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scenegraph_traverse_seconds",
			Help:    "Time spent traversing the tree per frame",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scenegraph_edits_total",
			Help: "Number of tree writes by kind; eased edits count once per frame",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(m.frames, m.drawCalls, m.visited, m.depth, m.traverse, m.edits)
	return m
}

// ObserveFrame records one drawn frame. d may be zero when it was not
// measured.
func (m *Metrics) ObserveFrame(stats scenegraph.FrameStats, d time.Duration) {
	m.frames.Inc()
	m.drawCalls.Add(float64(stats.DrawCalls))
	m.visited.Set(float64(stats.Visited))
	m.depth.Set(float64(stats.MaxDepth))
	if d > 0 {
		m.traverse.Observe(d.Seconds())
	}
}

// ChildAdded counts a structural edit.
func (m *Metrics) ChildAdded(_, _ *scenegraph.Node) {
	m.edits.WithLabelValues("added").Inc()
}

// NodeChanged counts a parameter, color, geometry or name write.
func (m *Metrics) NodeChanged(_ *scenegraph.Node) {
	m.edits.WithLabelValues("changed").Inc()
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
