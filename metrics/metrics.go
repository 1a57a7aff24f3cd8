// Package metrics exports prometheus metrics for splay trees: rotation
// counts and splay lengths from the tree's Observer hook, and operation
// outcomes and size from an instrumented wrapper.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the metrics for one named tree.
// It implements splay.Observer.
type Collector struct {
	rotations  prometheus.Counter
	splayDepth prometheus.Histogram
	operations *prometheus.CounterVec
	size       prometheus.Gauge
}

// NewCollector registers the tree metrics with reg under a constant
// "tree" label set to name. Registering two collectors with the same name
// on one registry panics, as with any duplicate prometheus registration.
func NewCollector(reg prometheus.Registerer, name string) *Collector {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"tree": name}
	return &Collector{
		rotations: factory.NewCounter(prometheus.CounterOpts{
			Name:        "splaytree_rotations_total",
			Help:        "Number of single rotations performed",
			ConstLabels: labels,
		}),
		splayDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "splaytree_splay_rotations",
			Help:        "Rotations needed to bring an accessed node to the root",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 12),
		}),
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "splaytree_operations_total",
			Help:        "Tree operations by kind and outcome",
			ConstLabels: labels,
		}, []string{"op", "result"}),
		size: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "splaytree_size",
			Help:        "Number of keys currently held",
			ConstLabels: labels,
		}),
	}
}

// Rotated counts a single rotation.
func (c *Collector) Rotated() {
	c.rotations.Inc()
}

// Splayed records the length of a completed splay.
func (c *Collector) Splayed(rotations int) {
	c.splayDepth.Observe(float64(rotations))
}

func (c *Collector) observeOp(op string, ok bool, hit, miss string) {
	result := miss
	if ok {
		result = hit
	}
	c.operations.WithLabelValues(op, result).Inc()
}
