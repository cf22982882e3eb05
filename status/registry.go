package status

import "sync/atomic"

// Registry groups the session metrics by value type
// Producers cache pointers once; the frame loop writes atomics directly and
// readers (HUD, spectator endpoint) take snapshots from other goroutines
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot copies every metric into a flat map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	return r.Group("")
}

// Group copies the metrics whose names start with prefix, e.g. "move."
func (r *Registry) Group(prefix string) map[string]any {
	out := make(map[string]any)
	r.Bools.Range(prefix, func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(prefix, func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(prefix, func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(prefix, func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// TotalCount returns the number of registered metrics of every type
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
