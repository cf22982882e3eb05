package status

import (
	"slices"
	"sort"
	"strings"
	"sync"
)

// MetricMap holds named metrics of type T under dotted names like "move.pushes"
// Pointers are stable: producers look a metric up once and write it lock-free
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	names []string // sorted, so a group is a contiguous run
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for name, registering it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[name] = ptr
	i := sort.SearchStrings(m.names, name)
	m.names = slices.Insert(m.names, i, name)
	return ptr
}

// Range calls fn for every metric whose name starts with prefix, in name order
// An empty prefix visits everything
func (m *MetricMap[T]) Range(prefix string, fn func(name string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := sort.SearchStrings(m.names, prefix); i < len(m.names); i++ {
		name := m.names[i]
		if !strings.HasPrefix(name, prefix) {
			return
		}
		fn(name, m.items[name])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
