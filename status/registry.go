package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// The scheduler caches pointers at construction; the debug status line reads them each frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Pairs renders every metric as key=value, strings first, then ints, floats and bools
func (r *Registry) Pairs() []string {
	out := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, k+"="+v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, k+"="+strconv.FormatFloat(v.Get(), 'f', 2, 64))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, k+"="+strconv.FormatBool(v.Load()))
	})
	return out
}
