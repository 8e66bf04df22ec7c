package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Registry holds the process-wide counters surfaced on /healthz.
type Registry struct {
	RequestsServed Counter
	OrdersPlaced   Counter
	AuthFailures   Counter

	started time.Time
}

func NewRegistry() *Registry {
	return &Registry{started: time.Now()}
}

func (r *Registry) Uptime() time.Duration {
	return time.Since(r.started)
}
