package mainloop

import "sync"

// Coalescer merges bursts of same-key submissions into one control-thread
// callback that receives the latest value. Resize storms collapse into a
// single geometry sync this way.
type Coalescer[K comparable, V any] struct {
	mu        sync.Mutex
	latest    map[K]V
	scheduled map[K]bool
	post      func(func())
	apply     func(K, V)
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules through post and delivers
// values to apply.
func NewCoalescer[K comparable, V any](post func(func()), apply func(K, V)) *Coalescer[K, V] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	if apply == nil {
		panic("mainloop.NewCoalescer: apply function cannot be nil")
	}

	return &Coalescer[K, V]{
		latest:    make(map[K]V),
		scheduled: make(map[K]bool),
		post:      post,
		apply:     apply,
	}
}

// Submit records v as the latest value for key and schedules delivery if
// none is pending.
func (c *Coalescer[K, V]) Submit(key K, v V) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.latest[key] = v
	if c.scheduled[key] {
		c.mu.Unlock()
		return
	}
	c.scheduled[key] = true
	c.mu.Unlock()

	c.post(func() { c.flush(key) })
}

func (c *Coalescer[K, V]) flush(key K) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	v, ok := c.latest[key]
	delete(c.latest, key)
	delete(c.scheduled, key)
	c.mu.Unlock()

	if ok {
		c.apply(key, v)
	}
}

// Destroy drops pending values; scheduled callbacks become no-ops.
func (c *Coalescer[K, V]) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.latest = map[K]V{}
	c.scheduled = map[K]bool{}
	c.mu.Unlock()
}
