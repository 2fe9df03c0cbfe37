package mainloop

import "testing"

func TestCoalescerDeliversLatestValueOnce(t *testing.T) {
	queue := make([]func(), 0, 8)
	var got []int
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) }, func(key string, v int) {
		got = append(got, v)
	})

	for i := 1; i <= 5; i++ {
		c.Submit("geometry", i)
	}

	if len(queue) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(queue))
	}
	queue[0]()

	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("expected latest value 5 delivered once, got %v", got)
	}
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 8)
	got := map[string]int{}
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) }, func(key string, v int) {
		got[key] = v
	})

	c.Submit("a", 1)
	c.Submit("b", 2)
	c.Submit("a", 3)

	if len(queue) != 2 {
		t.Fatalf("expected 2 scheduled callbacks, got %d", len(queue))
	}
	for _, fn := range queue {
		fn()
	}
	if got["a"] != 3 || got["b"] != 2 {
		t.Fatalf("unexpected deliveries: %v", got)
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	ran := false
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) }, func(string, int) { ran = true })

	c.Submit("geometry", 1)
	c.Destroy()

	if len(queue) != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", len(queue))
	}
	queue[0]()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	c.Submit("geometry", 2)
	if len(queue) != 1 {
		t.Fatalf("expected no new callback after destroy, got %d", len(queue))
	}
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when post is nil")
		}
	}()

	_ = NewCoalescer[string, int](nil, func(string, int) {})
}
