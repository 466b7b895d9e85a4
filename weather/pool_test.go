package weather

import "testing"

func TestPoolAcquireUntilExhausted(t *testing.T) {
	p := NewPool(4)

	seen := make(map[int32]bool)
	for i := 0; i < 4; i++ {
		idx, ok := p.Acquire()
		if !ok {
			t.Fatalf("acquire %d failed with %d slots free", i, 4-i)
		}
		if seen[idx] {
			t.Errorf("slot %d handed out twice", idx)
		}
		seen[idx] = true
	}

	if p.Live() != 4 {
		t.Errorf("expected 4 live, got %d", p.Live())
	}

	// Exhaustion is a soft condition, not a panic.
	if _, ok := p.Acquire(); ok {
		t.Error("expected acquire to fail on exhausted pool")
	}
	if p.Live() != 4 {
		t.Errorf("failed acquire changed live count to %d", p.Live())
	}
}

func TestPoolReleaseRecyclesSlot(t *testing.T) {
	p := NewPool(2)

	a, _ := p.Acquire()
	b, _ := p.Acquire()
	p.Release(a)

	if p.Live() != 1 {
		t.Errorf("expected 1 live after release, got %d", p.Live())
	}

	c, ok := p.Acquire()
	if !ok {
		t.Fatal("expected released slot to be reusable")
	}
	if c != a {
		t.Errorf("expected recycled slot %d, got %d", a, c)
	}
	_ = b
}

func TestPoolDoubleReleaseIgnored(t *testing.T) {
	p := NewPool(2)

	idx, _ := p.Acquire()
	p.Release(idx)
	p.Release(idx) // must not push the slot twice

	if p.Live() != 0 {
		t.Errorf("expected 0 live, got %d", p.Live())
	}

	// Both slots acquirable exactly once each.
	if _, ok := p.Acquire(); !ok {
		t.Fatal("first acquire failed")
	}
	if _, ok := p.Acquire(); !ok {
		t.Fatal("second acquire failed")
	}
	if _, ok := p.Acquire(); ok {
		t.Error("double release duplicated a free slot")
	}
}

func TestPoolReleaseOutOfRangeIgnored(t *testing.T) {
	p := NewPool(2)
	p.Release(-1)
	p.Release(99)
	if p.Live() != 0 {
		t.Errorf("expected 0 live, got %d", p.Live())
	}
}

func TestPoolDefaultCapacity(t *testing.T) {
	p := NewPool(0)
	if p.Capacity() != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, p.Capacity())
	}
}
