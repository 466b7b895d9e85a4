package weather

import "github.com/go-gl/mathgl/mgl32"

// DefaultCapacity is the fixed number of particle slots the simulation owns.
const DefaultCapacity = 10000

// Particle is one pool slot. All fields except Active are stale while the
// slot is free; the emitter rewrites them on acquire.
type Particle struct {
	Pos     mgl32.Vec3
	Vel     mgl32.Vec3
	Life    float32 // remaining seconds, decreases while active
	MaxLife float32
	Size    float32 // base size captured from settings at emission
	Kind    Kind    // frozen at emission; decides streak vs flake shape
	Active  bool
}

// Pool owns all particle memory for the simulation's lifetime. Slots are
// recycled through a free-list stack of indices, so acquire and release are
// O(1) and nothing allocates after construction.
type Pool struct {
	slots []Particle
	free  []int32
	live  int
}

// NewPool creates a pool with the given fixed capacity.
// Capacity never changes after construction.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	p := &Pool{
		slots: make([]Particle, capacity),
		free:  make([]int32, capacity),
	}
	// Stack is popped from the back; load it reversed so low slot indices
	// are handed out first.
	for i := range p.free {
		p.free[i] = int32(capacity - 1 - i)
	}
	return p
}

// Capacity returns the fixed slot count.
func (p *Pool) Capacity() int {
	return len(p.slots)
}

// Live returns the number of currently active slots.
func (p *Pool) Live() int {
	return p.live
}

// Acquire pops a free slot and marks it active. The second return value is
// false when the pool is exhausted; exhaustion is expected steady-state
// behavior at high emission rates, not an error.
func (p *Pool) Acquire() (int32, bool) {
	n := len(p.free)
	if n == 0 {
		return -1, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.slots[idx].Active = true
	p.live++
	return idx, true
}

// Release returns a slot to the free set. Releasing an already-free slot is
// a no-op so the lifecycle pass can't corrupt the free list.
func (p *Pool) Release(idx int32) {
	if idx < 0 || int(idx) >= len(p.slots) || !p.slots[idx].Active {
		return
	}
	p.slots[idx].Active = false
	p.free = append(p.free, idx)
	p.live--
}

// At returns the slot record for in-place mutation.
func (p *Pool) At(idx int32) *Particle {
	return &p.slots[idx]
}

// Slots exposes the backing arena for the per-frame lifecycle walk.
// Callers must not append to or reslice it.
func (p *Pool) Slots() []Particle {
	return p.slots
}
