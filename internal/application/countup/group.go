package countup

import (
	"sync"
	"sync/atomic"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

// Group is one results section. Trigger is a fire-once latch: only the first call starts
// the instances, so a section scrolled in and out repeatedly animates once.
type Group struct {
	instances []*Instance
	onUpdate  func(index int, display string)

	triggered atomic.Bool
	remaining atomic.Int32
	done      chan struct{}
	doneOnce  sync.Once
	closeOnce sync.Once
}

// NewGroup builds Idle instances for metrics, staggered by their position. onUpdate may
// be nil.
func NewGroup(metrics []domain.ResultMetric, sched Scheduler, onUpdate func(index int, display string)) *Group {
	g := &Group{
		instances: make([]*Instance, len(metrics)),
		onUpdate:  onUpdate,
		done:      make(chan struct{}),
	}
	for idx, m := range metrics {
		if m.Animated() {
			g.remaining.Add(1)
		}
		g.instances[idx] = NewInstance(m, idx, sched, g.notifier(idx))
	}
	if g.remaining.Load() == 0 {
		g.finish()
	}
	return g
}

func (g *Group) notifier(idx int) func(string, bool) {
	return func(display string, done bool) {
		if g.onUpdate != nil {
			g.onUpdate(idx, display)
		}
		if done && g.remaining.Add(-1) == 0 {
			g.finish()
		}
	}
}

func (g *Group) finish() {
	g.doneOnce.Do(func() { close(g.done) })
}

// Trigger starts every animated instance. It reports whether this call fired the latch.
func (g *Group) Trigger() bool {
	if !g.triggered.CompareAndSwap(false, true) {
		return false
	}
	for _, in := range g.instances {
		in.Start()
	}
	return true
}

func (g *Group) Triggered() bool { return g.triggered.Load() }

// Close stops every instance. It is safe to call more than once.
func (g *Group) Close() {
	g.closeOnce.Do(func() {
		for _, in := range g.instances {
			in.Stop()
		}
	})
}

// Done is closed once every animated instance has reached Done. It is closed from the
// start for a group without animated metrics.
func (g *Group) Done() <-chan struct{} { return g.done }

func (g *Group) Len() int { return len(g.instances) }

func (g *Group) Instance(idx int) *Instance { return g.instances[idx] }

// Displays snapshots the current text of every instance in order.
func (g *Group) Displays() []string {
	out := make([]string, len(g.instances))
	for idx, in := range g.instances {
		out[idx] = in.Display()
	}
	return out
}
