package countup

import (
	"sync"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

type State int

const (
	Idle State = iota
	Delayed
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Delayed:
		return "delayed"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return "unknown"
}

// Instance animates one metric. Start moves it from Idle to Delayed; the stagger timer
// moves it to Running; the frame that reaches full progress shows the exact target and
// moves it to Done. Stop freezes it in whatever state it is in.
type Instance struct {
	metric domain.ResultMetric
	index  int
	sched  Scheduler
	notify func(display string, done bool)

	mu      sync.Mutex
	state   State
	stopped bool
	begun   bool
	start   time.Time
	display string
	cancel  Cancel
}

// NewInstance builds an Idle instance for the metric at position index in its section.
// notify, if set, is called outside the instance lock after each display change.
func NewInstance(m domain.ResultMetric, index int, sched Scheduler, notify func(display string, done bool)) *Instance {
	return &Instance{
		metric:  m,
		index:   index,
		sched:   sched,
		notify:  notify,
		display: Initial(m),
	}
}

func (i *Instance) Metric() domain.ResultMetric { return i.metric }

// Delay is the stagger delay applied when the instance starts.
func (i *Instance) Delay() time.Duration { return time.Duration(i.index) * Stagger }

func (i *Instance) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

func (i *Instance) Display() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.display
}

// Start schedules the animation. It reports false, and does nothing, for a static
// metric, a stopped instance, or one that already left Idle.
func (i *Instance) Start() bool {
	if !i.metric.Animated() {
		return false
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.stopped || i.state != Idle {
		return false
	}
	i.state = Delayed
	i.cancel = i.sched.After(i.Delay(), i.begin)
	return true
}

// Stop cancels the pending delay or frame. Later callbacks that were already dequeued
// by the scheduler see the stopped flag and return without touching the display.
func (i *Instance) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stopped = true
	if i.cancel != nil {
		i.cancel()
		i.cancel = nil
	}
}

func (i *Instance) begin() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.stopped || i.state != Delayed {
		return
	}
	i.state = Running
	i.cancel = i.sched.NextFrame(i.frame)
}

func (i *Instance) frame(now time.Time) {
	i.mu.Lock()
	if i.stopped || i.state != Running {
		i.mu.Unlock()
		return
	}
	// the first frame timestamp is time zero
	if !i.begun {
		i.begun = true
		i.start = now
	}
	progress := progressOf(now.Sub(i.start))
	i.display = DisplayAt(i.metric, progress)
	done := progress >= 1
	if done {
		i.state = Done
		i.cancel = nil
	} else {
		i.cancel = i.sched.NextFrame(i.frame)
	}
	display := i.display
	i.mu.Unlock()

	if i.notify != nil {
		i.notify(display, done)
	}
}
