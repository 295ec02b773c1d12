package countup

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// Cancel drops a pending callback. Calling it after the callback ran is a no-op.
type Cancel func()

// Scheduler runs delayed and next-frame callbacks. Callbacks of one scheduler never run
// concurrently with each other.
type Scheduler interface {
	// After runs fn once d has elapsed, on the first frame at or past the deadline.
	After(d time.Duration, fn func()) Cancel
	// NextFrame runs fn on the next frame with that frame's timestamp.
	NextFrame(fn func(now time.Time)) Cancel
}

type timer struct {
	id uint64
	at time.Time
	fn func()
}

// frameQueue holds pending callbacks and flushes them one frame at a time. A callback
// that schedules another frame lands on the following frame, not the current one.
type frameQueue struct {
	mu     sync.Mutex
	nextID uint64
	timers map[uint64]timer
	frames map[uint64]func(time.Time)
}

func newFrameQueue() *frameQueue {
	return &frameQueue{
		timers: make(map[uint64]timer),
		frames: make(map[uint64]func(time.Time)),
	}
}

func (q *frameQueue) after(at time.Time, fn func()) Cancel {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.timers[id] = timer{id: id, at: at, fn: fn}
	q.mu.Unlock()
	return func() {
		q.mu.Lock()
		delete(q.timers, id)
		q.mu.Unlock()
	}
}

func (q *frameQueue) frame(fn func(time.Time)) Cancel {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.frames[id] = fn
	q.mu.Unlock()
	return func() {
		q.mu.Lock()
		delete(q.frames, id)
		q.mu.Unlock()
	}
}

// flush runs due timers and then the frame callbacks registered before this frame,
// each group in scheduling order. No lock is held while callbacks run.
func (q *frameQueue) flush(now time.Time) {
	q.mu.Lock()
	var due []timer
	for id, t := range q.timers {
		if !now.Before(t.at) {
			due = append(due, t)
			delete(q.timers, id)
		}
	}
	frameIDs := make([]uint64, 0, len(q.frames))
	for id := range q.frames {
		frameIDs = append(frameIDs, id)
	}
	frames := q.frames
	q.frames = make(map[uint64]func(time.Time))
	q.mu.Unlock()

	slices.SortFunc(due, func(a, b timer) int {
		if c := a.at.Compare(b.at); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	slices.Sort(frameIDs)

	for _, t := range due {
		t.fn()
	}
	for _, id := range frameIDs {
		frames[id](now)
	}
}

func (q *frameQueue) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.timers) + len(q.frames)
}

// TickerScheduler flushes callbacks from a single goroutine on a wall-clock ticker.
// Close stops the goroutine.
type TickerScheduler struct {
	queue    *frameQueue
	interval time.Duration
	now      func() time.Time

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewTickerScheduler starts ticking at interval. A non-positive interval falls back to
// DefaultFrameInterval.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	s := &TickerScheduler{
		queue:    newFrameQueue(),
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *TickerScheduler) run() {
	defer close(s.done)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-t.C:
			s.queue.flush(now)
		}
	}
}

func (s *TickerScheduler) After(d time.Duration, fn func()) Cancel {
	return s.queue.after(s.now().Add(d), fn)
}

func (s *TickerScheduler) NextFrame(fn func(now time.Time)) Cancel {
	return s.queue.frame(fn)
}

// Pending is the number of callbacks not yet run or cancelled.
func (s *TickerScheduler) Pending() int { return s.queue.pending() }

// Close stops the ticker goroutine and waits for it to exit. Pending callbacks are
// dropped. It must not be called from inside a callback.
func (s *TickerScheduler) Close() {
	s.closeOnce.Do(func() { close(s.stop) })
	<-s.done
}

// ManualScheduler runs on a virtual clock that only moves when Step, Advance or
// RunUntilIdle is called. It is deterministic.
type ManualScheduler struct {
	queue    *frameQueue
	interval time.Duration
	epoch    time.Time

	mu  sync.Mutex
	now time.Time
}

func NewManualScheduler(epoch time.Time, interval time.Duration) *ManualScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &ManualScheduler{
		queue:    newFrameQueue(),
		interval: interval,
		epoch:    epoch,
		now:      epoch,
	}
}

func (s *ManualScheduler) After(d time.Duration, fn func()) Cancel {
	return s.queue.after(s.Now().Add(d), fn)
}

func (s *ManualScheduler) NextFrame(fn func(now time.Time)) Cancel {
	return s.queue.frame(fn)
}

// Now is the virtual time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Elapsed is the virtual time since the epoch.
func (s *ManualScheduler) Elapsed() time.Duration {
	return s.Now().Sub(s.epoch)
}

// Step moves the clock forward one frame interval and flushes that frame.
func (s *ManualScheduler) Step() {
	s.mu.Lock()
	s.now = s.now.Add(s.interval)
	now := s.now
	s.mu.Unlock()
	s.queue.flush(now)
}

// Flush runs the current frame without moving the clock.
func (s *ManualScheduler) Flush() {
	s.queue.flush(s.Now())
}

// Advance steps frames until at least d of virtual time has passed.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.Now().Add(d)
	for s.Now().Before(target) {
		s.Step()
	}
}

// RunUntilIdle steps until nothing is pending or maxFrames frames have run. It returns
// the number of frames stepped.
func (s *ManualScheduler) RunUntilIdle(maxFrames int) int {
	n := 0
	for n < maxFrames && s.queue.pending() > 0 {
		s.Step()
		n++
	}
	return n
}

func (s *ManualScheduler) Pending() int { return s.queue.pending() }
