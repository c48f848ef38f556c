// Package dice contains the dice roller state machine.
//
// A roll is a fixed commitment: Roll flips the engine into the rolling state,
// starts a frame ticker that publishes a spinning rotation, and schedules the
// completion RollDelay later. The completion draws the faces and freezes the
// rotation. Nothing can cancel a roll once it started; SetCount and Roll are
// ignored until it completes.
package dice

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"Boardgame/notify"

	"github.com/jonboulle/clockwork"
)

const (
	MaxDice = 2 // dice drawn on every roll
	Faces   = 6

	RollDelay     = 1000 * time.Millisecond
	SpinPeriod    = 500 * time.Millisecond
	FrameInterval = 16 * time.Millisecond
)

// Snapshot is an immutable copy of the dice state handed to subscribers.
type Snapshot struct {
	Count     int
	Rolling   bool
	Values    [MaxDice]int
	Rotations [MaxDice]float64
}

// Sum returns the total of both dice.
func (s Snapshot) Sum() int {
	return s.Values[0] + s.Values[1]
}

// ShowSum reports whether the sum is part of the display.
func (s Snapshot) ShowSum() bool {
	return s.Count == MaxDice
}

// Visible returns the faces that are on screen.
func (s Snapshot) Visible() []int {
	return s.Values[:s.Count]
}

// Options configures an Engine. Zero values select the real clock and a
// randomly seeded generator.
type Options struct {
	Clock clockwork.Clock
	Rand  *rand.Rand
}

// Engine owns the dice state.
type Engine struct {
	clock clockwork.Clock

	// mutable state - protect with mu
	mu        sync.RWMutex
	rng       *rand.Rand
	count     int
	rolling   bool
	values    [MaxDice]int
	rotations [MaxDice]float64
	rollStart time.Time
	stopSpin  context.CancelFunc
	closed    bool

	hub notify.Hub[Snapshot]
}

// New creates an engine showing a single die with face 1.
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		clock:  opts.Clock,
		rng:    opts.Rand,
		count:  1,
		values: [MaxDice]int{1, 1},
	}
}

// Subscribe registers fn for every published snapshot.
func (e *Engine) Subscribe(fn func(Snapshot)) func() {
	return e.hub.Subscribe(fn)
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Count:     e.count,
		Rolling:   e.rolling,
		Values:    e.values,
		Rotations: e.rotations,
	}
}

func (e *Engine) publishLocked() {
	if e.closed {
		return
	}
	e.hub.Publish(e.snapshotLocked())
}

// SetCount switches between one and two dice. It is ignored while a roll is
// in progress and for any count other than 1 or 2.
func (e *Engine) SetCount(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.rolling || n < 1 || n > MaxDice || n == e.count {
		return
	}
	e.count = n
	e.publishLocked()
}

// Roll starts a roll unless one is already running.
func (e *Engine) Roll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.rolling || e.closed {
		return
	}

	e.rolling = true
	e.rollStart = e.clock.Now()
	e.rotations = [MaxDice]float64{}

	// Register both waiters before returning so the first frame and the
	// completion are anchored on the roll intent.
	ctx, cancel := context.WithCancel(context.Background())
	e.stopSpin = cancel
	go e.spin(ctx, e.clock.NewTicker(FrameInterval))
	e.clock.AfterFunc(RollDelay, e.complete)

	e.publishLocked()
}

func (e *Engine) spin(ctx context.Context, ticker clockwork.Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			e.frame(ctx)
		}
	}
}

func (e *Engine) frame(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ctx.Err() != nil || !e.rolling {
		return
	}
	angle := SpinAngle(e.clock.Since(e.rollStart))
	for i := range e.rotations {
		e.rotations[i] = angle
	}
	e.publishLocked()
}

func (e *Engine) complete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.rolling {
		return
	}

	// Both dice are always drawn; single-die mode shows the first.
	for i := range e.values {
		e.values[i] = e.rng.IntN(Faces) + 1
	}
	for i := range e.rotations {
		e.rotations[i] = e.rng.Float64() * 360
	}
	e.rolling = false
	e.stopSpinLocked()
	e.publishLocked()
}

func (e *Engine) stopSpinLocked() {
	if e.stopSpin != nil {
		e.stopSpin()
		e.stopSpin = nil
	}
}

// Close stops the spin animation and detaches all subscribers. A scheduled
// completion still lands, but nothing is published after Close.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopSpinLocked()
	e.closed = true
	e.hub.Clear()
}

// SpinAngle maps the time since the roll started onto the 0-360 degree cycle
// of the spin animation.
func SpinAngle(d time.Duration) float64 {
	if d < 0 {
		d = 0
	}
	return float64(d%SpinPeriod) * 360 / float64(SpinPeriod)
}
