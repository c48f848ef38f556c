// Package stopwatch contains the stopwatch state machine and its minute
// boundary alerts.
//
// Maintenance notes:
//   - The clock is the only time source. Every tick recomputes elapsed as
//     now - startedAt; nothing is ever accumulated, so ticker jitter never
//     turns into drift.
//   - Ticks run on their own goroutine and the second alert tone runs from a
//     clock callback. Both take mu, the same lock the intents take, and both
//     check they still belong to the current run before touching state. A
//     tick that wakes after Stop, Reset or Close is a no-op.
//   - The tone player is opened on the first alert and released in Close.
//     Close must be called when the view goes away.
package stopwatch

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"Boardgame/audio"
	"Boardgame/notify"

	"github.com/jonboulle/clockwork"
)

const (
	TickInterval = 10 * time.Millisecond

	// Alert sequence: high tone, a gap measured from its start, low tone.
	FirstToneDuration  = 200 * time.Millisecond
	ToneGap            = 250 * time.Millisecond
	SecondToneDuration = 200 * time.Millisecond
)

// Snapshot is an immutable copy of the stopwatch state.
type Snapshot struct {
	Running bool
	Elapsed time.Duration
	// Alerts counts the alerts triggered since the last reset.
	Alerts int
}

// Reading derives the display fields of the snapshot.
func (s Snapshot) Reading() Reading {
	return Read(s.Elapsed)
}

// Options configures an Engine. A nil Clock selects the real clock; a nil
// OpenTones runs silently.
type Options struct {
	Clock     clockwork.Clock
	OpenTones audio.Opener
}

// Engine owns the stopwatch state.
type Engine struct {
	clock clockwork.Clock
	open  audio.Opener

	// mutable state - protect with mu
	mu        sync.Mutex
	running   bool
	elapsed   time.Duration
	startedAt time.Time
	stopTick  context.CancelFunc
	closed    bool

	// alert bookkeeping
	lastAlert  int64 // absolute elapsed second of the last alert, -1 if none
	alerts     int
	alertGen   int
	pending    clockwork.Timer
	player     audio.Player
	audioFault bool

	hub notify.Hub[Snapshot]
}

// New creates a stopped engine at zero.
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Engine{
		clock:     opts.Clock,
		open:      opts.OpenTones,
		lastAlert: -1,
	}
}

// Subscribe registers fn for every published snapshot.
func (e *Engine) Subscribe(fn func(Snapshot)) func() {
	return e.hub.Subscribe(fn)
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{Running: e.running, Elapsed: e.elapsed, Alerts: e.alerts}
}

func (e *Engine) publishLocked() {
	if e.closed {
		return
	}
	e.hub.Publish(e.snapshotLocked())
}

// ToggleRun starts a stopped stopwatch or stops a running one. Stopping keeps
// the elapsed value of the last tick; starting again continues from it.
func (e *Engine) ToggleRun() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	if e.running {
		e.running = false
		e.stopTickLocked()
		e.cancelPendingToneLocked()
	} else {
		e.startedAt = e.clock.Now().Add(-e.elapsed)
		e.running = true
		ctx, cancel := context.WithCancel(context.Background())
		e.stopTick = cancel
		// The ticker is registered before the goroutine starts so the
		// first tick is measured from this intent.
		go e.loop(ctx, e.clock.NewTicker(TickInterval))
	}
	e.publishLocked()
}

// Reset stops the stopwatch and returns it to zero.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.running = false
	e.elapsed = 0
	e.stopTickLocked()
	e.cancelPendingToneLocked()
	e.lastAlert = -1
	e.alerts = 0
	e.publishLocked()
}

// Close stops the tick loop, drops pending tones and releases the tone
// player. Further intents are ignored.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.running = false
	e.stopTickLocked()
	e.cancelPendingToneLocked()
	e.hub.Clear()

	if e.player == nil {
		return nil
	}
	p := e.player
	e.player = nil
	if err := p.Close(); err != nil {
		return fmt.Errorf("release tone player: %w", err)
	}
	return nil
}

func (e *Engine) stopTickLocked() {
	if e.stopTick != nil {
		e.stopTick()
		e.stopTick = nil
	}
}

func (e *Engine) loop(ctx context.Context, ticker clockwork.Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			e.tick(ctx)
		}
	}
}

func (e *Engine) tick(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ctx.Err() != nil || !e.running {
		return
	}

	elapsed := e.clock.Since(e.startedAt).Truncate(time.Millisecond)
	if elapsed < e.elapsed {
		elapsed = e.elapsed
	}
	e.elapsed = elapsed
	e.maybeAlertLocked()
	e.publishLocked()
}

// maybeAlertLocked fires at most one alert per elapsed second while the
// reading is urgent.
func (e *Engine) maybeAlertLocked() {
	if !Read(e.elapsed).Urgent {
		return
	}
	second := int64(e.elapsed / time.Second)
	if second == e.lastAlert {
		return
	}
	e.lastAlert = second
	e.alerts++

	p := e.playerLocked()
	if p == nil {
		return
	}
	p.PlayTone(audio.ToneHigh, FirstToneDuration)

	e.cancelPendingToneLocked()
	gen := e.alertGen
	e.pending = e.clock.AfterFunc(ToneGap, func() {
		e.secondTone(gen)
	})
}

func (e *Engine) secondTone(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.alertGen || e.closed || e.player == nil {
		return
	}
	e.pending = nil
	e.player.PlayTone(audio.ToneLow, SecondToneDuration)
}

func (e *Engine) cancelPendingToneLocked() {
	e.alertGen++
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
}

func (e *Engine) playerLocked() audio.Player {
	if e.player != nil || e.audioFault || e.open == nil {
		return e.player
	}
	p, err := e.open()
	if err != nil {
		log.Printf("Audio disabled: failed to open tone player: %v", err)
		e.audioFault = true
		return nil
	}
	e.player = p
	return p
}
