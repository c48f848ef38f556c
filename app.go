// Package main contains the application wiring and the AppManager which
// coordinates the dice and stopwatch engines, audio and the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: every UI intent goes through the control loop (see
//     `control.Loop`), which runs on one goroutine and calls Handle. The
//     engines also mutate themselves from clock callbacks (roll completion,
//     animation frames, stopwatch ticks); each engine serializes those with
//     intents behind its own mutex.
//   - Only the engine of the visible tab exists. SelectTab closes the engine
//     of the tab being left, which for the stopwatch stops the tick loop and
//     releases the tone player, and creates a fresh engine for the new tab.
//   - `engineLock` protects the engine pointers. Handle copies them under the
//     lock and calls into the engine without holding it.
package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	"Boardgame/audio"
	"Boardgame/control"
	"Boardgame/dice"
	"Boardgame/stopwatch"
	"Boardgame/ui"

	"github.com/jonboulle/clockwork"
)

// AppOptions configures NewAppManager.
type AppOptions struct {
	Clock     clockwork.Clock
	OpenTones audio.Opener
	Debug     bool
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	loop      *control.Loop
	clock     clockwork.Clock
	openTones audio.Opener
	debug     bool

	engineLock sync.Mutex
	tab        ui.Tab
	dice       *dice.Engine
	stopwatch  *stopwatch.Engine

	diceView      *ui.DiceView
	stopwatchView *ui.StopwatchView
}

// NewAppManager creates a new application manager. Call Run to start
// processing commands.
func NewAppManager(opts AppOptions) *AppManager {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	a := &AppManager{
		clock:     opts.Clock,
		openTones: opts.OpenTones,
		debug:     opts.Debug,
		tab:       -1,
	}
	a.loop = control.NewLoop(a, control.DefaultQueueSize)
	return a
}

// Run processes queued commands until ctx is cancelled.
func (a *AppManager) Run(ctx context.Context) {
	a.loop.Run(ctx)
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	_ = a.loop.Enqueue(cmd)
}

// Handle applies one command to the engine of the active tab.
func (a *AppManager) Handle(cmd control.Command) error {
	a.engineLock.Lock()
	d, sw := a.dice, a.stopwatch
	a.engineLock.Unlock()

	if a.debug {
		log.Printf("Handling %s command (count=%d)", cmd.Type, cmd.Count)
	}

	switch cmd.Type {
	case control.CmdRoll, control.CmdSetDiceCount:
		if d == nil {
			return fmt.Errorf("%s: dice tab is not active", cmd.Type)
		}
		if cmd.Type == control.CmdRoll {
			d.Roll()
		} else {
			d.SetCount(cmd.Count)
		}
	case control.CmdToggleRun, control.CmdReset:
		if sw == nil {
			return fmt.Errorf("%s: stopwatch tab is not active", cmd.Type)
		}
		if cmd.Type == control.CmdToggleRun {
			sw.ToggleRun()
		} else {
			sw.Reset()
		}
	default:
		return fmt.Errorf("unknown command %s", cmd.Type)
	}
	return nil
}

// SelectTab tears down the engine of the tab being left and starts a fresh
// one for tab.
func (a *AppManager) SelectTab(tab ui.Tab) {
	a.engineLock.Lock()
	defer a.engineLock.Unlock()
	if tab == a.tab {
		return
	}

	switch tab {
	case ui.TabDice:
		a.closeStopwatchLocked()
		a.dice = dice.New(dice.Options{Clock: a.clock})
		if a.diceView != nil {
			a.diceView.Bind(a.dice)
		}
	case ui.TabStopwatch:
		a.closeDiceLocked()
		a.stopwatch = stopwatch.New(stopwatch.Options{Clock: a.clock, OpenTones: a.openTones})
		if a.stopwatchView != nil {
			a.stopwatchView.Bind(a.stopwatch)
		}
	default:
		log.Printf("Ignoring unknown tab %d", tab)
		return
	}
	a.tab = tab
	if a.debug {
		log.Printf("Switched to tab %d", tab)
	}
}

// ActiveTab returns the tab whose engine is running.
func (a *AppManager) ActiveTab() ui.Tab {
	a.engineLock.Lock()
	defer a.engineLock.Unlock()
	return a.tab
}

func (a *AppManager) closeDiceLocked() {
	if a.dice == nil {
		return
	}
	if a.diceView != nil {
		a.diceView.Bind(nil)
	}
	a.dice.Close()
	a.dice = nil
}

func (a *AppManager) closeStopwatchLocked() {
	if a.stopwatch == nil {
		return
	}
	if a.stopwatchView != nil {
		a.stopwatchView.Bind(nil)
	}
	if err := a.stopwatch.Close(); err != nil {
		log.Printf("Failed to close stopwatch: %v", err)
	}
	a.stopwatch = nil
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	if cmd, ok := keyCommand(a.ActiveTab(), r); ok {
		a.EnqueueCommand(cmd)
	}
}

// keyCommand maps a key press on tab to a command.
func keyCommand(tab ui.Tab, r rune) (control.Command, bool) {
	switch tab {
	case ui.TabDice:
		switch r {
		case ' ', 'r', 'R':
			return control.Command{Type: control.CmdRoll}, true
		case '1', '2':
			return control.Command{Type: control.CmdSetDiceCount, Count: int(r - '0')}, true
		}
	case ui.TabStopwatch:
		switch r {
		case ' ':
			return control.Command{Type: control.CmdToggleRun}, true
		case 'r', 'R':
			return control.Command{Type: control.CmdReset}, true
		}
	}
	return control.Command{}, false
}

// SetDiceView sets the dice view bound to the dice engine.
func (a *AppManager) SetDiceView(v *ui.DiceView) {
	a.diceView = v
}

// SetStopwatchView sets the stopwatch view bound to the stopwatch engine.
func (a *AppManager) SetStopwatchView(v *ui.StopwatchView) {
	a.stopwatchView = v
}

// Shutdown closes both engines, releasing the tone player. The command loop
// stops when the context passed to Run is cancelled.
func (a *AppManager) Shutdown() {
	a.engineLock.Lock()
	defer a.engineLock.Unlock()
	a.closeDiceLocked()
	a.closeStopwatchLocked()
	a.tab = -1
}
