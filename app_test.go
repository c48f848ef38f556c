package main

import (
	"sync"
	"testing"
	"time"

	"Boardgame/audio"
	"Boardgame/control"
	"Boardgame/stopwatch"
	"Boardgame/ui"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPlayer struct {
	mu     sync.Mutex
	opens  int
	closes int
}

func (p *countingPlayer) open() (audio.Player, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opens++
	return p, nil
}

func (p *countingPlayer) PlayTone(audio.ToneKind, time.Duration) {}

func (p *countingPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closes++
	return nil
}

func (p *countingPlayer) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opens, p.closes
}

func TestKeyCommand(t *testing.T) {
	cases := []struct {
		tab  ui.Tab
		r    rune
		want control.Command
		ok   bool
	}{
		{ui.TabDice, ' ', control.Command{Type: control.CmdRoll}, true},
		{ui.TabDice, '2', control.Command{Type: control.CmdSetDiceCount, Count: 2}, true},
		{ui.TabDice, '1', control.Command{Type: control.CmdSetDiceCount, Count: 1}, true},
		{ui.TabDice, 'x', control.Command{}, false},
		{ui.TabStopwatch, ' ', control.Command{Type: control.CmdToggleRun}, true},
		{ui.TabStopwatch, 'R', control.Command{Type: control.CmdReset}, true},
		{ui.TabStopwatch, '2', control.Command{}, false},
	}
	for _, c := range cases {
		got, ok := keyCommand(c.tab, c.r)
		assert.Equal(t, c.ok, ok, "tab %d key %q", c.tab, c.r)
		assert.Equal(t, c.want, got, "tab %d key %q", c.tab, c.r)
	}
}

func TestHandleRoutesToActiveTab(t *testing.T) {
	a := NewAppManager(AppOptions{Clock: clockwork.NewFakeClock()})
	t.Cleanup(a.Shutdown)

	require.Error(t, a.Handle(control.Command{Type: control.CmdRoll}), "no tab selected yet")

	a.SelectTab(ui.TabDice)
	require.NoError(t, a.Handle(control.Command{Type: control.CmdSetDiceCount, Count: 2}))
	assert.Equal(t, 2, a.dice.Snapshot().Count)
	assert.Error(t, a.Handle(control.Command{Type: control.CmdToggleRun}))

	a.SelectTab(ui.TabStopwatch)
	assert.Nil(t, a.dice)
	require.NoError(t, a.Handle(control.Command{Type: control.CmdToggleRun}))
	assert.True(t, a.stopwatch.Snapshot().Running)
	require.NoError(t, a.Handle(control.Command{Type: control.CmdReset}))
	assert.Equal(t, stopwatch.Snapshot{}, a.stopwatch.Snapshot())

	assert.Error(t, a.Handle(control.Command{Type: control.CommandType(99)}))
}

func TestLeavingStopwatchReleasesTones(t *testing.T) {
	fc := clockwork.NewFakeClock()
	player := &countingPlayer{}
	a := NewAppManager(AppOptions{Clock: fc, OpenTones: player.open})

	a.SelectTab(ui.TabStopwatch)
	sw := a.stopwatch
	alerted := make(chan struct{}, 1)
	sw.Subscribe(func(s stopwatch.Snapshot) {
		if s.Alerts > 0 {
			select {
			case alerted <- struct{}{}:
			default:
			}
		}
	})

	require.NoError(t, a.Handle(control.Command{Type: control.CmdToggleRun}))
	fc.Advance(57 * time.Second)
	select {
	case <-alerted:
	case <-time.After(2 * time.Second):
		t.Fatal("no alert")
	}

	a.SelectTab(ui.TabDice)
	opens, closes := player.counts()
	assert.Equal(t, 1, opens)
	assert.Equal(t, 1, closes)
	assert.Nil(t, a.stopwatch)
	assert.Equal(t, ui.TabDice, a.ActiveTab())

	a.SelectTab(ui.TabStopwatch)
	assert.Equal(t, stopwatch.Snapshot{}, a.stopwatch.Snapshot(), "a new visit starts from zero")

	a.Shutdown()
	assert.Nil(t, a.stopwatch)
	assert.Nil(t, a.dice)
}

func TestSelectSameTabKeepsEngine(t *testing.T) {
	a := NewAppManager(AppOptions{Clock: clockwork.NewFakeClock()})
	t.Cleanup(a.Shutdown)

	a.SelectTab(ui.TabDice)
	first := a.dice
	a.SelectTab(ui.TabDice)
	assert.Same(t, first, a.dice)
}
