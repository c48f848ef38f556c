package control

import (
	"context"
	"errors"
	"log"
	"time"
)

// ErrDropped is returned when a command could not be queued in time.
var ErrDropped = errors.New("command dropped: queue full")

const (
	// DefaultQueueSize is large enough to absorb bursts of key presses.
	DefaultQueueSize = 256
	// EnqueueTimeout bounds how long the UI may block on a full queue.
	EnqueueTimeout = 150 * time.Millisecond
)

// Loop runs commands one at a time on a single goroutine.
type Loop struct {
	ch      chan Command
	handler Handler
}

// NewLoop creates a loop that hands every command to h.
func NewLoop(h Handler, size int) *Loop {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Loop{ch: make(chan Command, size), handler: h}
}

// Run processes commands until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-l.ch:
			if err := l.handler.Handle(cmd); err != nil {
				log.Printf("Command %s failed: %v", cmd.Type, err)
			}
		}
	}
}

// Enqueue posts cmd without waiting for it to run. If the queue stays full
// for EnqueueTimeout the command is dropped and logged.
func (l *Loop) Enqueue(cmd Command) error {
	select {
	case l.ch <- cmd:
		return nil
	case <-time.After(EnqueueTimeout):
		log.Printf("Enqueue timeout: dropping %s command", cmd.Type)
		return ErrDropped
	}
}
