// Package audio provides the tone generator used by the stopwatch alerts.
package audio

import (
	"time"
)

// ToneKind selects one of the two alert tones.
type ToneKind int

const (
	// ToneHigh is the higher pitched double beep that opens an alert.
	ToneHigh ToneKind = iota
	// ToneLow is the single lower beep that closes an alert.
	ToneLow
)

func (k ToneKind) String() string {
	switch k {
	case ToneHigh:
		return "high"
	case ToneLow:
		return "low"
	}
	return "unknown"
}

// Player plays short tones. PlayTone must not block for the tone's duration.
type Player interface {
	PlayTone(kind ToneKind, d time.Duration)
	Close() error
}

// Opener acquires a Player. The caller owns the result and must Close it.
type Opener func() (Player, error)
