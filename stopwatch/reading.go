package stopwatch

import (
	"fmt"
	"time"
)

// Minute boundary thresholds, in whole seconds of the current minute.
const (
	WarnSecond   = 55
	UrgentSecond = 57
)

// Reading is the display form of an elapsed duration.
type Reading struct {
	Minutes      int
	Seconds      int
	Centiseconds int

	// Warn is set during the last five seconds of every minute.
	Warn bool
	// Urgent is set during the last three seconds of every minute.
	Urgent bool
}

// Read derives the display fields from elapsed. Negative input reads as zero.
func Read(elapsed time.Duration) Reading {
	if elapsed < 0 {
		elapsed = 0
	}
	ms := elapsed.Milliseconds()
	r := Reading{
		Minutes:      int(ms / 60000 % 60),
		Seconds:      int(ms / 1000 % 60),
		Centiseconds: int(ms / 10 % 100),
	}
	r.Warn = r.Seconds >= WarnSecond
	r.Urgent = r.Seconds >= UrgentSecond
	return r
}

// Remaining is the number of seconds left until the next minute boundary.
func (r Reading) Remaining() int {
	return 60 - r.Seconds
}

// String formats the reading as mm:ss.cc.
func (r Reading) String() string {
	return fmt.Sprintf("%02d:%02d.%02d", r.Minutes, r.Seconds, r.Centiseconds)
}

// BlinkOpacity maps the progress of one half blink cycle (0..1) onto the
// readout opacity, fading from fully opaque down to 30%.
func BlinkOpacity(progress float32) float32 {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	return 1 - 0.7*progress
}
