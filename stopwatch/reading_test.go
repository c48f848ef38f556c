package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRead(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		want    Reading
	}{
		{"zero", 0, Reading{}},
		{"negative", -time.Second, Reading{}},
		{"centiseconds", 1234 * time.Millisecond, Reading{Seconds: 1, Centiseconds: 23}},
		{"before warn", 54990 * time.Millisecond, Reading{Seconds: 54, Centiseconds: 99}},
		{"warn", 55 * time.Second, Reading{Seconds: 55, Warn: true}},
		{"warn not urgent", 56 * time.Second, Reading{Seconds: 56, Warn: true}},
		{"urgent", 57 * time.Second, Reading{Seconds: 57, Warn: true, Urgent: true}},
		{"urgent late", 58500 * time.Millisecond, Reading{Seconds: 58, Centiseconds: 50, Warn: true, Urgent: true}},
		{"minute rollover", 60 * time.Second, Reading{Minutes: 1}},
		{"hour wraps minutes", 61*time.Minute + 57*time.Second, Reading{Minutes: 1, Seconds: 57, Warn: true, Urgent: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Read(c.elapsed))
		})
	}
}

func TestReadingRemainingAndString(t *testing.T) {
	r := Read(2*time.Minute + 57*time.Second + 80*time.Millisecond)
	assert.Equal(t, 3, r.Remaining())
	assert.Equal(t, "02:57.08", r.String())
	assert.Equal(t, "00:00.00", Read(0).String())
}

func TestBlinkOpacity(t *testing.T) {
	assert.InDelta(t, 1.0, BlinkOpacity(0), 1e-6)
	assert.InDelta(t, 0.65, BlinkOpacity(0.5), 1e-6)
	assert.InDelta(t, 0.3, BlinkOpacity(1), 1e-6)
	assert.InDelta(t, 0.3, BlinkOpacity(3), 1e-6)
	assert.InDelta(t, 1.0, BlinkOpacity(-1), 1e-6)
}
