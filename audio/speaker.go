package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// device is the process wide beep speaker. The speaker can be initialized
// once per process, so it is opened on first use and stays open until
// ShutdownSpeaker; a Speaker only clears its own playback.
type device struct {
	mu       sync.Mutex
	sr       beep.SampleRate
	ready    bool
	shutdown bool

	init  func(beep.SampleRate, int) error
	play  func(...beep.Streamer)
	clear func()
	close func()
}

var systemDevice = &device{
	init:  speaker.Init,
	play:  speaker.Play,
	clear: speaker.Clear,
	close: speaker.Close,
}

func (d *device) open(sr beep.SampleRate, bufferSize int) (beep.SampleRate, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown {
		return 0, ErrSpeakerShutdown
	}
	if d.ready {
		return d.sr, nil
	}
	if err := d.init(sr, bufferSize); err != nil {
		return 0, fmt.Errorf("initialize speaker: %w", err)
	}
	d.sr, d.ready = sr, true
	return sr, nil
}

func (d *device) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown {
		return
	}
	d.shutdown = true
	if d.ready {
		d.close()
		d.ready = false
	}
}

// ErrSpeakerShutdown is returned by OpenSpeaker after ShutdownSpeaker.
var ErrSpeakerShutdown = errors.New("speaker already shut down")

// ShutdownSpeaker releases the audio device. Call it once when the process
// is done with audio.
func ShutdownSpeaker() {
	systemDevice.stop()
}

// Speaker plays synthesized tones on the system speaker. Only one Speaker
// should be open at a time; Close clears whatever is still queued.
type Speaker struct {
	mu     sync.Mutex
	dev    *device
	cfg    Config
	closed bool
}

// OpenSpeaker prepares a Speaker for cfg, initializing the system speaker on
// first use.
func OpenSpeaker(cfg Config) (*Speaker, error) {
	return openSpeaker(systemDevice, cfg)
}

func openSpeaker(dev *device, cfg Config) (*Speaker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sr := beep.SampleRate(cfg.SampleRate)
	sr, err := dev.open(sr, sr.N(time.Duration(cfg.BufferMS)*time.Millisecond))
	if err != nil {
		return nil, err
	}
	// Tones are synthesized at whatever rate the device was opened with.
	cfg.SampleRate = int(sr)
	return &Speaker{dev: dev, cfg: cfg}, nil
}

// SpeakerOpener returns an Opener that opens a Speaker for cfg.
func SpeakerOpener(cfg Config) Opener {
	return func() (Player, error) {
		s, err := OpenSpeaker(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// PlayTone queues a tone and returns immediately.
func (s *Speaker) PlayTone(kind ToneKind, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.dev.play(Synthesize(s.cfg, kind, d))
}

// Close drops queued tones. The device itself stays open for the next
// Speaker.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.dev.clear()
	return nil
}

// Synthesize builds the streamer for one tone of length d. A tone with n
// pulses is split into 2n-1 slots alternating beep and silence. The last
// pulse absorbs the rounding remainder so the tone lasts exactly d.
func Synthesize(cfg Config, kind ToneKind, d time.Duration) beep.Streamer {
	sr := beep.SampleRate(cfg.SampleRate)
	tone := cfg.Tone(kind)
	pulses := max(tone.Pulses, 1)

	total := sr.N(d)
	slots := 2*pulses - 1
	slot := total / slots
	parts := make([]beep.Streamer, 0, slots)
	for i := 0; i < pulses; i++ {
		n := slot
		if i > 0 {
			parts = append(parts, beep.Silence(slot))
		}
		if i == pulses-1 {
			n = total - slot*(slots-1)
		}
		parts = append(parts, beep.Take(n, sine(sr, tone.Frequency, cfg.Volume)))
	}
	return beep.Seq(parts...)
}

func sine(sr beep.SampleRate, freq, volume float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := volume * math.Sin(phase)
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
		return len(samples), true
	})
}
