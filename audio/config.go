package audio

import (
	"encoding/json"
	"fmt"
)

// ContentReader defines the interface for reading content from the embedded file system.
type ContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// ToneConfigPath is the location of the tone table inside the embedded assets.
const ToneConfigPath = "assets/tones.json"

// ToneConfig describes how one tone kind is synthesized.
type ToneConfig struct {
	Frequency float64 `json:"frequency"`
	// Pulses splits the tone into that many equal beeps separated by silence.
	Pulses int `json:"pulses"`
}

// Config holds the speaker and tone settings.
type Config struct {
	SampleRate int        `json:"sample_rate"`
	BufferMS   int        `json:"buffer_ms"`
	Volume     float64    `json:"volume"`
	High       ToneConfig `json:"high"`
	Low        ToneConfig `json:"low"`
}

// DefaultConfig mirrors the shipped assets/tones.json.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		BufferMS:   100,
		Volume:     0.5,
		High:       ToneConfig{Frequency: 1320, Pulses: 2},
		Low:        ToneConfig{Frequency: 880, Pulses: 1},
	}
}

// Tone returns the settings for kind.
func (c Config) Tone(kind ToneKind) ToneConfig {
	if kind == ToneHigh {
		return c.High
	}
	return c.Low
}

// LoadConfig reads the tone table from the embedded assets. Missing fields
// keep their defaults.
func LoadConfig(reader ContentReader) (Config, error) {
	cfg := DefaultConfig()
	data, err := reader.ReadFile(ToneConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("read tone config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode tone config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate rejects settings the synthesizer cannot play.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", c.SampleRate)
	}
	if c.BufferMS <= 0 {
		return fmt.Errorf("invalid buffer size %dms", c.BufferMS)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range [0,1]", c.Volume)
	}
	for _, t := range []ToneConfig{c.High, c.Low} {
		if t.Frequency <= 0 {
			return fmt.Errorf("invalid tone frequency %.1f", t.Frequency)
		}
		if t.Pulses < 1 {
			return fmt.Errorf("invalid pulse count %d", t.Pulses)
		}
	}
	return nil
}
