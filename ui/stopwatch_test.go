package ui

import (
	"image/color"
	"testing"
	"time"

	"Boardgame/control"
	"Boardgame/stopwatch"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgb(c color.Color) [3]uint8 {
	if n, ok := c.(color.NRGBA); ok {
		return [3]uint8{n.R, n.G, n.B}
	}
	r, g, b, _ := c.RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func TestThresholdStyling(t *testing.T) {
	newTestApp(t)

	cases := []struct {
		at         time.Duration
		readout    color.Color
		importance widget.Importance
	}{
		{54 * time.Second, theme.Color(theme.ColorNameForeground), widget.HighImportance},
		{55 * time.Second, warnColor, widget.WarningImportance},
		{56 * time.Second, warnColor, widget.WarningImportance},
		{58 * time.Second, urgentColor, widget.DangerImportance},
		{61 * time.Second, theme.Color(theme.ColorNameForeground), widget.HighImportance},
	}
	for _, c := range cases {
		r := stopwatch.Read(c.at)
		assert.Equal(t, rgb(c.readout), rgb(readoutColor(r)), "readout at %s", c.at)
		assert.Equal(t, c.importance, buttonImportance(r), "button at %s", c.at)
	}

	assert.Equal(t, rgb(theme.Color(theme.ColorNamePlaceHolder)), rgb(captionColor(stopwatch.Read(54*time.Second))))
	assert.Equal(t, rgb(warnColor), rgb(captionColor(stopwatch.Read(56*time.Second))))
	assert.Equal(t, rgb(urgentColor), rgb(captionColor(stopwatch.Read(59*time.Second))))
}

func TestStopwatchViewRender(t *testing.T) {
	newTestApp(t)
	v := NewStopwatchView(&fakeApp{})

	cases := []struct {
		at       time.Duration
		caption  string
		blinking bool
		color    color.Color
	}{
		{54 * time.Second, "min:sec.1/100", false, theme.Color(theme.ColorNameForeground)},
		{55 * time.Second, "5 seconds remaining until minute boundary", true, warnColor},
		{56 * time.Second, "4 seconds remaining until minute boundary", true, warnColor},
		{58 * time.Second, "2 seconds remaining until minute boundary! (warning)", true, urgentColor},
		{60 * time.Second, "min:sec.1/100", false, theme.Color(theme.ColorNameForeground)},
	}
	for _, c := range cases {
		v.render(stopwatch.Snapshot{Running: true, Elapsed: c.at})

		assert.Equal(t, stopwatch.Read(c.at).String(), v.readout.Text)
		assert.Equal(t, c.caption, v.caption.Text, "caption at %s", c.at)
		assert.Equal(t, c.blinking, v.blinking, "blink at %s", c.at)
		assert.Equal(t, c.blinking, v.caption.TextStyle.Bold, "caption weight at %s", c.at)
		assert.Equal(t, rgb(c.color), rgb(v.readout.Color), "readout color at %s", c.at)
		assert.Equal(t, "Stop", v.toggleButton.Text)
	}
	assert.Equal(t, float32(1), v.opacity, "opacity restored once blinking stops")

	v.render(stopwatch.Snapshot{Elapsed: 55 * time.Second})
	assert.Equal(t, "Start", v.toggleButton.Text)
	assert.True(t, v.blinking, "a stopped reading in the warning band keeps blinking")

	v.render(stopwatch.Snapshot{})
	assert.Equal(t, "00:00.00", v.readout.Text)
	assert.False(t, v.blinking)
}

func TestStopwatchViewIntents(t *testing.T) {
	newTestApp(t)
	app := &fakeApp{}
	v := NewStopwatchView(app)

	test.Tap(v.toggleButton)
	test.Tap(v.resetButton)

	require.Len(t, app.commands(), 2)
	assert.Equal(t, []control.Command{{Type: control.CmdToggleRun}, {Type: control.CmdReset}}, app.commands())
}
