package ui

import (
	"image/color"
	"time"

	"Boardgame/control"
	"Boardgame/i18n"
	"Boardgame/stopwatch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// BlinkHalfPeriod is the fade time from full to 30% opacity and back.
const BlinkHalfPeriod = 500 * time.Millisecond

// StopwatchSource is what the stopwatch view needs from the engine.
type StopwatchSource interface {
	Snapshot() stopwatch.Snapshot
	Subscribe(func(stopwatch.Snapshot)) func()
}

type StopwatchView struct {
	app App

	readout      *canvas.Text
	caption      *canvas.Text
	toggleButton *widget.Button
	resetButton  *widget.Button
	blink        *fyne.Animation
	content      fyne.CanvasObject

	// written and read on the fyne goroutine only
	shown       stopwatch.Snapshot
	blinking    bool
	opacity     float32
	unsubscribe func()
}

func NewStopwatchView(a App) *StopwatchView {
	v := &StopwatchView{app: a, opacity: 1}

	v.readout = canvas.NewText(stopwatch.Read(0).String(), theme.Color(theme.ColorNameForeground))
	v.readout.TextSize = ReadoutTextSize
	v.readout.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	v.readout.Alignment = fyne.TextAlignCenter

	v.caption = canvas.NewText(i18n.T("min:sec.1/100"), theme.Color(theme.ColorNamePlaceHolder))
	v.caption.TextSize = CaptionTextSize
	v.caption.Alignment = fyne.TextAlignCenter

	v.toggleButton = widget.NewButton(i18n.T("Start"), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdToggleRun})
	})
	v.toggleButton.Importance = widget.HighImportance

	v.resetButton = widget.NewButton(i18n.T("Reset"), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdReset})
	})

	v.blink = fyne.NewAnimation(BlinkHalfPeriod, func(progress float32) {
		v.opacity = stopwatch.BlinkOpacity(progress)
		v.paint()
	})
	v.blink.AutoReverse = true
	v.blink.Curve = fyne.AnimationLinear
	v.blink.RepeatCount = fyne.AnimationRepeatForever

	buttonsSpacer := canvas.NewRectangle(color.Transparent)
	buttonsSpacer.SetMinSize(fyne.NewSize(ControlButtonsGap, 0))
	buttons := container.NewHBox(
		layout.NewSpacer(),
		v.toggleButton,
		buttonsSpacer,
		v.resetButton,
		layout.NewSpacer(),
	)

	v.content = container.NewVBox(
		layout.NewSpacer(),
		v.readout,
		v.caption,
		layout.NewSpacer(),
		buttons,
		layout.NewSpacer(),
	)
	return v
}

func (v *StopwatchView) CanvasObject() fyne.CanvasObject {
	return v.content
}

// Bind attaches the view to an engine, detaching it from the previous one.
// A nil source only detaches and stops the blink animation.
func (v *StopwatchView) Bind(src StopwatchSource) {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
	if src == nil {
		fyne.Do(func() { v.setBlinking(false) })
		return
	}
	v.unsubscribe = src.Subscribe(func(s stopwatch.Snapshot) {
		fyne.Do(func() { v.render(s) })
	})
	s := src.Snapshot()
	fyne.Do(func() { v.render(s) })
}

func (v *StopwatchView) render(s stopwatch.Snapshot) {
	v.shown = s
	r := s.Reading()

	v.readout.Text = r.String()

	switch {
	case r.Urgent:
		v.caption.Text = i18n.Tf("%d seconds remaining until minute boundary! (warning)", r.Remaining())
		v.caption.TextStyle.Bold = true
	case r.Warn:
		v.caption.Text = i18n.Tf("%d seconds remaining until minute boundary", r.Remaining())
		v.caption.TextStyle.Bold = true
	default:
		v.caption.Text = i18n.T("min:sec.1/100")
		v.caption.TextStyle.Bold = false
	}

	if s.Running {
		v.toggleButton.SetText(i18n.T("Stop"))
	} else {
		v.toggleButton.SetText(i18n.T("Start"))
	}
	v.toggleButton.Importance = buttonImportance(r)
	v.toggleButton.Refresh()

	v.setBlinking(r.Warn)
	v.paint()
}

func (v *StopwatchView) setBlinking(on bool) {
	if on == v.blinking {
		return
	}
	v.blinking = on
	if on {
		v.blink.Start()
		return
	}
	v.blink.Stop()
	v.opacity = 1
}

func (v *StopwatchView) paint() {
	r := v.shown.Reading()
	alpha := uint8(v.opacity * 255)
	v.readout.Color = withAlpha(readoutColor(r), alpha)
	v.caption.Color = captionColor(r)
	v.readout.Refresh()
	v.caption.Refresh()
}

func readoutColor(r stopwatch.Reading) color.Color {
	switch {
	case r.Urgent:
		return theme.Color(theme.ColorNameError)
	case r.Warn:
		return theme.Color(theme.ColorNameWarning)
	}
	return theme.Color(theme.ColorNameForeground)
}

func captionColor(r stopwatch.Reading) color.Color {
	if r.Warn {
		return readoutColor(r)
	}
	return theme.Color(theme.ColorNamePlaceHolder)
}

func buttonImportance(r stopwatch.Reading) widget.Importance {
	switch {
	case r.Urgent:
		return widget.DangerImportance
	case r.Warn:
		return widget.WarningImportance
	}
	return widget.HighImportance
}
