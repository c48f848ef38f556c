package ui

import (
	"Boardgame/control"
	"Boardgame/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// UI constants
const (
	WindowWidth  = 420
	WindowHeight = 560

	DieSize           = 140
	SumTextSize       = 32
	ReadoutTextSize   = 72
	CaptionTextSize   = 16
	ControlButtonsGap = 24
)

// Tab identifies one of the two screens.
type Tab int

const (
	TabDice Tab = iota
	TabStopwatch
)

type App interface {
	EnqueueCommand(cmd control.Command)
	SelectTab(tab Tab)
	HandleKeyRune(r rune)
	SetDiceView(*DiceView)
	SetStopwatchView(*StopwatchView)
}

func CreateMainWindow(a App, fyneApp fyne.App) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "Boardgame"
	}
	w := fyneApp.NewWindow(title)

	diceView := NewDiceView(a)
	stopwatchView := NewStopwatchView(a)
	a.SetDiceView(diceView)
	a.SetStopwatchView(stopwatchView)

	tabs := container.NewAppTabs(
		container.NewTabItem(i18n.T("Dice"), diceView.CanvasObject()),
		container.NewTabItem(i18n.T("Stopwatch"), stopwatchView.CanvasObject()),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	tabs.OnSelected = func(*container.TabItem) {
		a.SelectTab(Tab(tabs.SelectedIndex()))
		w.Canvas().Focus(nil)
	}

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	a.SelectTab(TabDice)

	w.SetContent(tabs)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	return w
}

type TappableContainer struct {
	widget.BaseWidget
	Content         fyne.CanvasObject
	OnTappedPrimary func()
}

func NewTappableContainer(c fyne.CanvasObject, onP func()) *TappableContainer {
	t := &TappableContainer{
		Content:         c,
		OnTappedPrimary: onP,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(t.Content, layout.NewSpacer()))
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}
