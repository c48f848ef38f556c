package ui

import (
	"image/color"

	"Boardgame/control"
	"Boardgame/dice"
	"Boardgame/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DiceSource is what the dice view needs from the engine.
type DiceSource interface {
	Snapshot() dice.Snapshot
	Subscribe(func(dice.Snapshot)) func()
}

type DiceView struct {
	app App

	countRadio *widget.RadioGroup
	faces      [dice.MaxDice]*canvas.Raster
	faceBoxes  [dice.MaxDice]*TappableContainer
	rollButton *widget.Button
	sumText    *canvas.Text
	content    fyne.CanvasObject

	// written and read on the fyne goroutine only
	shown       dice.Snapshot
	unsubscribe func()
}

func NewDiceView(a App) *DiceView {
	v := &DiceView{app: a, shown: dice.Snapshot{Count: 1, Values: [dice.MaxDice]int{1, 1}}}

	oneLabel, twoLabel := i18n.T("1 die"), i18n.T("2 dice")
	v.countRadio = widget.NewRadioGroup([]string{oneLabel, twoLabel}, func(selected string) {
		n := 1
		if selected == twoLabel {
			n = 2
		}
		a.EnqueueCommand(control.Command{Type: control.CmdSetDiceCount, Count: n})
	})
	v.countRadio.Horizontal = true
	v.countRadio.Required = true
	v.countRadio.Selected = oneLabel

	roll := func() { a.EnqueueCommand(control.Command{Type: control.CmdRoll}) }

	faceRow := container.NewHBox(layout.NewSpacer())
	for i := range v.faces {
		v.faces[i] = canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
			return FacePixel(v.shown.Values[i], v.shown.Rotations[i], x, y, w, h)
		})
		v.faces[i].SetMinSize(fyne.NewSize(DieSize, DieSize))
		v.faceBoxes[i] = NewTappableContainer(v.faces[i], roll)
		faceRow.Add(v.faceBoxes[i])
	}
	faceRow.Add(layout.NewSpacer())

	v.rollButton = widget.NewButton(i18n.T("Roll dice"), roll)
	v.rollButton.Importance = widget.HighImportance

	v.sumText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	v.sumText.TextSize = SumTextSize
	v.sumText.TextStyle.Bold = true
	v.sumText.Alignment = fyne.TextAlignCenter

	countRow := container.NewHBox(
		layout.NewSpacer(),
		widget.NewLabelWithStyle(i18n.T("Number of dice:"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.countRadio,
		layout.NewSpacer(),
	)

	v.content = container.NewVBox(
		countRow,
		faceRow,
		container.NewCenter(v.rollButton),
		v.sumText,
	)

	v.render(v.shown)
	return v
}

func (v *DiceView) CanvasObject() fyne.CanvasObject {
	return v.content
}

// Bind attaches the view to an engine, detaching it from the previous one.
// A nil source only detaches.
func (v *DiceView) Bind(src DiceSource) {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
	if src == nil {
		return
	}
	v.unsubscribe = src.Subscribe(func(s dice.Snapshot) {
		fyne.Do(func() { v.render(s) })
	})
	s := src.Snapshot()
	fyne.Do(func() { v.render(s) })
}

func (v *DiceView) render(s dice.Snapshot) {
	v.shown = s

	label := i18n.T("1 die")
	if s.Count == 2 {
		label = i18n.T("2 dice")
	}
	if v.countRadio.Selected != label {
		v.countRadio.Selected = label
		v.countRadio.Refresh()
	}

	visible := len(s.Visible())
	for i, box := range v.faceBoxes {
		if i < visible {
			box.Show()
			v.faces[i].Refresh()
		} else {
			box.Hide()
		}
	}

	if s.Rolling {
		v.countRadio.Disable()
		v.rollButton.SetText(i18n.T("Rolling..."))
		v.rollButton.Disable()
	} else {
		v.countRadio.Enable()
		v.rollButton.SetText(i18n.T("Roll dice"))
		v.rollButton.Enable()
	}

	if s.ShowSum() {
		v.sumText.Text = i18n.Tf("Sum: %d", s.Sum())
	} else {
		v.sumText.Text = ""
	}
	v.sumText.Refresh()
}
