package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/biondi/internal/capture"
	"github.com/philipparndt/biondi/internal/measurement"
	"github.com/philipparndt/biondi/pkg/analysis"
)

// Window is the measurement window of one Editor
type Window struct {
	fyne.Window

	editor    *Editor
	canvas    *CanvasInput
	tools     *widget.RadioGroup
	reading   *widget.Label
	precision int

	// OnSaved is called after the result was written to the store
	OnSaved func(measurement.Result)
}

// NewWindow builds the measurement window for e on the given capture
func NewWindow(a fyne.App, e *Editor, region capture.Region, precision int) *Window {
	w := &Window{
		Window:    a.NewWindow(fmt.Sprintf("%v - %s", e.Session().Kind(), e.Title())),
		editor:    e,
		canvas:    NewCanvasInput(e, region),
		reading:   widget.NewLabel("-"),
		precision: precision,
	}

	var names []string
	for _, tool := range measurement.Tools(e.Session().Kind()) {
		names = append(names, tool.String())
	}
	w.tools = widget.NewRadioGroup(names, w.selectTool)
	w.tools.Horizontal = true
	w.tools.Required = true
	w.tools.SetSelected(e.Session().Tool().String())

	w.canvas.OnReading = w.showReading
	w.canvas.OnError = func(err error) { dialog.ShowError(err, w) }

	resetButton := widget.NewButton("Reset", func() {
		if err := e.Reset(e.Session().Tool()); err != nil {
			dialog.ShowError(err, w)
		}
		w.reading.SetText("-")
	})
	clearButton := widget.NewButton("Clear", w.clear)
	okButton := widget.NewButton("OK", w.finalize)
	okButton.Importance = widget.HighImportance

	top := container.NewBorder(nil, nil, nil, w.reading, w.tools)
	bottom := container.NewHBox(resetButton, clearButton, okButton)
	w.SetContent(container.NewBorder(top, bottom, nil, nil, container.NewScroll(w.canvas)))
	w.SetOnClosed(e.Cancel)
	return w
}

func (w *Window) selectTool(name string) {
	tool, err := measurement.ParseTool(name)
	if err != nil {
		dialog.ShowError(err, w)
		return
	}
	if err := w.editor.SetTool(tool); err != nil {
		dialog.ShowError(err, w)
		return
	}
	w.reading.SetText("-")
}

func (w *Window) showReading(r measurement.Reading) {
	switch {
	case !r.Valid:
		w.reading.SetText("-")
	case r.Tool == measurement.ToolAngle:
		w.reading.SetText(analysis.FormatAngle(r.Value, w.precision))
	default:
		w.reading.SetText(fmt.Sprintf("%v: %s", r.Tool, analysis.FormatMeasurement(r.Value, w.precision, "")))
	}
}

func (w *Window) clear() {
	if err := w.editor.ClearAll(); err != nil {
		dialog.ShowError(err, w)
		return
	}
	w.tools.SetSelected(w.editor.Session().Tool().String())
	w.reading.SetText("-")
}

func (w *Window) finalize() {
	result, err := w.editor.Finalize(context.Background())
	if err != nil {
		dialog.ShowError(err, w)
		return
	}
	if w.OnSaved != nil {
		w.OnSaved(result)
	}
	w.Close()
}
