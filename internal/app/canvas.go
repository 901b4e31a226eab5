package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/biondi/internal/capture"
	"github.com/philipparndt/biondi/internal/measurement"
	"github.com/philipparndt/biondi/pkg/geometry"
)

// CanvasInput shows a capture and feeds its pointer events to an Editor
type CanvasInput struct {
	widget.BaseWidget

	editor *Editor
	region capture.Region

	// Zoom is the display scale of the capture; widget positions are divided by it
	Zoom float64

	OnReading func(measurement.Reading)
	OnError   func(error)
}

var (
	_ fyne.Tappable          = (*CanvasInput)(nil)
	_ fyne.SecondaryTappable = (*CanvasInput)(nil)
	_ desktop.Hoverable      = (*CanvasInput)(nil)
)

// NewCanvasInput creates the measurement surface for an editor
func NewCanvasInput(editor *Editor, region capture.Region) *CanvasInput {
	c := &CanvasInput{editor: editor, region: region, Zoom: 1}
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *CanvasInput) CreateRenderer() fyne.WidgetRenderer {
	if c.region.Pixels == nil {
		return widget.NewSimpleRenderer(canvas.NewRectangle(color.Black))
	}
	img := canvas.NewImageFromImage(c.region.Pixels)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	return widget.NewSimpleRenderer(img)
}

// MinSize keeps the capture at its zoomed pixel size
func (c *CanvasInput) MinSize() fyne.Size {
	return fyne.NewSize(float32(float64(c.region.Width)*c.Zoom), float32(float64(c.region.Height)*c.Zoom))
}

// toImage converts a widget position into capture coordinates. Positions
// that fall outside the capture are rejected.
func (c *CanvasInput) toImage(pos fyne.Position) (geometry.Point, bool) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	p := geometry.NewPoint(float64(pos.X)/zoom, float64(pos.Y)/zoom)

	if b := c.region.Bounds(); !b.Empty() && !b.Contains(p) {
		return geometry.Point{}, false
	}
	return p, true
}

// Tapped handles left clicks
func (c *CanvasInput) Tapped(ev *fyne.PointEvent) {
	p, ok := c.toImage(ev.Position)
	if !ok {
		return
	}
	if err := c.editor.Click(p); err != nil {
		c.fail(err)
		return
	}
	c.update(p)
}

// TappedSecondary resets the active instrument
func (c *CanvasInput) TappedSecondary(*fyne.PointEvent) {
	if err := c.editor.Reset(c.editor.Session().Tool()); err != nil {
		c.fail(err)
	}
}

// MouseIn implements desktop.Hoverable
func (c *CanvasInput) MouseIn(ev *desktop.MouseEvent) {
	c.MouseMoved(ev)
}

// MouseMoved implements desktop.Hoverable
func (c *CanvasInput) MouseMoved(ev *desktop.MouseEvent) {
	if p, ok := c.toImage(ev.Position); ok {
		c.update(p)
	}
}

// MouseOut implements desktop.Hoverable
func (c *CanvasInput) MouseOut() {}

func (c *CanvasInput) update(p geometry.Point) {
	r, err := c.editor.Move(p)
	if err != nil {
		c.fail(err)
		return
	}
	if c.OnReading != nil {
		c.OnReading(r)
	}
}

func (c *CanvasInput) fail(err error) {
	if c.OnError != nil {
		c.OnError(err)
	}
}
