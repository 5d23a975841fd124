package views

import (
	"sync"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FyneViewer shows charts in a single reusable window. The Fyne event loop
// must be running on the main goroutine; Show is called from elsewhere and
// blocks until the viewer clicks the chart, presses OK or closes the window.
type FyneViewer struct {
	app    fyne.App
	window fyne.Window
}

// NewFyneViewer creates the (hidden) chart window. Call it before a.Run().
// Closing the window only hides it, so the app keeps running between
// charts until Quit.
func NewFyneViewer(a fyne.App) *FyneViewer {
	w := a.NewWindow("Histogram")
	w.SetFixedSize(true)
	return &FyneViewer{app: a, window: w}
}

// Show displays c and waits for the acknowledgement.
func (v *FyneViewer) Show(c Chart) error {
	done := make(chan struct{})
	var once sync.Once
	ack := func() {
		once.Do(func() {
			v.window.Hide()
			close(done)
		})
	}

	fyne.Do(func() {
		img := canvas.NewImageFromImage(c.Image)
		img.FillMode = canvas.ImageFillOriginal
		b := c.Image.Bounds()

		v.window.SetTitle(c.Title)
		v.window.SetCloseIntercept(ack)
		v.window.SetContent(container.NewBorder(nil,
			container.NewCenter(widget.NewButton("OK", ack)), nil, nil,
			newTapTarget(img, ack)))
		v.window.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy()+40)))
		v.window.CenterOnScreen()
		v.window.Show()
		v.window.RequestFocus()
	})
	<-done
	return nil
}

// Quit stops the Fyne event loop; safe to call from any goroutine.
func (v *FyneViewer) Quit() {
	fyne.Do(v.app.Quit)
}

// tapTarget wraps the chart image so a click anywhere on it dismisses it.
type tapTarget struct {
	widget.BaseWidget
	content fyne.CanvasObject
	onTap   func()
}

func newTapTarget(content fyne.CanvasObject, onTap func()) *tapTarget {
	t := &tapTarget{content: content, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapTarget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

func (t *tapTarget) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}
