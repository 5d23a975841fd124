package views

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"airport-analyser/utils"
)

// ChartRequest names what the histogram is about.
type ChartRequest struct {
	AirlineCode string
	AirlineName string
	AirportName string
	Year        int
}

// Title is the heading drawn above the bars.
func (r ChartRequest) Title() string {
	return fmt.Sprintf("Departures by hour for %s from %s %d", r.AirlineName, r.AirportName, r.Year)
}

// Slug is a file-name friendly identifier, e.g. "BA_London_Heathrow_2019".
func (r ChartRequest) Slug() string {
	return strings.ReplaceAll(fmt.Sprintf("%s_%s_%d", r.AirlineCode, r.AirportName, r.Year), " ", "_")
}

// TextItem is a label centred on (X, Y).
type TextItem struct {
	Text string
	X, Y float64
}

// Bar is one hourly bar in canvas coordinates (Y grows downwards).
type Bar struct {
	Hour, Count    int
	X1, Y1, X2, Y2 float64
	CountLabel     TextItem
	HourLabel      TextItem
}

// ChartLayout is the fully positioned histogram, independent of how it is
// drawn.
type ChartLayout struct {
	Width, Height int
	MaxCount      int     // tallest bin, at least 1
	Scale         float64 // pixels per departure
	Bars          []Bar
	Title         TextItem
	Caption       TextItem
}

// LayoutChart positions one bar per bin. The tallest bin is scaled to
// cfg.MaxBarHeight; an all-empty histogram uses a max of 1.
func LayoutChart(req ChartRequest, bins []int, cfg utils.ChartConfig) ChartLayout {
	maxCount := 1
	for _, c := range bins {
		maxCount = max(maxCount, c)
	}
	scale := float64(cfg.MaxBarHeight) / float64(maxCount)
	base := float64(cfg.BaseY)

	l := ChartLayout{
		Width:    cfg.Width,
		Height:   cfg.Height,
		MaxCount: maxCount,
		Scale:    scale,
		Bars:     make([]Bar, len(bins)),
		Title:    TextItem{Text: req.Title(), X: float64(cfg.Width) / 2, Y: float64(cfg.TitleY)},
		Caption: TextItem{
			Text: fmt.Sprintf("Hours 00:00 to %02d:00", len(bins)),
			X:    float64(cfg.Width) / 2,
			Y:    float64(cfg.CaptionY),
		},
	}
	for i, c := range bins {
		x1 := float64(cfg.MarginX + i*cfg.BarWidth)
		x2 := x1 + float64(cfg.BarWidth-cfg.BarGap)
		y1 := base - float64(c)*scale
		cx := (x1 + x2) / 2
		l.Bars[i] = Bar{
			Hour: i, Count: c,
			X1: x1, Y1: y1, X2: x2, Y2: base,
			CountLabel: TextItem{Text: fmt.Sprint(c), X: cx, Y: y1 - 10},
			HourLabel:  TextItem{Text: fmt.Sprintf("%02d", i), X: cx, Y: base + 15},
		}
	}
	return l
}

// Palette holds the chart colours.
type Palette struct {
	Background color.Color
	BarFill    color.Color
	BarOutline color.Color
	Text       color.Color
}

// PaletteFromConfig parses the hex colours of cfg.
func PaletteFromConfig(cfg utils.ChartConfig) Palette {
	return Palette{
		Background: hexColor(cfg.Background),
		BarFill:    hexColor(cfg.BarFill),
		BarOutline: hexColor(cfg.BarOutline),
		Text:       hexColor(cfg.Text),
	}
}

func hexColor(s string) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(s)
}

// DrawChart rasterises a layout.
func DrawChart(l ChartLayout, p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: p.Background}, image.Point{}, draw.Src)

	for _, b := range l.Bars {
		r := image.Rect(px(b.X1), px(b.Y1), px(b.X2), px(b.Y2))
		draw.Draw(img, r, &image.Uniform{C: p.BarFill}, image.Point{}, draw.Src)
		outline(img, r, p.BarOutline)
		drawText(img, b.CountLabel, p.Text)
		drawText(img, b.HourLabel, p.Text)
	}
	drawText(img, l.Title, p.Text)
	drawText(img, l.Caption, p.Text)
	return img
}

func px(v float64) int { return int(math.Round(v)) }

// outline strokes a one-pixel border just inside r.
func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	if r.Empty() {
		// zero-height bar: just the baseline
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, r.Min.Y, c)
		}
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

func drawText(img *image.RGBA, t TextItem, c color.Color) {
	face := basicfont.Face7x13
	m := face.Metrics()
	w := font.MeasureString(face, t.Text).Ceil()
	baseline := px(t.Y) + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(px(t.X) - w/2), Y: fixed.I(baseline)},
	}
	dr.DrawString(t.Text)
}
