package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
)

// SVG rendering defaults, in pixels. The image width follows from the
// symbol's module count times the bar width.
const (
	defaultBarWidth  = 2
	defaultBarHeight = 60
	defaultFontSize  = 14
)

// SVGOption configures standalone SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	barWidth  int
	barHeight int
	fontSize  int
	showText  bool
}

// WithBarWidth sets the width of a single module in pixels.
func WithBarWidth(px int) SVGOption {
	return func(r *svgRenderer) { r.barWidth = px }
}

// WithBarHeight sets the bar height in pixels.
func WithBarHeight(px int) SVGOption {
	return func(r *svgRenderer) { r.barHeight = px }
}

// WithFontSize sets the caption font size in pixels.
func WithFontSize(px int) SVGOption {
	return func(r *svgRenderer) { r.fontSize = px }
}

// WithoutText omits the human-readable caption under the bars.
func WithoutText() SVGOption {
	return func(r *svgRenderer) { r.showText = false }
}

// RenderSVG renders a single code as a standalone SVG image.
// The symbol is drawn as one rect per bar run; the caption is centered
// beneath the bars unless disabled.
func RenderSVG(code string, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{
		barWidth:  defaultBarWidth,
		barHeight: defaultBarHeight,
		fontSize:  defaultFontSize,
		showText:  true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	bc, err := Encode(code)
	if err != nil {
		return nil, err
	}
	runs, symbolWidth := modules(bc)

	imgW := symbolWidth * r.barWidth
	imgH := r.barHeight
	if r.showText {
		imgH += r.fontSize + 4
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(imgW, imgH)
	canvas.Rect(0, 0, imgW, imgH, "fill:white")
	for _, run := range runs {
		canvas.Rect(run.start*r.barWidth, 0, run.width*r.barWidth, r.barHeight, "fill:black")
	}
	if r.showText {
		style := fmt.Sprintf("text-anchor:middle;font-family:monospace;font-size:%dpx;fill:black", r.fontSize)
		canvas.Text(imgW/2, r.barHeight+r.fontSize, code, style)
	}
	canvas.End()

	return buf.Bytes(), nil
}
