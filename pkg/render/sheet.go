package render

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/labelsmith/labelsmith/pkg/errors"
)

// Contact sheet geometry, in pixels.
const (
	sheetCols     = 2
	sheetItemW    = 240
	sheetItemH    = 80
	sheetMargin   = 20
	sheetCaptionH = 16
)

// SheetOption configures preview sheet rendering.
type SheetOption func(*sheetRenderer)

type sheetRenderer struct {
	onSkip SkipHandler
}

// WithSheetSkipHandler sets the callback invoked for codes that fail to
// encode. The sheet leaves their cells empty and keeps going.
func WithSheetSkipHandler(f SkipHandler) SheetOption {
	return func(r *sheetRenderer) { r.onSkip = f }
}

// RenderSheet renders codes as a PNG contact sheet, two columns wide.
// Callers are expected to pass an already-truncated preview list; the
// sheet imposes no limit itself.
func RenderSheet(codes []string, opts ...SheetOption) ([]byte, error) {
	r := sheetRenderer{onSkip: ignoreSkip}
	for _, opt := range opts {
		opt(&r)
	}

	if len(codes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySequence, "no codes to preview")
	}

	rows := (len(codes) + sheetCols - 1) / sheetCols
	cellH := sheetItemH + sheetCaptionH + sheetMargin
	width := sheetMargin + sheetCols*(sheetItemW+sheetMargin)
	height := sheetMargin + rows*cellH

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, code := range codes {
		x := sheetMargin + (i%sheetCols)*(sheetItemW+sheetMargin)
		y := sheetMargin + (i/sheetCols)*cellH

		img, err := Image(code, sheetItemW, sheetItemH)
		if err != nil {
			r.onSkip(code, err)
			continue
		}
		dc.DrawImage(img, x, y)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(code, float64(x)+sheetItemW/2, float64(y+sheetItemH)+8, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode preview sheet")
	}
	return buf.Bytes(), nil
}
