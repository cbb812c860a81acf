// Package render turns code strings into barcode artifacts.
//
// The package provides one encoder (Code 128) and four sinks:
//
//   - [RenderSVG]: standalone vector image for a single code
//   - [RenderSheet]: PNG contact sheet previewing up to ten codes
//   - [RenderPDF]: multi-page PDF from precomputed layout placements
//   - [RenderZIP]: ZIP archive with one SVG entry per code
//
// A code that cannot be encoded (non-ASCII content, or too wide for its
// slot) is a per-item failure: sinks skip it, report it through the
// configured skip handler, and keep going. Only finalization errors abort
// an export.
package render

import (
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"github.com/labelsmith/labelsmith/pkg/errors"
)

// Encode encodes a code string as a Code 128 symbol.
// The returned barcode is one module high; callers scale it to the target
// size. Codes that fail validation or symbology rules return an error with
// code INVALID_CODE.
func Encode(code string) (barcode.Barcode, error) {
	if err := errors.ValidateCode(code); err != nil {
		return nil, err
	}
	bc, err := code128.Encode(code)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCode, err, "encode %q", code)
	}
	return bc, nil
}

// Image encodes a code and scales the symbol to w x h pixels.
// Scaling fails when the symbol has more modules than w pixels; that is
// reported as an INVALID_CODE error so callers treat it as a per-item skip.
func Image(code string, w, h int) (image.Image, error) {
	bc, err := Encode(code)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(bc, w, h)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCode, err, "scale %q to %dx%d", code, w, h)
	}
	return scaled, nil
}

// modules returns the symbol's bar pattern as runs of black modules.
// Each run is a start offset and width, both in module units; the total
// symbol width is the second return value.
func modules(bc barcode.Barcode) ([]run, int) {
	width := bc.Bounds().Dx()

	var runs []run
	start := -1
	for x := 0; x < width; x++ {
		r, g, b, _ := bc.At(x, 0).RGBA()
		black := r == 0 && g == 0 && b == 0
		switch {
		case black && start < 0:
			start = x
		case !black && start >= 0:
			runs = append(runs, run{start: start, width: x - start})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, run{start: start, width: width - start})
	}
	return runs, width
}

// run is a contiguous span of black modules within a symbol.
type run struct {
	start, width int
}
