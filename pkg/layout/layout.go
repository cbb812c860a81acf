// Package layout computes per-page item placements for barcode label sheets.
//
// Three layout policies exist:
//
//   - [Preview]: first 10 codes, no coordinate math (flow container)
//   - [PairPages]: 3 codes per page, each code placed twice (top and bottom)
//   - [GridPages]: dense 4x5 grid on A4 portrait, 20 codes per page
//
// All functions are pure: parameters in, placements out. Coordinates are in
// points with the origin at the top-left corner of the page, matching the
// PDF composer's coordinate system. Dimensions are validated up front so no
// renderer ever sees a non-finite position.
package layout

import (
	"math"

	"github.com/labelsmith/labelsmith/pkg/errors"
)

// TextAllowance is the fixed vertical space reserved under each barcode for
// its human-readable caption, in points.
const TextAllowance = 12

// Params holds the page and item geometry for the duplicate-pair layout.
// All values are in points.
type Params struct {
	PageW, PageH          float64 // page size
	ItemW, ItemH          float64 // barcode image size
	MarginLeft, MarginTop float64 // page margins
	GapX, GapY            float64 // horizontal column stride, vertical pair offset
}

// Validate rejects non-finite or non-positive dimensions before any layout
// or rendering begins. Margins and gaps may be zero but never negative.
func (p Params) Validate() error {
	dims := map[string]float64{
		"page width":  p.PageW,
		"page height": p.PageH,
		"item width":  p.ItemW,
		"item height": p.ItemH,
	}
	for name, v := range dims {
		if !finite(v) {
			return errors.New(errors.ErrCodeInvalidLayout, "%s is not a finite number", name)
		}
		if v <= 0 {
			return errors.New(errors.ErrCodeInvalidLayout, "%s must be positive, got %g", name, v)
		}
	}

	offsets := map[string]float64{
		"left margin":    p.MarginLeft,
		"top margin":     p.MarginTop,
		"horizontal gap": p.GapX,
		"vertical gap":   p.GapY,
	}
	for name, v := range offsets {
		if !finite(v) {
			return errors.New(errors.ErrCodeInvalidLayout, "%s is not a finite number", name)
		}
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidLayout, "%s cannot be negative, got %g", name, v)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Placement positions one rendered code on a page.
type Placement struct {
	Code string  // code to render at this slot
	X, Y float64 // top-left corner, points
	W, H float64 // item size, points
}

// Page holds the placements for a single output page.
type Page struct {
	W, H       float64
	Placements []Placement
}

// previewLimit caps how many codes the preview sheet shows.
const previewLimit = 10

// Preview truncates codes to the preview limit. The preview sheet is a
// simple flow container, so no coordinates are computed here.
func Preview(codes []string) []string {
	if len(codes) > previewLimit {
		return codes[:previewLimit]
	}
	return codes
}
