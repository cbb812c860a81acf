package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/labelsmith/labelsmith/pkg/errors"
)

func TestRenderSheet(t *testing.T) {
	data, err := RenderSheet([]string{"P1", "P2", "P3"})
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	// 3 codes flow into 2 rows of 2 columns.
	wantW := sheetMargin + sheetCols*(sheetItemW+sheetMargin)
	wantH := sheetMargin + 2*(sheetItemH+sheetCaptionH+sheetMargin)
	b := img.Bounds()
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("sheet size = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestRenderSheetSkipsBadCodes(t *testing.T) {
	var skipped int
	_, err := RenderSheet(
		[]string{"OK", "bäd"},
		WithSheetSkipHandler(func(string, error) { skipped++ }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestRenderSheetEmpty(t *testing.T) {
	_, err := RenderSheet(nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeEmptySequence) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeEmptySequence)
	}
}
