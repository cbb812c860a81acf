package render

import (
	"bytes"
	"testing"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/layout"
)

func pairPages(t *testing.T, codes []string) []layout.Page {
	t.Helper()
	pages, err := layout.PairPages(codes, layout.Params{
		PageW: 842, PageH: 595,
		ItemW: 240, ItemH: 80,
		MarginLeft: 40, MarginTop: 40,
		GapX: 260, GapY: 160,
	})
	if err != nil {
		t.Fatal(err)
	}
	return pages
}

func TestRenderPDF(t *testing.T) {
	pages := pairPages(t, []string{"A1", "A2", "A3", "A4"})

	data, err := RenderPDF(pages, WithPDFTitle("test labels"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small document: %d bytes", len(data))
	}
}

func TestRenderPDFGridLayout(t *testing.T) {
	codes := make([]string, 25)
	for i := range codes {
		codes[i] = "G" + string(rune('A'+i%26))
	}

	data, err := RenderPDF(layout.GridPages(codes))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRenderPDFSkipsBadCodes(t *testing.T) {
	var skipped []string
	pages := pairPages(t, []string{"OK-1", "bäd"})

	_, err := RenderPDF(pages, WithPDFSkipHandler(func(code string, err error) {
		skipped = append(skipped, code)
	}))
	if err != nil {
		t.Fatal(err)
	}

	// The bad code appears twice on its page (top and bottom placement),
	// so it is reported twice.
	if len(skipped) != 2 {
		t.Fatalf("skipped %d placements, want 2: %v", len(skipped), skipped)
	}
	for _, code := range skipped {
		if code != "bäd" {
			t.Errorf("skipped %q, want %q", code, "bäd")
		}
	}
}

func TestRenderPDFEmpty(t *testing.T) {
	_, err := RenderPDF(nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeEmptySequence) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeEmptySequence)
	}
}
