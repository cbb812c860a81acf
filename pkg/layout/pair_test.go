package layout

import (
	"math"
	"testing"
)

func codesN(n int) []string {
	codes := make([]string, n)
	for i := range codes {
		codes[i] = string(rune('A' + i%26))
	}
	return codes
}

func TestPairPages(t *testing.T) {
	p := validParams()
	pages, err := PairPages(codesN(7), p)
	if err != nil {
		t.Fatal(err)
	}

	// 7 codes split 3/3/1 across pages.
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	wantCounts := []int{6, 6, 2} // each code placed twice
	for i, page := range pages {
		if len(page.Placements) != wantCounts[i] {
			t.Errorf("page %d has %d placements, want %d", i, len(page.Placements), wantCounts[i])
		}
	}

	topY := p.PageH - p.MarginTop - p.ItemH - TextAllowance
	bottomY := topY - p.GapY

	for pi, page := range pages {
		for i := 0; i < len(page.Placements); i += 2 {
			top, bottom := page.Placements[i], page.Placements[i+1]
			if top.Code != bottom.Code {
				t.Errorf("page %d pair %d codes differ: %q vs %q", pi, i/2, top.Code, bottom.Code)
			}
			if top.X != bottom.X {
				t.Errorf("page %d pair %d X differs: %g vs %g", pi, i/2, top.X, bottom.X)
			}
			if top.Y != topY {
				t.Errorf("page %d pair %d top Y = %g, want %g", pi, i/2, top.Y, topY)
			}
			if bottom.Y != bottomY {
				t.Errorf("page %d pair %d bottom Y = %g, want %g", pi, i/2, bottom.Y, bottomY)
			}
			if bottom.Y >= top.Y {
				t.Errorf("bottom Y %g not offset above top Y %g", bottom.Y, top.Y)
			}

			wantX := p.MarginLeft + float64(i/2)*p.GapX
			if top.X != wantX {
				t.Errorf("page %d pair %d X = %g, want %g", pi, i/2, top.X, wantX)
			}
		}
	}
}

func TestPairPagesOrderPreserved(t *testing.T) {
	codes := []string{"C1", "C2", "C3", "C4"}
	pages, err := PairPages(codes, validParams())
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, page := range pages {
		for i := 0; i < len(page.Placements); i += 2 {
			got = append(got, page.Placements[i].Code)
		}
	}
	for i, code := range codes {
		if got[i] != code {
			t.Errorf("placement order[%d] = %q, want %q", i, got[i], code)
		}
	}
}

func TestPairPagesEmpty(t *testing.T) {
	pages, err := PairPages(nil, validParams())
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 0 {
		t.Errorf("got %d pages for empty code list, want 0", len(pages))
	}
}

func TestPairPagesInvalidParams(t *testing.T) {
	p := validParams()
	p.PageH = math.NaN()
	if _, err := PairPages(codesN(3), p); err == nil {
		t.Fatal("expected error for NaN page height")
	}
}
