package layout

// pairPerPage is the number of codes on each duplicate-pair page.
const pairPerPage = 3

// PairPages computes the duplicate-pair layout used by the standard export.
//
// Pages hold 3 codes each. Every code appears twice on its page: once at a
// "top" position and once at a "bottom" position offset from it by the
// vertical gap. Columns advance by GapX from the left margin.
//
// The vertical positions preserve the source tool's arithmetic:
//
//	topY    = pageH - marginTop - itemH - TextAllowance
//	bottomY = topY - gapY
func PairPages(codes []string, p Params) ([]Page, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	topY := p.PageH - p.MarginTop - p.ItemH - TextAllowance
	bottomY := topY - p.GapY

	var pages []Page
	for i, code := range codes {
		if i%pairPerPage == 0 {
			pages = append(pages, Page{W: p.PageW, H: p.PageH})
		}
		page := &pages[len(pages)-1]

		col := float64(i % pairPerPage)
		x := p.MarginLeft + col*p.GapX

		page.Placements = append(page.Placements,
			Placement{Code: code, X: x, Y: topY, W: p.ItemW, H: p.ItemH},
			Placement{Code: code, X: x, Y: bottomY, W: p.ItemW, H: p.ItemH},
		)
	}

	return pages, nil
}
