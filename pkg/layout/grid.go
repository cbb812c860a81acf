package layout

// Dense grid geometry: A4 portrait with a uniform margin, divided into a
// fixed 4x5 grid of slots. All values in points.
const (
	gridPageW  = 595.0
	gridPageH  = 842.0
	gridMargin = 40.0
	gridCols   = 4
	gridRows   = 5

	// GridPerPage is the number of slots on each dense grid page.
	GridPerPage = gridCols * gridRows
)

// GridPages computes the dense grid layout used by the combined export.
//
// The usable page area is divided into 4 columns and 5 rows; each item is
// centered within its cell at 80% of the cell width and 50% of the cell
// height. Slots fill row-major, 20 codes per page, with additional pages
// appended as needed. Geometry is fixed, so no parameter validation applies.
func GridPages(codes []string) []Page {
	cellW := (gridPageW - 2*gridMargin) / gridCols
	cellH := (gridPageH - 2*gridMargin) / gridRows
	itemW := cellW * 0.8
	itemH := cellH * 0.5

	var pages []Page
	for i, code := range codes {
		if i%GridPerPage == 0 {
			pages = append(pages, Page{W: gridPageW, H: gridPageH})
		}
		page := &pages[len(pages)-1]

		slot := i % GridPerPage
		row := slot / gridCols
		col := slot % gridCols

		x := gridMargin + float64(col)*cellW + (cellW-itemW)/2
		y := gridMargin + float64(row)*cellH + (cellH-itemH)/2

		page.Placements = append(page.Placements, Placement{
			Code: code, X: x, Y: y, W: itemW, H: itemH,
		})
	}

	return pages
}
