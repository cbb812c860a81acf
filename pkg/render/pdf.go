package render

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/layout"
)

// Barcode images are rasterized at double resolution before embedding so
// they stay crisp at print size.
const pdfImageScale = 2

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title  string
	onSkip SkipHandler
}

// WithPDFTitle sets the document title metadata.
func WithPDFTitle(title string) PDFOption {
	return func(r *pdfRenderer) { r.title = title }
}

// WithPDFSkipHandler sets the callback invoked for placements whose code
// fails to encode. The slot stays empty and rendering continues.
func WithPDFSkipHandler(f SkipHandler) PDFOption {
	return func(r *pdfRenderer) { r.onSkip = f }
}

// RenderPDF composes layout pages into a multi-page PDF document.
// Each placement is drawn as a barcode image with its code captioned
// beneath it. Pages may differ in size; each keeps its own dimensions.
func RenderPDF(pages []layout.Page, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{title: "barcodes", onSkip: ignoreSkip}
	for _, opt := range opts {
		opt(&r)
	}

	if len(pages) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySequence, "no pages to compose")
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pages[0].W, Ht: pages[0].H},
	})
	doc.SetTitle(r.title, true)
	doc.SetCreator("labelsmith", true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", 9)

	registered := map[string]bool{}
	for pi, page := range pages {
		doc.AddPageFormat("P", fpdf.SizeType{Wd: page.W, Ht: page.H})

		for _, pl := range page.Placements {
			if err := r.placeBarcode(doc, registered, pl); err != nil {
				r.onSkip(pl.Code, err)
				continue
			}
		}

		if doc.Err() {
			return nil, errors.Wrap(errors.ErrCodeExportFailed, doc.Error(), "compose page %d", pi+1)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "finalize document")
	}
	return buf.Bytes(), nil
}

// placeBarcode draws one placement: the barcode image plus a centered
// caption in the text allowance below it. Images are registered once per
// code and reused for repeated placements.
func (r *pdfRenderer) placeBarcode(doc *fpdf.Fpdf, registered map[string]bool, pl layout.Placement) error {
	name := "code128:" + pl.Code
	imgOpts := fpdf.ImageOptions{ImageType: "PNG"}

	if !registered[name] {
		img, err := Image(pl.Code, int(pl.W)*pdfImageScale, int(pl.H)*pdfImageScale)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode %q: %w", pl.Code, err)
		}
		doc.RegisterImageOptionsReader(name, imgOpts, &buf)
		registered[name] = true
	}

	doc.ImageOptions(name, pl.X, pl.Y, pl.W, pl.H, false, imgOpts, 0, "")

	captionW := doc.GetStringWidth(pl.Code)
	doc.Text(pl.X+(pl.W-captionW)/2, pl.Y+pl.H+10, pl.Code)
	return nil
}
