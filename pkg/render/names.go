package render

import (
	"strings"
	"time"
)

// timestampFormat produces sortable, filesystem-safe timestamps for
// generated filenames.
const timestampFormat = "20060102-150405"

// StandardPDFFilename names the duplicate-pair layout export.
func StandardPDFFilename(t time.Time) string {
	return "barcodes-standard-" + t.Format(timestampFormat) + ".pdf"
}

// ManualPDFFilename names the dense grid layout export.
func ManualPDFFilename(t time.Time) string {
	return "barcodes-manual-" + t.Format(timestampFormat) + ".pdf"
}

// SVGZipFilename names the per-code SVG archive export.
func SVGZipFilename(t time.Time) string {
	return "barcodes-svg-" + t.Format(timestampFormat) + ".zip"
}

// EntryName derives a ZIP entry filename from a code: every non-alphanumeric
// rune becomes '_', the rest is lowercased, and ".svg" is appended.
func EntryName(code string) string {
	var b strings.Builder
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + ".svg"
}
