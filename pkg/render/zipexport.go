package render

import (
	"archive/zip"
	"bytes"

	"github.com/labelsmith/labelsmith/pkg/errors"
)

// ZIPOption configures ZIP archive rendering.
type ZIPOption func(*zipRenderer)

type zipRenderer struct {
	svgOpts []SVGOption
	onSkip  SkipHandler
}

// WithZIPSVGOptions passes options through to the per-entry SVG renderer.
func WithZIPSVGOptions(opts ...SVGOption) ZIPOption {
	return func(r *zipRenderer) { r.svgOpts = opts }
}

// WithZIPSkipHandler sets the callback invoked for codes that fail to
// encode. Their entries are omitted and archiving continues.
func WithZIPSkipHandler(f SkipHandler) ZIPOption {
	return func(r *zipRenderer) { r.onSkip = f }
}

// RenderZIP archives one SVG image per code into a single ZIP blob.
// Entry names come from [EntryName]. Entry order matches code order.
func RenderZIP(codes []string, opts ...ZIPOption) ([]byte, error) {
	r := zipRenderer{onSkip: ignoreSkip}
	for _, opt := range opts {
		opt(&r)
	}

	if len(codes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySequence, "no codes to archive")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, code := range codes {
		data, err := RenderSVG(code, r.svgOpts...)
		if err != nil {
			r.onSkip(code, err)
			continue
		}

		w, err := zw.Create(EntryName(code))
		if err != nil {
			zw.Close()
			return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "create entry for %q", code)
		}
		if _, err := w.Write(data); err != nil {
			zw.Close()
			return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "write entry for %q", code)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "finalize archive")
	}
	return buf.Bytes(), nil
}
