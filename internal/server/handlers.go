package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/layout"
	"github.com/labelsmith/labelsmith/pkg/profile"
	"github.com/labelsmith/labelsmith/pkg/render"
	"github.com/labelsmith/labelsmith/pkg/sequence"
)

// codesRequest carries the code sources shared by all endpoints.
// Manual codes come first; generated codes are appended after them.
// Start/End are pointers so "range not used" and "range 0-0" stay distinct.
type codesRequest struct {
	Prefix    string `json:"prefix"`
	Suffix    string `json:"suffix"`
	Start     *int   `json:"start"`
	End       *int   `json:"end"`
	Increment int    `json:"increment"`
	Padding   int    `json:"padding"`
	Params    string `json:"params"`
	Manual    string `json:"manual"`
}

// resolve derives the final code list, preserving the CLI's source
// precedence: manual list, then parameter block or range flags.
func (req *codesRequest) resolve() ([]string, error) {
	codes := sequence.FromLines(req.Manual)

	switch {
	case req.Params != "":
		spec, err := sequence.ParseParams(req.Params)
		if err != nil {
			return nil, err
		}
		codes = append(codes, sequence.Generate(spec)...)

	case req.Start != nil || req.End != nil:
		spec := sequence.Spec{
			Increment: req.Increment,
			Prefix:    req.Prefix,
			Suffix:    req.Suffix,
			Padding:   req.Padding,
		}
		if req.Start != nil {
			spec.Start = *req.Start
		}
		if req.End != nil {
			spec.End = *req.End
		}
		codes = append(codes, sequence.Generate(spec)...)

	case req.Manual == "":
		return nil, errors.New(errors.ErrCodeEmptyInput, "no code source given")
	}

	return codes, nil
}

// exportPDFRequest adds layout selection and geometry overrides.
type exportPDFRequest struct {
	codesRequest
	Layout     string   `json:"layout"`
	PageW      *float64 `json:"page_width"`
	PageH      *float64 `json:"page_height"`
	ItemW      *float64 `json:"item_width"`
	ItemH      *float64 `json:"item_height"`
	MarginLeft *float64 `json:"margin_left"`
	MarginTop  *float64 `json:"margin_top"`
	GapX       *float64 `json:"gap_x"`
	GapY       *float64 `json:"gap_y"`
}

// params merges the request's geometry overrides over the defaults.
func (req *exportPDFRequest) params() layout.Params {
	p := profile.Default()
	for dst, src := range map[*float64]*float64{
		&p.PageW: req.PageW, &p.PageH: req.PageH,
		&p.ItemW: req.ItemW, &p.ItemH: req.ItemH,
		&p.MarginLeft: req.MarginLeft, &p.MarginTop: req.MarginTop,
		&p.GapX: req.GapX, &p.GapY: req.GapY,
	} {
		if src != nil {
			*dst = *src
		}
	}
	return p
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, webUI)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req codesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	codes, err := req.resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"codes": codes, "count": len(codes)})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req codesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	codes, err := req.resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(codes) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeEmptySequence, "no codes to preview"))
		return
	}

	data, err := render.RenderSheet(layout.Preview(codes), render.WithSheetSkipHandler(s.logSkip))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	var req exportPDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	codes, err := req.resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(codes) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeEmptySequence, "no codes to export"))
		return
	}

	var (
		pages    []layout.Page
		filename string
	)
	switch req.Layout {
	case "grid":
		pages = layout.GridPages(codes)
		filename = render.ManualPDFFilename(time.Now())
	case "standard", "":
		pages, err = layout.PairPages(codes, req.params())
		if err != nil {
			s.writeError(w, err)
			return
		}
		filename = render.StandardPDFFilename(time.Now())
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidLayout, "invalid layout: %s", req.Layout))
		return
	}

	data, err := render.RenderPDF(pages,
		render.WithPDFTitle("barcode labels"),
		render.WithPDFSkipHandler(s.logSkip),
	)
	if err != nil {
		s.writeError(w, err)
		return
	}

	serveDownload(w, filename, "application/pdf", data)
}

func (s *Server) handleExportZIP(w http.ResponseWriter, r *http.Request) {
	var req codesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	codes, err := req.resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(codes) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeEmptySequence, "no codes to export"))
		return
	}

	data, err := render.RenderZIP(codes, render.WithZIPSkipHandler(s.logSkip))
	if err != nil {
		s.writeError(w, err)
		return
	}

	serveDownload(w, render.SVGZipFilename(time.Now()), "application/zip", data)
}

// logSkip reports non-fatal per-code rendering failures.
func (s *Server) logSkip(code string, err error) {
	s.logger.Warnf("Skipping %q: %s", code, errors.UserMessage(err))
}

// writeError maps structured errors to HTTP responses: validation and
// empty-input codes are client errors, everything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidRange, errors.ErrCodeInvalidIncrement,
		errors.ErrCodeInvalidPadding, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidCode,
		errors.ErrCodeEmptyInput, errors.ErrCodeEmptySequence:
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(code),
	})
}

// serveDownload writes a finished artifact with a download filename.
func serveDownload(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
