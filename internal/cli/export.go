package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/layout"
	"github.com/labelsmith/labelsmith/pkg/profile"
	"github.com/labelsmith/labelsmith/pkg/render"
)

const (
	layoutStandard = "standard" // duplicate-pair layout, 3 codes per page
	layoutGrid     = "grid"     // dense 4x5 grid, 20 codes per page
)

// newExportCmd groups the export subcommands.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export labels as a PDF document or SVG archive",
	}
	cmd.AddCommand(newExportPDFCmd())
	cmd.AddCommand(newExportZIPCmd())
	return cmd
}

// pdfOpts holds the flags for the export pdf subcommand.
type pdfOpts struct {
	seq         seqOpts
	layout      string  // "standard" or "grid"
	profileName string  // profile name in the profiles dir, or a .toml path
	interactive bool    // pick a profile interactively
	output      string  // output path; empty derives a timestamped name
	pageW       float64 // geometry overrides, applied over the profile
	pageH       float64
	itemW       float64
	itemH       float64
	marginLeft  float64
	marginTop   float64
	gapX        float64
	gapY        float64
}

// newExportPDFCmd creates the export pdf subcommand.
//
// The standard layout places each code twice per page (3 codes per page)
// using geometry from a profile and/or override flags. The grid layout
// packs 20 codes per A4 page with fixed geometry.
func newExportPDFCmd() *cobra.Command {
	def := profile.Default()
	opts := pdfOpts{layout: layoutStandard}

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export a multi-page label PDF",
		Example: `  labelsmith export pdf --start 1 --end 30 --padding 4
  labelsmith export pdf --layout grid --from-file codes.txt
  labelsmith export pdf --profile shelf-labels --params "range:1-60"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateLayout(opts.layout); err != nil {
				return err
			}
			return runExportPDF(cmd, &opts)
		},
	}

	addSequenceFlags(cmd, &opts.seq)
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", opts.layout, "page layout: standard (default), grid")
	cmd.Flags().StringVarP(&opts.profileName, "profile", "p", "", "layout profile name or .toml path")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick a layout profile interactively")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path (default barcodes-<layout>-<timestamp>.pdf)")
	cmd.Flags().Float64Var(&opts.pageW, "page-width", def.PageW, "page width in points")
	cmd.Flags().Float64Var(&opts.pageH, "page-height", def.PageH, "page height in points")
	cmd.Flags().Float64Var(&opts.itemW, "item-width", def.ItemW, "barcode width in points")
	cmd.Flags().Float64Var(&opts.itemH, "item-height", def.ItemH, "barcode height in points")
	cmd.Flags().Float64Var(&opts.marginLeft, "margin-left", def.MarginLeft, "left margin in points")
	cmd.Flags().Float64Var(&opts.marginTop, "margin-top", def.MarginTop, "top margin in points")
	cmd.Flags().Float64Var(&opts.gapX, "gap-x", def.GapX, "horizontal column stride in points")
	cmd.Flags().Float64Var(&opts.gapY, "gap-y", def.GapY, "vertical pair offset in points")

	return cmd
}

// validateLayout checks that the layout is either "standard" or "grid".
func validateLayout(s string) error {
	if s != layoutStandard && s != layoutGrid {
		return fmt.Errorf("invalid layout: %s (must be 'standard' or 'grid')", s)
	}
	return nil
}

func runExportPDF(cmd *cobra.Command, opts *pdfOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	codes, err := opts.seq.resolve(cmd)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return errors.New(errors.ErrCodeEmptySequence, "no codes to export")
	}

	var pages []layout.Page
	switch opts.layout {
	case layoutStandard:
		params, err := resolveParams(cmd, opts)
		if err != nil {
			return err
		}
		pages, err = layout.PairPages(codes, params)
		if err != nil {
			return err
		}
	case layoutGrid:
		pages = layout.GridPages(codes)
	}
	logger.Debugf("Computed %d pages for %d codes", len(pages), len(codes))

	output := opts.output
	if output == "" {
		if opts.layout == layoutGrid {
			output = render.ManualPDFFilename(time.Now())
		} else {
			output = render.StandardPDFFilename(time.Now())
		}
	}

	track := newProgress(logger)
	spinner := newSpinner(ctx, "Composing PDF...")
	spinner.Start()

	data, err := render.RenderPDF(pages,
		render.WithPDFTitle("barcode labels"),
		render.WithPDFSkipHandler(func(code string, err error) {
			logger.Warnf("Skipping %q: %s", code, errors.UserMessage(err))
		}),
	)
	spinner.Stop()
	if err != nil {
		return err
	}

	if err := writeArtifact(output, data); err != nil {
		return err
	}
	track.done(fmt.Sprintf("Exported %d labels to %s", len(codes), output))
	printSuccess("Exported %d labels (%d pages)", len(codes), len(pages))
	printFile(output)
	return nil
}

// resolveParams builds the pair-layout geometry: profile (named, picked
// interactively, or default) first, then explicit flag overrides on top.
func resolveParams(cmd *cobra.Command, opts *pdfOpts) (layout.Params, error) {
	params := profile.Default()

	name := opts.profileName
	if name == "" && opts.interactive {
		picked, err := pickProfile(cmd.Context())
		if err != nil {
			return layout.Params{}, err
		}
		name = picked
	}

	if name != "" {
		path := name
		if !strings.HasSuffix(path, ".toml") {
			dir, err := profilesDir()
			if err != nil {
				return layout.Params{}, err
			}
			path = profile.Path(dir, name)
		}
		loaded, err := profile.Load(path)
		if err != nil {
			return layout.Params{}, err
		}
		params = loaded
	}

	overrides := map[string]*float64{
		"page-width":  &params.PageW,
		"page-height": &params.PageH,
		"item-width":  &params.ItemW,
		"item-height": &params.ItemH,
		"margin-left": &params.MarginLeft,
		"margin-top":  &params.MarginTop,
		"gap-x":       &params.GapX,
		"gap-y":       &params.GapY,
	}
	for flag, target := range overrides {
		if cmd.Flags().Changed(flag) {
			v, err := cmd.Flags().GetFloat64(flag)
			if err != nil {
				return layout.Params{}, err
			}
			*target = v
		}
	}

	return params, params.Validate()
}

// newExportZIPCmd creates the export zip subcommand.
func newExportZIPCmd() *cobra.Command {
	var (
		opts   seqOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "zip",
		Short: "Export one SVG image per code as a ZIP archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			codes, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if len(codes) == 0 {
				return errors.New(errors.ErrCodeEmptySequence, "no codes to export")
			}

			if output == "" {
				output = render.SVGZipFilename(time.Now())
			}

			track := newProgress(logger)
			spinner := newSpinner(ctx, "Compressing archive...")
			spinner.Start()

			data, err := render.RenderZIP(codes, render.WithZIPSkipHandler(func(code string, err error) {
				logger.Warnf("Skipping %q: %s", code, errors.UserMessage(err))
			}))
			spinner.Stop()
			if err != nil {
				return err
			}

			if err := writeArtifact(output, data); err != nil {
				return err
			}
			track.done(fmt.Sprintf("Archived %d codes to %s", len(codes), output))
			printSuccess("Archived %d codes", len(codes))
			printFile(output)
			return nil
		},
	}

	addSequenceFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output ZIP path (default barcodes-svg-<timestamp>.zip)")

	return cmd
}

// writeArtifact validates the path and writes a finished export in one
// shot, so a failed export never leaves a partial file behind.
func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write %s", path)
	}
	return nil
}
