package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/layout"
	"github.com/labelsmith/labelsmith/pkg/render"
)

// newPreviewCmd creates the preview command, which renders the first codes
// as a PNG contact sheet.
func newPreviewCmd() *cobra.Command {
	var (
		opts   seqOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the first 10 codes as a PNG contact sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			codes, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if len(codes) == 0 {
				return errors.New(errors.ErrCodeEmptySequence, "no codes to preview")
			}

			shown := layout.Preview(codes)
			if len(shown) < len(codes) {
				logger.Infof("Previewing first %d of %d codes", len(shown), len(codes))
			}

			data, err := render.RenderSheet(shown, render.WithSheetSkipHandler(func(code string, err error) {
				logger.Warnf("Skipping %q: %s", code, errors.UserMessage(err))
			}))
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Previewed %d codes", len(shown))
			printFile(output)
			return nil
		},
	}

	addSequenceFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "output PNG path")

	return cmd
}
