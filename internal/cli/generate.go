package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// newGenerateCmd creates the generate command, which prints or saves the
// resolved code list without rendering anything.
func newGenerateCmd() *cobra.Command {
	var (
		opts   seqOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the code list from a range, parameter block, or file",
		Example: `  labelsmith generate --prefix BX- --start 1 --end 50 --padding 4
  labelsmith generate --params "range:1-10; padding:3"
  labelsmith generate --from-file codes.txt --params "range:100-120"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			codes, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			logger.Debugf("Resolved %d codes", len(codes))

			if output == "" {
				for _, code := range codes {
					fmt.Println(code)
				}
				return nil
			}

			data := strings.Join(codes, "\n")
			if len(codes) > 0 {
				data += "\n"
			}
			if err := os.WriteFile(output, []byte(data), 0o644); err != nil {
				return err
			}
			logger.Infof("Generated %s (%d codes)", output, len(codes))
			return nil
		},
	}

	addSequenceFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write codes to a file instead of stdout")

	return cmd
}
