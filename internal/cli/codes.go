package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/sequence"
)

// seqOpts holds the code-source flags shared by generate, preview, and the
// export subcommands. Codes can come from three places: a manual list file,
// a free-text parameter block, or discrete range flags. Manual codes come
// first; generated codes are appended after them.
type seqOpts struct {
	prefix    string // literal text before the number part
	suffix    string // literal text after the number part
	start     int    // first value (inclusive)
	end       int    // last value (inclusive)
	increment int    // step between values
	padding   int    // zero-pad width for the number part
	params    string // free-text parameter block (lines or ';'-separated)
	fromFile  string // manual code list file, '-' for stdin
}

// addSequenceFlags registers the shared code-source flags on cmd.
func addSequenceFlags(cmd *cobra.Command, o *seqOpts) {
	cmd.Flags().StringVar(&o.prefix, "prefix", "", "text before the number part")
	cmd.Flags().StringVar(&o.suffix, "suffix", "", "text after the number part")
	cmd.Flags().IntVar(&o.start, "start", 0, "first value of the range")
	cmd.Flags().IntVar(&o.end, "end", 0, "last value of the range")
	cmd.Flags().IntVar(&o.increment, "increment", 1, "step between values")
	cmd.Flags().IntVar(&o.padding, "padding", 0, "zero-pad the number part to this width")
	cmd.Flags().StringVar(&o.params, "params", "", `parameter block, e.g. "range:1-10; padding:3"`)
	cmd.Flags().StringVar(&o.fromFile, "from-file", "", "manual code list file, one code per line ('-' for stdin)")
}

// resolve derives the final code list from the configured sources.
//
// The parameter-block path validates strictly (a reversed range is an
// error); the flag-driven range silently yields no codes, matching the
// asymmetry of the original form behavior.
func (o *seqOpts) resolve(cmd *cobra.Command) ([]string, error) {
	var codes []string

	if o.fromFile != "" {
		text, err := readSource(o.fromFile)
		if err != nil {
			return nil, err
		}
		codes = sequence.FromLines(text)
	}

	switch {
	case o.params != "":
		spec, err := sequence.ParseParams(paramLines(o.params))
		if err != nil {
			return nil, err
		}
		codes = append(codes, sequence.Generate(spec)...)

	case cmd.Flags().Changed("start") || cmd.Flags().Changed("end"):
		codes = append(codes, sequence.Generate(sequence.Spec{
			Start:     o.start,
			End:       o.end,
			Increment: o.increment,
			Prefix:    o.prefix,
			Suffix:    o.suffix,
			Padding:   o.padding,
		})...)

	case o.fromFile == "":
		return nil, errors.New(errors.ErrCodeEmptyInput,
			"no code source given (use --start/--end, --params, or --from-file)")
	}

	return codes, nil
}

// paramLines turns a one-line shell-friendly parameter block into the
// newline-separated form the parser expects.
func paramLines(s string) string {
	return strings.ReplaceAll(s, ";", "\n")
}

// readSource reads a file, or stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
