package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/labelsmith/labelsmith/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "labelsmith"

// Execute runs the labelsmith CLI and returns an error if any command fails.
//
// The root command registers all subcommands (generate, preview, export,
// profiles, serve, completion) and configures logging based on the
// --verbose flag.
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "labelsmith generates printable barcode label sheets",
		Long: `Labelsmith turns numeric ranges or manual code lists into barcode labels
and exports them as PNG previews, multi-page PDFs, or ZIP archives of
individual SVG images.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newProfilesCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// profilesDir returns the layout profile directory using the XDG standard
// (~/.config/labelsmith/profiles/).
func profilesDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "profiles"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "profiles"), nil
}
