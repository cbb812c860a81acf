package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/profile"
)

func newPDFTestCmd(opts *pdfOpts) *cobra.Command {
	def := profile.Default()
	cmd := &cobra.Command{Use: "pdf"}
	cmd.Flags().Float64Var(&opts.pageW, "page-width", def.PageW, "")
	cmd.Flags().Float64Var(&opts.pageH, "page-height", def.PageH, "")
	cmd.Flags().Float64Var(&opts.itemW, "item-width", def.ItemW, "")
	cmd.Flags().Float64Var(&opts.itemH, "item-height", def.ItemH, "")
	cmd.Flags().Float64Var(&opts.marginLeft, "margin-left", def.MarginLeft, "")
	cmd.Flags().Float64Var(&opts.marginTop, "margin-top", def.MarginTop, "")
	cmd.Flags().Float64Var(&opts.gapX, "gap-x", def.GapX, "")
	cmd.Flags().Float64Var(&opts.gapY, "gap-y", def.GapY, "")
	return cmd
}

func TestValidateLayout(t *testing.T) {
	for _, valid := range []string{layoutStandard, layoutGrid} {
		if err := validateLayout(valid); err != nil {
			t.Errorf("validateLayout(%q) = %v", valid, err)
		}
	}
	if err := validateLayout("mosaic"); err == nil {
		t.Error("validateLayout accepted an unknown layout")
	}
}

func TestResolveParamsDefaults(t *testing.T) {
	opts := &pdfOpts{}
	cmd := newPDFTestCmd(opts)

	params, err := resolveParams(cmd, opts)
	if err != nil {
		t.Fatal(err)
	}
	if params != profile.Default() {
		t.Errorf("params = %+v, want defaults", params)
	}
}

func TestResolveParamsFlagOverride(t *testing.T) {
	opts := &pdfOpts{}
	cmd := newPDFTestCmd(opts)
	setFlags(t, cmd, map[string]string{"gap-y": "120", "item-width": "200"})

	params, err := resolveParams(cmd, opts)
	if err != nil {
		t.Fatal(err)
	}
	if params.GapY != 120 || params.ItemW != 200 {
		t.Errorf("overrides not applied: %+v", params)
	}
	if params.PageW != profile.Default().PageW {
		t.Errorf("untouched field changed: %+v", params)
	}
}

func TestResolveParamsProfilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.toml")
	if err := os.WriteFile(path, []byte("item_width = 180\ngap_x = 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &pdfOpts{profileName: path}
	cmd := newPDFTestCmd(opts)
	setFlags(t, cmd, map[string]string{"gap-x": "220"})

	params, err := resolveParams(cmd, opts)
	if err != nil {
		t.Fatal(err)
	}
	if params.ItemW != 180 {
		t.Errorf("ItemW = %v, want the profile value 180", params.ItemW)
	}
	// Flags win over the profile.
	if params.GapX != 220 {
		t.Errorf("GapX = %v, want the flag value 220", params.GapX)
	}
}

func TestResolveParamsInvalidOverride(t *testing.T) {
	opts := &pdfOpts{}
	cmd := newPDFTestCmd(opts)
	setFlags(t, cmd, map[string]string{"page-width": "0"})

	_, err := resolveParams(cmd, opts)
	if errors.GetCode(err) != errors.ErrCodeInvalidLayout {
		t.Errorf("err = %v, want INVALID_LAYOUT", err)
	}
}

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := writeArtifact(path, []byte("%PDF-stub")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "%PDF-stub" {
		t.Errorf("file content = %q", data)
	}
}

func TestWriteArtifactEmptyPath(t *testing.T) {
	if err := writeArtifact("", []byte("x")); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestDisplayAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"127.0.0.1:8409", "127.0.0.1:8409"},
		{":8080", "localhost:8080"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := displayAddr(tt.in); got != tt.want {
			t.Errorf("displayAddr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
