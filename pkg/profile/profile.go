// Package profile loads label sheet geometry from TOML profile files.
//
// A profile describes the page and item dimensions for the duplicate-pair
// PDF layout. Dimensions are in points. Example:
//
//	# 3-across label sheet, A4 landscape
//	page_width = 842
//	page_height = 595
//	item_width = 240
//	item_height = 80
//	margin_left = 40
//	margin_top = 40
//	gap_x = 260
//	gap_y = 160
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/layout"
)

// fileProfile mirrors the TOML profile schema.
type fileProfile struct {
	PageWidth  float64 `toml:"page_width"`
	PageHeight float64 `toml:"page_height"`
	ItemWidth  float64 `toml:"item_width"`
	ItemHeight float64 `toml:"item_height"`
	MarginLeft float64 `toml:"margin_left"`
	MarginTop  float64 `toml:"margin_top"`
	GapX       float64 `toml:"gap_x"`
	GapY       float64 `toml:"gap_y"`
}

// Default returns the built-in layout: three labels across an A4 landscape
// page, mirroring the source form's default field values.
func Default() layout.Params {
	return layout.Params{
		PageW: 842, PageH: 595,
		ItemW: 240, ItemH: 80,
		MarginLeft: 40, MarginTop: 40,
		GapX: 260, GapY: 160,
	}
}

// Load reads a TOML profile file and returns validated layout parameters.
// Fields absent from the file fall back to the defaults, so a profile only
// needs to state what it changes. Unknown keys are rejected to catch typos.
func Load(path string) (layout.Params, error) {
	def := Default()
	fp := fileProfile{
		PageWidth: def.PageW, PageHeight: def.PageH,
		ItemWidth: def.ItemW, ItemHeight: def.ItemH,
		MarginLeft: def.MarginLeft, MarginTop: def.MarginTop,
		GapX: def.GapX, GapY: def.GapY,
	}

	meta, err := toml.DecodeFile(path, &fp)
	if err != nil {
		return layout.Params{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "load profile %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return layout.Params{}, errors.New(errors.ErrCodeInvalidProfile,
			"profile %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}

	params := layout.Params{
		PageW: fp.PageWidth, PageH: fp.PageHeight,
		ItemW: fp.ItemWidth, ItemH: fp.ItemHeight,
		MarginLeft: fp.MarginLeft, MarginTop: fp.MarginTop,
		GapX: fp.GapX, GapY: fp.GapY,
	}
	if err := params.Validate(); err != nil {
		return layout.Params{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "profile %s", path)
	}
	return params, nil
}

// List returns the profile names (file basenames without extension) found
// in dir, sorted. A missing directory is not an error; it just has no
// profiles.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names, nil
}

// Path returns the file path for a named profile inside dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+".toml")
}
