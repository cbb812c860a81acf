package layout

import (
	"math"
	"testing"

	"github.com/labelsmith/labelsmith/pkg/errors"
)

func validParams() Params {
	return Params{
		PageW: 842, PageH: 595,
		ItemW: 240, ItemH: 80,
		MarginLeft: 40, MarginTop: 40,
		GapX: 260, GapY: 160,
	}
}

func TestParamsValidate(t *testing.T) {
	if err := validParams().Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero page width", func(p *Params) { p.PageW = 0 }},
		{"negative page height", func(p *Params) { p.PageH = -10 }},
		{"zero item width", func(p *Params) { p.ItemW = 0 }},
		{"zero item height", func(p *Params) { p.ItemH = 0 }},
		{"NaN page width", func(p *Params) { p.PageW = math.NaN() }},
		{"infinite item height", func(p *Params) { p.ItemH = math.Inf(1) }},
		{"NaN gap", func(p *Params) { p.GapY = math.NaN() }},
		{"negative margin", func(p *Params) { p.MarginLeft = -1 }},
		{"negative gap", func(p *Params) { p.GapX = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidLayout) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidLayout)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	codes := make([]string, 25)
	for i := range codes {
		codes[i] = "C"
	}

	if got := Preview(codes); len(got) != 10 {
		t.Errorf("Preview(25 codes) kept %d, want 10", len(got))
	}
	if got := Preview(codes[:4]); len(got) != 4 {
		t.Errorf("Preview(4 codes) kept %d, want 4", len(got))
	}
	if got := Preview(nil); got != nil {
		t.Errorf("Preview(nil) = %v, want nil", got)
	}
}
