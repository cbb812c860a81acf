package errors

import (
	"strings"
	"testing"
)

func TestValidateCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "ABC123", false},
		{"valid with dash", "AB-001", false},
		{"valid with space", "LOT 42", false},
		{"valid max length", strings.Repeat("A", 80), false},

		{"empty", "", true},
		{"too long", strings.Repeat("A", 81), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"tab", "foo\tbar", true},
		{"non-ascii", "über", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidCode {
				t.Errorf("ValidateCode(%q) code = %v, want INVALID_CODE", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "labels.pdf", false},
		{"valid nested", "out/labels.pdf", false},
		{"valid absolute", "/tmp/labels.pdf", false},

		{"empty", "", true},
		{"null byte", "out\x00.pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
