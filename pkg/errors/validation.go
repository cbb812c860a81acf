package errors

import (
	"strings"
	"unicode"
)

// maxCodeLength bounds code strings; Code 128 payloads beyond this render
// wider than any supported label.
const maxCodeLength = 80

// ValidateCode validates a code string before it is handed to a barcode
// renderer or used as an archive entry name.
//
// The validation rules are intentionally conservative:
//   - No empty codes
//   - No control characters or null bytes
//   - ASCII only (Code 128 cannot encode anything else)
//   - Maximum length of 80 characters
func ValidateCode(code string) error {
	if code == "" {
		return New(ErrCodeInvalidCode, "code cannot be empty")
	}

	if len(code) > maxCodeLength {
		return New(ErrCodeInvalidCode, "code too long (max %d characters)", maxCodeLength)
	}

	for _, r := range code {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCode, "code contains control characters")
		}
		if r > unicode.MaxASCII {
			return New(ErrCodeInvalidCode, "code contains non-ASCII character %q", r)
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// It rejects empty paths and paths pointing at a directory separator-free
// hidden file by accident; traversal is allowed since the user controls
// their own filesystem, but null bytes never are.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}

	return nil
}
