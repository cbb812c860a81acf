package sequence

import (
	"strconv"
	"strings"

	"github.com/labelsmith/labelsmith/pkg/errors"
)

// Recognized keys in a text parameter block. Unknown keys are ignored.
const (
	keyPrefix    = "prefix"
	keySuffix    = "suffix"
	keyRange     = "range"
	keyIncrement = "increment"
	keyPadding   = "padding"
)

// ParseParams parses a free-text parameter block into a sequence Spec.
//
// The block is parsed line by line; each line is split on its first colon
// into a lowercased, trimmed key and a trimmed value. Lines without a colon
// and unknown keys are ignored.
//
// Validation happens in a fixed order:
//  1. empty input
//  2. range missing or not two hyphen-separated integers
//  3. range start exceeding end
//  4. increment not a positive integer
//  5. padding not a non-negative integer
//
// Unlike the flag-driven path, a reversed range here is an error.
func ParseParams(text string) (Spec, error) {
	if strings.TrimSpace(text) == "" {
		return Spec{}, errors.New(errors.ErrCodeEmptyInput, "no parameters given")
	}

	params := map[string]string{}
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		params[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	start, end, err := parseRange(params[keyRange])
	if err != nil {
		return Spec{}, err
	}
	if start > end {
		return Spec{}, errors.New(errors.ErrCodeInvalidRange, "range start exceeds end")
	}

	spec := Spec{
		Start:     start,
		End:       end,
		Increment: 1,
		Prefix:    params[keyPrefix],
		Suffix:    params[keySuffix],
	}

	if raw, ok := params[keyIncrement]; ok {
		inc, err := strconv.Atoi(raw)
		if err != nil || inc < 1 {
			return Spec{}, errors.New(errors.ErrCodeInvalidIncrement, "increment must be a positive integer, got %q", raw)
		}
		spec.Increment = inc
	}

	if raw, ok := params[keyPadding]; ok {
		padding, err := strconv.Atoi(raw)
		if err != nil || padding < 0 {
			return Spec{}, errors.New(errors.ErrCodeInvalidPadding, "padding must be a non-negative integer, got %q", raw)
		}
		spec.Padding = padding
	}

	return spec, nil
}

// parseRange parses a "start-end" value into its two integer bounds.
// Only the first hyphen separates the bounds, so negative end values
// are not representable; that matches the accepted input format.
func parseRange(raw string) (int, int, error) {
	first, second, ok := strings.Cut(raw, "-")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidRange, "invalid range")
	}

	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidRange, "invalid range")
	}
	end, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidRange, "invalid range")
	}

	return start, end, nil
}
