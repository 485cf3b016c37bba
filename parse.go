package svgbot

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// user units per unit of length
var lengthUnits = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 4.0 / 3.0,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
}

// parseLength parses an absolute SVG length such as "595.201px" or "210mm"
// into user units. Percentages and font relative units are rejected.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	unit := strings.TrimSpace(s[n:])
	scale, ok := lengthUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unsupported unit %q in length %q", unit, s)
	}
	return f * scale, nil
}

// parseLengthAttr is parseLength for optional attributes, which default to 0.
func parseLengthAttr(name, s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	v, err := parseLength(s)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", name, err)
	}
	return v, nil
}

// parseNumberList parses a list of plain numbers separated by white space
// and/or commas, as used by viewBox.
func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	nums := make([]float64, 0, len(fields))
	for _, field := range fields {
		f, n := strconv.ParseFloat([]byte(field))
		if n == 0 || n != len(field) {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		nums = append(nums, f)
	}
	return nums, nil
}
