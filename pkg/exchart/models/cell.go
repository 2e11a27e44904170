// Package models defines data structures shared by the chart pipeline.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsMissing reports whether a cell value counts as missing.
// nil, blank strings and NaN are missing.
func IsMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	}
	return false
}

// ToFloat converts a cell value to a finite float64.
// Strings are parsed; booleans are never numeric.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int8:
		f = float64(val)
	case int16:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint8:
		f = float64(val)
	case uint16:
		f = float64(val)
	case uint32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isNumberKind reports whether v holds a Go numeric type.
func isNumberKind(v any) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// ValuesEqual compares two entity key candidates with simple equality.
// Numbers compare by value across kinds; everything else must match
// exactly, and a number never equals a string.
func ValuesEqual(a, b any) bool {
	if IsMissing(a) || IsMissing(b) {
		return false
	}
	if isNumberKind(a) || isNumberKind(b) {
		if !isNumberKind(a) || !isNumberKind(b) {
			return false
		}
		fa, okA := ToFloat(a)
		fb, okB := ToFloat(b)
		return okA && okB && fa == fb
	}
	return a == b
}

// FormatValue renders a cell value for display.
func FormatValue(v any) string {
	if IsMissing(v) {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}
