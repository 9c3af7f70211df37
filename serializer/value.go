package serializer

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/oaspath/formatter"
)

// isAbsent reports whether value means "not supplied": nil, or a nil
// pointer, map, slice or interface. Empty strings and zero numbers are
// present.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// valueKind classifies a supplied value against JSON Schema primitive types.
type valueKind int

const (
	kindOther valueKind = iota
	kindString
	kindInteger
	kindNumber
	kindBoolean
)

// classify returns the JSON Schema type a value can stand for. Integers are
// also valid numbers; floats with no fractional part are not integers.
func classify(value any) valueKind {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return kindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return kindInteger
	case reflect.Float32, reflect.Float64:
		return kindNumber
	case reflect.Bool:
		return kindBoolean
	}
	return kindOther
}

// stringify renders a value as text for substitution. Times use UTC with
// millisecond precision, numbers their shortest decimal form.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.UTC().Format(formatter.DateTimeLayout)
	case *time.Time:
		if v != nil {
			return v.UTC().Format(formatter.DateTimeLayout)
		}
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(value)
}

// formatFloat renders f the way ECMAScript Number#toString does: plain
// decimals for 1e-6 <= |f| < 1e21, otherwise exponent notation without
// zero padding (1e+21, 1.5e-7). Negative zero prints as "0".
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		out := strconv.FormatFloat(f, 'e', -1, bitSize)
		out = strings.Replace(out, "e+0", "e+", 1)
		return strings.Replace(out, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// sortedKeys returns the keys of params in ascending order.
func sortedKeys(params map[string]any) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
