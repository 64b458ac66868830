package protoobject

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	minInt64AsFloat = -math.Ldexp(1, 63)
	maxInt64AsFloat = math.Ldexp(1, 63)
	maxUint64AsFlt  = math.Ldexp(1, 64)
)

// asObject accepts map[string]any and any other map keyed by string.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// asList accepts []any and any other slice or array except []byte.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []byte, nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asFloat accepts Go numeric values and json.Number. With special set, the
// strings "NaN", "Infinity" and "-Infinity" are accepted too.
func asFloat(v any, special bool) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		if !special {
			return 0, false
		}
		switch n {
		case "NaN":
			return math.NaN(), true
		case "Infinity":
			return math.Inf(1), true
		case "-Infinity":
			return math.Inf(-1), true
		}
	}
	return 0, false
}

// asInt64 accepts integral numeric values. With decimal set, base-10
// strings are accepted as well.
func asInt64(v any, decimal bool) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint, uint8, uint16, uint32, uint64:
		u, _ := asUint64(n, false)
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt64(f)
		}
	case string:
		if decimal {
			i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
			return i, err == nil
		}
	}
	return 0, false
}

// asUint64 is asInt64 for unsigned values; negatives are rejected.
func asUint64(v any, decimal bool) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case int, int8, int16, int32, int64:
		i, _ := asInt64(n, false)
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	case float32:
		return floatToUint64(float64(n))
	case float64:
		return floatToUint64(n)
	case json.Number:
		if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return u, true
		}
		if f, err := n.Float64(); err == nil {
			return floatToUint64(f)
		}
	case string:
		if decimal {
			u, err := strconv.ParseUint(strings.TrimSpace(n), 10, 64)
			return u, err == nil
		}
	}
	return 0, false
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < minInt64AsFloat || f >= maxInt64AsFloat {
		return 0, false
	}
	return int64(f), true
}

func floatToUint64(f float64) (uint64, bool) {
	if f != math.Trunc(f) || f < 0 || f >= maxUint64AsFlt {
		return 0, false
	}
	return uint64(f), true
}

func asBytes(v any) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return append([]byte(nil), b...), true
	case string:
		return decodeBase64(b)
	}
	return nil, false
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or not.
func decodeBase64(s string) ([]byte, bool) {
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, true
		}
	}
	return nil, false
}

func formatFloat(f float64, bits int, special bool) any {
	if special {
		switch {
		case math.IsNaN(f):
			return "NaN"
		case math.IsInf(f, 1):
			return "Infinity"
		case math.IsInf(f, -1):
			return "-Infinity"
		}
	}
	if bits == 32 {
		return float32(f)
	}
	return f
}

// Coercions used by FromObject. They never fail; each mirrors how a
// JavaScript caller's value would be converted into the field type.

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case []byte:
		return string(s)
	}
	if f, ok := asFloat(v, false); ok {
		if i, ok := floatToInt64(f); ok {
			return strconv.FormatInt(i, 10)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	}
	if f, ok := asFloat(v, false); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// coerceFloat yields NaN for values that are not numeric.
func coerceFloat(v any) float64 {
	if f, ok := asFloat(v, true); ok {
		return f
	}
	switch s := v.(type) {
	case nil:
		return 0
	case bool:
		if s {
			return 1
		}
		return 0
	case string:
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

// coerceInt32 truncates toward zero and wraps modulo 2^32. NaN and
// infinities become 0.
func coerceInt32(v any) int32 {
	if i, ok := asInt64(v, true); ok {
		return int32(i)
	}
	f := coerceFloat(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}

// coerceInt64 saturates at the int64 range; NaN becomes 0.
func coerceInt64(v any) int64 {
	if i, ok := asInt64(v, true); ok {
		return i
	}
	f := coerceFloat(v)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= maxInt64AsFloat:
		return math.MaxInt64
	case f <= minInt64AsFloat:
		return math.MinInt64
	}
	return int64(f)
}

// coerceUint64 keeps the bits of negative integers and saturates floats.
func coerceUint64(v any) uint64 {
	if u, ok := asUint64(v, true); ok {
		return u
	}
	if i, ok := asInt64(v, true); ok {
		return uint64(i)
	}
	f := coerceFloat(v)
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= maxUint64AsFlt:
		return math.MaxUint64
	}
	return uint64(f)
}

// coerceEnum resolves a name or a number. Unknown names and non-numeric
// values report false.
func coerceEnum(ed protoreflect.EnumDescriptor, v any) (protoreflect.EnumNumber, bool) {
	if s, ok := v.(string); ok {
		ev := ed.Values().ByName(protoreflect.Name(s))
		if ev == nil {
			return 0, false
		}
		return ev.Number(), true
	}
	if _, ok := asFloat(v, false); !ok {
		return 0, false
	}
	return protoreflect.EnumNumber(coerceInt32(v)), true
}

// coerceBytes accepts []byte, base64 strings and lists of byte values.
func coerceBytes(v any) ([]byte, bool) {
	if b, ok := asBytes(v); ok {
		return b, true
	}
	if _, ok := v.(string); ok {
		return nil, false
	}
	l, ok := asList(v)
	if !ok {
		return nil, false
	}
	out := make([]byte, len(l))
	for i, e := range l {
		out[i] = byte(coerceInt32(e))
	}
	return out, true
}
