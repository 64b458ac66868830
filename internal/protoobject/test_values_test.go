package protoobject

import (
	"encoding/json"
	"math"
	"testing"
)

func TestAsInt64(t *testing.T) {
	cases := []struct {
		in      any
		decimal bool
		want    int64
		ok      bool
	}{
		{int(7), false, 7, true},
		{int32(-3), false, -3, true},
		{uint64(math.MaxUint64), false, 0, false},
		{float64(12), false, 12, true},
		{float64(1.25), false, 0, false},
		{math.Ldexp(1, 63), false, 0, false},
		{json.Number("9007199254740993"), false, 9007199254740993, true},
		{json.Number("1e3"), false, 1000, true},
		{"-42", false, 0, false},
		{"-42", true, -42, true},
		{"4x", true, 0, false},
		{true, true, 0, false},
	}
	for _, tc := range cases {
		got, ok := asInt64(tc.in, tc.decimal)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("asInt64(%#v, %v) = %d, %v; want %d, %v", tc.in, tc.decimal, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAsUint64(t *testing.T) {
	if got, ok := asUint64("18446744073709551615", true); !ok || got != math.MaxUint64 {
		t.Fatalf("max uint64 string = %d, %v", got, ok)
	}
	if _, ok := asUint64(-1, false); ok {
		t.Fatalf("negative int accepted")
	}
	if _, ok := asUint64(float64(-0.5), false); ok {
		t.Fatalf("negative fraction accepted")
	}
	if got, ok := asUint64(json.Number("18446744073709551615"), false); !ok || got != math.MaxUint64 {
		t.Fatalf("max uint64 json.Number = %d, %v", got, ok)
	}
}

func TestAsFloatSpecialStrings(t *testing.T) {
	if _, ok := asFloat("NaN", false); ok {
		t.Fatalf("NaN string accepted without special")
	}
	if f, ok := asFloat("-Infinity", true); !ok || !math.IsInf(f, -1) {
		t.Fatalf("-Infinity = %v, %v", f, ok)
	}
	if f, ok := asFloat(uint8(3), false); !ok || f != 3 {
		t.Fatalf("uint8 = %v, %v", f, ok)
	}
}

func TestDecodeBase64Alphabets(t *testing.T) {
	for _, s := range []string{"+/8=", "-_8=", "+/8", "-_8"} {
		b, ok := decodeBase64(s)
		if !ok || len(b) != 2 || b[0] != 0xfb || b[1] != 0xff {
			t.Fatalf("decodeBase64(%q) = %x, %v", s, b, ok)
		}
	}
	if _, ok := decodeBase64("not base64!"); ok {
		t.Fatalf("invalid input accepted")
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(math.Inf(1), 64, true); got != "Infinity" {
		t.Fatalf("formatFloat(+Inf) = %#v", got)
	}
	if got := formatFloat(math.NaN(), 32, false); !math.IsNaN(float64(got.(float32))) {
		t.Fatalf("formatFloat(NaN, raw) = %#v", got)
	}
	if got := formatFloat(1.5, 32, true); got != float32(1.5) {
		t.Fatalf("formatFloat(1.5) = %#v", got)
	}
}

func TestLowerCamel(t *testing.T) {
	for in, want := range map[string]string{
		"value_oneof":   "valueOneof",
		"golden_suites": "goldenSuites",
		"x":             "x",
		"a_b_c":         "aBC",
	} {
		if got := lowerCamel(in); got != want {
			t.Fatalf("lowerCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAsListAndObjectRejectBytesAndScalars(t *testing.T) {
	if _, ok := asList([]byte("abc")); ok {
		t.Fatalf("[]byte treated as list")
	}
	if l, ok := asList([2]int{1, 2}); !ok || len(l) != 2 {
		t.Fatalf("array = %v, %v", l, ok)
	}
	if _, ok := asObject(map[int]string{1: "a"}); ok {
		t.Fatalf("int-keyed map treated as object")
	}
	if _, ok := asObject("x"); ok {
		t.Fatalf("string treated as object")
	}
}

func TestCoerceScalars(t *testing.T) {
	if got := coerceString(float64(2.5)); got != "2.5" {
		t.Fatalf("coerceString(2.5) = %q", got)
	}
	if got := coerceString(int64(-7)); got != "-7" {
		t.Fatalf("coerceString(-7) = %q", got)
	}
	for v, want := range map[any]bool{"": false, "0": true, 0: false, 3: true, false: false} {
		if got := truthy(v); got != want {
			t.Fatalf("truthy(%#v) = %v, want %v", v, got, want)
		}
	}
	if got := coerceInt32(float64(-1.9)); got != -1 {
		t.Fatalf("coerceInt32(-1.9) = %d", got)
	}
	if got := coerceInt32("4294967297"); got != 1 {
		t.Fatalf("coerceInt32 wrap = %d", got)
	}
	if got := coerceInt32(float64(1e20)); got != int32(uint32(math.Mod(1e20, 1<<32))) {
		t.Fatalf("coerceInt32(1e20) = %d", got)
	}
	if got := coerceInt64(float64(1e30)); got != math.MaxInt64 {
		t.Fatalf("coerceInt64(1e30) = %d", got)
	}
	if got := coerceInt64("abc"); got != 0 {
		t.Fatalf("coerceInt64(abc) = %d", got)
	}
	if got := coerceUint64(float64(-3)); got != math.MaxUint64-2 {
		t.Fatalf("coerceUint64(-3) = %d", got)
	}
	if got := coerceFloat(true); got != 1 {
		t.Fatalf("coerceFloat(true) = %v", got)
	}
	if got := coerceFloat(map[string]any{}); !math.IsNaN(got) {
		t.Fatalf("coerceFloat(object) = %v", got)
	}
	if b, ok := coerceBytes([]any{1, 255, 256}); !ok || len(b) != 3 || b[1] != 0xff || b[2] != 0 {
		t.Fatalf("coerceBytes(list) = %x, %v", b, ok)
	}
}
