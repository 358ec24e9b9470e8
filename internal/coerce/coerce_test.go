package coerce

import (
	"testing"

	"github.com/cwbudde/fnswitch/internal/value"
)

func TestToInt32(t *testing.T) {
	cases := []struct {
		name string
		v    value.V
		want int32
		ok   bool
	}{
		{"int", value.Int(5), 5, true},
		{"long-in-range", value.Long(5), 5, true},
		{"long-out-of-range", value.Long(1 << 40), 0, false},
		{"double-exact", value.Double(7), 7, true},
		{"double-fractional", value.Double(7.5), 0, false},
		{"str", value.Str(" 42 "), 42, true},
		{"str-bad", value.Str("abc"), 0, false},
		{"null", value.Null(), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ToInt32(c.v)
			if ok != c.ok || (ok && got != c.want) {
				t.Errorf("ToInt32(%v) = (%v, %v), want (%v, %v)", c.v, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestToChar(t *testing.T) {
	if c, ok := ToChar(value.Char('a')); !ok || c != 'a' {
		t.Errorf("ToChar(Char) failed: %v %v", c, ok)
	}
	if c, ok := ToChar(value.Str("x")); !ok || c != 'x' {
		t.Errorf("ToChar(Str len 1) failed: %v %v", c, ok)
	}
	if _, ok := ToChar(value.Str("xy")); ok {
		t.Error("ToChar(Str len 2) should fail")
	}
}

func TestToStringOpt(t *testing.T) {
	if _, isNull, ok := ToStringOpt(value.Null()); !ok || !isNull {
		t.Error("ToStringOpt(Null) should be (_, true, true)")
	}
	if s, isNull, ok := ToStringOpt(value.Str("hi")); !ok || isNull || s != "hi" {
		t.Errorf("ToStringOpt(Str) = (%q, %v, %v)", s, isNull, ok)
	}
	if _, _, ok := ToStringOpt(value.Int(1)); ok {
		t.Error("ToStringOpt(Int) should fail")
	}
}

func TestIsFloatingPointRepresentation(t *testing.T) {
	if !IsFloatingPointRepresentation(value.Double(1.5)) {
		t.Error("Double should be a floating-point representation")
	}
	if !IsFloatingPointRepresentation(value.Str("3.14")) {
		t.Error("numeric string should be a floating-point representation")
	}
	if IsFloatingPointRepresentation(value.Str("abc")) {
		t.Error("non-numeric string should not be a floating-point representation")
	}
	if IsFloatingPointRepresentation(value.Int(1)) {
		t.Error("Int is not the Double/Str representation IsFloatingPointRepresentation accepts")
	}
}

func TestStringArrayFromArgs(t *testing.T) {
	out, ok := StringArrayFromArgs([]value.V{value.Str("a"), value.Str("b")})
	if !ok || len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("StringArrayFromArgs = %v, %v", out, ok)
	}
	if _, ok := StringArrayFromArgs([]value.V{value.Str("a"), value.Int(1)}); ok {
		t.Error("StringArrayFromArgs should fail on a non-Str element")
	}
}
