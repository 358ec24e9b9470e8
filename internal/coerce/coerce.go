// Package coerce implements the loose argument-coercion rules (§4.2): a
// set of total, order-sensitive try_as_T predicates that the per-library
// dispatch tables use to match a call's argument vector before invoking the
// underlying operation. Every predicate here is a pure function of its
// input — coercion never mutates the value it is given, and never consults
// collaborator state.
package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/fnswitch/internal/value"
)

const (
	int32Min = math.MinInt32
	int32Max = math.MaxInt32
)

// ToChar accepts a Char directly, or a Str of length exactly 1 (measured in
// UTF-16 code units, matching the receiver's "single code unit" model).
func ToChar(v value.V) (uint16, bool) {
	if c, ok := v.AsChar(); ok {
		return c, true
	}
	if s, ok := v.AsStr(); ok {
		units := utf16Units(s)
		if len(units) == 1 {
			return units[0], true
		}
	}
	return 0, false
}

// ToInt32 accepts Int directly; Long within int32 range; Double within
// int32 range whose truncation exactly equals the value; or Str parsed
// under invariant-locale integer style.
func ToInt32(v value.V) (int32, bool) {
	switch v.Kind() {
	case value.KInt:
		i, _ := v.AsInt()
		return i, true
	case value.KLong:
		l, _ := v.AsLong()
		if l < int32Min || l > int32Max {
			return 0, false
		}
		return int32(l), true
	case value.KDouble:
		d, _ := v.AsDouble()
		if d < int32Min || d > int32Max {
			return 0, false
		}
		t := math.Trunc(d)
		if t != d {
			return 0, false
		}
		return int32(t), true
	case value.KStr:
		s, _ := v.AsStr()
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return 0, false
		}
		return int32(n), true
	default:
		return 0, false
	}
}

// ToInt64 is ToInt32's 64-bit analog.
func ToInt64(v value.V) (int64, bool) {
	switch v.Kind() {
	case value.KInt:
		i, _ := v.AsInt()
		return int64(i), true
	case value.KLong:
		l, _ := v.AsLong()
		return l, true
	case value.KDouble:
		d, _ := v.AsDouble()
		if d < math.MinInt64 || d > math.MaxInt64 {
			return 0, false
		}
		t := math.Trunc(d)
		if t != d {
			return 0, false
		}
		return int64(t), true
	case value.KStr:
		s, _ := v.AsStr()
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ToDouble accepts Double directly; Int/Long (exact widening, always
// lossless for the ranges this dispatcher handles); or Str parsed as
// decimal-or-float under invariant locale.
func ToDouble(v value.V) (float64, bool) {
	switch v.Kind() {
	case value.KDouble:
		d, _ := v.AsDouble()
		return d, true
	case value.KInt:
		i, _ := v.AsInt()
		return float64(i), true
	case value.KLong:
		l, _ := v.AsLong()
		return float64(l), true
	case value.KStr:
		s, _ := v.AsStr()
		d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		return d, true
	default:
		return 0, false
	}
}

// ToStringOpt accepts Str or Null only — call sites that accept a nullable
// string opt into this explicitly rather than falling through ToStr.
func ToStringOpt(v value.V) (string, bool, bool) {
	if v.IsNull() {
		return "", true, true
	}
	if s, ok := v.AsStr(); ok {
		return s, false, true
	}
	return "", false, false
}

// ToStr is the non-nullable counterpart: accepts Str only.
func ToStr(v value.V) (string, bool) {
	return v.AsStr()
}

// ToStringArray accepts StrArr directly, or a uniform slice of Str values
// (built elsewhere from e.g. a variadic argument tail) with no nulls.
func ToStringArray(v value.V) ([]string, bool) {
	return v.AsStrArr()
}

// StringArrayFromArgs coerces a tail of individual args (each must be Str,
// no nulls) into a string slice, backing N-ary overloads such as
// Path.Combine(...) and the Intrinsic path helpers.
func StringArrayFromArgs(args []value.V) ([]string, bool) {
	out := make([]string, len(args))
	for i, a := range args {
		s, ok := a.AsStr()
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// IsFloatingPointRepresentation is true iff v is a Double, or a Str that
// successfully parses as a double.
func IsFloatingPointRepresentation(v value.V) bool {
	if v.Kind() == value.KDouble {
		return true
	}
	if s, ok := v.AsStr(); ok {
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil
	}
	return false
}

// looksNumeric reports whether s parses as an integer or float, used by
// ToEnum to reject purely-numeric enum-name strings.
func looksNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			hi, lo := surrogatePair(r)
			units = append(units, hi, lo)
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

func surrogatePair(r rune) (uint16, uint16) {
	r -= 0x10000
	hi := uint16(0xD800 + (r >> 10))
	lo := uint16(0xDC00 + (r & 0x3FF))
	return hi, lo
}
