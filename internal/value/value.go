// Package value implements the tagged-union argument/result value used
// throughout the property-function dispatcher. A V carries exactly one of
// the variants named in Kind; callers own the values they pass in, and the
// dispatcher never retains a reference after returning.
package value

import (
	"fmt"
	"math"
)

// Kind identifies which variant a V currently holds.
type Kind int

const (
	KNull Kind = iota
	KStr
	KStrArr
	KInt
	KLong
	KDouble
	KChar
	KBool
	KVer
	KGuid
	KOpaque
)

func (k Kind) String() string {
	switch k {
	case KNull:
		return "Null"
	case KStr:
		return "String"
	case KStrArr:
		return "String[]"
	case KInt:
		return "Int32"
	case KLong:
		return "Int64"
	case KDouble:
		return "Double"
	case KChar:
		return "Char"
	case KBool:
		return "Boolean"
	case KVer:
		return "Version"
	case KGuid:
		return "Guid"
	case KOpaque:
		return "Opaque"
	default:
		return "?"
	}
}

// V is the tagged union of argument/result values. The zero V is Null.
// Str values are treated as immutable: nothing in this module ever mutates
// the bytes behind a Str or the slice behind a StrArr.
type V struct {
	kind   Kind
	str    string
	strArr []string
	i32    int32
	i64    int64
	f64    float64
	ch     uint16
	b      bool
	ver    Ver
	guid   Guid
	opaque any
}

func Null() V             { return V{kind: KNull} }
func Str(s string) V      { return V{kind: KStr, str: s} }
func StrArr(v []string) V { return V{kind: KStrArr, strArr: v} }
func Int(i int32) V       { return V{kind: KInt, i32: i} }
func Long(l int64) V      { return V{kind: KLong, i64: l} }
func Double(d float64) V  { return V{kind: KDouble, f64: d} }
func Char(c uint16) V     { return V{kind: KChar, ch: c} }
func Bool(b bool) V       { return V{kind: KBool, b: b} }
func VerOf(v Ver) V       { return V{kind: KVer, ver: v} }
func GuidOf(g Guid) V     { return V{kind: KGuid, guid: g} }
func Opaque(handle any) V { return V{kind: KOpaque, opaque: handle} }

func (v V) Kind() Kind   { return v.kind }
func (v V) IsNull() bool { return v.kind == KNull }

func (v V) AsStr() (string, bool) {
	if v.kind != KStr {
		return "", false
	}
	return v.str, true
}

func (v V) AsStrArr() ([]string, bool) {
	if v.kind != KStrArr {
		return nil, false
	}
	return v.strArr, true
}

func (v V) AsInt() (int32, bool) {
	if v.kind != KInt {
		return 0, false
	}
	return v.i32, true
}

func (v V) AsLong() (int64, bool) {
	if v.kind != KLong {
		return 0, false
	}
	return v.i64, true
}

func (v V) AsDouble() (float64, bool) {
	if v.kind != KDouble {
		return 0, false
	}
	return v.f64, true
}

func (v V) AsChar() (uint16, bool) {
	if v.kind != KChar {
		return 0, false
	}
	return v.ch, true
}

func (v V) AsBool() (bool, bool) {
	if v.kind != KBool {
		return false, false
	}
	return v.b, true
}

func (v V) AsVer() (Ver, bool) {
	if v.kind != KVer {
		return Ver{}, false
	}
	return v.ver, true
}

func (v V) AsGuid() (Guid, bool) {
	if v.kind != KGuid {
		return Guid{}, false
	}
	return v.guid, true
}

func (v V) AsOpaque() (any, bool) {
	if v.kind != KOpaque {
		return nil, false
	}
	return v.opaque, true
}

// DefaultString renders the default (zero-argument ToString) text for a
// value's variant, used by the router to answer ToString() uniformly
// (Testable Property 6).
func (v V) DefaultString() string {
	switch v.kind {
	case KNull:
		return ""
	case KStr:
		return v.str
	case KInt:
		return fmt.Sprintf("%d", v.i32)
	case KLong:
		return fmt.Sprintf("%d", v.i64)
	case KDouble:
		return formatDouble(v.f64)
	case KChar:
		return string(rune(v.ch))
	case KBool:
		if v.b {
			return "True"
		}
		return "False"
	case KVer:
		return v.ver.String()
	case KGuid:
		return v.guid.String()
	default:
		return ""
	}
}

func formatDouble(d float64) string {
	if math.IsNaN(d) {
		return "NaN"
	}
	if math.IsInf(d, 1) {
		return "Infinity"
	}
	if math.IsInf(d, -1) {
		return "-Infinity"
	}
	return fmt.Sprintf("%g", d)
}

// Equal implements the value-equality rules of §4.1: ordinal for strings
// (used by String.Equals), value-equal across the numeric kinds (Int/Long
// compare as int64 so values above 2^53 don't lose precision; a Double on
// either side falls back to a float64 compare), and Null is distinct from
// the empty string.
func Equal(a, b V) bool {
	if a.kind == KNull || b.kind == KNull {
		return a.kind == b.kind
	}
	if isNumeric(a.kind) && isNumeric(b.kind) {
		return numericEqual(a, b)
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KStr:
		return a.str == b.str
	case KChar:
		return a.ch == b.ch
	case KBool:
		return a.b == b.b
	case KVer:
		return a.ver.Compare(b.ver) == 0
	case KGuid:
		return a.guid == b.guid
	case KStrArr:
		if len(a.strArr) != len(b.strArr) {
			return false
		}
		for i := range a.strArr {
			if a.strArr[i] != b.strArr[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumeric(k Kind) bool { return k == KInt || k == KLong || k == KDouble }

func numericEqual(a, b V) bool {
	// Int/Long vs Int/Long compares as int64 so values above 2^53 don't
	// lose precision going through float64; a Double on either side falls
	// back to a float64 compare, which is the only common ground it has.
	ai, aIsInt := asExactInt64(a)
	bi, bIsInt := asExactInt64(b)
	if aIsInt && bIsInt {
		return ai == bi
	}
	af, aExact := asExactDouble(a)
	bf, bExact := asExactDouble(b)
	if aExact && bExact {
		return af == bf
	}
	return false
}

func asExactInt64(v V) (int64, bool) {
	switch v.kind {
	case KInt:
		return int64(v.i32), true
	case KLong:
		return v.i64, true
	default:
		return 0, false
	}
}

func asExactDouble(v V) (float64, bool) {
	switch v.kind {
	case KInt:
		return float64(v.i32), true
	case KLong:
		return float64(v.i64), true
	case KDouble:
		return v.f64, true
	default:
		return 0, false
	}
}
