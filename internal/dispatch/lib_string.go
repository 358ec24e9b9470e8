package dispatch

import (
	"strings"

	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// stringLibrary implements §4.4.1: the static helpers (IsNullOrEmpty,
// IsNullOrWhiteSpace, Copy, new) and the instance methods of Str.
type stringLibrary struct {
	static   *funcid.Table
	instance *funcid.Table
}

const (
	strIsNullOrEmpty funcid.ID = iota
	strIsNullOrWhiteSpace
	strCopy
	strNew
)

const (
	strStartsWith funcid.ID = iota
	strEndsWith
	strContains
	strReplace
	strToUpperInvariant
	strToLowerInvariant
	strToLower
	strIndexOf
	strIndexOfAny
	strLastIndexOf
	strLastIndexOfAny
	strLength
	strSplit
	strSubstring
	strPadLeft
	strPadRight
	strTrim
	strTrimStart
	strTrimEnd
	strGetChars
	strEquals
)

func newStringLibrary() *stringLibrary {
	return &stringLibrary{
		static: funcid.New([]string{
			"IsNullOrEmpty", "IsNullOrWhiteSpace", "Copy", "new",
		}),
		instance: funcid.New([]string{
			"StartsWith", "EndsWith", "Contains", "Replace",
			"ToUpperInvariant", "ToLowerInvariant", "ToLower",
			"IndexOf", "IndexOfAny", "LastIndexOf", "LastIndexOfAny",
			"Length", "Split", "Substring", "PadLeft", "PadRight",
			"Trim", "TrimStart", "TrimEnd", "get_Chars", "Equals",
		}),
	}
}

func (l *stringLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok {
		return None()
	}
	switch id {
	case strIsNullOrEmpty:
		if len(args) != 1 {
			return None()
		}
		s, isNull, ok := coerce.ToStringOpt(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Bool(isNull || s == ""))
	case strIsNullOrWhiteSpace:
		if len(args) != 1 {
			return None()
		}
		s, isNull, ok := coerce.ToStringOpt(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Bool(isNull || strings.TrimSpace(s) == ""))
	case strCopy:
		if len(args) != 1 {
			return None()
		}
		s, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Str(s))
	case strNew:
		switch len(args) {
		case 0:
			return Ok(value.Str(""))
		case 1:
			s, ok := coerce.ToStr(args[0])
			if !ok {
				return None()
			}
			return Ok(value.Str(s))
		default:
			return None()
		}
	}
	return None()
}

func (l *stringLibrary) ExecInstance(instance value.V, name string, args []value.V) Result {
	s, ok := instance.AsStr()
	if !ok {
		return None()
	}
	id, ok := l.instance.Find(name)
	if !ok {
		return None()
	}
	switch id {
	case strStartsWith:
		if len(args) != 1 {
			return None()
		}
		sub, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Bool(strings.HasPrefix(s, sub)))

	case strEndsWith:
		switch len(args) {
		case 1:
			sub, ok := coerce.ToStr(args[0])
			if !ok {
				return None()
			}
			return Ok(value.Bool(strings.HasSuffix(s, sub)))
		case 2:
			sub, ok := coerce.ToStr(args[0])
			if !ok {
				return None()
			}
			cmp, ok := coerce.ToEnum(args[1], coerce.StringComparisonSpec)
			if !ok {
				return None()
			}
			if len(sub) > len(s) {
				return Ok(value.Bool(false))
			}
			tail := s[len(s)-len(sub):]
			return Ok(value.Bool(coerce.EqualUnderComparison(tail, sub, cmp)))
		default:
			return None()
		}

	case strContains:
		if len(args) != 1 {
			return None()
		}
		sub, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Bool(strings.Contains(s, sub)))

	case strReplace:
		if len(args) != 2 {
			return None()
		}
		old, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		newS, isNull, ok := coerce.ToStringOpt(args[1])
		if !ok {
			return None()
		}
		if isNull {
			newS = ""
		}
		return Ok(value.Str(strings.ReplaceAll(s, old, newS)))

	case strToUpperInvariant:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Str(strings.ToUpper(s)))

	case strToLowerInvariant:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Str(strings.ToLower(s)))

	case strToLower:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Str(strings.ToLower(s)))

	case strIndexOf:
		switch len(args) {
		case 1:
			sub, ok := coerce.ToStr(args[0])
			if !ok {
				return None()
			}
			return Ok(value.Int(int32(strings.Index(s, sub))))
		case 2:
			sub, ok := coerce.ToStr(args[0])
			if !ok {
				return None()
			}
			if start, ok := coerce.ToInt32(args[1]); ok {
				return Ok(indexOfFrom(s, sub, int(start)))
			}
			// IndexOf(Str, StringComparison)
			cmp, ok := coerce.ToEnum(args[1], coerce.StringComparisonSpec)
			if !ok {
				return None()
			}
			return Ok(value.Int(int32(coerce.IndexUnderComparison(s, sub, cmp, false))))
		default:
			return None()
		}

	case strIndexOfAny:
		if len(args) != 1 {
			return None()
		}
		set, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Int(int32(strings.IndexAny(s, set))))

	case strLastIndexOf:
		switch len(args) {
		case 1:
			sub, ok := coerce.ToStr(args[0])
			if !ok {
				return None()
			}
			return Ok(value.Int(int32(strings.LastIndex(s, sub))))
		case 2:
			sub, ok := coerce.ToStr(args[0])
			if !ok {
				return None()
			}
			if start, ok := coerce.ToInt32(args[1]); ok {
				return Ok(lastIndexOfUpTo(s, sub, int(start)))
			}
			// LastIndexOf(Str, StringComparison)
			cmp, ok := coerce.ToEnum(args[1], coerce.StringComparisonSpec)
			if !ok {
				return None()
			}
			return Ok(value.Int(int32(coerce.IndexUnderComparison(s, sub, cmp, true))))
		default:
			return None()
		}

	case strLastIndexOfAny:
		if len(args) != 1 {
			return None()
		}
		set, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Int(int32(strings.LastIndexAny(s, set))))

	case strLength:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Int(int32(len(s))))

	case strSplit:
		if len(args) != 1 {
			return None()
		}
		sep, ok := splitSeparator(args[0])
		if !ok {
			return None()
		}
		return Ok(value.StrArr(strings.Split(s, sep)))

	case strSubstring:
		switch len(args) {
		case 1:
			start, ok := coerce.ToInt32(args[0])
			if !ok {
				return None()
			}
			return Ok(value.Str(s[start:]))
		case 2:
			start, ok := coerce.ToInt32(args[0])
			if !ok {
				return None()
			}
			length, ok := coerce.ToInt32(args[1])
			if !ok {
				return None()
			}
			return Ok(value.Str(s[start : int(start)+int(length)]))
		default:
			return None()
		}

	case strPadLeft:
		return l.pad(s, args, true)

	case strPadRight:
		return l.pad(s, args, false)

	case strTrim:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Str(strings.TrimSpace(s)))

	case strTrimStart:
		if len(args) != 1 {
			return None()
		}
		cutset, ok := coerce.ToStr(args[0])
		if !ok || cutset == "" {
			return None()
		}
		return Ok(value.Str(strings.TrimLeft(s, cutset)))

	case strTrimEnd:
		if len(args) != 1 {
			return None()
		}
		cutset, ok := coerce.ToStr(args[0])
		if !ok || cutset == "" {
			return None()
		}
		return Ok(value.Str(strings.TrimRight(s, cutset)))

	case strGetChars:
		if len(args) != 1 {
			return None()
		}
		idx, ok := coerce.ToInt32(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Char(uint16(s[idx])))

	case strEquals:
		if len(args) != 1 {
			return None()
		}
		other, isNull, ok := coerce.ToStringOpt(args[0])
		if !ok {
			return None()
		}
		if isNull {
			return Ok(value.Bool(false))
		}
		return Ok(value.Bool(value.Equal(value.Str(s), value.Str(other))))
	}
	return None()
}

func (l *stringLibrary) pad(s string, args []value.V, left bool) Result {
	var width int32
	var padChar uint16 = ' '
	switch len(args) {
	case 1:
		w, ok := coerce.ToInt32(args[0])
		if !ok {
			return None()
		}
		width = w
	case 2:
		w, ok := coerce.ToInt32(args[0])
		if !ok {
			return None()
		}
		c, ok := coerce.ToChar(args[1])
		if !ok {
			return None()
		}
		width, padChar = w, c
	default:
		return None()
	}
	if int(width) <= len(s) {
		return Ok(value.Str(s))
	}
	pad := strings.Repeat(string(rune(padChar)), int(width)-len(s))
	if left {
		return Ok(value.Str(pad + s))
	}
	return Ok(value.Str(s + pad))
}

// indexOfFrom/lastIndexOfUpTo implement the (Str, Int) overloads: search
// starting at (or only up to, for LastIndexOf) the given index.
func indexOfFrom(s, sub string, start int) value.V {
	if start < 0 || start > len(s) {
		return value.Int(-1)
	}
	rel := strings.Index(s[start:], sub)
	if rel < 0 {
		return value.Int(-1)
	}
	return value.Int(int32(start + rel))
}

func lastIndexOfUpTo(s, sub string, end int) value.V {
	if end < 0 {
		end = 0
	}
	if end > len(s) {
		end = len(s)
	}
	idx := strings.LastIndex(s[:end], sub)
	return value.Int(int32(idx))
}

// splitSeparator coerces a Split() argument: a Char, or a Str of length
// exactly 1 (§4.4.1: "Char|Str-of-length-1").
func splitSeparator(v value.V) (string, bool) {
	if c, ok := v.AsChar(); ok {
		return string(rune(c)), true
	}
	if s, ok := v.AsStr(); ok && len(s) == 1 {
		return s, true
	}
	return "", false
}
