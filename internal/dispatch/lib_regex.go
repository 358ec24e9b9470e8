package dispatch

import (
	"regexp"

	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// regexLibrary implements §4.4.10. Patterns are compiled per call — this
// dispatcher holds no regex cache, matching the spec's "no hidden state
// beyond the frozen tables" posture (§9); a caller that dispatches the same
// pattern repeatedly owns any caching it wants.
type regexLibrary struct {
	static *funcid.Table
}

const (
	regexEscape funcid.ID = iota
	regexIsMatch
	regexMatch
	regexReplace
)

func newRegexLibrary() *regexLibrary {
	return &regexLibrary{static: funcid.New([]string{"Escape", "IsMatch", "Match", "Replace"})}
}

func (l *regexLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok {
		return None()
	}
	switch id {
	case regexEscape:
		if len(args) != 1 {
			return None()
		}
		s, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Str(regexp.QuoteMeta(s)))
	case regexIsMatch:
		if len(args) != 2 {
			return None()
		}
		input, pattern, ok := regexArgs(args)
		if !ok {
			return None()
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return None()
		}
		return Ok(value.Bool(re.MatchString(input)))
	case regexMatch:
		if len(args) != 2 {
			return None()
		}
		input, pattern, ok := regexArgs(args)
		if !ok {
			return None()
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return None()
		}
		loc := re.FindStringSubmatchIndex(input)
		if loc == nil {
			return Ok(value.Opaque(regexMatchResult{success: false}))
		}
		return Ok(value.Opaque(regexMatchResult{
			success: true,
			value:   input[loc[0]:loc[1]],
			index:   loc[0],
			length:  loc[1] - loc[0],
		}))
	case regexReplace:
		if len(args) != 3 {
			return None()
		}
		input, pattern, ok := regexArgs(args[:2])
		if !ok {
			return None()
		}
		replacement, ok := coerce.ToStr(args[2])
		if !ok {
			return None()
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return None()
		}
		return Ok(value.Str(re.ReplaceAllString(input, dotnetToGoReplacement(replacement))))
	default:
		return None()
	}
}

func regexArgs(args []value.V) (input, pattern string, ok bool) {
	input, ok = coerce.ToStr(args[0])
	if !ok {
		return "", "", false
	}
	pattern, ok = coerce.ToStr(args[1])
	return input, pattern, ok
}

// dotnetToGoReplacement rewrites .NET's "$1"-style backreferences into Go's
// "${1}" form; the two otherwise agree on plain literal text.
func dotnetToGoReplacement(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '$' && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			out = append(out, '$', '{')
			out = append(out, s[i+1:j]...)
			out = append(out, '}')
			i = j - 1
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// regexMatchResult is the Opaque handle Match() hands back.
type regexMatchResult struct {
	success bool
	value   string
	index   int
	length  int
}
