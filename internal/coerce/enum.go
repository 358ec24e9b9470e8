package coerce

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cwbudde/fnswitch/internal/value"
)

// EnumSpec describes one enumeration for ToEnum: its namespace and type
// name (used only to recognize and strip an optional fully-qualified
// prefix) and the ordinal set of valid member names.
type EnumSpec struct {
	Namespace string
	TypeName  string
	Members   []string
}

// ToEnum implements §4.2's to_enum<E>: accepts a Str only, rejects any Str
// that also parses as a number (so expression authors must write
// "OrdinalIgnoreCase", never its ordinal), optionally strips a leading
// "<namespace>.<TypeName>." prefix, and matches the remainder ordinally
// against spec.Members.
//
// Open question (documented, not silently resolved): the stripped prefix
// match is case-SENSITIVE, matching the upstream .NET source's behavior
// exactly (see DESIGN.md). The final member comparison is always ordinal.
func ToEnum(v value.V, spec EnumSpec) (string, bool) {
	s, ok := v.AsStr()
	if !ok {
		return "", false
	}
	if looksNumeric(s) {
		return "", false
	}

	rest := s
	prefix := spec.Namespace + "." + spec.TypeName + "."
	if strings.HasPrefix(rest, prefix) {
		rest = rest[len(prefix):]
	}

	for _, m := range spec.Members {
		if rest == m {
			return m, true
		}
	}
	return "", false
}

// StringComparisonSpec is the EnumSpec for System.StringComparison, used by
// String.EndsWith/IndexOf/LastIndexOf's optional comparison-mode argument.
var StringComparisonSpec = EnumSpec{
	Namespace: "System",
	TypeName:  "StringComparison",
	Members: []string{
		"CurrentCulture",
		"CurrentCultureIgnoreCase",
		"InvariantCulture",
		"InvariantCultureIgnoreCase",
		"Ordinal",
		"OrdinalIgnoreCase",
	},
}

// EqualUnderComparison compares a and b per a StringComparison member name.
// Ordinal and OrdinalIgnoreCase compare raw bytes (the latter folded via
// strings.EqualFold); the four culture-aware members route through
// golang.org/x/text, the same package the teacher's CompareLocaleStr uses
// for locale-sensitive collation (strings_compare.go) — since this
// dispatcher owns no current-culture collaborator, CurrentCulture* and
// InvariantCulture* both collate under the invariant locale (language.Und),
// which is still a real Unicode-aware comparison distinct from an ordinal
// byte compare (it collapses canonically equivalent forms a plain byte or
// ASCII-fold compare would treat as different).
func EqualUnderComparison(a, b, comparison string) bool {
	switch comparison {
	case "Ordinal", "":
		return a == b
	case "OrdinalIgnoreCase":
		return strings.EqualFold(a, b)
	case "CurrentCultureIgnoreCase", "InvariantCultureIgnoreCase":
		return collate.New(language.Und, collate.IgnoreCase).CompareString(a, b) == 0
	default: // CurrentCulture, InvariantCulture
		return collate.New(language.Und).CompareString(a, b) == 0
	}
}

// IndexUnderComparison mirrors EqualUnderComparison for IndexOf/LastIndexOf:
// it returns the index of sub within s honoring the same comparison split,
// or -1 if not found. Substring search has no collation-aware primitive in
// x/text/collate, so the culture-aware IgnoreCase members fold case via
// golang.org/x/text/cases (an invariant-locale fold, distinct from the
// ASCII-biased strings.EqualFold used for OrdinalIgnoreCase) before the
// byte search; the non-ignore-case culture members behave ordinally, since
// .NET's own IndexOf with CurrentCulture/InvariantCulture already performs
// a culture-sensitive but case-exact byte-position search.
func IndexUnderComparison(s, sub, comparison string, last bool) int {
	haystack, needle := s, sub
	switch comparison {
	case "OrdinalIgnoreCase":
		haystack, needle = strings.ToLower(s), strings.ToLower(sub)
	case "CurrentCultureIgnoreCase", "InvariantCultureIgnoreCase":
		folder := cases.Fold()
		haystack, needle = folder.String(s), folder.String(sub)
	}
	if last {
		return strings.LastIndex(haystack, needle)
	}
	return strings.Index(haystack, needle)
}
