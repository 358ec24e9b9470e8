package value

import (
	"fmt"
	"strconv"
	"strings"
)

// unset marks a Version field ("build" or "revision") that was never
// supplied. It sorts below every non-negative value, per §3.
const unset = -1

// Ver is the four-field dotted version receiver (major.minor[.build[.revision]]).
type Ver struct {
	Major, Minor, Build, Revision int
}

// NewVer builds a Ver with build/revision defaulted to unset.
func NewVer(major, minor int) Ver {
	return Ver{Major: major, Minor: minor, Build: unset, Revision: unset}
}

// ParseVer parses "major.minor[.build[.revision]]", following .NET's
// System.Version.Parse grammar: 2 to 4 dot-separated non-negative integers.
func ParseVer(s string) (Ver, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 4 {
		return Ver{}, fmt.Errorf("value: invalid version string %q", s)
	}
	fields := [4]int{0, 0, unset, unset}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Ver{}, fmt.Errorf("value: invalid version component %q in %q", p, s)
		}
		fields[i] = n
	}
	return Ver{Major: fields[0], Minor: fields[1], Build: fields[2], Revision: fields[3]}, nil
}

// Compare orders versions lexicographically over (Major, Minor, Build,
// Revision) with unset (-1) sorting below all non-negative values.
func (v Ver) Compare(o Ver) int {
	if c := cmpField(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmpField(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := cmpField(v.Build, o.Build); c != 0 {
		return c
	}
	return cmpField(v.Revision, o.Revision)
}

func cmpField(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders all set fields, matching System.Version.ToString() with
// no argument: 2 fields if Build is unset, 3 if Revision is unset, else 4.
func (v Ver) String() string {
	return v.StringN(v.fieldCount())
}

func (v Ver) fieldCount() int {
	switch {
	case v.Revision != unset:
		return 4
	case v.Build != unset:
		return 3
	default:
		return 2
	}
}

// StringN renders the first n fields (1..4), as System.Version.ToString(int)
// does. A field beyond what is set renders as 0, matching the platform's
// behavior of never emitting a negative component.
func (v Ver) StringN(n int) string {
	fields := []int{v.Major, v.Minor, max0(v.Build), max0(v.Revision)}
	if n < 1 {
		n = 1
	}
	if n > 4 {
		n = 4
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = strconv.Itoa(fields[i])
	}
	return strings.Join(parts, ".")
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
