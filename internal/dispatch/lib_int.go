package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/value"
)

// intLibrary implements §4.4.2: Int32 has no ordinary instance methods of
// its own in this dispatcher, only the custom ToString(format) overload
// reached through the router's ToStringProvider path.
type intLibrary struct{}

func newIntLibrary() *intLibrary { return &intLibrary{} }

// ExecInstance exists to satisfy InstanceLibrary; Int32 exposes nothing
// through the ordinary instance path, only through ExecToString.
func (l *intLibrary) ExecInstance(instance value.V, name string, args []value.V) Result {
	return None()
}

// ExecToString implements Int32.ToString(format), a .NET standard numeric
// format string. Only "X"/"x" (hex, optionally zero-padded) and "D"/"d"
// (decimal, optionally zero-padded) are recognized; anything else declines
// so the caller's reflection fallback can use the platform's full format
// grammar.
func (l *intLibrary) ExecToString(instance value.V, args []value.V) Result {
	i, ok := instance.AsInt()
	if !ok || len(args) != 1 {
		return None()
	}
	format, ok := coerce.ToStr(args[0])
	if !ok || format == "" {
		return None()
	}
	spec := format[0]
	width := 0
	if len(format) > 1 {
		w, err := strconv.Atoi(format[1:])
		if err != nil {
			return None()
		}
		width = w
	}
	switch spec {
	case 'X':
		return Ok(value.Str(padHex(fmt.Sprintf("%X", uint32(i)), width)))
	case 'x':
		return Ok(value.Str(padHex(fmt.Sprintf("%x", uint32(i)), width)))
	case 'D', 'd':
		s := strconv.FormatInt(int64(i), 10)
		neg := strings.HasPrefix(s, "-")
		if neg {
			s = s[1:]
		}
		for len(s) < width {
			s = "0" + s
		}
		if neg {
			s = "-" + s
		}
		return Ok(value.Str(s))
	default:
		return None()
	}
}

func padHex(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
