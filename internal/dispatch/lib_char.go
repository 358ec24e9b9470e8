package dispatch

import (
	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// charLibrary implements §4.4.9: IsDigit over a Char directly, or over a
// Str plus an Int index (the .NET Char.IsDigit(string, int) overload).
type charLibrary struct {
	static *funcid.Table
}

const charIsDigit funcid.ID = 0

func newCharLibrary() *charLibrary {
	return &charLibrary{static: funcid.New([]string{"IsDigit"})}
}

func (l *charLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok || id != charIsDigit {
		return None()
	}
	switch len(args) {
	case 1:
		c, ok := coerce.ToChar(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Bool(isDigitUnit(c)))
	case 2:
		s, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		idx, ok := coerce.ToInt32(args[1])
		if !ok {
			return None()
		}
		units := []rune(s)
		if idx < 0 || int(idx) >= len(units) {
			return None()
		}
		return Ok(value.Bool(isDigitUnit(uint16(units[idx]))))
	default:
		return None()
	}
}

func isDigitUnit(c uint16) bool {
	return c >= '0' && c <= '9'
}
