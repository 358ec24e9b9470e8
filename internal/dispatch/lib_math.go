package dispatch

import (
	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// mathLibrary implements §4.4.6: static-only Max/Min, integer-preferred.
type mathLibrary struct {
	static *funcid.Table
}

const (
	mathMax funcid.ID = iota
	mathMin
)

func newMathLibrary() *mathLibrary {
	return &mathLibrary{static: funcid.New([]string{"Max", "Min"})}
}

func (l *mathLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok || len(args) != 2 {
		return None()
	}
	if a, aok := coerce.ToInt32(args[0]); aok {
		if b, bok := coerce.ToInt32(args[1]); bok {
			if id == mathMax {
				return Ok(value.Int(maxInt32(a, b)))
			}
			return Ok(value.Int(minInt32(a, b)))
		}
	}
	a, aok := coerce.ToDouble(args[0])
	b, bok := coerce.ToDouble(args[1])
	if !aok || !bok {
		return None()
	}
	if id == mathMax {
		return Ok(value.Double(maxFloat(a, b)))
	}
	return Ok(value.Double(minFloat(a, b)))
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
