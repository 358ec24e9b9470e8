package dispatch

import (
	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// guidLibrary implements §4.4.4.
type guidLibrary struct {
	static *funcid.Table
}

const guidNewGuid funcid.ID = 0

func newGuidLibrary() *guidLibrary {
	return &guidLibrary{static: funcid.New([]string{"NewGuid"})}
}

func (l *guidLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok || id != guidNewGuid || len(args) != 0 {
		return None()
	}
	return Ok(value.GuidOf(value.NewGuid()))
}

// ExecInstance exists to satisfy InstanceLibrary; Guid has no plain
// instance methods in this dispatcher, only the custom ToString(format).
func (l *guidLibrary) ExecInstance(instance value.V, name string, args []value.V) Result {
	return None()
}

func (l *guidLibrary) ExecToString(instance value.V, args []value.V) Result {
	g, ok := instance.AsGuid()
	if !ok || len(args) != 1 {
		return None()
	}
	format, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	switch format {
	case "N", "D", "B", "P":
		return Ok(value.Str(g.Format(format)))
	default:
		return None()
	}
}
