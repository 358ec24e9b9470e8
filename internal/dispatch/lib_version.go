package dispatch

import (
	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// versionLibrary implements §4.4.3.
type versionLibrary struct {
	static   *funcid.Table
	instance *funcid.Table
}

const verParse funcid.ID = 0

const (
	verCompareTo funcid.ID = iota
	verRevision
)

func newVersionLibrary() *versionLibrary {
	return &versionLibrary{
		static:   funcid.New([]string{"Parse"}),
		instance: funcid.New([]string{"CompareTo", "Revision"}),
	}
}

func (l *versionLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok || id != verParse || len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	v, err := value.ParseVer(s)
	if err != nil {
		return None()
	}
	return Ok(value.VerOf(v))
}

func (l *versionLibrary) ExecInstance(instance value.V, name string, args []value.V) Result {
	v, ok := instance.AsVer()
	if !ok {
		return None()
	}
	id, ok := l.instance.Find(name)
	if !ok {
		return None()
	}
	switch id {
	case verCompareTo:
		if len(args) != 1 {
			return None()
		}
		if args[0].IsNull() {
			return Ok(value.Int(1))
		}
		other, ok := args[0].AsVer()
		if !ok {
			return None()
		}
		return Ok(value.Int(int32(v.Compare(other))))
	case verRevision:
		if len(args) != 0 {
			return None()
		}
		if v.Revision < 0 {
			return Ok(value.Int(-1))
		}
		return Ok(value.Int(int32(v.Revision)))
	}
	return None()
}

// ExecToString implements Version.ToString(fieldCount) (§4.4.3).
func (l *versionLibrary) ExecToString(instance value.V, args []value.V) Result {
	v, ok := instance.AsVer()
	if !ok || len(args) != 1 {
		return None()
	}
	n, ok := coerce.ToInt32(args[0])
	if !ok || n < 0 || n > 4 {
		return None()
	}
	return Ok(value.Str(v.StringN(int(n))))
}
