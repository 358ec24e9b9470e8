package dispatch

import (
	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// stringArrayLibrary implements §4.4.5: the one instance method exposed on
// a StrArr receiver.
type stringArrayLibrary struct {
	instance *funcid.Table
}

const strArrGetValue funcid.ID = 0

func newStringArrayLibrary() *stringArrayLibrary {
	return &stringArrayLibrary{instance: funcid.New([]string{"GetValue"})}
}

func (l *stringArrayLibrary) ExecInstance(instance value.V, name string, args []value.V) Result {
	arr, ok := instance.AsStrArr()
	if !ok {
		return None()
	}
	id, ok := l.instance.Find(name)
	if !ok || id != strArrGetValue {
		return None()
	}
	if len(args) != 1 {
		return None()
	}
	idx, ok := coerce.ToInt32(args[0])
	if !ok {
		return None()
	}
	if int(idx) < 0 || int(idx) >= len(arr) {
		return None()
	}
	return Ok(value.Str(arr[idx]))
}
