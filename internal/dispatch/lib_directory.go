package dispatch

import (
	"path/filepath"

	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// directoryLibrary implements §4.4.8: the single GetParent static method.
type directoryLibrary struct {
	static *funcid.Table
}

const dirGetParent funcid.ID = 0

func newDirectoryLibrary() *directoryLibrary {
	return &directoryLibrary{static: funcid.New([]string{"GetParent"})}
}

// ExecStatic returns an Opaque directory-info handle, matching the platform
// shape named in §4.4.8 ("directory info object returned by the platform").
// The parent is derived from the path string alone, without consulting the
// filesystem — the platform's GetParent does the same, returning null only
// once path has no parent left to give (a root).
func (l *directoryLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok || id != dirGetParent || len(args) != 1 {
		return None()
	}
	path, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	cleaned := filepath.Clean(path)
	parent := filepath.Dir(cleaned)
	if parent == cleaned {
		return Ok(value.Opaque(nil))
	}
	return Ok(value.Opaque(directoryInfo{path: parent}))
}

// directoryInfo is the Opaque handle shape GetParent hands back.
type directoryInfo struct {
	path string
}
