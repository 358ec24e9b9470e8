package dispatch

import (
	"os"
	"path/filepath"

	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// pathLibrary implements §4.4.7: static only. Combine accepts the
// platform's optimized 0/2/3/4-arg overloads plus the N-ary form (one
// StrArr), and IsPathRooted and the three name-splitting helpers each
// accept Str|Null.
type pathLibrary struct {
	static *funcid.Table
}

const (
	pathCombine funcid.ID = iota
	pathDirectorySeparatorChar
	pathGetFullPath
	pathIsPathRooted
	pathGetTempPath
	pathGetFileName
	pathGetDirectoryName
	pathGetFileNameWithoutExtension
)

func newPathLibrary() *pathLibrary {
	return &pathLibrary{static: funcid.New([]string{
		"Combine",
		"DirectorySeparatorChar",
		"GetFullPath",
		"IsPathRooted",
		"GetTempPath",
		"GetFileName",
		"GetDirectoryName",
		"GetFileNameWithoutExtension",
	})}
}

func (l *pathLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok {
		return None()
	}
	switch id {
	case pathCombine:
		return l.combine(args)
	case pathDirectorySeparatorChar:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Char(uint16(filepath.Separator)))
	case pathGetFullPath:
		if len(args) != 1 {
			return None()
		}
		s, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		abs, err := filepath.Abs(s)
		if err != nil {
			return None()
		}
		return Ok(value.Str(abs))
	case pathIsPathRooted:
		return l.isPathRooted(args)
	case pathGetTempPath:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Str(os.TempDir()))
	case pathGetFileName:
		return l.splitOpt(args, filepath.Base)
	case pathGetDirectoryName:
		return l.splitOpt(args, pathDir)
	case pathGetFileNameWithoutExtension:
		return l.splitOpt(args, fileNameWithoutExtension)
	default:
		return None()
	}
}

func (l *pathLibrary) combine(args []value.V) Result {
	switch len(args) {
	case 0:
		return Ok(value.Str(""))
	case 2, 3, 4:
		parts, ok := coerce.StringArrayFromArgs(args)
		if !ok {
			return None()
		}
		return Ok(value.Str(filepath.Join(parts...)))
	case 1:
		if arr, ok := coerce.ToStringArray(args[0]); ok {
			return Ok(value.Str(filepath.Join(arr...)))
		}
		return None()
	default:
		return None()
	}
}

func (l *pathLibrary) isPathRooted(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, isNull, ok := coerce.ToStringOpt(args[0])
	if !ok {
		return None()
	}
	if isNull {
		return Ok(value.Bool(false))
	}
	return Ok(value.Bool(filepath.IsAbs(s)))
}

func (l *pathLibrary) splitOpt(args []value.V, fn func(string) string) Result {
	if len(args) != 1 {
		return None()
	}
	s, isNull, ok := coerce.ToStringOpt(args[0])
	if !ok {
		return None()
	}
	if isNull {
		return Ok(value.Null())
	}
	return Ok(value.Str(fn(s)))
}

func pathDir(s string) string {
	dir := filepath.Dir(s)
	if dir == "." {
		return ""
	}
	return dir
}

func fileNameWithoutExtension(s string) string {
	base := filepath.Base(s)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}
