package dispatch

import (
	"testing"

	"github.com/cwbudde/fnswitch/internal/value"
)

// fakeFS is a minimal collab.FileSystem test double: a fixed set of
// existing files/directories, no actual disk access.
type fakeFS struct {
	files []string
	dirs  []string
}

func (f fakeFS) FileExists(path string) bool {
	for _, p := range f.files {
		if p == path {
			return true
		}
	}
	return false
}

func (f fakeFS) DirectoryExists(path string) bool {
	for _, p := range f.dirs {
		if p == path {
			return true
		}
	}
	return false
}

func (f fakeFS) PathOfFileAbove(fileName, startingDirectory string) (string, bool) {
	return "", false
}

func (f fakeFS) DirectoryNameOfFileAbove(fileName, startingDirectory string) (string, bool) {
	return "", false
}

func TestDirectoryGetParentRootReturnsNilOpaque(t *testing.T) {
	d := New(Options{FileSystem: fakeFS{}})
	res := d.Dispatch(Directory, "GetParent", nil, []value.V{value.Str("/")})
	if !res.Matched() {
		t.Fatal("GetParent should match")
	}
	opaque, ok := res.Value().AsOpaque()
	if !ok {
		t.Fatal("GetParent should return an Opaque")
	}
	if opaque != nil {
		t.Errorf("GetParent of a root path should carry a nil handle, got %v", opaque)
	}
}

func TestDirectoryGetParentDoesNotRequireExistence(t *testing.T) {
	d := New(Options{FileSystem: fakeFS{}})
	res := d.Dispatch(Directory, "GetParent", nil, []value.V{value.Str("/nowhere/thing")})
	if !res.Matched() {
		t.Fatal("GetParent should match")
	}
	opaque, ok := res.Value().AsOpaque()
	if !ok || opaque == nil {
		t.Fatal("GetParent should derive the parent without checking existence")
	}
	info, ok := opaque.(directoryInfo)
	if !ok || info.path != "/nowhere" {
		t.Errorf("GetParent(\"/nowhere/thing\") handle = %+v, want path \"/nowhere\"", opaque)
	}
}

func TestDirectoryGetParentKnownPath(t *testing.T) {
	d := New(Options{FileSystem: fakeFS{dirs: []string{"/a/b"}}})
	res := d.Dispatch(Directory, "GetParent", nil, []value.V{value.Str("/a/b")})
	if !res.Matched() {
		t.Fatal("GetParent should match")
	}
	opaque, ok := res.Value().AsOpaque()
	if !ok || opaque == nil {
		t.Fatal("GetParent of a known directory should carry a directoryInfo handle")
	}
	info, ok := opaque.(directoryInfo)
	if !ok || info.path != "/a" {
		t.Errorf("GetParent(\"/a/b\") handle = %+v, want path \"/a\"", opaque)
	}
}
