package dispatcherr

import (
	"errors"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	e := New("Intrinsic", "Divide", []string{"1", "0"}, errors.New("division by zero"))
	got := e.Format()
	want := "Intrinsic.Divide(1, 0): division by zero"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := New("Path", "GetFullPath", nil, cause)
	if !errors.Is(e, cause) {
		t.Error("errors.Is should see through Unwrap to the cause")
	}
}

func TestFormatAllSingle(t *testing.T) {
	e := New("Math", "Max", []string{"1", "2"}, errors.New("x"))
	got := FormatAll([]*CallError{e})
	if got != e.Format() {
		t.Errorf("FormatAll with one error should equal its Format()")
	}
}

func TestFormatAllMultiple(t *testing.T) {
	e1 := New("Math", "Max", nil, errors.New("x"))
	e2 := New("Path", "Combine", nil, errors.New("y"))
	got := FormatAll([]*CallError{e1, e2})
	if !strings.Contains(got, "2 dispatcher call(s) failed") {
		t.Errorf("FormatAll should summarize the count: %q", got)
	}
}
