package dispatch

import (
	"testing"

	"github.com/cwbudde/fnswitch/internal/value"
)

func TestPathCombine(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Path, "Combine", nil, []value.V{value.Str("a"), value.Str("b")})
	if !res.Matched() {
		t.Fatal("Combine should match")
	}
	s, _ := res.Value().AsStr()
	if s == "" {
		t.Error("Combine should join non-empty segments")
	}
}

func TestPathCombineZeroArg(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Path, "Combine", nil, nil)
	if !res.Matched() {
		t.Fatal("Combine() with no args should match")
	}
	if s, _ := res.Value().AsStr(); s != "" {
		t.Errorf("Combine() = %q, want empty string", s)
	}
}

func TestPathIsPathRootedNull(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Path, "IsPathRooted", nil, []value.V{value.Null()})
	if !res.Matched() {
		t.Fatal("IsPathRooted(Null) should match")
	}
	if b, _ := res.Value().AsBool(); b {
		t.Error("IsPathRooted(Null) should be false")
	}
}

func TestRegexIsMatch(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Regex, "IsMatch", nil, []value.V{value.Str("hello123"), value.Str(`\d+`)})
	if !res.Matched() {
		t.Fatal("IsMatch should match")
	}
	if b, _ := res.Value().AsBool(); !b {
		t.Error("IsMatch should find the digit run")
	}
}

func TestRegexReplace(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Regex, "Replace", nil, []value.V{value.Str("a1b2"), value.Str(`\d`), value.Str("_")})
	if !res.Matched() {
		t.Fatal("Replace should match")
	}
	if s, _ := res.Value().AsStr(); s != "a_b_" {
		t.Errorf("Replace result = %q, want \"a_b_\"", s)
	}
}

func TestCharIsDigit(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Char, "IsDigit", nil, []value.V{value.Char('5')})
	if !res.Matched() {
		t.Fatal("IsDigit(Char) should match")
	}
	if b, _ := res.Value().AsBool(); !b {
		t.Error("'5' should be a digit")
	}
}

func TestCharIsDigitStringIndex(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Char, "IsDigit", nil, []value.V{value.Str("a5"), value.Int(1)})
	if !res.Matched() {
		t.Fatal("IsDigit(Str, Int) should match")
	}
	if b, _ := res.Value().AsBool(); !b {
		t.Error("index 1 of \"a5\" should be a digit")
	}
}

func TestGuidNewGuidAndToString(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Guid, "NewGuid", nil, nil)
	if !res.Matched() {
		t.Fatal("NewGuid should match")
	}
	g := res.Value()
	str := d.Dispatch(Guid, "ToString", &g, []value.V{value.Str("N")})
	if !str.Matched() {
		t.Fatal("Guid.ToString(\"N\") should match")
	}
	s, ok := str.Value().AsStr()
	if !ok || len(s) != 32 {
		t.Errorf("Guid ToString(\"N\") = %q", s)
	}
}

func TestVersionParseAndCompareTo(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Version, "Parse", nil, []value.V{value.Str("1.2.3")})
	if !res.Matched() {
		t.Fatal("Version.Parse should match")
	}
	v := res.Value()
	cmp := d.Dispatch(Version, "CompareTo", &v, []value.V{value.Null()})
	if !cmp.Matched() {
		t.Fatal("CompareTo(Null) should match")
	}
	if i, _ := cmp.Value().AsInt(); i != 1 {
		t.Errorf("CompareTo(Null) = %d, want 1", i)
	}
}
