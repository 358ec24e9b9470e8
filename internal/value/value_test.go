package value

import "testing"

func TestDefaultString(t *testing.T) {
	cases := []struct {
		name string
		v    V
		want string
	}{
		{"null", Null(), ""},
		{"str", Str("hi"), "hi"},
		{"int", Int(42), "42"},
		{"long", Long(-7), "-7"},
		{"double", Double(3.5), "3.5"},
		{"double-nan", Double(nan()), "NaN"},
		{"char", Char('Q'), "Q"},
		{"bool-true", Bool(true), "True"},
		{"bool-false", Bool(false), "False"},
		{"ver", VerOf(NewVer(1, 2)), "1.2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.DefaultString(); got != c.want {
				t.Errorf("DefaultString() = %q, want %q", got, c.want)
			}
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestEqualNumericCrossKind(t *testing.T) {
	if !Equal(Int(3), Long(3)) {
		t.Error("Int(3) should equal Long(3)")
	}
	if !Equal(Int(3), Double(3.0)) {
		t.Error("Int(3) should equal Double(3.0)")
	}
	if Equal(Int(3), Double(3.5)) {
		t.Error("Int(3) should not equal Double(3.5)")
	}
}

func TestEqualIntLongPrecisionAbove2Pow53(t *testing.T) {
	// 2^53 and 2^53+1 are distinct int64 values that collapse to the same
	// float64, so comparing them by converting both sides through float64
	// would wrongly report them equal.
	a := int64(1) << 53
	if Equal(Long(a), Long(a+1)) {
		t.Errorf("Long(%d) must not equal Long(%d)", a, a+1)
	}
	if !Equal(Long(a+1), Long(a+1)) {
		t.Errorf("Long(%d) should equal itself", a+1)
	}
}

func TestEqualNullDistinctFromEmptyString(t *testing.T) {
	if Equal(Null(), Str("")) {
		t.Error("Null must not equal the empty string")
	}
}

func TestEqualStringArray(t *testing.T) {
	a := StrArr([]string{"a", "b"})
	b := StrArr([]string{"a", "b"})
	c := StrArr([]string{"a", "c"})
	if !Equal(a, b) {
		t.Error("identical string arrays should be equal")
	}
	if Equal(a, c) {
		t.Error("different string arrays should not be equal")
	}
}

func TestVerCompareUnsetSortsBelow(t *testing.T) {
	a := NewVer(1, 0) // build/revision unset
	b := Ver{Major: 1, Minor: 0, Build: 0, Revision: 0}
	if a.Compare(b) >= 0 {
		t.Error("a Version with unset build/revision should sort below one with 0")
	}
}

func TestVerParseRoundTrip(t *testing.T) {
	v, err := ParseVer("17.10.2")
	if err != nil {
		t.Fatalf("ParseVer: %v", err)
	}
	if v.Major != 17 || v.Minor != 10 || v.Build != 2 || v.Revision != unset {
		t.Errorf("unexpected parse: %+v", v)
	}
	if got := v.String(); got != "17.10.2" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseVerRejectsOutOfRangeFieldCount(t *testing.T) {
	if _, err := ParseVer("1"); err == nil {
		t.Error("expected error for single-field version string")
	}
	if _, err := ParseVer("1.2.3.4.5"); err == nil {
		t.Error("expected error for five-field version string")
	}
}

func TestGuidFormats(t *testing.T) {
	g := NewGuid()
	n := g.Format("N")
	d := g.Format("D")
	b := g.Format("B")
	p := g.Format("P")
	if len(n) != 32 {
		t.Errorf("N format length = %d, want 32", len(n))
	}
	if len(d) != 36 {
		t.Errorf("D format length = %d, want 36", len(d))
	}
	if b[0] != '{' || b[len(b)-1] != '}' {
		t.Errorf("B format not braced: %q", b)
	}
	if p[0] != '(' || p[len(p)-1] != ')' {
		t.Errorf("P format not parenthesized: %q", p)
	}
}
