package coerce

import (
	"testing"

	"github.com/cwbudde/fnswitch/internal/value"
)

func TestToEnumRejectsNumericString(t *testing.T) {
	if _, ok := ToEnum(value.Str("5"), StringComparisonSpec); ok {
		t.Error("ToEnum should reject a purely numeric string")
	}
}

func TestToEnumStripsCaseSensitivePrefix(t *testing.T) {
	got, ok := ToEnum(value.Str("System.StringComparison.OrdinalIgnoreCase"), StringComparisonSpec)
	if !ok || got != "OrdinalIgnoreCase" {
		t.Errorf("ToEnum with qualified prefix = (%q, %v)", got, ok)
	}
	// The prefix match is case-sensitive: a differently-cased namespace is
	// left un-stripped and so fails to match any member verbatim.
	if _, ok := ToEnum(value.Str("system.stringcomparison.OrdinalIgnoreCase"), StringComparisonSpec); ok {
		t.Error("ToEnum should not strip a differently-cased prefix")
	}
}

func TestToEnumBareMember(t *testing.T) {
	got, ok := ToEnum(value.Str("Ordinal"), StringComparisonSpec)
	if !ok || got != "Ordinal" {
		t.Errorf("ToEnum bare member = (%q, %v)", got, ok)
	}
}

func TestEqualUnderComparison(t *testing.T) {
	if !EqualUnderComparison("ABC", "abc", "OrdinalIgnoreCase") {
		t.Error("OrdinalIgnoreCase should fold case")
	}
	if EqualUnderComparison("ABC", "abc", "Ordinal") {
		t.Error("Ordinal should not fold case")
	}
}

func TestIndexUnderComparison(t *testing.T) {
	if idx := IndexUnderComparison("Hello World", "world", "OrdinalIgnoreCase", false); idx != 6 {
		t.Errorf("IndexUnderComparison = %d, want 6", idx)
	}
	if idx := IndexUnderComparison("Hello World", "world", "Ordinal", false); idx != -1 {
		t.Errorf("IndexUnderComparison ordinal = %d, want -1", idx)
	}
	if idx := IndexUnderComparison("Hello World", "WORLD", "InvariantCultureIgnoreCase", false); idx != 6 {
		t.Errorf("IndexUnderComparison InvariantCultureIgnoreCase = %d, want 6", idx)
	}
}

func TestEqualUnderComparisonCultureAware(t *testing.T) {
	if !EqualUnderComparison("abc", "ABC", "InvariantCultureIgnoreCase") {
		t.Error("InvariantCultureIgnoreCase should fold case")
	}
	if !EqualUnderComparison("abc", "abc", "InvariantCulture") {
		t.Error("InvariantCulture should match identical strings")
	}
	if EqualUnderComparison("abc", "ABC", "InvariantCulture") {
		t.Error("InvariantCulture (case-sensitive) should not fold case")
	}
	if !EqualUnderComparison("abc", "ABC", "CurrentCultureIgnoreCase") {
		t.Error("CurrentCultureIgnoreCase should fold case (no locale injected, falls back to invariant)")
	}
}
