package dispatch

import (
	"testing"

	"github.com/cwbudde/fnswitch/internal/collab"
	"github.com/cwbudde/fnswitch/internal/value"
)

func newTestDispatcher() *Dispatcher {
	return New(Options{})
}

func TestDispatchStringStartsWith(t *testing.T) {
	d := newTestDispatcher()
	instance := value.Str("MyTestString")
	res := d.Dispatch(String, "StartsWith", &instance, []value.V{value.Str("My")})
	if !res.Matched() {
		t.Fatal("expected a match")
	}
	if b, ok := res.Value().AsBool(); !ok || !b {
		t.Errorf("StartsWith result = %v", res.Value())
	}
}

func TestDispatchStringIndexOfWithComparisonEnum(t *testing.T) {
	d := newTestDispatcher()
	instance := value.Str("Hello")
	res := d.Dispatch(String, "IndexOf", &instance, []value.V{value.Str("l"), value.Str("OrdinalIgnoreCase")})
	if !res.Matched() {
		t.Fatal("IndexOf(Str, StringComparison) should match, not decline")
	}
	if i, ok := res.Value().AsInt(); !ok || i != 2 {
		t.Errorf("IndexOf(\"Hello\", \"l\", OrdinalIgnoreCase) = %v, want 2", res.Value())
	}
}

func TestDispatchStringIndexOfWithStartIndexStillWorks(t *testing.T) {
	d := newTestDispatcher()
	instance := value.Str("Hello")
	res := d.Dispatch(String, "IndexOf", &instance, []value.V{value.Str("l"), value.Int(3)})
	if !res.Matched() {
		t.Fatal("IndexOf(Str, Int32) should match")
	}
	if i, ok := res.Value().AsInt(); !ok || i != 3 {
		t.Errorf("IndexOf(\"Hello\", \"l\", 3) = %v, want 3", res.Value())
	}
}

func TestDispatchStringLastIndexOfWithComparisonEnum(t *testing.T) {
	d := newTestDispatcher()
	instance := value.Str("Hello")
	res := d.Dispatch(String, "LastIndexOf", &instance, []value.V{value.Str("L"), value.Str("OrdinalIgnoreCase")})
	if !res.Matched() {
		t.Fatal("LastIndexOf(Str, StringComparison) should match, not decline")
	}
	if i, ok := res.Value().AsInt(); !ok || i != 3 {
		t.Errorf("LastIndexOf(\"Hello\", \"L\", OrdinalIgnoreCase) = %v, want 3", res.Value())
	}
}

func TestDispatchUnknownMethodDeclines(t *testing.T) {
	d := newTestDispatcher()
	instance := value.Str("x")
	res := d.Dispatch(String, "ThisDoesNotExist", &instance, nil)
	if res.Matched() {
		t.Error("unknown method name should decline")
	}
}

func TestDispatchToStringZeroArgUniform(t *testing.T) {
	d := newTestDispatcher()
	instance := value.Int(42)
	res := d.Dispatch(Int, "ToString", &instance, nil)
	if !res.Matched() {
		t.Fatal("zero-arg ToString should always match")
	}
	if s, _ := res.Value().AsStr(); s != "42" {
		t.Errorf("ToString() = %q, want \"42\"", s)
	}
}

func TestDispatchOkNullDistinctFromNone(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Path, "GetFileName", nil, []value.V{value.Null()})
	if !res.Matched() {
		t.Fatal("GetFileName(Null) should match, not decline")
	}
	if !res.Value().IsNull() {
		t.Errorf("GetFileName(Null) value = %v, want Null", res.Value())
	}
}

func TestDispatchStaticSelectsByReceiver(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Math, "Max", nil, []value.V{value.Int(3), value.Int(7)})
	if !res.Matched() {
		t.Fatal("Math.Max should match")
	}
	if i, _ := res.Value().AsInt(); i != 7 {
		t.Errorf("Max(3,7) = %d, want 7", i)
	}
}

func TestDispatchInstanceSelectsByRuntimeVariant(t *testing.T) {
	d := newTestDispatcher()
	instance := value.VerOf(value.NewVer(2, 0))
	res := d.Dispatch(String, "Revision", &instance, nil) // declared receiver ignored; instance wins
	if !res.Matched() {
		t.Fatal("Version.Revision should match via runtime variant")
	}
	if i, _ := res.Value().AsInt(); i != -1 {
		t.Errorf("Revision of an unset field = %d, want -1", i)
	}
}

func TestIntrinsicAddWidening(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Intrinsic, "Add", nil, []value.V{value.Str("1"), value.Str("2")})
	if !res.Matched() {
		t.Fatal("Add should match")
	}
	l, ok := res.Value().AsLong()
	if !ok || l != 3 {
		t.Errorf("Add(\"1\",\"2\") = %v, want Long(3)", res.Value())
	}
}

func TestIntrinsicAddFallsBackToDouble(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Intrinsic, "Add", nil, []value.V{value.Double(1.5), value.Int(2)})
	if !res.Matched() {
		t.Fatal("Add should match")
	}
	if dv, ok := res.Value().AsDouble(); !ok || dv != 3.5 {
		t.Errorf("Add(1.5,2) = %v, want Double(3.5)", res.Value())
	}
}

func TestIntrinsicDivideByZeroFails(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Intrinsic, "Divide", nil, []value.V{value.Int(1), value.Int(0)})
	if !res.Matched() {
		t.Fatal("Divide should resolve the operation even though it fails")
	}
	if res.Err() == nil {
		t.Error("Divide by zero should propagate an error, not decline")
	}
}

func TestIntrinsicRightShiftUnsigned(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Intrinsic, "RightShiftUnsigned", nil, []value.V{value.Int(16), value.Int(2)})
	if !res.Matched() {
		t.Fatal("RightShiftUnsigned should match")
	}
	if i, _ := res.Value().AsInt(); i != 4 {
		t.Errorf("RightShiftUnsigned(16,2) = %d, want 4", i)
	}
}

func TestIntrinsicRightShiftMasksCount(t *testing.T) {
	d := newTestDispatcher()
	// 33 masked to low 5 bits is 1, so this behaves like RightShift(16, 1).
	res := d.Dispatch(Intrinsic, "RightShift", nil, []value.V{value.Int(16), value.Int(33)})
	if !res.Matched() {
		t.Fatal("RightShift should match")
	}
	if i, _ := res.Value().AsInt(); i != 8 {
		t.Errorf("RightShift(16,33) = %d, want 8 (count masked to 1)", i)
	}
}

func TestIntrinsicVersionPredicates(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(Intrinsic, "VersionGreaterThan", nil, []value.V{value.Str("2.0"), value.Str("1.5")})
	if !res.Matched() {
		t.Fatal("VersionGreaterThan should match")
	}
	if b, _ := res.Value().AsBool(); !b {
		t.Error("2.0 should be greater than 1.5")
	}
}

func TestIntrinsicStableStringHashFeatureGated(t *testing.T) {
	d := New(Options{FeatureWave: staticWave{enabled: false}})
	legacy := d.Dispatch(Intrinsic, "StableStringHash", nil, []value.V{value.Str("abc")})
	modern := New(Options{FeatureWave: staticWave{enabled: true}}).Dispatch(Intrinsic, "StableStringHash", nil, []value.V{value.Str("abc")})
	if !legacy.Matched() || !modern.Matched() {
		t.Fatal("StableStringHash should always match")
	}
	if value.Equal(legacy.Value(), modern.Value()) {
		t.Error("legacy and modern hash algorithms should disagree on at least this input")
	}
}

// staticWave is a minimal FeatureWave test double.
type staticWave struct{ enabled bool }

func (s staticWave) AreFeaturesEnabled(_ value.Ver) bool { return s.enabled }
func (s staticWave) CheckFeatureAvailability(_ string) collab.FeatureStatus {
	return collab.FeatureAvailable
}
