package dispatch

import "github.com/cwbudde/fnswitch/internal/value"

// Result is the sum type described in §3: None means the dispatcher
// declined (unknown name, unmatched arity/shape, or a failed coercion) and
// the caller must fall back to reflection; Ok(v) means the call matched
// and v is the (possibly Null) return value. A third state, Fail(err),
// carries the one non-silent outcome named in §7: the name and shape
// matched, coercion succeeded, but the underlying platform operation
// itself failed (overflow, division by zero, malformed base-64, an
// unrecognized registry view name). That failure propagates to the
// caller as-is — it is never folded back into None.
type Result struct {
	matched bool
	value   value.V
	err     error
}

// None is the zero Result: "not my department".
func None() Result { return Result{} }

// Ok wraps a successful match, including one that legitimately returns
// Null — Ok(Null) is distinct from None (§3, §8 Testable Property for
// ToString and for any call returning an empty/absent value).
func Ok(v value.V) Result { return Result{matched: true, value: v} }

// Fail wraps an underlying-operation failure (§7, last row). Matched is
// true — the dispatcher did resolve which operation to run — but Value is
// meaningless; callers must check Err before Value.
func Fail(err error) Result { return Result{matched: true, err: err} }

// Matched reports whether the dispatcher resolved the call (including a
// resolved call that went on to fail).
func (r Result) Matched() bool { return r.matched }

// Value returns the resolved value. Only meaningful when Matched() is true
// and Err() is nil.
func (r Result) Value() value.V { return r.value }

// Err returns the underlying-operation failure, if any.
func (r Result) Err() error { return r.err }
