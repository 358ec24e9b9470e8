package dispatch

import "github.com/cwbudde/fnswitch/internal/value"

// StaticLibrary is implemented by a library that exposes static
// (receiver-type-qualified, no instance) methods.
type StaticLibrary interface {
	ExecStatic(name string, args []value.V) Result
}

// InstanceLibrary is implemented by a library whose methods are called on
// a live instance of its receiver type.
type InstanceLibrary interface {
	ExecInstance(instance value.V, name string, args []value.V) Result
}

// ToStringProvider is implemented by libraries with a custom, non-empty-arg
// ToString overload (Integer.ToString(format), Version.ToString(fieldCount),
// Guid.ToString(format)). The zero-arg case never reaches this — the
// router answers it uniformly from value.V.DefaultString (§4.5, §9).
type ToStringProvider interface {
	ExecToString(instance value.V, args []value.V) Result
}
