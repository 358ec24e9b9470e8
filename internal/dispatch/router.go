package dispatch

import (
	"strings"

	"github.com/cwbudde/fnswitch/internal/value"
)

// Dispatch is the dispatcher's single public entry point (§6): given the
// receiver, method name, an optional live instance, and the already
// evaluated argument vector, it resolves the call without reflection or
// returns None so the caller can fall back to it.
func (d *Dispatcher) Dispatch(receiver Receiver, methodName string, instance *value.V, args []value.V) Result {
	if instance != nil {
		if strings.EqualFold(methodName, "ToString") {
			return d.dispatchToString(*instance, args)
		}
		return d.dispatchInstance(*instance, methodName, args)
	}
	return d.dispatchStatic(receiver, methodName, args)
}

// dispatchToString hoists the zero-arg ToString() above every per-library
// table (§4.5 step 1, §9 "Instance ToString uniform handling"): every
// instance variant gets a default rendering without each library wiring it
// individually. A non-empty arg list delegates to the owning library's
// custom ToString provider, and declines if that variant has none.
func (d *Dispatcher) dispatchToString(instance value.V, args []value.V) Result {
	if len(args) == 0 {
		return Ok(value.Str(instance.DefaultString()))
	}
	var provider ToStringProvider
	switch instance.Kind() {
	case value.KInt:
		provider = d.intLib
	case value.KVer:
		provider = d.versionLib
	case value.KGuid:
		provider = d.guidLib
	default:
		d.logUnresolved(instanceReceiverName(instance), instance.Kind().String(), "ToString", args)
		return None()
	}
	res := provider.ExecToString(instance, args)
	if !res.Matched() {
		d.logUnresolved(instanceReceiverName(instance), instance.Kind().String(), "ToString", args)
	}
	return res
}

// dispatchInstance selects a library by the runtime variant of instance
// (§4.5 step 1, second bullet) and invokes its instance table.
func (d *Dispatcher) dispatchInstance(instance value.V, methodName string, args []value.V) Result {
	var lib InstanceLibrary
	var name string
	switch instance.Kind() {
	case value.KStr:
		lib, name = d.stringLib, "String"
	case value.KStrArr:
		lib, name = d.stringArrayLib, "String[]"
	case value.KInt:
		lib, name = d.intLib, "Int32"
	case value.KVer:
		lib, name = d.versionLib, "Version"
	default:
		d.logUnresolved("", instance.Kind().String(), methodName, args)
		return None()
	}
	res := lib.ExecInstance(instance, methodName, args)
	if !res.Matched() {
		d.logUnresolved(name, instance.Kind().String(), methodName, args)
	}
	return res
}

// dispatchStatic selects a library by declared receiver type (§4.5 step 2).
func (d *Dispatcher) dispatchStatic(receiver Receiver, methodName string, args []value.V) Result {
	var lib StaticLibrary
	switch receiver {
	case String:
		lib = d.stringLib
	case Path:
		lib = d.pathLib
	case Intrinsic:
		lib = d.intrinsicLib
	case Math:
		lib = d.mathLib
	case Directory:
		lib = d.directoryLib
	case Char:
		lib = d.charLib
	case Guid:
		lib = d.guidLib
	case Version:
		lib = d.versionLib
	case Regex:
		lib = d.regexLib
	default:
		d.logUnresolved(receiver.String(), "", methodName, args)
		return None()
	}
	res := lib.ExecStatic(methodName, args)
	if !res.Matched() {
		d.logUnresolved(receiver.String(), "", methodName, args)
	}
	return res
}

func instanceReceiverName(instance value.V) string {
	switch instance.Kind() {
	case value.KStr:
		return "String"
	case value.KStrArr:
		return "String[]"
	case value.KInt:
		return "Int32"
	case value.KVer:
		return "Version"
	case value.KGuid:
		return "Guid"
	default:
		return ""
	}
}
